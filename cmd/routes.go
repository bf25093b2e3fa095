package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	visitorMiddleware := standardMiddleware.Append(app.ensureVisitor)

	mux := pat.New()

	// Properties
	mux.Get("/properties/search", visitorMiddleware.ThenFunc(app.propertyHandler.SearchProperties))
	mux.Get("/properties-in-:city", visitorMiddleware.ThenFunc(app.propertyHandler.SearchProperties))
	mux.Get("/property/:id", visitorMiddleware.ThenFunc(app.propertyHandler.GetPropertyByID))
	mux.Post("/property/:id/rating", visitorMiddleware.ThenFunc(app.propertyHandler.RateProperty))
	mux.Post("/property/:id/query", visitorMiddleware.ThenFunc(app.propertyHandler.SubmitPropertyQuery))

	// Auth
	mux.Post("/auth/sign_up", visitorMiddleware.ThenFunc(app.authHandler.SignUp))
	mux.Post("/auth/sign_in", visitorMiddleware.ThenFunc(app.authHandler.SignIn))
	mux.Post("/auth/verify_otp", visitorMiddleware.ThenFunc(app.authHandler.VerifyOTP))
	mux.Post("/auth/resend_otp", visitorMiddleware.ThenFunc(app.authHandler.ResendOTP))
	mux.Post("/auth/logout", visitorMiddleware.ThenFunc(app.authHandler.Logout))
	mux.Get("/auth/session", visitorMiddleware.ThenFunc(app.authHandler.Session))

	// Wishlist
	mux.Get("/wishlist/check/:id", visitorMiddleware.ThenFunc(app.wishlistHandler.CheckWishlist))
	mux.Post("/wishlist/toggle", visitorMiddleware.ThenFunc(app.wishlistHandler.ToggleWishlist))
	mux.Get("/wishlist", visitorMiddleware.ThenFunc(app.wishlistHandler.GetWishlist))
	mux.Post("/wishlist", visitorMiddleware.ThenFunc(app.wishlistHandler.AddToWishlist))
	mux.Del("/wishlist/:id", visitorMiddleware.ThenFunc(app.wishlistHandler.RemoveFromWishlist))
	mux.Del("/wishlist", visitorMiddleware.ThenFunc(app.wishlistHandler.ClearWishlist))

	// Leads
	mux.Post("/leads/contact", visitorMiddleware.ThenFunc(app.leadHandler.SubmitContact))
	mux.Post("/leads/sell_property", visitorMiddleware.ThenFunc(app.leadHandler.SubmitSellProperty))
	mux.Post("/leads/enquiry", visitorMiddleware.ThenFunc(app.leadHandler.SubmitEnquiry))
	mux.Get("/leads/mailto", standardMiddleware.ThenFunc(app.leadHandler.Mailto))

	mux.Get("/health", standardMiddleware.ThenFunc(app.healthCheck))

	return mux
}

func (app *application) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"status":"ok"}`))
}
