package main

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"estateFront/internal/backend"
	"estateFront/internal/config"
	"estateFront/internal/handlers"
	"estateFront/internal/repositories"
	"estateFront/internal/services"
)

type application struct {
	propertyHandler *handlers.PropertyHandler
	authHandler     *handlers.AuthHandler
	wishlistHandler *handlers.WishlistHandler
	leadHandler     *handlers.LeadHandler
}

func initializeApp(cfg config.Config, rdb *redis.Client, api *backend.Client) *application {
	// Repositories
	sessionStore := &repositories.RedisSessionStore{RDB: rdb, TTL: 30 * 24 * time.Hour}
	wishlistStore := &repositories.RedisWishlistStore{RDB: rdb}

	// Services
	sessionService := services.NewSessionService(sessionStore, api)
	wishlistService := &services.WishlistService{Store: wishlistStore}
	searchService := &services.SearchService{Backend: api}
	uploadService := &services.UploadService{Backend: api}
	leadService := services.NewLeadService(api, uploadService, cfg.Leads.InboxEmail)

	validate := validator.New()

	return &application{
		propertyHandler: &handlers.PropertyHandler{
			Search:   searchService,
			Backend:  api,
			Sessions: sessionService,
			Validate: validate,
		},
		authHandler: &handlers.AuthHandler{
			Sessions: sessionService,
			Validate: validate,
		},
		wishlistHandler: &handlers.WishlistHandler{
			Service: wishlistService,
		},
		leadHandler: &handlers.LeadHandler{
			Service: leadService,
		},
	}
}
