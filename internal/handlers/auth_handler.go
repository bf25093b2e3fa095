package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"estateFront/internal/models"
	"estateFront/internal/services"
)

type AuthHandler struct {
	Sessions *services.SessionService
	Validate *validator.Validate
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	out := h.Sessions.SignUp(r.Context(), visitorID(r), req)
	writeJSON(w, authStatus(out), out)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	out := h.Sessions.SignIn(r.Context(), visitorID(r), req)
	writeJSON(w, authStatus(out), out)
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	out := h.Sessions.VerifyOTP(r.Context(), visitorID(r), req)
	writeJSON(w, authStatus(out), out)
}

func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req models.ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	out := h.Sessions.ResendOTP(r.Context(), visitorID(r), req)
	status := http.StatusOK
	if !out.OK {
		status = http.StatusUnauthorized
		if out.RetryAfter > 0 {
			status = http.StatusTooManyRequests
		}
	}
	writeJSON(w, status, out)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(r.Context(), visitorID(r))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Session reports the restored session for this visitor; a null user means
// logged out.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user := h.Sessions.Restore(r.Context(), visitorID(r))
	writeJSON(w, http.StatusOK, map[string]*models.SessionUser{"user": user})
}

func authStatus(out models.AuthOutcome) int {
	if out.OK {
		return http.StatusOK
	}
	return http.StatusUnauthorized
}
