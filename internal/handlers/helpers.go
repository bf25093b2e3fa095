package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"estateFront/internal/backend"
	"estateFront/internal/services"
	"estateFront/utils"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// visitorID reads the visitor identity injected by the ensureVisitor
// middleware. An empty value means the middleware did not run.
func visitorID(r *http.Request) string {
	if id, ok := r.Context().Value("visitor_id").(string); ok {
		return id
	}
	return ""
}

// authContext attaches the restored session's bearer token, when there is
// one, so backend calls run as the signed-in user.
func authContext(r *http.Request, sessions *services.SessionService) context.Context {
	ctx := r.Context()
	if sessions == nil {
		return ctx
	}
	if user := sessions.Restore(ctx, visitorID(r)); user != nil && user.Token != "" {
		ctx = backend.WithToken(ctx, user.Token)
	}
	return ctx
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Logger.WithError(err).Error("response encode failed")
	}
}

func jsonError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// backendError maps a backend failure onto our response: the backend's own
// status and probed message pass through, anything else reads as a 502.
func backendError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		jsonError(w, apiErr.Status, apiErr.Message)
		return
	}
	jsonError(w, http.StatusBadGateway, "failed to fetch")
}

// validationMessage flattens the first validator violation into a short
// field-level message for the form.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " is too short"
	case "max":
		return field + " is too long"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "numeric":
		return field + " must be a number"
	default:
		return field + " is invalid"
	}
}
