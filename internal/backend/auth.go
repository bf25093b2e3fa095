package backend

import (
	"context"
	"net/http"

	"estateFront/internal/models"
)

// Auth endpoints return payloads in several shapes (user object, bare token,
// verification handle). The raw body is handed to the session layer, which
// owns normalization; this file only moves bytes.

func (c *Client) SignUp(ctx context.Context, req models.SignUpRequest) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/signup", req)
}

func (c *Client) SignIn(ctx context.Context, req models.SignInRequest) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/login", req)
}

func (c *Client) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/verify-otp", req)
}

func (c *Client) ResendOTP(ctx context.Context, req models.ResendOTPRequest) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/resend-otp", req)
}
