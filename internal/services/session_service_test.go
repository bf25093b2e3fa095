package services

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateFront/internal/backend"
	"estateFront/internal/models"
	"estateFront/internal/repositories"
)

func newAuthBackend(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.Client(), srv.URL)
}

func respondJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

// unsigned three-part token whose payload is the given JSON.
func fakeJWT(payloadJSON string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(payloadJSON))
	return header + "." + payload + ".sig"
}

func TestRestoreCorruptValueReadsAsLoggedOut(t *testing.T) {
	store := repositories.NewMemorySessionStore()
	svc := NewSessionService(store, nil)

	require.NoError(t, store.Put(context.Background(), "v1", []byte(`{not json`)))
	assert.Nil(t, svc.Restore(context.Background(), "v1"))

	require.NoError(t, store.Put(context.Background(), "v1", []byte(`{"id":"","email":"a@b.c"}`)))
	assert.Nil(t, svc.Restore(context.Background(), "v1"), "missing id must read as logged out")

	require.NoError(t, store.Put(context.Background(), "v1", []byte(`{"id":7,"email":"a@b.c"}`)))
	assert.Nil(t, svc.Restore(context.Background(), "v1"), "non-string id must read as logged out")
}

func TestSignInEstablishesAndPersistsSession(t *testing.T) {
	api := newAuthBackend(t, respondJSON(`{
		"message": "welcome back",
		"data": {
			"user": {"_id": "u42", "email": " jane@example.com ", "name": "Jane"},
			"accessToken": "tok-abc"
		}
	}`))

	store := repositories.NewMemorySessionStore()
	svc := NewSessionService(store, api)

	out := svc.SignIn(context.Background(), "v1", models.SignInRequest{Email: "jane@example.com", Password: "pw"})
	require.True(t, out.OK)
	assert.Empty(t, out.Next)
	require.NotNil(t, out.User)
	assert.Equal(t, "u42", out.User.ID)
	assert.Equal(t, "jane@example.com", out.User.Email)
	assert.Equal(t, "tok-abc", out.User.Token)
	assert.Equal(t, "welcome back", out.Message)

	restored := svc.Restore(context.Background(), "v1")
	require.NotNil(t, restored, "session must be persisted on commit")
	assert.Equal(t, *out.User, *restored)
}

func TestSignInTokenOnlyPayloadDerivesUserFromClaims(t *testing.T) {
	token := fakeJWT(`{"id":"u7","email":"t@example.com","name":"Tok"}`)
	api := newAuthBackend(t, respondJSON(`{"accessToken":"`+token+`"}`))

	svc := NewSessionService(repositories.NewMemorySessionStore(), api)
	out := svc.SignIn(context.Background(), "v1", models.SignInRequest{Email: "t@example.com", Password: "pw"})

	require.True(t, out.OK)
	require.NotNil(t, out.User)
	assert.Equal(t, "u7", out.User.ID)
	assert.Equal(t, "t@example.com", out.User.Email)
	assert.Equal(t, token, out.User.Token, "bearer token must ride along")
}

func TestSignInVerificationPendingOutcome(t *testing.T) {
	// Token payload has no id/email shape, so no user can be derived.
	token := fakeJWT(`{"purpose":"verify","exp":1}`)
	api := newAuthBackend(t, respondJSON(`{
		"accessToken": "`+token+`",
		"verificationId": "ver-9",
		"message": "OTP sent"
	}`))

	store := repositories.NewMemorySessionStore()
	svc := NewSessionService(store, api)
	out := svc.SignIn(context.Background(), "v1", models.SignInRequest{Email: "x@y.z", Password: "pw"})

	require.True(t, out.OK)
	assert.Equal(t, "otp", out.Next)
	assert.Equal(t, "ver-9", out.VerificationID)
	assert.Equal(t, "OTP sent", out.Message)
	assert.Nil(t, out.User)
	assert.Nil(t, svc.Restore(context.Background(), "v1"), "nothing persists while verification is pending")
}

func TestSignInFailureSurfacesBackendMessage(t *testing.T) {
	api := newAuthBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"wrong password"}`))
	})

	store := repositories.NewMemorySessionStore()
	svc := NewSessionService(store, api)
	out := svc.SignIn(context.Background(), "v1", models.SignInRequest{Email: "x@y.z", Password: "nope"})

	assert.False(t, out.OK)
	assert.Equal(t, "wrong password", out.Message)
	assert.Nil(t, svc.Restore(context.Background(), "v1"))
}

func TestVerifyOTPEstablishesSession(t *testing.T) {
	api := newAuthBackend(t, respondJSON(`{"user":{"id":"u1","email":"a@b.c"},"token":"t1"}`))

	svc := NewSessionService(repositories.NewMemorySessionStore(), api)
	out := svc.VerifyOTP(context.Background(), "v1", models.VerifyOTPRequest{Email: "a@b.c", OTP: "123456", Flow: "signup"})

	require.True(t, out.OK)
	require.NotNil(t, out.User)
	assert.Equal(t, "t1", out.User.Token)
}

func TestLogoutClearsSession(t *testing.T) {
	api := newAuthBackend(t, respondJSON(`{"user":{"id":"u1","email":"a@b.c"}}`))
	store := repositories.NewMemorySessionStore()
	svc := NewSessionService(store, api)

	out := svc.SignIn(context.Background(), "v1", models.SignInRequest{Email: "a@b.c", Password: "pw"})
	require.True(t, out.OK)
	require.NotNil(t, svc.Restore(context.Background(), "v1"))

	svc.Logout(context.Background(), "v1")
	assert.Nil(t, svc.Restore(context.Background(), "v1"))
}

func TestResendOTPCooldown(t *testing.T) {
	calls := 0
	api := newAuthBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"message":"code sent","verificationId":"ver-1"}`))
	})

	svc := NewSessionService(repositories.NewMemorySessionStore(), api)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	req := models.ResendOTPRequest{Email: "a@b.c", Flow: "signup"}

	out := svc.ResendOTP(context.Background(), "v1", req)
	require.True(t, out.OK)
	assert.Equal(t, "code sent", out.Message)
	assert.Equal(t, 1, calls)

	// 10 seconds later: still cooling down, backend not called again.
	now = now.Add(10 * time.Second)
	out = svc.ResendOTP(context.Background(), "v1", req)
	assert.False(t, out.OK)
	assert.Equal(t, 20, out.RetryAfter)
	assert.Equal(t, 1, calls)

	// Past the 30s window: allowed again.
	now = now.Add(21 * time.Second)
	out = svc.ResendOTP(context.Background(), "v1", req)
	assert.True(t, out.OK)
	assert.Equal(t, 2, calls)
}
