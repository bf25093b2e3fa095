package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"estateFront/internal/backend"
	"estateFront/internal/models"
	"estateFront/internal/repositories"
	"estateFront/utils"
)

const DefaultResendCooldown = 30 * time.Second

const genericAuthFailure = "Something went wrong, please try again"

// SessionService owns the authenticated-user-or-none value for each visitor.
// The persisted and in-memory representations stay consistent because every
// state transition writes or clears the store before returning.
type SessionService struct {
	Store          repositories.SessionStore
	Backend        *backend.Client
	ResendCooldown time.Duration

	// Now is a clock seam for the cooldown tests.
	Now func() time.Time

	mu        sync.Mutex
	resendDue map[string]time.Time
}

func NewSessionService(store repositories.SessionStore, api *backend.Client) *SessionService {
	return &SessionService{
		Store:          store,
		Backend:        api,
		ResendCooldown: DefaultResendCooldown,
		Now:            time.Now,
		resendDue:      make(map[string]time.Time),
	}
}

// Restore reads the persisted session. Absent, corrupt or incomplete data
// reads as logged-out; corruption is discarded, never surfaced as an error.
func (s *SessionService) Restore(ctx context.Context, visitorID string) *models.SessionUser {
	raw, err := s.Store.Get(ctx, visitorID)
	if err != nil {
		utils.Logger.WithError(err).Warn("session restore failed, treating as logged out")
		return nil
	}
	return normalizeStoredSession(raw)
}

func normalizeStoredSession(raw []byte) *models.SessionUser {
	if len(raw) == 0 {
		return nil
	}
	var u models.SessionUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	u.ID = strings.TrimSpace(u.ID)
	u.Email = strings.TrimSpace(u.Email)
	if u.ID == "" || u.Email == "" {
		return nil
	}
	return &u
}

func (s *SessionService) SignUp(ctx context.Context, visitorID string, req models.SignUpRequest) models.AuthOutcome {
	data, err := s.Backend.SignUp(ctx, req)
	return s.finishAuth(ctx, visitorID, data, err)
}

func (s *SessionService) SignIn(ctx context.Context, visitorID string, req models.SignInRequest) models.AuthOutcome {
	data, err := s.Backend.SignIn(ctx, req)
	return s.finishAuth(ctx, visitorID, data, err)
}

func (s *SessionService) VerifyOTP(ctx context.Context, visitorID string, req models.VerifyOTPRequest) models.AuthOutcome {
	data, err := s.Backend.VerifyOTP(ctx, req)
	return s.finishAuth(ctx, visitorID, data, err)
}

// ResendOTP enforces a fixed client-side cooldown per visitor+email before
// asking the backend for a fresh code. Plain deadline, no backoff.
func (s *SessionService) ResendOTP(ctx context.Context, visitorID string, req models.ResendOTPRequest) models.AuthOutcome {
	key := visitorID + "|" + strings.ToLower(strings.TrimSpace(req.Email))
	now := s.Now()

	s.mu.Lock()
	due, waiting := s.resendDue[key]
	if waiting && now.Before(due) {
		remaining := int(due.Sub(now).Round(time.Second).Seconds())
		if remaining < 1 {
			remaining = 1
		}
		s.mu.Unlock()
		return models.AuthOutcome{
			OK:         false,
			Message:    fmt.Sprintf("Please wait %d seconds before requesting another code", remaining),
			RetryAfter: remaining,
		}
	}
	s.mu.Unlock()

	data, err := s.Backend.ResendOTP(ctx, req)
	if err != nil {
		return models.AuthOutcome{OK: false, Message: publicMessage(err)}
	}

	s.mu.Lock()
	s.resendDue[key] = now.Add(s.ResendCooldown)
	s.mu.Unlock()

	payload := authPayload(data)
	msg := firstString(payload, "message", "msg")
	if msg == "" {
		msg = "A new code has been sent"
	}
	return models.AuthOutcome{
		OK:             true,
		Next:           "otp",
		VerificationID: firstString(payload, "verificationId", "verification_id"),
		Message:        msg,
	}
}

// Logout clears in-memory and persisted state unconditionally.
func (s *SessionService) Logout(ctx context.Context, visitorID string) {
	if err := s.Store.Delete(ctx, visitorID); err != nil {
		utils.Logger.WithError(err).Warn("session delete failed")
	}
}

// finishAuth interprets an auth response. A derivable user means the session
// is established and persisted; a 2xx without one means verification is
// pending; an error surfaces the backend message verbatim when it sent one.
func (s *SessionService) finishAuth(ctx context.Context, visitorID string, data []byte, err error) models.AuthOutcome {
	if err != nil {
		return models.AuthOutcome{OK: false, Message: publicMessage(err)}
	}

	payload := authPayload(data)
	user := normalizeAuthUser(payload)
	if user != nil {
		raw, merr := json.Marshal(user)
		if merr == nil {
			merr = s.Store.Put(ctx, visitorID, raw)
		}
		if merr != nil {
			utils.Logger.WithError(merr).Error("session persist failed")
			return models.AuthOutcome{OK: false, Message: genericAuthFailure}
		}
		return models.AuthOutcome{
			OK:      true,
			User:    user,
			Message: firstString(payload, "message", "msg"),
		}
	}

	msg := firstString(payload, "message", "msg")
	if msg == "" {
		msg = "Verification required"
	}
	return models.AuthOutcome{
		OK:             true,
		Next:           "otp",
		VerificationID: firstString(payload, "verificationId", "verification_id"),
		Message:        msg,
	}
}

func publicMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "failed to fetch"
}

// authPayload flattens the response for probing: fields under a "data"
// wrapper shadow the top level.
func authPayload(data []byte) map[string]json.RawMessage {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil
	}
	if raw, ok := top["data"]; ok {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err == nil {
			merged := make(map[string]json.RawMessage, len(top)+len(nested))
			for k, v := range top {
				merged[k] = v
			}
			for k, v := range nested {
				merged[k] = v
			}
			return merged
		}
	}
	return top
}

func firstString(payload map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}
