package models

// SessionUser is the canonical authenticated identity for one visitor.
// ID and Email are always non-empty trimmed strings when the entity exists;
// absence of the entity means "logged out".
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Token string `json:"token,omitempty"`
}

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=5,max=20"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,min=4,max=8,numeric"`
	Flow  string `json:"flow" validate:"omitempty,oneof=signup login"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Flow  string `json:"flow" validate:"omitempty,oneof=signup login"`
}

// AuthOutcome is the tagged result of a sign-up/sign-in/verify call.
// OK with empty Next means a session was established and persisted.
// OK with Next=="otp" means the caller must collect a code and verify.
type AuthOutcome struct {
	OK             bool         `json:"ok"`
	Next           string       `json:"next,omitempty"`
	VerificationID string       `json:"verification_id,omitempty"`
	Message        string       `json:"message,omitempty"`
	RetryAfter     int          `json:"retry_after,omitempty"`
	User           *SessionUser `json:"user,omitempty"`
}
