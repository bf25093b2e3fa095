package services

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt"

	"estateFront/internal/models"
)

// normalizeAuthUser derives a SessionUser from a heterogeneous auth payload.
// Extractors run in order, first match wins: an explicit user object, then
// id/email-shaped top-level fields, then a best-effort decode of the bearer
// token payload. nil means no identity could be derived.
func normalizeAuthUser(payload map[string]json.RawMessage) *models.SessionUser {
	if payload == nil {
		return nil
	}

	token := firstString(payload, "token", "accessToken", "access_token", "jwt")

	extractors := []func(map[string]json.RawMessage) *models.SessionUser{
		userFromObject,
		userFromTopLevel,
	}
	for _, extract := range extractors {
		if user := extract(payload); user != nil {
			if user.Token == "" {
				user.Token = token
			}
			return user
		}
	}

	if user := userFromToken(token); user != nil {
		user.Token = token
		return user
	}
	return nil
}

type userPayload struct {
	ID      flexValue `json:"id"`
	MongoID flexValue `json:"_id"`
	UserID  flexValue `json:"userId"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Token   string    `json:"token"`
}

func (p userPayload) toUser() *models.SessionUser {
	id := strings.TrimSpace(p.ID.String())
	if id == "" {
		id = strings.TrimSpace(p.MongoID.String())
	}
	if id == "" {
		id = strings.TrimSpace(p.UserID.String())
	}
	email := strings.TrimSpace(p.Email)
	if id == "" || email == "" {
		return nil
	}
	return &models.SessionUser{
		ID:    id,
		Email: email,
		Name:  strings.TrimSpace(p.Name),
		Phone: strings.TrimSpace(p.Phone),
		Token: strings.TrimSpace(p.Token),
	}
}

func userFromObject(payload map[string]json.RawMessage) *models.SessionUser {
	raw, ok := payload["user"]
	if !ok {
		return nil
	}
	var p userPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return p.toUser()
}

func userFromTopLevel(payload map[string]json.RawMessage) *models.SessionUser {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var p userPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return p.toUser()
}

// userFromToken peeks at the middle segment of a three-part token.
// Best-effort, unverified, display-only: never an input to authorization
// decisions. The backend validates the token on every authenticated call.
func userFromToken(token string) *models.SessionUser {
	if token == "" || strings.Count(token, ".") != 2 {
		return nil
	}
	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	id := claimString(claims, "id", "userId", "_id", "sub")
	email := claimString(claims, "email")
	if id == "" || email == "" {
		return nil
	}
	return &models.SessionUser{
		ID:    id,
		Email: email,
		Name:  claimString(claims, "name"),
		Phone: claimString(claims, "phone"),
	}
}

func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		switch v := claims[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// flexValue tolerates ids sent as JSON numbers or strings.
type flexValue string

func (f *flexValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexValue(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		// objects/arrays do not make ids
		*f = ""
		return nil
	}
	*f = flexValue(string(b))
	return nil
}

func (f flexValue) String() string {
	return string(f)
}
