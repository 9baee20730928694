package notify

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// FieldName is the hidden form field carrying the token.
const FieldName = "_token"

// DefaultTokenTTL bounds how long a rendered form stays submittable.
const DefaultTokenTTL = 2 * time.Hour

var (
	ErrTokenMissing = errors.New("form token is missing")
	ErrWrongForm    = errors.New("form token belongs to another form")
)

type formClaims struct {
	Form string `json:"form"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies per-form submission tokens. Each token has
// its own id so a double post of one rendered form can be detected.
type Tokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokens creates a token issuer signing with key.
func NewTokens(key []byte, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{key: key, ttl: ttl, now: time.Now}
}

// Issue returns a fresh token for form.
func (t *Tokens) Issue(form string) (string, error) {
	now := t.now()
	claims := &formClaims{
		Form: form,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign form token: %w", err)
	}
	return signed, nil
}

// Verify checks raw was issued for form and returns its id.
func (t *Tokens) Verify(raw, form string) (string, error) {
	if raw == "" {
		return "", ErrTokenMissing
	}
	claims := &formClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("invalid form token: %w", err)
	}
	if claims.Form != form {
		return "", ErrWrongForm
	}
	return claims.ID, nil
}
