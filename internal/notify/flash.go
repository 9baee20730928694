package notify

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the flash cookie's name.
const CookieName = "selam_flash"

// DefaultTTL is how long a flash survives when none is configured.
const DefaultTTL = time.Minute

type flashClaims struct {
	Notice Notice `json:"notice"`
	jwt.RegisteredClaims
}

// Flasher stores a notice in a signed cookie for the next page view.
type Flasher struct {
	key    []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewFlasher creates a flasher signing with key.
func NewFlasher(key []byte, ttl time.Duration, secure bool) *Flasher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Flasher{key: key, ttl: ttl, secure: secure, now: time.Now}
}

// Encode signs a notice into a token.
func (f *Flasher) Encode(n Notice) (string, error) {
	now := f.now()
	claims := &flashClaims{
		Notice: n,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(f.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(f.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign flash: %w", err)
	}
	return signed, nil
}

// Decode verifies a token and returns its notice.
func (f *Flasher) Decode(raw string) (Notice, error) {
	if raw == "" {
		return Notice{}, errors.New("flash token is empty")
	}
	claims := &flashClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, f.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(f.now),
	)
	if err != nil {
		return Notice{}, fmt.Errorf("invalid flash: %w", err)
	}
	return claims.Notice, nil
}

func (f *Flasher) keyFunc(*jwt.Token) (interface{}, error) {
	return f.key, nil
}

// Set stores n for the next request.
func (f *Flasher) Set(w http.ResponseWriter, n Notice) error {
	signed, err := f.Encode(n)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(f.ttl / time.Second),
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending notice, if any, and clears the cookie. Expired
// or tampered cookies are dropped silently.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) (*Notice, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})

	n, err := f.Decode(c.Value)
	if err != nil {
		log.Printf("[notify] dropping flash: %v", err)
		return nil, false
	}
	return &n, true
}
