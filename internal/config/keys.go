package config

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// MinSecretLength is the shortest session secret accepted.
const MinSecretLength = 16

// Keys holds the signing keys derived from the session secret.
type Keys struct {
	Flash []byte
	CSRF  []byte
}

// DeriveKeys expands the session secret into one key per purpose so a
// flash cookie can never be replayed as a CSRF token and vice versa.
func DeriveKeys(secret string) (*Keys, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d characters", MinSecretLength)
	}

	flash, err := expand(secret, "selam-web flash v1")
	if err != nil {
		return nil, err
	}
	csrf, err := expand(secret, "selam-web csrf v1")
	if err != nil {
		return nil, err
	}
	return &Keys{Flash: flash, CSRF: csrf}, nil
}

func expand(secret, info string) ([]byte, error) {
	key := make([]byte, 32)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive %s key: %w", info, err)
	}
	return key, nil
}

// RandomSecret returns a hex secret for runs without SESSION_SECRET.
// Cookies signed with it do not survive a restart.
func RandomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
