package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName holds the signed anonymous visitor identity. The visitor ID
// keys the referral slot, so it has to survive long anonymous browsing.
const CookieName = "dx_visitor"

// CookieMaxAge is one year, matching the lifetime of a stored referral slot
// at its longest configuration.
const CookieMaxAge = 365 * 24 * 3600

// Manager mints and verifies visitor identity tokens.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue creates a fresh visitor ID and its signed cookie value.
func (m *Manager) Issue() (id, token string, err error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	id = hex.EncodeToString(raw)

	now := time.Now()
	claims := jwt.MapClaims{
		"vid": id,
		"iat": now.Unix(),
		"exp": now.Add(CookieMaxAge * time.Second).Unix(),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", err
	}
	return id, token, nil
}

// Verify extracts the visitor ID from a cookie value. Tampered, expired or
// malformed tokens fail, which makes the caller issue a new identity.
func (m *Manager) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid visitor token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	id, ok := claims["vid"].(string)
	if !ok || id == "" {
		return "", errors.New("visitor id not found")
	}
	return id, nil
}
