package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager mints and resolves the opaque value stored in the session
// cookie. The value is an HS256-signed token embedding the username, so
// the client can neither read nor forge it. No expiry is modeled: a
// minted value stays valid until logout clears it client-side.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

func (m *Manager) Mint(username string) (string, error) {
	claims := jwt.MapClaims{
		"usr": username,
		"iat": time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Resolve never fails: anything that is not a well-formed value signed
// by this server reads as "no identity".
func (m *Manager) Resolve(value string) (string, bool) {
	if value == "" {
		return "", false
	}

	parsed, err := jwt.Parse(value, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	username, _ := mapClaims["usr"].(string)
	if username == "" {
		return "", false
	}

	return username, true
}
