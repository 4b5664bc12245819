// Package token issues and verifies the signed session tokens carried by
// every authenticated request. Tokens are stateless: there is no server-side
// revocation, expiry is the only invalidation, and the embedded claims are
// trusted for the full lifetime of the token. A user's admin flag can
// therefore go stale until the token expires; that is a deliberate trust
// boundary, not an oversight.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tayo/teamwork-backend/internal/domain"
)

type Claims struct {
	UserID    uint   `json:"userId"`
	FirstName string `json:"firstName"`
	Admin     bool   `json:"admin"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		FirstName: user.FirstName,
		Admin:     user.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify returns the embedded claims for a well-formed, correctly signed and
// unexpired token. Any failure maps to domain.ErrInvalidToken; an empty token
// maps to domain.ErrNoToken.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, domain.ErrNoToken
	}

	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
