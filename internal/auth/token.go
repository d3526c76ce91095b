// Package auth issues and verifies the signed session tokens that carry a
// principal's identity between requests. Tokens are stateless: logout only
// clears the cookie, a token stays valid until its expiry.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"gavel/internal/model"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, expired, or malformed claims. Callers treat them all the same.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims binds a principal id and role to the standard JWT claims.
type Claims struct {
	PrincipalID string     `json:"id"`
	Role        model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 session tokens with an absolute TTL.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

func NewTokenManager(secret string, ttl time.Duration, clock clockwork.Clock) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, clock: clock}
}

// Issue signs a token over {id, role} expiring ttl from now.
func (m *TokenManager) Issue(principalID string, role model.Role) (string, error) {
	now := m.clock.Now()
	claims := Claims{
		PrincipalID: principalID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded claims.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.clock.Now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.PrincipalID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
