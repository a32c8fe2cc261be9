package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the session token payload.
type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Maker issues and validates signed session tokens. Tokens are
// self-contained and non-revocable; expiry is the only termination.
type Maker struct {
	secret []byte
	ttl    time.Duration
}

// NewMaker creates a Maker with the given signing secret and token lifetime.
func NewMaker(secret string, ttl time.Duration) *Maker {
	return &Maker{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate mints a fresh token for the given user.
func (m *Maker) Generate(userID uint64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse validates signature and expiry, returning the claims.
func (m *Maker) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
