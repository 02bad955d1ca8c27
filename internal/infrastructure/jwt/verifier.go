package jwtinfra

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ManyRagDev/brincar-educando-2/internal/config"
)

// Claims holds the fields this API reads from the identity provider's
// access tokens. The provider owns issuance; this package only verifies.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID returns the token subject (the provider's user identifier).
func (c *Claims) UserID() string { return c.Subject }

// Verifier validates HS256 access tokens issued by the hosted identity provider.
type Verifier struct {
	secret []byte
}

func NewVerifier(cfg *config.Config) (*Verifier, error) {
	if cfg.AuthJWTSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET not configured")
	}
	return &Verifier{secret: []byte(cfg.AuthJWTSecret)}, nil
}

func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, errors.New("token missing subject")
	}
	return claims, nil
}
