package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/totegamma/campsite/core"
)

type claims struct {
	Role  string `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Sign creates a session token the same way the identity provider does
func Sign(secret string, c core.SessionClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role:  c.Role,
		Name:  c.Name,
		Email: c.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.Subject,
			ID:        c.JTI,
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString([]byte(secret))
}

// Parse checks signature and expiration of a session token
func Parse(secret, token string) (core.SessionClaims, error) {
	if secret == "" {
		return core.SessionClaims{}, fmt.Errorf("session secret is not configured")
	}

	parsed, err := jwt.ParseWithClaims(
		token,
		&claims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return core.SessionClaims{}, err
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return core.SessionClaims{}, fmt.Errorf("invalid session claims")
	}

	if c.Subject == "" {
		return core.SessionClaims{}, fmt.Errorf("session has no subject")
	}

	return core.SessionClaims{
		Subject:   c.Subject,
		Role:      c.Role,
		Name:      c.Name,
		Email:     c.Email,
		JTI:       c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
