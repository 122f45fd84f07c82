package device

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"metroems/internal/app/errors"
)

// Operator describes who the bearer token was issued to
type Operator struct {
	Name      string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token has passed its expiry
func (o Operator) Expired(now time.Time) bool {
	return !o.ExpiresAt.IsZero() && now.After(o.ExpiresAt)
}

// ParseOperator reads the claims of a bearer token without verifying its signature
func ParseOperator(token string) (Operator, error) {
	if token == "" {
		return Operator{}, errors.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Operator{}, fmt.Errorf("%w: %w", errors.ErrInvalidToken, err)
	}

	op := Operator{}

	if name, ok := claims["username"].(string); ok {
		op.Name = name
	}

	if op.Name == "" {
		if sub, err := claims.GetSubject(); err == nil {
			op.Name = sub
		}
	}

	if role, ok := claims["role"].(string); ok {
		op.Role = role
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		op.ExpiresAt = exp.Time
	}

	return op, nil
}
