package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseUnverified extracts claims from a session token without checking its
// signature. The server that issued the token is the one that verifies it.
func ParseUnverified(tokenString string) (*Claims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims format")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrMissingSubject
	}

	email, _ := claims["email"].(string)

	var exp int64
	if at, err := claims.GetExpirationTime(); err == nil && at != nil {
		exp = at.Unix()
	}

	return &Claims{
		Sub:   sub,
		Email: email,
		Exp:   exp,
	}, nil
}

// Expired reports whether the token carried an exp claim that is past.
func (c Claims) Expired(now time.Time) bool {
	return c.Exp > 0 && now.Unix() > c.Exp
}
