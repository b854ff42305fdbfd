// Package auth inspects session tokens issued by the remote auth endpoint.
// The client holds no signing key, so tokens are decoded but never verified.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a token is not a decodable JWT.
var ErrMalformedToken = errors.New("malformed token")

// Claims is the subset of the token payload the client reads.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ParseClaims decodes the token payload without checking the signature.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	return claims, nil
}

// ExpiresAt returns the exp claim. ok is false for opaque tokens and for
// tokens without an expiry.
func ExpiresAt(token string) (exp time.Time, ok bool) {
	claims, err := ParseClaims(token)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the token carries an expiry that is not after now.
// Tokens without a readable expiry never expire on the client.
func Expired(token string, now time.Time) bool {
	exp, ok := ExpiresAt(token)
	return ok && !now.Before(exp)
}
