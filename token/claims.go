package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt reports the exp claim of a JWT credential without verifying its
// signature. Verification is the resource server's job; the store only needs
// the expiry to size a TTL. Returns false for non-JWT values or tokens
// without an exp claim.
func ExpiresAt(raw string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
