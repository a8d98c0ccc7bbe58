// Package auth inspects bearer tokens on the client side. The server is
// the only authority on token validity; the client just peeks at the
// expiry claim to warn before issuing doomed requests.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry returns the expiry of a JWT bearer token without verifying
// its signature (the client has no key material to verify with). Opaque
// non-JWT tokens and tokens without an exp claim return ok=false.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether a JWT token's exp claim has passed. Tokens the
// client cannot decode are never reported as expired; presence stays the
// deciding signal, exactly as the server sees it.
func Expired(token string, now time.Time) bool {
	exp, ok := TokenExpiry(token)
	return ok && now.After(exp)
}
