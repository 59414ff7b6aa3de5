package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expiryMargin guards against clock skew between client and server.
const expiryMargin = 30 * time.Second

// TokenExpired reports whether the access token is expired (or will expire
// within the safety margin). The token is decoded without signature
// verification: the client only needs the exp claim, the server remains the
// authority on validity.
func TokenExpired(token string) bool {
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return time.Now().Add(expiryMargin).After(exp.Time)
}

// TokenSubject returns the sub claim of the access token, or "" when the
// token cannot be decoded.
func TokenSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
