package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// AuthClaims — распарсенные утверждения access-токена.
type AuthClaims struct {
	Username string
	UserID   int64
	Role     string
	ClientID *int64
}

// GetClaimsFromContext достаёт утверждения пользователя из контекста запроса.
func GetClaimsFromContext(ctx context.Context) (AuthClaims, bool) {
	c, ok := ctx.Value(claimsKey).(AuthClaims)
	return c, ok
}

// WithAuth проверяет bearer-токен на всех маршрутах, кроме /auth/*.
// Отсутствующий, просроченный или неподписанный токен — 401 с JSON-телом:
// именно этот ответ запускает refresh-конвейер клиента.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/auth/") {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing bearer token")
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				unauthorized(w, "invalid or expired token")
				return
			}
			if exp, err := claims.GetExpirationTime(); err != nil || exp == nil || time.Now().After(exp.Time) {
				unauthorized(w, "invalid or expired token")
				return
			}

			ac := AuthClaims{}
			ac.Username, _ = claims.GetSubject()
			if uid, ok := claims["uid"].(float64); ok {
				ac.UserID = int64(uid)
			}
			if role, ok := claims["role"].(string); ok {
				ac.Role = role
			}
			if cid, ok := claims["clientId"].(float64); ok {
				id := int64(cid)
				ac.ClientID = &id
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, ac)))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
