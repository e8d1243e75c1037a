package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"wheel_backend/pkg/token"
)

// NewAdminAuth - проверка access токена администратора.
// Ожидает заголовок Authorization: Bearer <jwt>
func NewAdminAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			adminID, err := strconv.Atoi(claims.ID)
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
