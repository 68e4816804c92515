package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type adminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Auth gates every provisioning route behind a verified admin JWT. The
// token is issued by the surrounding CRUD layer; this service only
// verifies it and requires role "admin".
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := extractBearer(r)
			if tok == "" {
				unauthorized(w)
				return
			}

			claims := &adminClaims{}
			parsed, err := jwt.ParseWithClaims(tok, claims, func(_ *jwt.Token) (any, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !parsed.Valid || claims.Role != "admin" {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdminSubject, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearer(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return auth[7:]
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, `{"title":"Unauthorized","status":401,"detail":"missing or invalid admin credentials"}`, http.StatusUnauthorized)
}
