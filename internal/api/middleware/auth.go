package middleware

import (
	"net/http"

	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/response"
)

// AuthCookieValue marks an authenticated browser session.
const AuthCookieValue = "true"

// RequireAuth rejects requests that do not carry the auth cookie.
func RequireAuth(cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value != AuthCookieValue {
				response.FromError(r.Context(), w, entity.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
