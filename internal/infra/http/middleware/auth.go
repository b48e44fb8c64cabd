package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// TokenValidator mirrors the token gateway's validation side: a bad token is
// a normal unauthenticated outcome, not an error.
type TokenValidator interface {
	Validate(token string) (subject string, ok bool)
}

type contextKey string

const subjectKey contextKey = "auth.subject"

// Auth guards a route group with Bearer-token authentication and stashes the
// token subject (the operator email) in the request context.
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				unauthorized(w)
				return
			}

			subject, ok := tokens.Validate(raw)
			if !ok {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the authenticated operator email, if any.
func Subject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":  "unauthorized",
		"detail": "missing or invalid bearer token",
	})
}
