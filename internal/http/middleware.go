package http

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const credentialKey contextKey = "credential"

// BearerCredentialMiddleware lifts the session bearer token from the
// Authorization header into the request context. The terminal never issues
// or validates tokens itself; it only forwards them to the backend, which
// answers with a 401/403 detail if the session is bad.
func BearerCredentialMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			r = r.WithContext(context.WithValue(r.Context(), credentialKey, token))
		}
		next.ServeHTTP(w, r)
	})
}

func credentialFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(credentialKey).(string); ok {
		return token
	}
	return ""
}
