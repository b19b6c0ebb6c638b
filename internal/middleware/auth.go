// internal/middleware/auth.go
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/listingdesk/listingdesk/internal/auth"
)

// SessionLoader validates a Bearer token when one is present and attaches
// the resulting session to the request context. It never rejects: requests
// without a valid session continue with a nil session, and the route guard
// decides what that means for the requested path.
func SessionLoader(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := claims.Session()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
