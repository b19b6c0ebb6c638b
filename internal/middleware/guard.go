// internal/middleware/guard.go
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/listingdesk/listingdesk/internal/audit"
	"github.com/listingdesk/listingdesk/internal/auth"
	"github.com/listingdesk/listingdesk/internal/guard"
	"github.com/listingdesk/listingdesk/internal/obs"
)

// OrgIDParam is the chi URL parameter naming the organization scope of a
// path, e.g. /api/organizations/{orgID}/....
const OrgIDParam = "orgID"

type guardResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// RequireAccess recomputes the route guard decision on every request. The
// requirement describes the static demands of the route group; the
// organization scope is pulled from the URL per request. Denied requests
// answer with the redirect signal the SSR front end turns into a real
// redirect.
func RequireAccess(auditLog audit.Logger, requirement guard.Route) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := requirement
			route.Path = r.URL.Path

			if raw := chi.URLParam(r, OrgIDParam); raw != "" {
				orgID, err := uuid.Parse(raw)
				if err != nil {
					respondWithError(w, http.StatusBadRequest, "Invalid organization id")
					return
				}
				route.OrganizationID = &orgID
			}

			sess := auth.SessionFrom(r.Context())
			decision := guard.Evaluate(sess, route)

			obs.ObserveGuardDecision(string(decision.Outcome), string(decision.Redirect))
			auditLog.LogGuardDecision(r.Context(), sess, route, decision)

			if !decision.Authorized() {
				code := http.StatusForbidden
				if decision.Redirect == guard.RedirectSignIn {
					code = http.StatusUnauthorized
				}
				respondWithJSON(w, code, guardResponse{
					Error:    "access denied",
					Redirect: string(decision.Redirect),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
