// internal/guard/guard.go

// Package guard makes the per-request authorization decision: given the
// caller's session and the requirements of the requested route, it yields
// allow or deny plus the redirect the presentation layer should render.
// Decisions are stateless and recomputed on every evaluation.
package guard

import (
	"github.com/google/uuid"

	"github.com/listingdesk/listingdesk/internal/auth"
	"github.com/listingdesk/listingdesk/internal/authz"
	"github.com/listingdesk/listingdesk/internal/model"
)

// Outcome is the terminal state of one guard evaluation.
type Outcome string

const (
	OutcomeAuthorized Outcome = "authorized"
	OutcomeDenied     Outcome = "denied"
)

// Redirect tells the caller where to send a denied request.
type Redirect string

const (
	RedirectNone            Redirect = ""
	RedirectSignIn          Redirect = "sign_in"
	RedirectPendingApproval Redirect = "pending_approval"
	RedirectAccessDenied    Redirect = "access_denied"
)

// Route describes what the requested path demands. An empty AllowedRoles
// list means any role may enter. OrganizationID is set when the path embeds
// an organization scope segment.
type Route struct {
	Path           string
	AllowedRoles   []authz.Role
	RequiredPerms  []authz.Permission
	OrganizationID *uuid.UUID
}

// Decision is the result of one evaluation.
type Decision struct {
	Outcome  Outcome
	Redirect Redirect
}

func (d Decision) Authorized() bool {
	return d.Outcome == OutcomeAuthorized
}

var (
	authorized    = Decision{Outcome: OutcomeAuthorized}
	denySignIn    = Decision{Outcome: OutcomeDenied, Redirect: RedirectSignIn}
	denyPending   = Decision{Outcome: OutcomeDenied, Redirect: RedirectPendingApproval}
	denyForbidden = Decision{Outcome: OutcomeDenied, Redirect: RedirectAccessDenied}
)

// Evaluate decides access for one request. No session redirects to sign-in;
// a non-active user lands on the holding page whether pending or suspended;
// an active user must pass the role allow-list, the permission requirement,
// and the organization scope check. Platform admins bypass org scoping only.
func Evaluate(sess *auth.Session, route Route) Decision {
	if sess == nil {
		return denySignIn
	}

	if sess.Status != model.UserStatusActive {
		return denyPending
	}

	if !roleAllowed(sess.Role, route.AllowedRoles) {
		return denyForbidden
	}

	if !authz.CanAccessFeature(sess.Role, route.RequiredPerms) {
		return denyForbidden
	}

	if !orgScopeAllowed(sess, route.OrganizationID) {
		return denyForbidden
	}

	return authorized
}

func roleAllowed(role authz.Role, allowed []authz.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func orgScopeAllowed(sess *auth.Session, routeOrg *uuid.UUID) bool {
	if routeOrg == nil {
		return true
	}
	if sess.Role.IsPlatformAdmin() {
		return true
	}
	return sess.OrganizationID != nil && *sess.OrganizationID == *routeOrg
}
