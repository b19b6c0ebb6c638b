package guard_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/listingdesk/listingdesk/internal/auth"
	"github.com/listingdesk/listingdesk/internal/authz"
	"github.com/listingdesk/listingdesk/internal/guard"
	"github.com/listingdesk/listingdesk/internal/model"
)

func activeSession(role authz.Role, orgID *uuid.UUID) *auth.Session {
	return &auth.Session{
		UserID:         uuid.New(),
		Email:          "user@example.com",
		Role:           role,
		Status:         model.UserStatusActive,
		OrganizationID: orgID,
	}
}

func TestEvaluateUnauthenticated(t *testing.T) {
	decision := guard.Evaluate(nil, guard.Route{Path: "/dashboard"})

	assert.Equal(t, guard.OutcomeDenied, decision.Outcome)
	assert.Equal(t, guard.RedirectSignIn, decision.Redirect)
}

func TestEvaluateNonActiveStatus(t *testing.T) {
	// Pending and suspended both land on the holding page, regardless of
	// role or allow-list.
	for _, status := range []model.UserStatus{model.UserStatusPending, model.UserStatusSuspended} {
		sess := activeSession(authz.RoleAdmin, nil)
		sess.Status = status

		decision := guard.Evaluate(sess, guard.Route{
			Path:         "/admin/approvals",
			AllowedRoles: []authz.Role{authz.RoleAdmin},
		})

		assert.Equal(t, guard.OutcomeDenied, decision.Outcome, "status %s", status)
		assert.Equal(t, guard.RedirectPendingApproval, decision.Redirect, "status %s", status)
	}
}

func TestEvaluateRoleAllowList(t *testing.T) {
	t.Run("empty allow-list admits any role", func(t *testing.T) {
		decision := guard.Evaluate(activeSession(authz.RoleIssuer, nil), guard.Route{Path: "/home"})
		assert.True(t, decision.Authorized())
	})

	t.Run("role outside allow-list is denied", func(t *testing.T) {
		decision := guard.Evaluate(activeSession(authz.RoleIssuer, nil), guard.Route{
			Path:         "/sponsors",
			AllowedRoles: []authz.Role{authz.RoleExchangeSponsor},
		})
		assert.Equal(t, guard.OutcomeDenied, decision.Outcome)
		assert.Equal(t, guard.RedirectAccessDenied, decision.Redirect)
	})
}

func TestEvaluateOrganizationScope(t *testing.T) {
	org1 := uuid.New()
	org2 := uuid.New()

	t.Run("org mismatch denies even when role matches", func(t *testing.T) {
		decision := guard.Evaluate(activeSession(authz.RoleIssuer, &org1), guard.Route{
			Path:           "/organizations/" + org2.String(),
			AllowedRoles:   []authz.Role{authz.RoleIssuer},
			OrganizationID: &org2,
		})
		assert.Equal(t, guard.OutcomeDenied, decision.Outcome)
		assert.Equal(t, guard.RedirectAccessDenied, decision.Redirect)
	})

	t.Run("matching org authorizes", func(t *testing.T) {
		decision := guard.Evaluate(activeSession(authz.RoleIssuer, &org1), guard.Route{
			Path:           "/organizations/" + org1.String(),
			AllowedRoles:   []authz.Role{authz.RoleIssuer},
			OrganizationID: &org1,
		})
		assert.True(t, decision.Authorized())
	})

	t.Run("platform admin bypasses org scoping", func(t *testing.T) {
		decision := guard.Evaluate(activeSession(authz.RoleAdmin, nil), guard.Route{
			Path:           "/organizations/" + org2.String(),
			OrganizationID: &org2,
		})
		assert.True(t, decision.Authorized())
	})

	t.Run("no session org denies scoped path", func(t *testing.T) {
		decision := guard.Evaluate(activeSession(authz.RoleIssuer, nil), guard.Route{
			Path:           "/organizations/" + org1.String(),
			OrganizationID: &org1,
		})
		assert.Equal(t, guard.OutcomeDenied, decision.Outcome)
	})
}

func TestEvaluatePermissionRequirement(t *testing.T) {
	decision := guard.Evaluate(activeSession(authz.RoleExchange, nil), guard.Route{
		Path:          "/documents/upload",
		RequiredPerms: []authz.Permission{authz.PermUploadDocuments},
	})

	assert.Equal(t, guard.OutcomeDenied, decision.Outcome)
	assert.Equal(t, guard.RedirectAccessDenied, decision.Redirect)
}

func TestEvaluateStateless(t *testing.T) {
	// The same inputs always produce the same decision; nothing is cached
	// between evaluations.
	sess := activeSession(authz.RoleIssuer, nil)
	route := guard.Route{Path: "/home"}

	first := guard.Evaluate(sess, route)
	sess.Status = model.UserStatusSuspended
	second := guard.Evaluate(sess, route)

	assert.True(t, first.Authorized())
	assert.Equal(t, guard.OutcomeDenied, second.Outcome)
}
