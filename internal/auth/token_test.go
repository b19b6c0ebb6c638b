package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listingdesk/listingdesk/internal/authz"
	"github.com/listingdesk/listingdesk/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	orgID := uuid.New()

	user := &model.User{
		ID:             uuid.New(),
		Email:          "issuer@example.com",
		Role:           authz.RoleIssuer,
		Status:         model.UserStatusActive,
		OrganizationID: &orgID,
		IsOrgAdmin:     true,
	}

	token, err := tm.Generate(user)
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)

	sess, err := claims.Session()
	require.NoError(t, err)

	assert.Equal(t, user.ID, sess.UserID)
	assert.Equal(t, user.Email, sess.Email)
	assert.Equal(t, authz.RoleIssuer, sess.Role)
	assert.Equal(t, model.UserStatusActive, sess.Status)
	require.NotNil(t, sess.OrganizationID)
	assert.Equal(t, orgID, *sess.OrganizationID)
	assert.True(t, sess.IsOrgAdmin)
}

func TestTokenWithoutOrganization(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	user := &model.User{
		ID:     uuid.New(),
		Email:  "admin@example.com",
		Role:   authz.RoleAdmin,
		Status: model.UserStatusActive,
	}

	token, err := tm.Generate(user)
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)

	sess, err := claims.Session()
	require.NoError(t, err)
	assert.Nil(t, sess.OrganizationID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := tm.Generate(&model.User{ID: uuid.New(), Status: model.UserStatusActive})
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate(&model.User{ID: uuid.New(), Status: model.UserStatusActive})
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}
