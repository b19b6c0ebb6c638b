package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listingdesk/listingdesk/internal/audit"
	"github.com/listingdesk/listingdesk/internal/auth"
	"github.com/listingdesk/listingdesk/internal/authz"
	"github.com/listingdesk/listingdesk/internal/guard"
	"github.com/listingdesk/listingdesk/internal/model"
)

func guardedRouter(requirement guard.Route) http.Handler {
	r := chi.NewRouter()
	r.Route("/organizations/{orgID}", func(r chi.Router) {
		r.Use(RequireAccess(&audit.NoOpLogger{}, requirement))
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func bearerFor(t *testing.T, tm *auth.TokenManager, user *model.User) string {
	t.Helper()
	token, err := tm.Generate(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeGuardResponse(t *testing.T, rec *httptest.ResponseRecorder) guardResponse {
	t.Helper()
	var resp guardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRequireAccessWithoutSession(t *testing.T) {
	router := guardedRouter(guard.Route{})

	req := httptest.NewRequest(http.MethodGet, "/organizations/"+uuid.NewString()+"/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(guard.RedirectSignIn), decodeGuardResponse(t, rec).Redirect)
}

func TestRequireAccessPendingUser(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	router := chi.NewRouter()
	router.Use(SessionLoader(tm))
	router.With(RequireAccess(&audit.NoOpLogger{}, guard.Route{})).Get("/home", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Authorization", bearerFor(t, tm, &model.User{
		ID:     uuid.New(),
		Role:   authz.RoleIssuer,
		Status: model.UserStatusPending,
	}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, string(guard.RedirectPendingApproval), decodeGuardResponse(t, rec).Redirect)
}

func TestRequireAccessOrganizationScope(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	ownOrg := uuid.New()
	otherOrg := uuid.New()

	newRouter := func() http.Handler {
		r := chi.NewRouter()
		r.Use(SessionLoader(tm))
		r.Route("/organizations/{orgID}", func(r chi.Router) {
			r.Use(RequireAccess(&audit.NoOpLogger{}, guard.Route{
				AllowedRoles: []authz.Role{authz.RoleAdmin, authz.RoleIssuer},
			}))
			r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
		return r
	}

	issuer := &model.User{
		ID:             uuid.New(),
		Role:           authz.RoleIssuer,
		Status:         model.UserStatusActive,
		OrganizationID: &ownOrg,
	}

	t.Run("issuer reaches own organization", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/organizations/"+ownOrg.String()+"/", nil)
		req.Header.Set("Authorization", bearerFor(t, tm, issuer))
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("issuer denied on another organization", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/organizations/"+otherOrg.String()+"/", nil)
		req.Header.Set("Authorization", bearerFor(t, tm, issuer))
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, string(guard.RedirectAccessDenied), decodeGuardResponse(t, rec).Redirect)
	})

	t.Run("platform admin reaches any organization", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/organizations/"+otherOrg.String()+"/", nil)
		req.Header.Set("Authorization", bearerFor(t, tm, &model.User{
			ID:     uuid.New(),
			Role:   authz.RoleAdmin,
			Status: model.UserStatusActive,
		}))
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed organization id is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/organizations/not-a-uuid/", nil)
		req.Header.Set("Authorization", bearerFor(t, tm, issuer))
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionLoaderToleratesBadTokens(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	var sawSession bool
	router := chi.NewRouter()
	router.Use(SessionLoader(tm))
	router.Get("/probe", func(w http.ResponseWriter, r *http.Request) {
		sawSession = auth.SessionFrom(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})

	for _, header := range []string{"", "Bearer garbage", "Basic abc123"} {
		sawSession = false
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "header %q", header)
		assert.False(t, sawSession, "header %q should not yield a session", header)
	}
}
