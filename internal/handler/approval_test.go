package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/listingdesk/listingdesk/internal/auth"
	"github.com/listingdesk/listingdesk/internal/authz"
	"github.com/listingdesk/listingdesk/internal/domain"
	"github.com/listingdesk/listingdesk/internal/mocks"
	"github.com/listingdesk/listingdesk/internal/model"
	"github.com/listingdesk/listingdesk/internal/service"
)

type approvalHandlerFixture struct {
	orgRepo *mocks.MockOrganizationRepositoryIface
	router  http.Handler
}

func newApprovalHandlerFixture(t *testing.T) *approvalHandlerFixture {
	ctrl := gomock.NewController(t)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	historyRepo := mocks.NewMockApprovalHistoryRepositoryIface(ctrl)

	h := NewApprovalHandler(service.NewApprovalService(orgRepo, userRepo, historyRepo, nil))

	r := chi.NewRouter()
	r.Put("/admin/organizations/{orgID}/status", h.UpdateStatusHandler)

	return &approvalHandlerFixture{orgRepo: orgRepo, router: r}
}

func adminSessionCtx(req *http.Request) *http.Request {
	sess := &auth.Session{
		UserID: uuid.New(),
		Role:   authz.RoleAdmin,
		Status: model.UserStatusActive,
	}
	return req.WithContext(auth.WithSession(req.Context(), sess))
}

func statusRequest(t *testing.T, orgID uuid.UUID, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/admin/organizations/"+orgID.String()+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return adminSessionCtx(req)
}

func TestUpdateStatusHandler(t *testing.T) {
	t.Run("approves a pending organization", func(t *testing.T) {
		f := newApprovalHandlerFixture(t)
		org := &model.Organization{
			ID:          uuid.New(),
			Name:        "Acme Capital",
			OrgType:     model.OrgTypeIssuer,
			Status:      model.OrgStatusPending,
			CreatedByID: uuid.New(),
		}

		f.orgRepo.EXPECT().FindByIDAndType(gomock.Any(), org.ID, model.OrgTypeIssuer).Return(org, nil)
		f.orgRepo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, statusRequest(t, org.ID, map[string]string{
			"organization_type": "issuer",
			"new_status":        "active",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp OrganizationResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Ok)
		assert.Equal(t, model.OrgStatusActive, resp.Organization.Status)
	})

	t.Run("suspension without reason is a bad request", func(t *testing.T) {
		f := newApprovalHandlerFixture(t)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, statusRequest(t, uuid.New(), map[string]string{
			"organization_type": "issuer",
			"new_status":        "suspended",
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown organization is not found", func(t *testing.T) {
		f := newApprovalHandlerFixture(t)
		orgID := uuid.New()

		f.orgRepo.EXPECT().FindByIDAndType(gomock.Any(), orgID, model.OrgTypeExchange).
			Return(nil, domain.ErrOrganizationNotFound)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, statusRequest(t, orgID, map[string]string{
			"organization_type": "exchange",
			"new_status":        "active",
		}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("partial write surfaces as conflict", func(t *testing.T) {
		f := newApprovalHandlerFixture(t)
		org := &model.Organization{
			ID:          uuid.New(),
			OrgType:     model.OrgTypeSponsor,
			Status:      model.OrgStatusPending,
			CreatedByID: uuid.New(),
		}

		f.orgRepo.EXPECT().FindByIDAndType(gomock.Any(), org.ID, model.OrgTypeSponsor).Return(org, nil)
		f.orgRepo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: appending approval history", domain.ErrPartialWrite))

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, statusRequest(t, org.ID, map[string]string{
			"organization_type": "sponsor",
			"new_status":        "active",
		}))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("no session is unauthorized", func(t *testing.T) {
		f := newApprovalHandlerFixture(t)

		req := httptest.NewRequest(http.MethodPut, "/admin/organizations/"+uuid.NewString()+"/status", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
