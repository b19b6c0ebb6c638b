// internal/handler/approval.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/listingdesk/listingdesk/internal/auth"
	"github.com/listingdesk/listingdesk/internal/domain"
	"github.com/listingdesk/listingdesk/internal/model"
	"github.com/listingdesk/listingdesk/internal/service"
)

type ApprovalHandler struct {
	approvalService *service.ApprovalService
}

func NewApprovalHandler(approvalService *service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

type PendingOrganizationsResponse struct {
	BaseResponse
	Organizations []*model.Organization `json:"organizations"`
}

// ListPendingHandler returns the approval queue, oldest first.
func (h *ApprovalHandler) ListPendingHandler(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.approvalService.ListPendingOrganizations(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Listing pending organizations failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, PendingOrganizationsResponse{
		BaseResponse:  BaseResponse{Ok: true},
		Organizations: orgs,
	})
}

type updateStatusRequest struct {
	OrganizationType model.OrganizationType   `json:"organization_type"`
	NewStatus        model.OrganizationStatus `json:"new_status"`
	Reason           *string                  `json:"reason,omitempty"`
}

// UpdateStatusHandler executes one approval transition. Workflow failures
// are retryable by the caller except partial writes, which are flagged for
// manual follow-up.
func (h *ApprovalHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	org, err := h.approvalService.UpdateOrganizationStatus(r.Context(), service.UpdateOrganizationStatusInput{
		OrganizationID:   orgID,
		OrganizationType: req.OrganizationType,
		NewStatus:        req.NewStatus,
		Reason:           req.Reason,
		ActingUserID:     sess.UserID,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Organization status update failed",
			"error", err, "organization_id", orgID, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrOrganizationNotFound):
			respondWithError(w, http.StatusNotFound, "Organization not found")
		case errors.Is(err, domain.ErrMissingReason),
			errors.Is(err, domain.ErrInvalidInput),
			errors.Is(err, domain.ErrInvalidOrgType),
			errors.Is(err, domain.ErrInvalidStatus),
			errors.Is(err, domain.ErrOrganizationTypeMismatch),
			errors.Is(err, domain.ErrIllegalTransition):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrPartialWrite):
			// Not retryable: status and audit trail may disagree.
			respondWithError(w, http.StatusConflict, "Approval partially applied; flagged for manual review")
		default:
			respondWithError(w, http.StatusInternalServerError, "Approval failed, please retry")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, OrganizationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organization: org,
	})
}

type ApprovalHistoryResponse struct {
	BaseResponse
	History []*model.ApprovalHistoryRecord `json:"history"`
}

// HistoryHandler returns the audit trail for an organization, oldest first.
func (h *ApprovalHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	history, err := h.approvalService.ApprovalHistory(r.Context(), orgID)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			respondWithError(w, http.StatusNotFound, "Organization not found")
			return
		}
		slog.ErrorContext(r.Context(), "Approval history lookup failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, ApprovalHistoryResponse{
		BaseResponse: BaseResponse{Ok: true},
		History:      history,
	})
}

type updateUserStatusRequest struct {
	NewStatus model.UserStatus `json:"new_status"`
}

type UserResponse struct {
	BaseResponse
	User *model.User `json:"user"`
}

// UpdateUserStatusHandler transitions a user's status independently of
// their organization.
func (h *ApprovalHandler) UpdateUserStatusHandler(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req updateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.approvalService.UpdateUserStatus(r.Context(), userID, req.NewStatus, sess.UserID)
	if err != nil {
		slog.ErrorContext(r.Context(), "User status update failed", "error", err, "user_id", userID, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Approval failed, please retry")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, UserResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}
