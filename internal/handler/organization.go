// internal/handler/organization.go
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

type OrganizationHandler struct {
	orgService *service.OrganizationService
}

func NewOrganizationHandler(orgService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

type OrganizationResponse struct {
	BaseResponse
	Organization *model.Organization `json:"organization"`
}

// RegisterHandler creates a new organization in pending status for the
// calling user.
func (h *OrganizationHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input service.RegisterOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	input.CreatedByID = sess.UserID

	org, err := h.orgService.Register(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Organization registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidOrgType):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, OrganizationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organization: org,
	})
}

func (h *OrganizationHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "orgID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	org, err := h.orgService.Get(r.Context(), orgID)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			respondWithError(w, http.StatusNotFound, "Organization not found")
			return
		}
		slog.ErrorContext(r.Context(), "Organization lookup error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, OrganizationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organization: org,
	})
}
