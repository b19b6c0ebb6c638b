// internal/service/organization.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/listingdesk/listingdesk/internal/domain"
	"github.com/listingdesk/listingdesk/internal/model"
	"github.com/listingdesk/listingdesk/internal/repository"
)

// OrganizationService covers the self-service registration flow and reads.
// Registrations always land in pending; only the approval workflow moves
// them out of it.
type OrganizationService struct {
	orgRepo  repository.OrganizationRepositoryIface
	validate *validator.Validate
}

func NewOrganizationService(orgRepo repository.OrganizationRepositoryIface) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		validate: validator.New(),
	}
}

type RegisterOrganizationInput struct {
	Name         string                 `json:"name" validate:"required"`
	OrgType      model.OrganizationType `json:"org_type" validate:"required,oneof=sponsor issuer exchange"`
	ContactEmail string                 `json:"contact_email" validate:"required,email"`
	CreatedByID  uuid.UUID              `json:"-" validate:"required"`
}

// Register creates a new organization in pending status.
func (s *OrganizationService) Register(ctx context.Context, input RegisterOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	org := &model.Organization{
		Name:         input.Name,
		OrgType:      input.OrgType,
		Status:       model.OrgStatusPending,
		ContactEmail: input.ContactEmail,
		CreatedByID:  input.CreatedByID,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

func (s *OrganizationService) Get(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	return s.orgRepo.FindByID(ctx, id)
}
