// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/listingdesk/listingdesk/internal/domain"
	"github.com/listingdesk/listingdesk/internal/model"
)

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindByIDAndType(ctx context.Context, id uuid.UUID, orgType model.OrganizationType) (*model.Organization, error)
	FindByStatus(ctx context.Context, status model.OrganizationStatus) ([]*model.Organization, error)
	TransitionStatus(ctx context.Context, org *model.Organization, rec *model.ApprovalHistoryRecord, adminLink *model.OrganizationUser) error
	CreateOrganizationUser(ctx context.Context, orgUser *model.OrganizationUser) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if _, ok := org.OrgType.Resource(); !ok {
		return domain.ErrInvalidOrgType
	}
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

// FindByIDAndType loads the organization and checks it against the stated
// type. A wrong type surfaces as a distinct error rather than not-found so
// callers can tell a stale reference from a mismatched one.
func (r *OrganizationRepository) FindByIDAndType(ctx context.Context, id uuid.UUID, orgType model.OrganizationType) (*model.Organization, error) {
	org, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.OrgType != orgType {
		return nil, domain.ErrOrganizationTypeMismatch
	}
	return org, nil
}

func (r *OrganizationRepository) FindByStatus(ctx context.Context, status model.OrganizationStatus) ([]*model.Organization, error) {
	var orgs []*model.Organization
	result := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at ASC").Find(&orgs)
	if result.Error != nil {
		return nil, fmt.Errorf("finding organizations by status: %w", result.Error)
	}
	return orgs, nil
}

// TransitionStatus applies one approval transition as a unit: the status
// write, the audit append, and the optional first-admin membership link all
// commit together or not at all. An audit failure after the status write
// succeeded is surfaced as domain.ErrPartialWrite so it is never silently
// swallowed.
func (r *OrganizationRepository) TransitionStatus(ctx context.Context, org *model.Organization, rec *model.ApprovalHistoryRecord, adminLink *model.OrganizationUser) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(org).Error; err != nil {
			return fmt.Errorf("updating organization status: %w", err)
		}

		if err := tx.Create(rec).Error; err != nil {
			return fmt.Errorf("%w: appending approval history: %v", domain.ErrPartialWrite, err)
		}

		if adminLink != nil {
			if err := tx.Create(adminLink).Error; err != nil {
				return fmt.Errorf("%w: creating admin membership: %v", domain.ErrPartialWrite, err)
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrPartialWrite) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *OrganizationRepository) CreateOrganizationUser(ctx context.Context, orgUser *model.OrganizationUser) error {
	if err := r.db.WithContext(ctx).Create(orgUser).Error; err != nil {
		return fmt.Errorf("creating organization user: %w", err)
	}
	return nil
}

// DB returns the underlying database connection
func (r *OrganizationRepository) DB() *gorm.DB {
	return r.db
}
