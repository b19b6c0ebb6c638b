// internal/repository/approval_history.go
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

type ApprovalHistoryRepositoryIface interface {
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.ApprovalHistoryRecord, error)
	FindLatestByOrganization(ctx context.Context, orgID uuid.UUID) (*model.ApprovalHistoryRecord, error)
}

// ApprovalHistoryRepository is the read side of the audit trail. Writes go
// through OrganizationRepository.TransitionStatus so they share the status
// write's transaction.
type ApprovalHistoryRepository struct {
	db *gorm.DB
}

func NewApprovalHistoryRepository(db *gorm.DB) *ApprovalHistoryRepository {
	return &ApprovalHistoryRepository{db: db}
}

func (r *ApprovalHistoryRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.ApprovalHistoryRecord, error) {
	var records []*model.ApprovalHistoryRecord
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("finding approval history: %w", result.Error)
	}
	return records, nil
}

func (r *ApprovalHistoryRepository) FindLatestByOrganization(ctx context.Context, orgID uuid.UUID) (*model.ApprovalHistoryRecord, error) {
	var record model.ApprovalHistoryRecord
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding latest approval record: %w", result.Error)
	}
	return &record, nil
}
