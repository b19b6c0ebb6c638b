// internal/model/approval_history.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalHistoryRecord is an append-only audit entry, created exactly once
// per status transition and never mutated or deleted. The latest record for
// an organization always agrees with the organization's current status.
type ApprovalHistoryRecord struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"organization_id"`
	OrganizationType OrganizationType   `gorm:"type:organization_type;not null" json:"organization_type"`
	NewStatus        OrganizationStatus `gorm:"type:organization_status;not null" json:"new_status"`
	ChangedByID      uuid.UUID          `gorm:"type:uuid;not null" json:"changed_by_id"`
	Reason           *string            `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt        time.Time          `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for ApprovalHistoryRecord
func (ApprovalHistoryRecord) TableName() string {
	return "approval_history"
}
