// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationType string

const (
	OrgTypeSponsor  OrganizationType = "sponsor"
	OrgTypeIssuer   OrganizationType = "issuer"
	OrgTypeExchange OrganizationType = "exchange"
)

// orgTypeResources is the closed mapping from organization-type tag to
// store resource identifier. Type tags never reach the store as raw
// table-name fragments.
var orgTypeResources = map[OrganizationType]string{
	OrgTypeSponsor:  "sponsors",
	OrgTypeIssuer:   "issuers",
	OrgTypeExchange: "exchanges",
}

// ValidOrgType reports whether t is one of the known organization types.
func ValidOrgType(t OrganizationType) bool {
	_, ok := orgTypeResources[t]
	return ok
}

// Resource returns the store resource identifier for the type, and false
// for anything outside the closed set.
func (t OrganizationType) Resource() (string, bool) {
	r, ok := orgTypeResources[t]
	return r, ok
}

type OrganizationStatus string

const (
	OrgStatusPending   OrganizationStatus = "pending"
	OrgStatusActive    OrganizationStatus = "active"
	OrgStatusSuspended OrganizationStatus = "suspended"
)

// ValidOrgStatus reports whether s is one of the known organization statuses.
func ValidOrgStatus(s OrganizationStatus) bool {
	switch s {
	case OrgStatusPending, OrgStatusActive, OrgStatusSuspended:
		return true
	}
	return false
}

// CanTransitionTo reports whether the approval workflow may move an
// organization from s to next. Pending is the entry state only; active and
// suspended are mutually reachable, and a pending organization may be
// rejected straight to suspended.
func (s OrganizationStatus) CanTransitionTo(next OrganizationStatus) bool {
	switch s {
	case OrgStatusPending:
		return next == OrgStatusActive || next == OrgStatusSuspended
	case OrgStatusActive:
		return next == OrgStatusSuspended
	case OrgStatusSuspended:
		return next == OrgStatusActive
	}
	return false
}

// Organization is a tenant: a sponsor, issuer, or exchange. Status only
// changes through the approval workflow, which appends one
// ApprovalHistoryRecord per transition. AdminUserID is set exactly once,
// on the first transition to active.
type Organization struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string             `gorm:"type:text;not null" json:"name"`
	OrgType      OrganizationType   `gorm:"type:organization_type;not null" json:"org_type"`
	Status       OrganizationStatus `gorm:"type:organization_status;not null;default:'pending'" json:"status"`
	AdminUserID  *uuid.UUID         `gorm:"type:uuid" json:"admin_user_id,omitempty"`
	ContactEmail string             `gorm:"type:citext;not null" json:"contact_email"`
	CreatedByID  uuid.UUID          `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// OrganizationUser links a user to an organization with a membership role.
type OrganizationUser struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null" json:"organization_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Role           string    `gorm:"type:text;not null" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
