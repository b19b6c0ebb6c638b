// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/listingdesk/listingdesk/internal/authz"
)

type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// ValidUserStatus reports whether s is one of the known user statuses.
func ValidUserStatus(s UserStatus) bool {
	switch s {
	case UserStatusPending, UserStatusActive, UserStatusSuspended:
		return true
	}
	return false
}

// User is a platform account. Role is assigned at registration and
// immutable afterwards; Status only changes through the approval workflow.
// OrganizationID stays nil until the user is attached to an organization.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FullName       string     `gorm:"type:text;not null" json:"full_name"`
	Role           authz.Role `gorm:"type:text;not null" json:"role"`
	Status         UserStatus `gorm:"type:user_status;not null;default:'pending'" json:"status"`
	OrganizationID *uuid.UUID `gorm:"type:uuid" json:"organization_id,omitempty"`
	IsOrgAdmin     bool       `gorm:"not null;default:false" json:"is_org_admin"`
	PasswordHash   string     `gorm:"type:text;not null" json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
