// internal/service/approval.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/listingdesk/listingdesk/internal/domain"
	"github.com/listingdesk/listingdesk/internal/email"
	"github.com/listingdesk/listingdesk/internal/email/mailer"
	"github.com/listingdesk/listingdesk/internal/model"
	"github.com/listingdesk/listingdesk/internal/obs"
	"github.com/listingdesk/listingdesk/internal/repository"
)

// ApprovalService is the only writer of organization and user status. Every
// organization transition appends exactly one approval history record in
// the same transaction as the status write.
type ApprovalService struct {
	orgRepo      repository.OrganizationRepositoryIface
	userRepo     repository.UserRepositoryIface
	historyRepo  repository.ApprovalHistoryRepositoryIface
	emailService *email.Service
	validate     *validator.Validate
}

func NewApprovalService(
	orgRepo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	historyRepo repository.ApprovalHistoryRepositoryIface,
	emailService *email.Service,
) *ApprovalService {
	return &ApprovalService{
		orgRepo:      orgRepo,
		userRepo:     userRepo,
		historyRepo:  historyRepo,
		emailService: emailService,
		validate:     validator.New(),
	}
}

type UpdateOrganizationStatusInput struct {
	OrganizationID   uuid.UUID                `json:"organization_id" validate:"required"`
	OrganizationType model.OrganizationType   `json:"organization_type" validate:"required"`
	NewStatus        model.OrganizationStatus `json:"new_status" validate:"required,oneof=active suspended"`
	Reason           *string                  `json:"reason,omitempty"`
	ActingUserID     uuid.UUID                `json:"-" validate:"required"`
}

// UpdateOrganizationStatus transitions an organization to active or
// suspended. Re-sending the same (organizationId, newStatus) pair is safe:
// the status write is idempotent and the audit append is at-least-once, so
// a retry only adds another history record with the same new status.
func (s *ApprovalService) UpdateOrganizationStatus(ctx context.Context, input UpdateOrganizationStatusInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if !model.ValidOrgType(input.OrganizationType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOrgType, input.OrganizationType)
	}

	if input.NewStatus == model.OrgStatusSuspended {
		if input.Reason == nil || strings.TrimSpace(*input.Reason) == "" {
			return nil, domain.ErrMissingReason
		}
	}

	org, err := s.orgRepo.FindByIDAndType(ctx, input.OrganizationID, input.OrganizationType)
	if err != nil {
		return nil, err
	}

	if org.Status != input.NewStatus && !org.Status.CanTransitionTo(input.NewStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, org.Status, input.NewStatus)
	}

	rec := &model.ApprovalHistoryRecord{
		OrganizationID:   org.ID,
		OrganizationType: org.OrgType,
		NewStatus:        input.NewStatus,
		ChangedByID:      input.ActingUserID,
		Reason:           input.Reason,
	}

	// First-time activation links the organization's creator as its admin.
	// AdminUserID doubles as the idempotency guard: once set, later
	// suspend/reactivate cycles never create a second link.
	var adminLink *model.OrganizationUser
	if input.NewStatus == model.OrgStatusActive && org.AdminUserID == nil {
		creatorID := org.CreatedByID
		org.AdminUserID = &creatorID
		adminLink = &model.OrganizationUser{
			OrganizationID: org.ID,
			UserID:         creatorID,
			Role:           "admin",
		}
	}

	org.Status = input.NewStatus

	if err := s.orgRepo.TransitionStatus(ctx, org, rec, adminLink); err != nil {
		return nil, err
	}

	obs.ObserveApprovalTransition(string(org.OrgType), string(org.Status))
	s.notifyStatusChange(ctx, org, input.Reason)

	return org, nil
}

// notifyStatusChange emails the organization contact. Notification failure
// never fails a committed transition.
func (s *ApprovalService) notifyStatusChange(ctx context.Context, org *model.Organization, reason *string) {
	if s.emailService == nil || org.ContactEmail == "" {
		return
	}

	var err error
	switch org.Status {
	case model.OrgStatusActive:
		err = mailer.SendOrganizationApprovedEmail(s.emailService, org.ContactEmail, org.Name)
	case model.OrgStatusSuspended:
		var r string
		if reason != nil {
			r = *reason
		}
		err = mailer.SendOrganizationSuspendedEmail(s.emailService, org.ContactEmail, org.Name, r)
	}
	if err != nil {
		slog.ErrorContext(ctx, "Sending status notification failed",
			"error", err, "organization_id", org.ID, "status", org.Status)
	}
}

// UpdateUserStatus mirrors the organization shape but is independently
// transitioned: a user can be pending while their organization is active,
// and vice versa, during onboarding.
func (s *ApprovalService) UpdateUserStatus(ctx context.Context, userID uuid.UUID, newStatus model.UserStatus, actingUserID uuid.UUID) (*model.User, error) {
	if newStatus != model.UserStatusActive && newStatus != model.UserStatusSuspended {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, newStatus)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Status = newStatus
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "User status updated",
		"user_id", userID, "status", newStatus, "changed_by", actingUserID)

	return user, nil
}

// ListPendingOrganizations returns the approval queue, oldest first.
func (s *ApprovalService) ListPendingOrganizations(ctx context.Context) ([]*model.Organization, error) {
	return s.orgRepo.FindByStatus(ctx, model.OrgStatusPending)
}

// ApprovalHistory returns the full audit trail for an organization, oldest
// first.
func (s *ApprovalService) ApprovalHistory(ctx context.Context, orgID uuid.UUID) ([]*model.ApprovalHistoryRecord, error) {
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, err
	}
	return s.historyRepo.FindByOrganization(ctx, orgID)
}
