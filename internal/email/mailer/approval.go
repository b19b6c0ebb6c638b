// internal/email/mailer/approval.go
package mailer

import "github.com/listingdesk/listingdesk/internal/email"

// ApprovedTemplateData contains data for the approval email template
type ApprovedTemplateData struct {
	OrganizationName string
}

// SendOrganizationApprovedEmail notifies the organization contact that the
// organization was approved.
func SendOrganizationApprovedEmail(s *email.Service, to, orgName string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "ListingDesk",
		Subject:      "Your organization has been approved",
		TemplateName: "organization_approved",
		TemplateData: ApprovedTemplateData{OrganizationName: orgName},
	}

	return s.SendEmail(emailData)
}

// SuspendedTemplateData contains data for the suspension email template
type SuspendedTemplateData struct {
	OrganizationName string
	Reason           string
}

// SendOrganizationSuspendedEmail notifies the organization contact that the
// organization was suspended, including the recorded reason.
func SendOrganizationSuspendedEmail(s *email.Service, to, orgName, reason string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "ListingDesk",
		Subject:      "Your organization has been suspended",
		TemplateName: "organization_suspended",
		TemplateData: SuspendedTemplateData{OrganizationName: orgName, Reason: reason},
	}

	return s.SendEmail(emailData)
}
