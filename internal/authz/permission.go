// internal/authz/permission.go
package authz

// Permission is an atomic capability flag. The set is closed: permissions
// are never created or destroyed at runtime.
type Permission string

const (
	PermManageUsers          Permission = "manage_users"
	PermApproveOrganizations Permission = "approve_organizations"
	PermViewAuditLog         Permission = "view_audit_log"
	PermManageSettings       Permission = "manage_settings"
	PermViewDocuments        Permission = "view_documents"
	PermUploadDocuments      Permission = "upload_documents"
	PermManageListings       Permission = "manage_listings"
	PermReviewListings       Permission = "review_listings"
	PermSponsorIssuers       Permission = "sponsor_issuers"
)

// rolePermissions maps each role to its allow-set. Built once at package
// init and read-only for the life of the process.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: permSet(
		PermManageUsers,
		PermApproveOrganizations,
		PermViewAuditLog,
		PermManageSettings,
		PermViewDocuments,
		PermUploadDocuments,
		PermManageListings,
		PermReviewListings,
	),
	RoleExchangeSponsor: permSet(
		PermViewDocuments,
		PermUploadDocuments,
		PermManageListings,
		PermSponsorIssuers,
	),
	RoleExchange: permSet(
		PermViewDocuments,
		PermReviewListings,
	),
	RoleIssuer: permSet(
		PermViewDocuments,
		PermUploadDocuments,
		PermManageListings,
	),
}

func permSet(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}
