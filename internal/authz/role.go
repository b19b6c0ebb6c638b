// internal/authz/role.go
package authz

// Role is the account-type tag governing a user's default permission set.
// Roles are immutable once assigned by approval.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleExchangeSponsor Role = "exchange_sponsor"
	RoleExchange        Role = "exchange"
	RoleIssuer          Role = "issuer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleExchangeSponsor, RoleExchange, RoleIssuer:
		return true
	}
	return false
}

// IsPlatformAdmin reports whether r bypasses organization scoping.
func (r Role) IsPlatformAdmin() bool {
	return r == RoleAdmin
}

// ParseRole converts a stored role string to a Role, failing closed on
// anything outside the known set.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}
