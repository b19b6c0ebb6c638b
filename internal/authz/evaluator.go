// internal/authz/evaluator.go
package authz

// HasPermission reports whether the role holds the given permission.
// Unknown roles fail closed.
func HasPermission(role Role, perm Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = set[perm]
	return ok
}

// PermissionsFor returns the role's full allow-set. Unknown roles get an
// empty slice, never nil membership in the table.
func PermissionsFor(role Role) []Permission {
	set, ok := rolePermissions[role]
	if !ok {
		return []Permission{}
	}
	perms := make([]Permission, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	return perms
}

// CanAccessFeature reports whether the role holds every permission in
// required. An empty requirement list means the feature is unrestricted.
func CanAccessFeature(role Role, required []Permission) bool {
	for _, p := range required {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}
