package policy

import "strings"

// Shared screens reachable from both the admin and user sections.
var sharedPaths = map[string]struct{}{
	"/settings":      {},
	"/notifications": {},
	"/organization":  {},
}

// IsAdminView reports whether an admin-capable user is currently navigating
// the admin-oriented section of the portal.
//
// The role comparison here is case-sensitive against "Admin"/"SuperAdmin"
// while IsAdmin/IsSuperAdmin lower-case first. That asymmetry is carried over
// from the portal frontend on purpose: a lowercase "admin" role skips the
// shared-path branch entirely and resolves to false unless already under
// /admin. Normalizing it would change routing for tokens that issue
// lowercase roles.
func IsAdminView(role, currentPath string) bool {
	if strings.HasPrefix(currentPath, "/admin") {
		return true
	}

	if role != RoleAdmin && role != RoleSuperAdmin {
		return false
	}

	if _, shared := sharedPaths[currentPath]; shared && !strings.HasPrefix(currentPath, "/user") {
		return true
	}
	if strings.HasPrefix(currentPath, "/user") {
		return false
	}
	// Admins anywhere else default to the admin view.
	return true
}
