package policy

import "strings"

// Role names. Keep these stable; they are part of the route table contract.
// Tokens carry roles as free text, so comparisons are case-insensitive
// except where noted in view.go.
const (
	RoleUser       = "User"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

// IsAdmin reports whether the role grants admin capabilities.
func IsAdmin(role string) bool {
	switch strings.ToLower(role) {
	case "admin", "superadmin":
		return true
	default:
		return false
	}
}

// IsSuperAdmin reports whether the role grants unrestricted access.
func IsSuperAdmin(role string) bool {
	return strings.ToLower(role) == "superadmin"
}

// Matches compares a session role against a required role, case-insensitively.
func Matches(role, required string) bool {
	return strings.EqualFold(role, required)
}
