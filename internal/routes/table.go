package routes

import "resource-portal/internal/policy"

// Navigation targets used by redirects throughout the portal.
const (
	PathLogin          = "/"
	PathAdminDashboard = "/admin/dashboard"
	PathUserDashboard  = "/user/dashboard"
)

// Route declares the role required to reach a portal screen.
// The table is compiled in and not mutable at runtime.
type Route struct {
	Path         string
	RequiredRole string
}

// Table lists every guarded portal screen.
var Table = []Route{
	{Path: PathAdminDashboard, RequiredRole: policy.RoleAdmin},
	{Path: "/admin/assets", RequiredRole: policy.RoleAdmin},
	{Path: "/admin/meals", RequiredRole: policy.RoleAdmin},
	{Path: "/admin/tickets", RequiredRole: policy.RoleAdmin},
	{Path: "/admin/users", RequiredRole: policy.RoleAdmin},
	{Path: "/admin/reports", RequiredRole: policy.RoleAdmin},

	{Path: PathUserDashboard, RequiredRole: policy.RoleUser},
	{Path: "/user/assets", RequiredRole: policy.RoleUser},
	{Path: "/user/meals", RequiredRole: policy.RoleUser},
	{Path: "/user/tickets", RequiredRole: policy.RoleUser},

	{Path: "/settings", RequiredRole: policy.RoleUser},
	{Path: "/notifications", RequiredRole: policy.RoleUser},
	{Path: "/organization", RequiredRole: policy.RoleAdmin},
}

// Lookup returns the route declaration for a path, if guarded.
func Lookup(path string) (Route, bool) {
	for _, r := range Table {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// ToggleTarget computes where the admin-mode toggle should navigate: admins
// in the admin view go to the user dashboard, everyone else to the admin
// dashboard. Issuing the redirect is the caller's job.
func ToggleTarget(role, currentPath string) string {
	if policy.IsAdminView(role, currentPath) {
		return PathUserDashboard
	}
	return PathAdminDashboard
}
