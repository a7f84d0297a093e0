package routes

import (
	"testing"

	"resource-portal/internal/policy"
)

func TestLookup(t *testing.T) {
	r, ok := Lookup("/admin/assets")
	if !ok || r.RequiredRole != policy.RoleAdmin {
		t.Fatalf("unexpected route: %+v ok=%v", r, ok)
	}
	if _, ok := Lookup("/nope"); ok {
		t.Fatalf("unguarded path should not resolve")
	}
}

func TestToggleTarget(t *testing.T) {
	if got := ToggleTarget(policy.RoleAdmin, PathAdminDashboard); got != PathUserDashboard {
		t.Fatalf("admin view should toggle to user dashboard, got %q", got)
	}
	if got := ToggleTarget(policy.RoleAdmin, PathUserDashboard); got != PathAdminDashboard {
		t.Fatalf("user view should toggle to admin dashboard, got %q", got)
	}
	if got := ToggleTarget(policy.RoleUser, "/settings"); got != PathAdminDashboard {
		t.Fatalf("non-admin toggles to admin dashboard, got %q", got)
	}
}
