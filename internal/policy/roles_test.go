package policy

import "testing"

func TestIsAdmin_CaseInsensitive(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{"Admin", true},
		{"aDMIN", true},
		{"SuperAdmin", true},
		{"superadmin", true},
		{"User", false},
		{"user", false},
		{"", false},
		{"operator", false},
	}
	for _, tc := range cases {
		if got := IsAdmin(tc.role); got != tc.want {
			t.Fatalf("IsAdmin(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestIsSuperAdmin(t *testing.T) {
	if !IsSuperAdmin("SuperAdmin") || !IsSuperAdmin("superadmin") || !IsSuperAdmin("SUPERADMIN") {
		t.Fatalf("superadmin spellings should all match")
	}
	if IsSuperAdmin("admin") || IsSuperAdmin("Admin") || IsSuperAdmin("") {
		t.Fatalf("non-superadmin roles must not match")
	}
}

func TestMatches(t *testing.T) {
	if !Matches("admin", RoleAdmin) {
		t.Fatalf("expected case-insensitive match")
	}
	if Matches("user", RoleAdmin) {
		t.Fatalf("expected mismatch")
	}
}
