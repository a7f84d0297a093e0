package audit

import (
	"context"
	"testing"
	"time"
)

func TestAppend_FillsIDAndTimestamp(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	svc.clock = func() time.Time { return time.Unix(1700000000, 0) }

	if err := svc.LogSilentLogout(context.Background(), "5", "profile: unexpected status 401"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	events := repo.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !e.CreatedAt.Equal(time.Unix(1700000000, 0).UTC()) {
		t.Fatalf("unexpected created_at: %v", e.CreatedAt)
	}
	if e.Type != EventTypeSilentLogout || e.UserID != "5" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestAppend_RejectsMissingType(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if err := svc.Append(context.Background(), Event{}); err != ErrInvalidEvent {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

func TestLogDeniedNavigation(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if err := svc.LogDeniedNavigation(context.Background(), "/admin/users", "User", "Admin", "/user/dashboard"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	e := repo.Events()[0]
	if e.Type != EventTypeDeniedNavigation || e.Path != "/admin/users" || e.RedirectedTo != "/user/dashboard" {
		t.Fatalf("unexpected event: %+v", e)
	}
}
