package reporting

import (
	"context"
	"testing"
	"time"
)

func TestDashboardSummary_Aggregates(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	repo := NewMemoryRepo()
	repo.Assets = []Asset{
		{ID: "a1", Status: AssetStatusAvailable},
		{ID: "a2", Status: AssetStatusBorrowed, BorrowerID: "u1"},
		{ID: "a3", Status: AssetStatusBorrowed, BorrowerID: "u2"},
		{ID: "a4", Status: AssetStatusMaintenance},
	}
	repo.Tickets = []Ticket{
		{ID: "t1", Status: TicketStatusOpen, CreatedAt: now},
		{ID: "t2", Status: TicketStatusInProgress, CreatedAt: now},
		{ID: "t3", Status: TicketStatusClosed, CreatedAt: now},
	}
	repo.Meals = []Meal{
		{ID: "m1", ScheduledFor: now, Servings: 12},
		{ID: "m2", ScheduledFor: now.Add(2 * time.Hour), Servings: 8},
	}

	svc := NewService(repo)
	out, err := svc.DashboardSummary(context.Background(), DashboardRequest{
		OrgID: "org1",
		Range: TimeRange{From: now.Add(-time.Hour), To: now.Add(24 * time.Hour)},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if out.TotalAssets != 4 || out.AvailableAssets != 1 || out.BorrowedAssets != 2 || out.MaintenanceAssets != 1 {
		t.Fatalf("unexpected asset counts: %+v", out)
	}
	if out.OpenTickets != 1 || out.InProgressTickets != 1 || out.ResolvedTickets != 0 {
		t.Fatalf("unexpected ticket counts: %+v", out)
	}
	if out.ScheduledMeals != 2 || out.TotalServings != 20 {
		t.Fatalf("unexpected meal counts: %+v", out)
	}
}

func TestDashboardSummary_OrgIsolation(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	repo := NewMemoryRepo()
	repo.Assets = []Asset{
		{ID: "a1", Status: AssetStatusAvailable},
		{ID: "a2", Status: AssetStatusAvailable},
	}
	repo.AssetOrg["a2"] = "other-org"

	svc := NewService(repo)
	out, err := svc.DashboardSummary(context.Background(), DashboardRequest{
		OrgID: "org1",
		Range: TimeRange{From: now.Add(-time.Hour), To: now.Add(time.Hour)},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.TotalAssets != 1 {
		t.Fatalf("expected 1 asset after org filtering, got %d", out.TotalAssets)
	}
}

func TestDashboardSummary_RejectsInvalidRequest(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.DashboardSummary(context.Background(), DashboardRequest{}); err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}

	now := time.Unix(1700000000, 0).UTC()
	if _, err := svc.DashboardSummary(context.Background(), DashboardRequest{
		OrgID: "org1",
		Range: TimeRange{From: now, To: now.Add(-time.Hour)},
	}); err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest for inverted range, got %v", err)
	}
}
