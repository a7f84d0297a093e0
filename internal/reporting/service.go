package reporting

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidRequest = errors.New("reporting: invalid request")

// Repository abstracts data access for reporting.
//
// IMPORTANT:
// - Methods must enforce org filtering.
// - The resource services own the rows; implementations only fetch.

type Repository interface {
	ListAssets(ctx context.Context, orgID string) ([]Asset, error)
	ListTickets(ctx context.Context, orgID string, from, to time.Time) ([]Ticket, error)
	ListMeals(ctx context.Context, orgID string, from, to time.Time) ([]Meal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// DashboardSummary aggregates asset, ticket, and meal counts for the
// dashboard screens.
func (s *Service) DashboardSummary(ctx context.Context, req DashboardRequest) (DashboardSummary, error) {
	if req.OrgID == "" {
		return DashboardSummary{}, ErrInvalidRequest
	}
	if req.Range.From.IsZero() || req.Range.To.IsZero() || !req.Range.To.After(req.Range.From) {
		return DashboardSummary{}, ErrInvalidRequest
	}
	if s.repo == nil {
		return DashboardSummary{}, errors.New("reporting: repository not configured")
	}

	out := DashboardSummary{OrgID: req.OrgID}

	assets, err := s.repo.ListAssets(ctx, req.OrgID)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, a := range assets {
		out.TotalAssets++
		switch a.Status {
		case AssetStatusAvailable:
			out.AvailableAssets++
		case AssetStatusBorrowed:
			out.BorrowedAssets++
		case AssetStatusMaintenance:
			out.MaintenanceAssets++
		}
	}

	tickets, err := s.repo.ListTickets(ctx, req.OrgID, req.Range.From, req.Range.To)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, tk := range tickets {
		switch tk.Status {
		case TicketStatusOpen:
			out.OpenTickets++
		case TicketStatusInProgress:
			out.InProgressTickets++
		case TicketStatusResolved:
			out.ResolvedTickets++
		case TicketStatusClosed:
			// closed tickets are not charted
		}
	}

	meals, err := s.repo.ListMeals(ctx, req.OrgID, req.Range.From, req.Range.To)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, m := range meals {
		out.ScheduledMeals++
		out.TotalServings += m.Servings
	}

	return out, nil
}
