package reporting

import (
	"context"
	"time"
)

// MemoryRepo serves canned rows for tests.

type MemoryRepo struct {
	Assets  []Asset
	Tickets []Ticket
	Meals   []Meal

	// AssetOrg maps asset IDs to orgs so tests can exercise org filtering.
	AssetOrg  map[string]string
	TicketOrg map[string]string
	MealOrg   map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		AssetOrg:  map[string]string{},
		TicketOrg: map[string]string{},
		MealOrg:   map[string]string{},
	}
}

func (r *MemoryRepo) ListAssets(ctx context.Context, orgID string) ([]Asset, error) {
	var out []Asset
	for _, a := range r.Assets {
		if org, ok := r.AssetOrg[a.ID]; ok && org != orgID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *MemoryRepo) ListTickets(ctx context.Context, orgID string, from, to time.Time) ([]Ticket, error) {
	var out []Ticket
	for _, t := range r.Tickets {
		if org, ok := r.TicketOrg[t.ID]; ok && org != orgID {
			continue
		}
		if t.CreatedAt.Before(from) || t.CreatedAt.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *MemoryRepo) ListMeals(ctx context.Context, orgID string, from, to time.Time) ([]Meal, error) {
	var out []Meal
	for _, m := range r.Meals {
		if org, ok := r.MealOrg[m.ID]; ok && org != orgID {
			continue
		}
		if m.ScheduledFor.Before(from) || m.ScheduledFor.After(to) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
