package reporting

import "time"

// Rows mirror what the resource services return; the gateway only shapes
// them into dashboard summaries. Field coverage is intentionally minimal.

type Asset struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	BorrowerID string `json:"borrower_id,omitempty"`
}

const (
	AssetStatusAvailable   = "available"
	AssetStatusBorrowed    = "borrowed"
	AssetStatusMaintenance = "maintenance"
)

type Ticket struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

type Meal struct {
	ID           string    `json:"id"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Servings     int       `json:"servings"`
}

type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DashboardRequest asks for the aggregate numbers behind the dashboard
// charts. OrgID is required; rows outside the org must never be counted.

type DashboardRequest struct {
	OrgID string    `json:"org_id"`
	Range TimeRange `json:"range"`
}

type DashboardSummary struct {
	OrgID string `json:"org_id"`

	TotalAssets       int `json:"total_assets"`
	AvailableAssets   int `json:"available_assets"`
	BorrowedAssets    int `json:"borrowed_assets"`
	MaintenanceAssets int `json:"maintenance_assets"`

	OpenTickets       int `json:"open_tickets"`
	InProgressTickets int `json:"in_progress_tickets"`
	ResolvedTickets   int `json:"resolved_tickets"`

	ScheduledMeals int `json:"scheduled_meals"`
	TotalServings  int `json:"total_servings"`
}
