package audit

import "time"

// Event is an immutable, append-only record of an auth-gate decision.
//
// Invariants:
// - Events are never updated or deleted.
// - Capture is best-effort; navigation must never block on audit failures.
//
// Storage recommendation (Postgres):
// - Table auth_events with an INSERT-only policy.
// - Optional: partition by time for retention.

type Event struct {
	ID string `json:"id" db:"id"`

	// Type indicates the gate decision category.
	Type EventType `json:"type" db:"type"`

	// UserID is the subject of the decision, when known.
	UserID string `json:"user_id,omitempty" db:"user_id"`
	// Role is the session role at decision time, as carried by the token.
	Role string `json:"role,omitempty" db:"role"`

	// Path is the navigation target that triggered the decision.
	Path string `json:"path,omitempty" db:"path"`
	// RequiredRole is the route's declared requirement.
	RequiredRole string `json:"required_role,omitempty" db:"required_role"`
	// RedirectedTo is where the caller was sent instead.
	RedirectedTo string `json:"redirected_to,omitempty" db:"redirected_to"`

	// Reason is a short human-readable description for internal ops.
	Reason string `json:"reason,omitempty" db:"reason"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type EventType string

const (
	EventTypeSilentLogout     EventType = "silent_logout"
	EventTypeDeniedNavigation EventType = "denied_navigation"
	EventTypeLogin            EventType = "login"
	EventTypeLogout           EventType = "logout"
)
