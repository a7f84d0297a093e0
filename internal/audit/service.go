package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for auth events.
//
// It MUST be append-only.
// No Update/Delete methods are provided by design.

type Repository interface {
	Append(ctx context.Context, e Event) error
}

// Service records auth-gate decisions for internal ops.
//
// IMPORTANT:
// - Records are internal-only; never surface them to portal users.
// - Callers should treat audit logging as best-effort.

type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

var ErrInvalidEvent = errors.New("audit: invalid event")

func (s *Service) Append(ctx context.Context, e Event) error {
	if s.repo == nil {
		return errors.New("audit: repository not configured")
	}
	if e.Type == "" {
		return ErrInvalidEvent
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock().UTC()
	}
	return s.repo.Append(ctx, e)
}

// LogSilentLogout records a session invalidation caused by a failed
// enrichment cycle.
func (s *Service) LogSilentLogout(ctx context.Context, userID, reason string) error {
	return s.Append(ctx, Event{
		Type:   EventTypeSilentLogout,
		UserID: userID,
		Reason: reason,
	})
}

// LogDeniedNavigation records a guarded navigation that became a redirect.
func (s *Service) LogDeniedNavigation(ctx context.Context, path, role, requiredRole, redirectedTo string) error {
	return s.Append(ctx, Event{
		Type:         EventTypeDeniedNavigation,
		Role:         role,
		Path:         path,
		RequiredRole: requiredRole,
		RedirectedTo: redirectedTo,
	})
}
