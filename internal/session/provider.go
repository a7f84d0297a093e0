package session

import (
	"context"
	"log/slog"

	"resource-portal/internal/profile"
	"resource-portal/internal/token"
)

// ProfileFetcher is the slice of the settings client the provider needs.
type ProfileFetcher interface {
	Details(ctx context.Context, id, bearer string) (profile.Profile, error)
}

// Auditor records session invalidations. Best-effort: failures are logged
// and never block the session transition.
type Auditor interface {
	LogSilentLogout(ctx context.Context, userID, reason string) error
}

// Provider resolves the portal identity from the stored token.
//
// Lifecycle: Init decodes the stored token locally (no network), Refresh
// re-decodes and enriches via the settings service. Any enrichment failure
// is treated as session invalidation: the stored token is discarded and the
// identity reset to Guest. Nothing here propagates errors past the provider;
// failures become state transitions.
//
// Refresh is deliberately not reentrancy-guarded. Two concurrent refreshes
// race and the last writer wins, matching the portal frontend it replaces.
type Provider struct {
	tokens   TokenStore
	profiles ProfileFetcher
	store    *Store
	audit    Auditor
	log      *slog.Logger
}

func NewProvider(tokens TokenStore, profiles ProfileFetcher, opts ...ProviderOption) *Provider {
	p := &Provider{
		tokens:   tokens,
		profiles: profiles,
		store:    NewStore(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type ProviderOption func(*Provider)

func WithAuditor(a Auditor) ProviderOption {
	return func(p *Provider) { p.audit = a }
}

func WithLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) { p.log = l }
}

// Store exposes the underlying state container for subscribers.
func (p *Provider) Store() *Store { return p.store }

// Current returns the session without triggering a refresh.
func (p *Provider) Current() Snapshot { return p.store.Get() }

// Init populates the identity from the stored token without calling the
// settings service. Run once at bootstrap, before the first Refresh.
func (p *Provider) Init(ctx context.Context) Snapshot {
	p.store.SetLoading(true)

	raw, err := p.tokens.Get(ctx)
	if err != nil {
		p.log.Error("token read failed", "err", err)
		p.store.Set(GuestIdentity())
		return p.settle()
	}

	if claims := token.Decode(raw); claims != nil {
		p.store.Set(identityFromClaims(claims))
	} else {
		p.store.Set(GuestIdentity())
	}
	return p.settle()
}

// Refresh re-resolves the identity: decode the stored token, then enrich via
// the settings service. Tokens without an id claim reset to Guest with no
// network call. Enrichment failure clears the stored token (silent logout).
func (p *Provider) Refresh(ctx context.Context) Snapshot {
	p.store.SetLoading(true)

	raw, err := p.tokens.Get(ctx)
	if err != nil {
		p.log.Error("token read failed", "err", err)
		p.store.Set(GuestIdentity())
		return p.settle()
	}

	claims := token.Decode(raw)
	if claims == nil || claims.ID == "" {
		p.store.Set(GuestIdentity())
		return p.settle()
	}

	// Wholesale replacement from the freshly decoded token; enrichment
	// merges on top of this.
	id := identityFromClaims(claims)

	details, err := p.profiles.Details(ctx, claims.ID, raw)
	if err != nil {
		p.invalidate(ctx, claims.ID, err)
		return p.settle()
	}

	if details.Username != "" {
		id.Name = details.Username
		id.Avatar = avatarFor(details.Username)
	}
	if details.Email != "" {
		id.Email = details.Email
	}
	if details.ProfilePictureURL != "" {
		id.ProfilePicture = details.ProfilePictureURL
	}

	p.store.Set(id)
	return p.settle()
}

// settle ends a resolution cycle. The loading flag drops before the snapshot
// is taken so a finished cycle is never reported as in flight.
func (p *Provider) settle() Snapshot {
	p.store.SetLoading(false)
	return p.store.Get()
}

// Login stores a freshly issued token and resolves the session for it.
func (p *Provider) Login(ctx context.Context, raw string) (Snapshot, error) {
	if err := p.tokens.Set(ctx, raw); err != nil {
		return p.store.Get(), err
	}
	return p.Refresh(ctx), nil
}

// Logout discards the stored token and resets the identity.
func (p *Provider) Logout(ctx context.Context) error {
	err := p.tokens.Clear(ctx)
	p.store.Set(GuestIdentity())
	return err
}

// Token returns the stored bearer token, "" when absent.
func (p *Provider) Token(ctx context.Context) string {
	raw, err := p.tokens.Get(ctx)
	if err != nil {
		p.log.Error("token read failed", "err", err)
		return ""
	}
	return raw
}

// invalidate implements the silent-logout policy: the stored token is
// discarded and the identity reset to Guest. A transient settings outage is
// indistinguishable from an expired token here; the caller is logged out
// either way and the next guarded navigation is the only retry.
func (p *Provider) invalidate(ctx context.Context, userID string, cause error) {
	p.log.Info("session invalidated", "user_id", userID, "err", cause)

	if err := p.tokens.Clear(ctx); err != nil {
		p.log.Error("token clear failed", "err", err)
	}
	p.store.Set(GuestIdentity())

	if p.audit != nil {
		if err := p.audit.LogSilentLogout(ctx, userID, cause.Error()); err != nil {
			p.log.Error("audit append failed", "err", err)
		}
	}
}
