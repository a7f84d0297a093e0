package guard

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"resource-portal/internal/policy"
	"resource-portal/internal/routes"
	"resource-portal/internal/session"
	"resource-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SessionSource is the slice of the session provider the guard needs.
type SessionSource interface {
	Current() session.Snapshot
	Refresh(ctx context.Context) session.Snapshot
}

// Auditor records denied navigations. Best-effort; never blocks a redirect.
type Auditor interface {
	LogDeniedNavigation(ctx context.Context, path, role, requiredRole, redirectedTo string) error
}

// Guard decides whether a navigation target may render, refreshing the
// session on every guarded request. Unauthorized access never renders an
// error page: it always becomes a redirect to the login path or one of the
// two dashboards.
type Guard struct {
	sessions SessionSource
	audit    Auditor
}

func New(sessions SessionSource, opts ...Option) *Guard {
	g := &Guard{sessions: sessions}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type Option func(*Guard)

func WithAuditor(a Auditor) Option {
	return func(g *Guard) { g.audit = a }
}

// Require guards a route for the given role.
//
// Decision order: in-flight refresh → loading placeholder; unauthenticated →
// login redirect with the attempted location preserved; superadmin → allow;
// admin → allow; exact case-insensitive role match → allow; otherwise a
// redirect to the dashboard matching the caller's role.
func (g *Guard) Require(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Another navigation already kicked off a refresh cycle; hold the
		// decision rather than racing it.
		if g.sessions.Current().Loading {
			renderLoading(c)
			return
		}

		snap := g.sessions.Refresh(c.Request.Context())
		role := snap.Identity.Role

		// Authenticated means a token resolved to a non-empty role; the
		// guest identity always carries "".
		if role == "" {
			target := routes.PathLogin + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		if policy.IsSuperAdmin(role) || policy.IsAdmin(role) || policy.Matches(role, requiredRole) {
			c.Next()
			return
		}

		target := routes.PathAdminDashboard
		if strings.EqualFold(role, "user") {
			target = routes.PathUserDashboard
		}

		if g.audit != nil {
			if err := g.audit.LogDeniedNavigation(c.Request.Context(), c.Request.URL.Path, role, requiredRole, target); err != nil {
				logger.FromGin(c).Error("audit append failed", "err", err)
			}
		}

		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

const loadingPage = `<!doctype html><html><head><meta http-equiv="refresh" content="1"><title>Loading</title></head><body>Loading…</body></html>`

func renderLoading(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loadingPage))
	c.Abort()
}
