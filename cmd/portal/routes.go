package main

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"resource-portal/internal/audit"
	"resource-portal/internal/gateway"
	"resource-portal/internal/guard"
	"resource-portal/internal/policy"
	"resource-portal/internal/reporting"
	"resource-portal/internal/routes"
	"resource-portal/internal/session"
	"resource-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to
// internal modules.
func registerRoutes(
	r *gin.Engine,
	sessions *session.Provider,
	routeGuard *guard.Guard,
	proxy *gateway.Proxy,
	reports *reporting.Service,
	auditSvc *audit.Service,
) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Login screen target; the browser client renders the form and obtains
	// a token from the auth service, then posts it here.
	r.GET(routes.PathLogin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"screen": "login", "next": c.Query("next")})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/token", func(c *gin.Context) {
			var body struct {
				Token string `json:"token" binding:"required"`
			}
			if err := c.ShouldBindJSON(&body); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "token is required"})
				return
			}

			snap, err := sessions.Login(c.Request.Context(), body.Token)
			if err != nil {
				logger.FromGin(c).Error("login failed", "err", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
				return
			}
			if err := auditSvc.Append(c.Request.Context(), audit.Event{Type: audit.EventTypeLogin, Role: snap.Identity.Role}); err != nil {
				logger.FromGin(c).Error("audit append failed", "err", err)
			}
			c.JSON(http.StatusOK, sessionView(snap, routes.PathLogin))
		})

		auth.POST("/logout", func(c *gin.Context) {
			if err := sessions.Logout(c.Request.Context()); err != nil {
				logger.FromGin(c).Error("logout failed", "err", err)
			}
			if err := auditSvc.Append(c.Request.Context(), audit.Event{Type: audit.EventTypeLogout}); err != nil {
				logger.FromGin(c).Error("audit append failed", "err", err)
			}
			c.Redirect(http.StatusFound, routes.PathLogin)
		})
	}

	// Session introspection for the browser client.
	r.GET("/session", func(c *gin.Context) {
		c.JSON(http.StatusOK, sessionView(sessions.Current(), viewPath(c)))
	})
	r.POST("/session/refresh", func(c *gin.Context) {
		c.JSON(http.StatusOK, sessionView(sessions.Refresh(c.Request.Context()), viewPath(c)))
	})

	r.GET("/toggle-view", guard.ToggleAdminMode(sessions))

	// Guarded portal screens, one per route-table entry.
	for _, rt := range routes.Table {
		rt := rt
		r.GET(rt.Path, routeGuard.Require(rt.RequiredRole), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"screen":   rt.Path,
				"identity": sessions.Current().Identity,
			})
		})
	}

	// Dashboard aggregation used by both dashboard screens.
	r.GET("/dashboard/summary", routeGuard.Require(policy.RoleUser), func(c *gin.Context) {
		req := reporting.DashboardRequest{OrgID: c.Query("org_id")}
		req.Range.To = time.Now().UTC()
		req.Range.From = req.Range.To.AddDate(0, 0, -30)

		out, err := reports.DashboardSummary(c.Request.Context(), req)
		if errors.Is(err, reporting.ErrInvalidRequest) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "org_id is required"})
			return
		}
		if err != nil {
			logger.FromGin(c).Error("dashboard summary failed", "err", err)
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "summary unavailable"})
			return
		}
		c.JSON(http.StatusOK, out)
	})

	// Resource data calls pass through to the remote services.
	api := r.Group("/api")
	api.Use(routeGuard.Require(policy.RoleUser))
	api.Any("/*rest", proxy.Handler())
}

// sessionView shapes the snapshot the way the browser client consumes it.
func sessionView(snap session.Snapshot, currentPath string) gin.H {
	role := snap.Identity.Role
	return gin.H{
		"userData":     snap.Identity,
		"loading":      snap.Loading,
		"isAdmin":      policy.IsAdmin(role),
		"isSuperAdmin": policy.IsSuperAdmin(role),
		"isAdminView":  policy.IsAdminView(role, currentPath),
	}
}

// viewPath resolves the navigation path the client is asking about: explicit
// query parameter first, Referer fallback.
func viewPath(c *gin.Context) string {
	if p := c.Query("path"); p != "" {
		return p
	}
	if ref, err := url.Parse(c.Request.Referer()); err == nil && ref.Path != "" {
		return ref.Path
	}
	return routes.PathLogin
}
