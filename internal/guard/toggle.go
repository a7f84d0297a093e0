package guard

import (
	"net/http"
	"net/url"

	"resource-portal/internal/routes"

	"github.com/gin-gonic/gin"
)

// ToggleAdminMode redirects admin-capable users between the admin and user
// sections. The current location comes from the "from" query parameter with
// the Referer header as fallback, since the toggle itself is a navigation,
// not a screen.
func ToggleAdminMode(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.Query("from")
		if current == "" {
			if ref, err := url.Parse(c.Request.Referer()); err == nil {
				current = ref.Path
			}
		}

		role := sessions.Current().Identity.Role
		c.Redirect(http.StatusFound, routes.ToggleTarget(role, current))
	}
}
