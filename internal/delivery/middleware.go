package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RoleHeader carries the caller's role on mutating requests.
const RoleHeader = "X-Role"

const adminRole = "admin"

// RequireAdmin gates create/update/delete routes. The role comparison is
// case-insensitive; reads stay open and never pass through this middleware.
func RequireAdmin(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetHeader(RoleHeader)
		if !strings.EqualFold(role, adminRole) {
			logger.Warnf("Rejected %s %s: missing or invalid %s header", c.Request.Method, c.Request.URL.Path, RoleHeader)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Admin role required"})
			return
		}
		c.Next()
	}
}
