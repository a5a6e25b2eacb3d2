package middlewares

import (
	"net/http"

	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
)

// RequireRole aborts with 403 unless the authenticated caller holds the given
// role. It assumes AuthMiddleware has already stored the role in the context.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role")
		r, ok := v.(models.Role)
		if !exists || !ok || r != role {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}
