package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired runs after AuthMiddleware and rejects non-admin identities.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error_code": "forbidden",
				"message":    "You are not authorized to do that.",
			})
			return
		}
		c.Next()
	}
}
