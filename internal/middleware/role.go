package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

// RequireAdmin guards staff-only routes. It runs after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not_authorized"})
			return
		}
		c.Next()
	}
}
