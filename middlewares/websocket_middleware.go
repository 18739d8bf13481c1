package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/food2go/storefront/utils"
)

// WebSocketAuthMiddleware authenticates the order-tracking socket.
// Browsers cannot set headers on websocket upgrades, so the token
// arrives as a query parameter.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("customer_id", claims.CustomerID)
		c.Next()
	}
}
