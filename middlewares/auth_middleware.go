package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/food2go/storefront/utils"
)

// AuthMiddleware guards customer-only routes (favourites, checkout,
// order history). It sets customer_id on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.CustomerID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid customer id in token"))
			c.Abort()
			return
		}

		c.Set("customer_id", claims.CustomerID)
		c.Next()
	}
}
