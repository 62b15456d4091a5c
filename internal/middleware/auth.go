package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stockdex/internal/services"
)

// UserContextKey is where authenticated requests carry their resolved user.
const UserContextKey = "user"

// BearerToken extracts the raw token from the Authorization header. Returns
// an empty string when the header is missing or malformed.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// TokenAuth verifies the caller's API token and sets the user in the
// context. Routes that need the stock-first validation order of the ledger
// (the vote POST) skip this middleware and hand the raw token to the core
// instead.
func TokenAuth(users services.UserServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token is required"})
			c.Abort()
			return
		}

		user, err := users.Authenticate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}
