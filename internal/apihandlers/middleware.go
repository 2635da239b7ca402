package apihandlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userEmailKey is the gin context key the JWT middleware stores the caller's
// email under.
const userEmailKey = "userEmail"

// CORSMiddleware allows browser clients from any origin to call the public
// advisory endpoints.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AuthRequired verifies the bearer token and stores the caller's email on
// the context.
func (h *APIHandler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			Unauthorized(c, "Missing Authorization header")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			Unauthorized(c, "Authorization header must be a bearer token")
			c.Abort()
			return
		}

		email, err := h.App.TokenIssuer.Verify(token)
		if err != nil {
			Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userEmailKey, email)
		c.Next()
	}
}

// callerEmail returns the authenticated email set by AuthRequired.
func callerEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}
