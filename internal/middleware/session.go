// internal/middleware/session.go
package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// Session resolves the cart session identifier. Clients send X-Session-ID;
// a missing or malformed header gets a fresh identifier echoed back so the
// client can persist it. The identifier is opaque — there is no
// authentication tied to it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if !sessionIDPattern.MatchString(sessionID) {
			sessionID = uuid.NewString()
		}

		c.Set("session_id", sessionID)
		c.Header("X-Session-ID", sessionID)
		c.Next()
	}
}
