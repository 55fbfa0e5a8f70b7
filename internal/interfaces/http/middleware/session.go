// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// Session resolves the storefront session from the session cookie, creating
// a fresh one on first contact. The session id keys the cart and the dialog
// state for this visitor.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()

			// Set session cookie (24 hours)
			c.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id resolved by Session.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
