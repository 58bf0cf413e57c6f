package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Cart-Session"
	SessionCookie = "cart_session"

	sessionKey = "cartSession"
)

// CartSession resolves the anonymous cart session from the header or
// cookie, issuing a new one when neither is present. The resolved id is
// echoed back in both.
func CartSession(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie
			}
		}
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, maxAge, "/", "", false, true)
		c.Header(SessionHeader, id)

		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID returns the id set by CartSession, or "" outside of it.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
