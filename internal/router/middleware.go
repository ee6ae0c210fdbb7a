package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stitchkart.in/storefront/api/internal/session"
	"stitchkart.in/storefront/api/pkg/global"
)

const sessionContextKey = "session"

// SessionMiddleware resolves the :sessionId path parameter to a live
// session, creating one on first sight of the id.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("session id required", []global.ValidationError{
				{Field: "sessionId", Message: "sessionId path parameter is required", Code: "required"},
			}))
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sessions.GetOrCreate(sessionID))
		c.Next()
	}
}

// currentSession returns the session placed on the context by the middleware.
func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionContextKey).(*session.Session)
}
