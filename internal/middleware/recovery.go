package middleware

import (
	"auth-srv/pkg/discord"
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a later handler into a 500 response. d may be nil.
func (m Middleware) Recovery(d discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				m.l.Errorf(c.Request.Context(), "Panic recovered: %v | Method: %s | Path: %s",
					rec, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, rec, d)
				c.Abort()
			}
		}()
		c.Next()
	}
}
