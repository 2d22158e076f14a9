package http

import (
	"auth-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the protected account routes on r behind mw.Auth.
func (h Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/profile", mw.Auth(), h.profile)
	r.GET("/user-data", mw.Auth(), h.userData)
}
