package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the public authentication routes on r.
func (h Handler) MapRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.login)
}
