package http

import (
	"auth-srv/internal/account"
	"auth-srv/internal/model"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// processRequest returns the caller attached by the Auth middleware.
func (h Handler) processRequest(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		h.l.Warnf(c.Request.Context(), "account.delivery.http.processRequest: scope not found | Path: %s", c.Request.URL.Path)
		return model.Scope{}, account.ErrUnauthenticated
	}
	return sc, nil
}
