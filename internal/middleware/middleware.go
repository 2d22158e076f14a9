package middleware

import (
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token of the request and attaches the caller to its context.
// Every failure is answered with 401 and the chain is aborted.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		payload, err := scope.Authorize(m.jwtManager, c.GetHeader(scope.AuthorizationHeader))
		if err != nil {
			m.audit.LogTokenRejected(ctx, c.Request.Method, c.Request.URL.Path, err.Error())
			response.HttpError(c, mapAuthError(err))
			c.Abort()
			return
		}

		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
