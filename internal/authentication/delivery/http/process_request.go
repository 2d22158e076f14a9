package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processLoginRequest binds the login body. An empty body binds to an empty
// request so that it is reported as missing fields.
func (h Handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(c.Request.Context(), "authentication.delivery.http.processLoginRequest: %v", err)
		return loginReq{}, errWrongBody
	}
	return req, nil
}
