package http

import (
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Login
// @Description Exchange the username and password for a session token valid for one hour.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Failure 400 {object} response.Resp "Missing fields (40001) or invalid body (40002)"
// @Failure 401 {object} response.Resp "Invalid credentials (40105)"
// @Router /api/login [POST]
func (h Handler) login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newLoginResp(o))
}
