package http

import (
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Profile
// @Description Return the identity carried by the session token.
// @Tags Account
// @Produce json
// @Security Bearer
// @Success 200 {object} profileResp
// @Failure 401 {object} response.Resp "No token (40101), bad format (40102), invalid (40103) or expired (40104)"
// @Router /api/profile [GET]
func (h Handler) profile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	o, err := h.uc.Profile(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newProfileResp(o))
}

// @Summary User data
// @Description Return sample protected data for the caller.
// @Tags Account
// @Produce json
// @Security Bearer
// @Success 200 {object} userDataResp
// @Failure 401 {object} response.Resp "No token (40101), bad format (40102), invalid (40103) or expired (40104)"
// @Router /api/user-data [GET]
func (h Handler) userData(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	o, err := h.uc.UserData(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newUserDataResp(o))
}
