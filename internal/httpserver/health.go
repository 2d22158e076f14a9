package httpserver

import (
	"net/http"

	"auth-srv/pkg/errors"
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Protected   bool   `json:"protected"`
}

var endpoints = []endpoint{
	{http.MethodPost, "/api/login", "Exchange username and password for a session token", false},
	{http.MethodGet, "/api/profile", "Identity carried by the session token", true},
	{http.MethodGet, "/api/user-data", "Sample protected data", true},
	{http.MethodGet, "/api/info", "Service information", false},
	{http.MethodGet, "/health", "Health check", false},
}

// banner lists the available endpoints.
func (srv *HTTPServer) banner(c *gin.Context) {
	response.OK(c, gin.H{
		"message":   "JWT Authentication Service",
		"service":   serviceName,
		"version":   serviceVersion,
		"endpoints": endpoints,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// info describes the service and its token scheme.
// @Summary Service info
// @Description Describe the service and its token scheme.
// @Tags Service
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/info [get]
func (srv *HTTPServer) info(c *gin.Context) {
	response.OK(c, gin.H{
		"name":        serviceName,
		"version":     serviceVersion,
		"description": "Issues and verifies signed session tokens",
		"authentication": gin.H{
			"type":      "Bearer",
			"header":    "Authorization",
			"algorithm": "HS256",
			"expiresIn": scope.TokenExpirationDuration.String(),
		},
	})
}

// notFound answers every unmatched route.
func (srv *HTTPServer) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": errors.MessageNotFound,
		"path":    c.Request.URL.Path,
		"method":  c.Request.Method,
	})
}
