package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auth-srv/internal/account/usecase"
	"auth-srv/internal/model"
	"auth-srv/pkg/log"
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

// withScope stands in for the Auth middleware.
func withScope(sc *model.Scope) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc != nil {
			c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), *sc))
		}
		c.Next()
	}
}

func newRouter(sc *model.Scope) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	h := New(l, usecase.New(l, usecase.WithClock(func() time.Time { return fixedNow })), nil)

	r := gin.New()
	r.GET("/api/profile", withScope(sc), h.profile)
	r.GET("/api/user-data", withScope(sc), h.userData)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestProfile(t *testing.T) {
	r := newRouter(&model.Scope{SubjectID: 1, Username: "admin", Email: "admin@example.com"})

	w := get(r, "/api/profile")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"message": "Profile retrieved successfully",
		"user": {"subjectId": 1, "username": "admin", "email": "admin@example.com"}
	}`, w.Body.String())
}

func TestUserData(t *testing.T) {
	r := newRouter(&model.Scope{SubjectID: 1, Username: "admin", Email: "admin@example.com"})

	w := get(r, "/api/user-data")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"message": "User data retrieved successfully",
		"data": {"userId": 1, "accessLevel": "standard", "lastAccessed": "2024-05-06T07:08:09Z"}
	}`, w.Body.String())
}

func TestMissingScope(t *testing.T) {
	r := newRouter(nil)

	for _, path := range []string{"/api/profile", "/api/user-data"} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path)
			require.Equal(t, http.StatusUnauthorized, w.Code)

			var body response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, http.StatusUnauthorized, body.ErrorCode)
		})
	}
}
