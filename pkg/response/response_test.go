package response

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"auth-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDomain = stderrors.New("domain failure")

func newContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	t.Helper()
	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorWithMap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	eMap := ErrorMapping{
		errDomain: errors.NewHTTPError(40199, "Mapped", http.StatusUnauthorized),
	}

	t.Run("wrapped domain error is mapped", func(t *testing.T) {
		c, w := newContext(t, http.MethodGet, "/", "")
		ErrorWithMap(c, fmt.Errorf("usecase: %w", errDomain), eMap, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decode(t, w)
		assert.Equal(t, 40199, resp.ErrorCode)
		assert.Equal(t, "Mapped", resp.Message)
		assert.Empty(t, resp.Error)
	})

	t.Run("unmapped error becomes 500", func(t *testing.T) {
		c, w := newContext(t, http.MethodGet, "/", "")
		ErrorWithMap(c, stderrors.New("disk on fire"), eMap, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode(t, w)
		assert.Equal(t, InternalServerErrorCode, resp.ErrorCode)
		assert.Equal(t, DefaultErrorMessage, resp.Message)
	})
}

func TestErrorDetailDependsOnMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	gin.SetMode(gin.DebugMode)
	c, w := newContext(t, http.MethodGet, "/", "")
	Error(c, stderrors.New("boom"), nil)
	assert.Equal(t, "boom", decode(t, w).Error)

	gin.SetMode(gin.ReleaseMode)
	c, w = newContext(t, http.MethodGet, "/", "")
	Error(c, stderrors.New("boom"), nil)
	assert.Empty(t, decode(t, w).Error)
}

func TestHttpErrorDefaultsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, w := newContext(t, http.MethodGet, "/", "")
	HttpError(c, &errors.HTTPError{Code: 1, Message: "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, w := newContext(t, http.MethodGet, "/", "")
	Unauthorized(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, errors.MessageUnauthorized, decode(t, w).Message)
}

func TestPanicError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, w := newContext(t, http.MethodGet, "/", "")
	PanicError(c, "nil map write", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "nil map write", decode(t, w).Error)
}

func TestBugReportRedactsSecrets(t *testing.T) {
	c, _ := newContext(t, http.MethodPost, "/api/login?debug=1", `{"username":"admin","password":"password123"}`)
	c.Request.Header.Set("Authorization", "Bearer secret-token")
	c.Request.Header.Set("Content-Type", "application/json")

	report := buildInternalServerErrorDataForReportBug(c, "boom", []string{"main.go:1 main"})

	assert.Contains(t, report, "Route   : /api/login")
	assert.Contains(t, report, "Authorization: [redacted]")
	assert.Contains(t, report, "password: [redacted]")
	assert.Contains(t, report, "Params  : debug=1")
	assert.NotContains(t, report, "secret-token")
	assert.NotContains(t, report, "password123")

	// The body is still readable by later handlers.
	body, err := io.ReadAll(c.Request.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "password123")
}
