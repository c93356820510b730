package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars/internal/pkg/logger"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	var seen string
	r := newRouter(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		seen = logger.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("x-request-id", "abc-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "abc-123", entry.Data["request_id"])
	assert.Equal(t, http.StatusNoContent, entry.Data["status"])
	assert.Equal(t, "/ping", entry.Data["path"])
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	r := newRouter(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Len(t, rr.Header().Get(RequestIDHeader), 36)
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	r := newRouter(RequestLogger(), ErrorLogger())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`, rr.Body.String())

	var found bool
	for _, e := range hook.AllEntries() {
		if e.Message == "request_error" && e.Level == logrus.ErrorLevel {
			found = true
			assert.Equal(t, "panic", e.Data["type"])
		}
	}
	assert.True(t, found)
}

func TestErrorLogger_LogsContextErrors(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	r := newRouter(ErrorLogger())
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
		c.Status(http.StatusInternalServerError)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/fail", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request_error", entry.Message)
	assert.Equal(t, "private", entry.Data["type"])
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "db down")
}

func TestCORS(t *testing.T) {
	r := newRouter(CORS(nil))
	r.GET("/planet", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/planet", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	r = newRouter(CORS([]string{"http://localhost:5173"}))
	r.GET("/planet", func(c *gin.Context) { c.Status(http.StatusOK) })

	req = httptest.NewRequest(http.MethodGet, "/planet", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/planet", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
