package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTraceIDRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("trace_id")
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	r, seen := newTraceIDRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, *seen)
	assert.Equal(t, *seen, w.Header().Get("X-Trace-ID"))
}

func TestTraceIDReusesInboundHeader(t *testing.T) {
	r, seen := newTraceIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "upstream-trace-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-trace-1", *seen)
	assert.Equal(t, "upstream-trace-1", w.Header().Get("X-Trace-ID"))
}
