package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLabel(t *testing.T) {
	assert.Equal(t, "[GET] /projects?title=Alp", RequestLabel("get", "/projects?title=Alp"))
	assert.Equal(t, "[DELETE] /projects/1", RequestLabel("DELETE", "/projects/1"))
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	calls := 0

	r := gin.New()
	r.Use(RequestID(), RequestLogger(zap.New(core)))
	r.GET("/projects", func(c *gin.Context) {
		calls++
		assert.Equal(t, 0, logs.Len(), "timing record must be emitted after the handler returns")
		c.JSON(http.StatusOK, []string{})
	})

	before := testutil.ToFloat64(RequestsTotal.WithLabelValues(http.MethodGet, "/projects", "200"))

	req, err := http.NewRequest(http.MethodGet, "/projects?title=Alp", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "rid-1")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request completed", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "[GET] /projects?title=Alp", fields["label"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "rid-1", fields["request_id"])
	assert.Contains(t, fields, "elapsed")

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues(http.MethodGet, "/projects", "200"))
	assert.Equal(t, before+1, after)
}

func TestRequestLogger_LogsShortCircuitedRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.DELETE("/projects/:id", Stage(func(*gin.Context) Decision {
		return ShortCircuit(http.StatusBadRequest, gin.H{"error": "bad"})
	}), func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	req, err := http.NewRequest(http.MethodDelete, "/projects/x", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "[DELETE] /projects/x", logs.All()[0].ContextMap()["label"])
}
