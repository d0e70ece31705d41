package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	do := func(r *gin.Engine) *httptest.ResponseRecorder {
		req, err := http.NewRequest(http.MethodGet, "/x", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	t.Run("disabled", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", RateLimit(0, 1), ok)
		for i := 0; i < 10; i++ {
			assert.Equal(t, http.StatusOK, do(r).Code)
		}
	})

	t.Run("rejects past burst", func(t *testing.T) {
		r := gin.New()
		// one token per ~17 minutes; only the burst gets through in a test run
		r.GET("/x", RateLimit(0.001, 2), ok)

		assert.Equal(t, http.StatusOK, do(r).Code)
		assert.Equal(t, http.StatusOK, do(r).Code)

		rr := do(r)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.JSONEq(t, `{"error":"Too many requests."}`, rr.Body.String())
	})
}
