package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devfolio/devfolio-api/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2)) // generous rate
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	allowedBefore := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))

	req := httptest.NewRequest("GET", "/ok", nil)
	req.RemoteAddr = "10.1.0.1:1000"
	w := httptest.NewRecorder()

	// two quick requests should pass
	r.ServeHTTP(w, req)
	req2 := httptest.NewRequest("GET", "/ok", nil)
	req2.RemoteAddr = "10.1.0.1:1000"
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	// verify metrics incremented for memory limiter
	require.Equal(t, allowedBefore+2, testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory")))
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	// very low rate to force rejections
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// first request -> allowed
	rq1 := httptest.NewRequest("GET", "/limited", nil)
	rq1.RemoteAddr = "10.1.0.2:1000"
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, rq1)
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request -> should be rate-limited
	rq2 := httptest.NewRequest("GET", "/limited", nil)
	rq2.RemoteAddr = "10.1.0.2:1000"
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// wait for half a second (0.5s) to replenish one token and it should be allowed
	time.Sleep(600 * time.Millisecond)
	rq3 := httptest.NewRequest("GET", "/limited", nil)
	rq3.RemoteAddr = "10.1.0.2:1000"
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, rq3)
	require.Equal(t, http.StatusOK, w3.Code)
}

func TestRateLimitMiddleware_BucketsAdminTraffic(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/a", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// admin requests from different IPs share the "admin" bucket
	rq1 := httptest.NewRequest("GET", "/a", nil)
	rq1.RemoteAddr = "10.1.0.3:1000"
	rq1.Header.Set(AdminKeyHeader, "secret")
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, rq1)
	require.Equal(t, http.StatusOK, w1.Code)

	rq2 := httptest.NewRequest("GET", "/a", nil)
	rq2.RemoteAddr = "10.1.0.4:1000"
	rq2.Header.Set(AdminKeyHeader, "secret")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// an anonymous request from one of those IPs is a separate bucket
	rq3 := httptest.NewRequest("GET", "/a", nil)
	rq3.RemoteAddr = "10.1.0.3:1000"
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, rq3)
	require.Equal(t, http.StatusOK, w3.Code)
}
