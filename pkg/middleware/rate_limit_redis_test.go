package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitMiddleware_Basic(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	r := gin.New()
	// long window with burst 1 -> exactly one request per window
	r.Use(RedisRateLimitMiddleware(client, 0, 1, time.Hour))
	r.GET("/r", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	send := func() *httptest.ResponseRecorder {
		rq := httptest.NewRequest("GET", "/r", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, rq)
		return w
	}

	// first request allowed
	require.Equal(t, http.StatusOK, send().Code)

	// immediate second request -> blocked
	require.Equal(t, http.StatusTooManyRequests, send().Code)

	// expire the window key and the next request should be allowed
	m.FastForward(2 * time.Hour)
	require.Equal(t, http.StatusOK, send().Code)
}

func TestRedisRateLimitMiddleware_NilClientFallsBack(t *testing.T) {
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(nil, 10, 2, time.Second))
	r.GET("/f", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	rq := httptest.NewRequest("GET", "/f", nil)
	rq.RemoteAddr = "10.0.0.3:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, rq)
	require.Equal(t, http.StatusOK, w.Code)
}
