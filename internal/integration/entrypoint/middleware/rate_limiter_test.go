package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimitStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore()
	store.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow(ctx, "ip", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d", i+1)
	}
	allowed, _ := store.Allow(ctx, "ip", 3, time.Minute)
	assert.False(t, allowed)

	other, _ := store.Allow(ctx, "other", 3, time.Minute)
	assert.True(t, other)

	now = now.Add(time.Minute + time.Second)
	allowed, _ = store.Allow(ctx, "ip", 3, time.Minute)
	assert.True(t, allowed)

	now = now.Add(2 * time.Minute)
	store.Cleanup()
	assert.Empty(t, store.entries)
}

func TestMemoryRateLimitStore_RunCleanup(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore()
	store.now = func() time.Time { return start }
	for _, key := range []string{"a", "b", "c"} {
		_, err := store.Allow(ctx, key, 3, time.Minute)
		require.NoError(t, err)
	}
	require.Equal(t, 3, store.Len())

	store.mu.Lock()
	store.now = func() time.Time { return start.Add(time.Hour) }
	store.mu.Unlock()

	go store.RunCleanup(ctx, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestRedisRateLimitStore(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisRateLimitStore(client)

	for i := 0; i < 2; i++ {
		allowed, err := store.Allow(ctx, "ip", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := store.Allow(ctx, "ip", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, server.TTL(redisKeyPrefix+"ip"))

	server.FastForward(time.Minute + time.Second)
	allowed, err = store.Allow(ctx, "ip", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(rl *RateLimiter) *gin.Engine {
		r := gin.New()
		r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	hit := func(r *gin.Engine) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("blocks after the limit", func(t *testing.T) {
		r := newRouter(NewRateLimiterWithStore(NewMemoryRateLimitStore(), 2, time.Minute))
		assert.Equal(t, http.StatusOK, hit(r))
		assert.Equal(t, http.StatusOK, hit(r))
		assert.Equal(t, http.StatusTooManyRequests, hit(r))
	})

	t.Run("disabled passes through", func(t *testing.T) {
		rl := NewRateLimiterWithStore(NewMemoryRateLimitStore(), 1, time.Minute)
		rl.Disable()
		r := newRouter(rl)
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, hit(r))
		}
	})

	t.Run("store outage fails open", func(t *testing.T) {
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		server.Close()

		r := newRouter(NewRateLimiterWithStore(NewRedisRateLimitStore(client), 1, time.Minute))
		assert.Equal(t, http.StatusOK, hit(r))
		assert.Equal(t, http.StatusOK, hit(r))
	})
}
