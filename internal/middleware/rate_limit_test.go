package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default shards when zero", numShards: 0, wantShards: defaultNumShards},
		{name: "default shards when negative", numShards: -1, wantShards: defaultNumShards},
		{name: "custom shard count", numShards: 8, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()

			assert.Equal(t, tt.wantShards, rl.numShards)
			assert.Len(t, rl.shards, tt.wantShards)
		})
	}
}

func TestShardedRateLimiter_CheckRateLimit(t *testing.T) {
	tests := []struct {
		name        string
		rate        int
		requests    int
		wantAllowed int
	}{
		{name: "under limit", rate: 5, requests: 3, wantAllowed: 3},
		{name: "exact limit", rate: 5, requests: 5, wantAllowed: 5},
		{name: "over limit", rate: 5, requests: 8, wantAllowed: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(tt.rate, time.Minute, 4)
			defer rl.Stop()

			allowed := 0
			for i := 0; i < tt.requests; i++ {
				if ok, _ := rl.checkRateLimit("farmer-1"); ok {
					allowed++
				}
			}
			assert.Equal(t, tt.wantAllowed, allowed)
		})
	}
}

func TestShardedRateLimiter_WindowReset(t *testing.T) {
	rl := NewShardedRateLimiter(1, 10*time.Millisecond, 4)
	defer rl.Stop()

	ok, _ := rl.checkRateLimit("farmer-1")
	assert.True(t, ok)
	ok, _ = rl.checkRateLimit("farmer-1")
	assert.False(t, ok)

	time.Sleep(20 * time.Millisecond)

	ok, remaining := rl.checkRateLimit("farmer-1")
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestShardedRateLimiter_RateLimit(t *testing.T) {
	rl := NewShardedRateLimiter(2, time.Minute, 4)
	defer rl.Stop()

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	var lastCode int
	var lastHeaders http.Header
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		lastCode = w.Code
		lastHeaders = w.Header()
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
	assert.Equal(t, "2", lastHeaders.Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", lastHeaders.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, lastHeaders.Get("Retry-After"))
}

func TestShardedRateLimiter_UserIdentifier(t *testing.T) {
	rl := NewShardedRateLimiter(5, time.Minute, 4)
	defer rl.Stop()

	t.Run("authenticated user", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
		userID := primitive.NewObjectID()
		c.Set("user_id", userID)

		assert.Equal(t, "user:"+userID.Hex(), rl.getUserIdentifier(c))
	})

	t.Run("anonymous falls back to IP", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

		assert.Contains(t, rl.getUserIdentifier(c), "ip:")
	})
}

func TestShardedRateLimiter_CleanupExpired(t *testing.T) {
	rl := NewShardedRateLimiter(5, 5*time.Millisecond, 4)
	defer rl.Stop()

	rl.checkRateLimit("farmer-1")
	rl.checkRateLimit("farmer-2")
	total, _ := rl.Stats()
	assert.Equal(t, 2, total)

	time.Sleep(15 * time.Millisecond)
	rl.cleanupExpired()

	total, _ = rl.Stats()
	assert.Equal(t, 0, total)
}
