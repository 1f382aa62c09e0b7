package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedLimiterFixture(t *testing.T, requestsPerWindow int) (http.Handler, *miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := RateLimitMiddleware(client, RateLimitConfig{
		RequestsPerWindow: requestsPerWindow,
		Window:            time.Minute,
		KeyPrefix:         "ratelimit:seed",
	}, zap.NewNop())

	handler := limiter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	return handler, mr, client
}

func TestRateLimitAllowsUpToWindowThenBlocks(t *testing.T) {
	handler, _, _ := seedLimiterFixture(t, 2)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
		req.RemoteAddr = "10.0.0.1:51000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "request %d within the window must pass", i+1)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	req.RemoteAddr = "10.0.0.1:51000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRateLimitTracksClientsSeparately(t *testing.T) {
	handler, _, _ := seedLimiterFixture(t, 1)

	first := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	first.RemoteAddr = "10.0.0.1:51000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	// The first client is exhausted, a second client is not
	blocked := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	blocked.RemoteAddr = "10.0.0.1:51000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, blocked)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	other := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	other.RemoteAddr = "10.0.0.2:51000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitWindowExpiryResetsCounter(t *testing.T) {
	handler, mr, _ := seedLimiterFixture(t, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	req.RemoteAddr = "10.0.0.1:51000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Advance past the window; the counter key expires
	mr.FastForward(2 * time.Minute)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	req.RemoteAddr = "10.0.0.1:51000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitFailsOpenWhenRedisDown(t *testing.T) {
	handler, mr, _ := seedLimiterFixture(t, 1)
	mr.Close()

	// With redis unreachable every request goes through
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
		req.RemoteAddr = "10.0.0.1:51000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

// For any window size, exactly that many requests pass and the rest are
// rejected with 429.
func TestProperty_RateLimitBlocksExcessRequests(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("exactly requestsPerWindow requests pass per window", prop.ForAll(
		func(requestsPerWindow int, excess int) bool {
			mr, err := miniredis.Run()
			if err != nil {
				t.Logf("failed to start miniredis: %v", err)
				return false
			}
			defer mr.Close()

			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			defer client.Close()

			limiter := RateLimitMiddleware(client, RateLimitConfig{
				RequestsPerWindow: requestsPerWindow,
				Window:            time.Minute,
				KeyPrefix:         "ratelimit:seed",
			}, zap.NewNop())

			handler := limiter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			passed := 0
			blocked := 0
			for i := 0; i < requestsPerWindow+excess; i++ {
				req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
				req.RemoteAddr = "10.0.0.1:51000"
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)

				switch rec.Code {
				case http.StatusOK:
					passed++
				case http.StatusTooManyRequests:
					blocked++
				}
			}

			return passed == requestsPerWindow && blocked == excess
		},
		gen.IntRange(1, 20),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
