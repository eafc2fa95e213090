package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kamkoum04/CoolifyExample/internal/config"
)

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func limitedEcho(mw echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.GET("/api/info", okHandler, mw)
	return e
}

func get(e *echo.Echo, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func testRateConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            time.Minute,
		KeyStrategy:    "ip_route",
		Prefix:         "rl",
	}
}

func TestTokenBucketBlocksWhenExhausted(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	now := time.UnixMilli(1_700_000_000_000)
	e := limitedEcho(newTokenBucket(testRateConfig(), rdb, func() time.Time { return now }))

	for i, wantRemaining := range []string{"1", "0"} {
		rec := get(e, "192.0.2.1:1000")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
		if got := rec.Header().Get("X-RateLimit-Remaining"); got != wantRemaining {
			t.Errorf("request %d: remaining %q, want %q", i, got, wantRemaining)
		}
		if got := rec.Header().Get("X-RateLimit-Limit"); got != "2" {
			t.Errorf("request %d: limit %q", i, got)
		}
	}

	rec := get(e, "192.0.2.1:1000")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After %q, want 1", got)
	}

	// another client has its own bucket
	if rec := get(e, "192.0.2.2:1000"); rec.Code != http.StatusOK {
		t.Errorf("other client: expected 200, got %d", rec.Code)
	}

	now = now.Add(time.Second)
	if rec := get(e, "192.0.2.1:1000"); rec.Code != http.StatusOK {
		t.Errorf("after refill: expected 200, got %d", rec.Code)
	}
}

func TestTokenBucketSetsExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	e := limitedEcho(NewTokenBucket(testRateConfig(), rdb))
	get(e, "192.0.2.1:1000")

	key := "rl:ip:192.0.2.1:route:/api/info"
	if !mr.Exists(key) {
		t.Fatalf("bucket %q not stored; keys: %v", key, mr.Keys())
	}
	if ttl := mr.TTL(key); ttl != time.Minute {
		t.Errorf("ttl %s, want 1m", ttl)
	}
}

func TestTokenBucketShortDurations(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := testRateConfig()
	cfg.Capacity = 1
	cfg.RefillInterval = 500 * time.Microsecond
	cfg.TTL = 100 * time.Millisecond

	now := time.UnixMilli(1_700_000_000_000)
	e := limitedEcho(newTokenBucket(cfg, rdb, func() time.Time { return now }))

	if rec := get(e, "192.0.2.1:1000"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	key := "rl:ip:192.0.2.1:route:/api/info"
	if !mr.Exists(key) {
		t.Fatal("bucket deleted right after it was written")
	}
	if ttl := mr.TTL(key); ttl != time.Second {
		t.Errorf("ttl %s, want 1s", ttl)
	}
	if rec := get(e, "192.0.2.1:1000"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	now = now.Add(time.Millisecond)
	if rec := get(e, "192.0.2.1:1000"); rec.Code != http.StatusOK {
		t.Errorf("after 1ms refill: expected 200, got %d", rec.Code)
	}
}

func TestTokenBucketPassThrough(t *testing.T) {
	cfg := testRateConfig()
	cfg.Enabled = false
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	disabled := limitedEcho(NewTokenBucket(cfg, rdb))
	noClient := limitedEcho(NewTokenBucket(testRateConfig(), nil))
	for i := 0; i < 5; i++ {
		if rec := get(disabled, "192.0.2.1:1000"); rec.Code != http.StatusOK {
			t.Fatalf("disabled: expected 200, got %d", rec.Code)
		}
		if rec := get(noClient, "192.0.2.1:1000"); rec.Code != http.StatusOK {
			t.Fatalf("nil client: expected 200, got %d", rec.Code)
		}
	}
	if n := len(mr.Keys()); n != 0 {
		t.Errorf("disabled limiter wrote %d keys", n)
	}
}

func TestTokenBucketFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })
	mr.Close()

	e := limitedEcho(NewTokenBucket(testRateConfig(), rdb))
	for i := 0; i < 3; i++ {
		rec := get(e, "192.0.2.1:1000")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with redis down, got %d", rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "" {
			t.Error("limit headers set without a bucket")
		}
	}
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/info")

	cfg := testRateConfig()
	cases := map[string]string{
		"ip":       "rl:ip:198.51.100.7",
		"route":    "rl:route:/api/info",
		"ip_route": "rl:ip:198.51.100.7:route:/api/info",
		"bogus":    "rl:ip:198.51.100.7:route:/api/info",
	}
	for strategy, want := range cases {
		cfg.KeyStrategy = strategy
		if got := buildRateKey(cfg, c); got != want {
			t.Errorf("%s: got %q, want %q", strategy, got, want)
		}
	}
}
