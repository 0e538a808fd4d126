package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 3)
	defer rl.Stop()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		if !rl.Allow(userID) {
			t.Fatalf("Expected request %d within burst to be allowed", i+1)
		}
	}
	if rl.Allow(userID) {
		t.Error("Expected request over burst to be denied")
	}
}

func TestRateLimiter_PerUserIsolation(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	first := uuid.New()
	second := uuid.New()

	if !rl.Allow(first) {
		t.Fatal("Expected first user's request to be allowed")
	}
	if rl.Allow(first) {
		t.Error("Expected first user's second request to be denied")
	}
	if !rl.Allow(second) {
		t.Error("Expected second user to have a separate bucket")
	}
}

func TestRateLimitMiddleware_SkipsUnauthenticated(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	e := echo.New()
	called := 0
	handler := RateLimitMiddleware(rl)(func(c echo.Context) error {
		called++
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if called != 5 {
		t.Errorf("Expected all unauthenticated requests to pass, got %d", called)
	}
}

func TestRateLimitMiddleware_TooManyRequests(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	e := echo.New()
	userID := uuid.New()
	handler := RateLimitMiddleware(rl)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	makeRequest := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		ctx := context.WithValue(c.Request().Context(), UserIDKey, userID)
		c.SetRequest(c.Request().WithContext(ctx))
		if err := handler(c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		return rec
	}

	first := makeRequest()
	if first.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", first.Code)
	}
	if first.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("Expected rate limit headers on success")
	}

	second := makeRequest()
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected status 429, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header on rejection")
	}
}
