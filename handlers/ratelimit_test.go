package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(points int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiter(points, time.Minute).Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "Pong!") })
	return router
}

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	router := newLimitedRouter(3)

	for i := 0; i < 3; i++ {
		w := doRequest(t, router, "/ping")
		if w.Code != http.StatusOK {
			t.Fatalf("request %d = %d; want 200", i+1, w.Code)
		}
	}
}

func TestRateLimiterRejectsOverBudget(t *testing.T) {
	router := newLimitedRouter(2)

	doRequest(t, router, "/ping")
	doRequest(t, router, "/ping")

	w := doRequest(t, router, "/ping")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d; want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing on 429")
	}
	body := decodeBody(t, w)
	if body["error"] != true {
		t.Errorf("error = %v; want true", body["error"])
	}
}

func TestRateLimiterRecovers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// 50 points per second refills fast enough to observe recovery
	router.Use(NewRateLimiter(50, time.Second).Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "Pong!") })

	for i := 0; i < 50; i++ {
		doRequest(t, router, "/ping")
	}
	if w := doRequest(t, router, "/ping"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", w.Code)
	}

	time.Sleep(100 * time.Millisecond)
	if w := doRequest(t, router, "/ping"); w.Code != http.StatusOK {
		t.Errorf("expected recovery after refill, got %d", w.Code)
	}
}
