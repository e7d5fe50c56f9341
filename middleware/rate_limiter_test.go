package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"remindly/config"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(t *testing.T, perMin int) *gin.Engine {
	t.Helper()
	config.AppConfig.MaxRequestsPerMin = perMin
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func fireAs(r http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_EnforcesBudget(t *testing.T) {
	r := newLimitedRouter(t, 2)

	for i := 0; i < 2; i++ {
		if code := fireAs(r, "203.0.113.7"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, code)
		}
	}
	if code := fireAs(r, "203.0.113.7"); code != http.StatusTooManyRequests {
		t.Errorf("over-budget request: status = %d, want 429", code)
	}
}

func TestRateLimitMiddleware_PerClientIsolation(t *testing.T) {
	r := newLimitedRouter(t, 1)

	if code := fireAs(r, "203.0.113.20"); code != http.StatusOK {
		t.Fatalf("first client: status = %d, want 200", code)
	}
	if code := fireAs(r, "203.0.113.20"); code != http.StatusTooManyRequests {
		t.Errorf("first client second hit: status = %d, want 429", code)
	}
	if code := fireAs(r, "203.0.113.21"); code != http.StatusOK {
		t.Errorf("second client: status = %d, want 200", code)
	}
}
