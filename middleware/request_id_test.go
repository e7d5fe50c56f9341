package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestID"))
	})
	return r
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	r := newIDRouter()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("response should carry a generated request id")
	}
	if w.Body.String() != id {
		t.Errorf("context id %q differs from header %q", w.Body.String(), id)
	}
}

func TestRequestIDMiddleware_HonorsInbound(t *testing.T) {
	r := newIDRouter()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("header = %q, want abc-123", got)
	}
	if w.Body.String() != "abc-123" {
		t.Errorf("context id = %q, want abc-123", w.Body.String())
	}
}

// --- getClientIP ---

func TestGetClientIP_XForwardedFor(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")

	if got := getClientIP(c); got != "198.51.100.9" {
		t.Errorf("got %q, want first forwarded ip", got)
	}
}

func TestGetClientIP_XRealIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Real-IP", "198.51.100.10")

	if got := getClientIP(c); got != "198.51.100.10" {
		t.Errorf("got %q, want X-Real-IP value", got)
	}
}

func TestGetClientIP_RemoteAddrFallback(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "198.51.100.11:4567"

	if got := getClientIP(c); got != "198.51.100.11" {
		t.Errorf("got %q, want the host part of RemoteAddr", got)
	}
}
