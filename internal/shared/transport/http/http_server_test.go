package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingModule struct{}

func (pingModule) HttpRegister(group *gin.RouterGroup) {
	group.GET("/ping", func(c *gin.Context) { c.String(nethttp.StatusOK, "pong") })
}

func TestNewHttpServer_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := NewHttpServer(":0", gin.New(), nil, Options{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/healthz", nil)
	s.Handler().ServeHTTP(w, req)

	if w.Code != nethttp.StatusOK {
		t.Fatalf("unexpected status code: got=%d want=%d", w.Code, nethttp.StatusOK)
	}
}

func TestServer_Register挂载模块路由(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := NewHttpServer(":0", nil, nil, Options{})
	s.Register(pingModule{})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(nethttp.MethodGet, "/ping", nil))
	if w.Code != nethttp.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("unexpected response: code=%d body=%q", w.Code, w.Body.String())
	}
}

func TestCors_预检请求(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := NewHttpServer(":0", nil, nil, Options{AllowedOrigins: []string{"http://example.com"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodOptions, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	s.Handler().ServeHTTP(w, req)

	if w.Code != nethttp.StatusNoContent {
		t.Fatalf("期望预检返回 204, got=%d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("期望回显允许的 Origin, got=%q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(nethttp.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://evil.com")
	s.Handler().ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("期望不允许的 Origin 不回显, got=%q", got)
	}
}
