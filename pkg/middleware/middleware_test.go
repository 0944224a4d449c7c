package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
}

func (s *MiddlewareTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *MiddlewareTestSuite) newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func (s *MiddlewareTestSuite) get(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Every response carries the browser hardening headers.
func (s *MiddlewareTestSuite) TestSecurityHeaders() {
	w := s.get(s.newRouter(SecurityHeaders()), "")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("SAMEORIGIN", w.Header().Get("X-Frame-Options"))
	s.Equal("off", w.Header().Get("X-DNS-Prefetch-Control"))
	s.Equal("same-origin", w.Header().Get("Referrer-Policy"))
	s.Equal("nosniff", w.Header().Get("X-Content-Type-Options"))
}

// Requests beyond the bucket's burst are rejected with 429 and Retry-After.
func (s *MiddlewareTestSuite) TestRateLimitRejectsBeyondBurst() {
	r := s.newRouter(RateLimit(0.0001, 2))

	// a distinct client IP so other tests do not drain this bucket
	addr := "10.1.2.3:50000"
	s.Equal(http.StatusOK, s.get(r, addr).Code)
	s.Equal(http.StatusOK, s.get(r, addr).Code)

	w := s.get(r, addr)
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Equal("1", w.Header().Get("Retry-After"))
}

// Limits are per client IP: one exhausted bucket does not affect another
// client.
func (s *MiddlewareTestSuite) TestRateLimitPerIP() {
	r := s.newRouter(RateLimit(0.0001, 1))

	s.Equal(http.StatusOK, s.get(r, "10.9.9.1:1000").Code)
	s.Equal(http.StatusTooManyRequests, s.get(r, "10.9.9.1:1000").Code)
	s.Equal(http.StatusOK, s.get(r, "10.9.9.2:1000").Code)
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
