// Package storetest runs an in-process fake of the snap store v2 API.
package storetest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"

	"snaplist/internal/store"
)

// Server answers find and info queries from canned responses. Every request
// is recorded so tests can inspect headers and query parameters.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	find     store.FindResponse
	info     map[string]store.InfoResponse
	failFind bool
	failInfo bool
	requests []*http.Request
}

// NewServer starts a fake store. Call Close when done.
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{info: make(map[string]store.InfoResponse)}

	r := gin.New()
	r.Use(s.record)
	r.GET("/v2/snaps/find", s.findSnaps)
	r.GET("/v2/snaps/info/:name", s.snapInfo)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "not-found", "message": "page not found"})
	})

	s.Server = httptest.NewServer(r)
	return s
}

// SetFind sets the body returned by the find endpoint.
func (s *Server) SetFind(resp store.FindResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.find = resp
}

// SetInfo sets the body returned by the info endpoint for name.
func (s *Server) SetInfo(name string, resp store.InfoResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info[name] = resp
}

// FailFind makes the find endpoint answer 500.
func (s *Server) FailFind(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failFind = fail
}

// FailInfo makes the info endpoint answer 500.
func (s *Server) FailInfo(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failInfo = fail
}

// Requests returns the requests received so far.
func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.Clone(c.Request.Context()))
	s.mu.Unlock()
	c.Next()
}

func (s *Server) findSnaps(c *gin.Context) {
	s.mu.Lock()
	fail, resp := s.failFind, s.find
	s.mu.Unlock()

	if fail {
		c.JSON(http.StatusInternalServerError, gin.H{"error-list": []gin.H{{"code": "internal-error", "message": "boom"}}})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) snapInfo(c *gin.Context) {
	name := c.Param("name")

	s.mu.Lock()
	fail := s.failInfo
	resp, ok := s.info[name]
	s.mu.Unlock()

	if fail {
		c.JSON(http.StatusInternalServerError, gin.H{"error-list": []gin.H{{"code": "internal-error", "message": "boom"}}})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error-list": []gin.H{{"code": "resource-not-found", "message": "No snap named '" + name + "' found"}}})
		return
	}
	c.JSON(http.StatusOK, resp)
}
