package api

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/xavier-romero/agglayer-dashboard/pkg/dashboard"
	"github.com/xavier-romero/agglayer-dashboard/pkg/l1"
)

//go:embed templates/*.html
var templateFS embed.FS

// Dashboard is the aggregation surface the server renders.
type Dashboard interface {
	Summary(ctx context.Context) (*dashboard.Summary, error)
	Rollups(ctx context.Context) ([]l1.RollupData, error)
	Rollup(ctx context.Context, rollupID uint32) (*dashboard.RollupDetail, error)
}

// ReadyFunc reports whether the service can reach its upstreams.
type ReadyFunc func(ctx context.Context) bool

// Server exposes the dashboard over HTTP.
type Server struct {
	service   Dashboard
	ready     ReadyFunc
	port      int
	startTime time.Time
	server    *http.Server
}

// NewServer builds the HTTP server and its routes.
func NewServer(service Dashboard, ready ReadyFunc, port int) *Server {
	s := &Server{
		service:   service,
		ready:     ready,
		port:      port,
		startTime: time.Now(),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(), Metrics())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	// HTML pages
	engine.GET("/", s.handleHome)
	engine.GET("/rollups", s.handleRollupsPage)
	engine.GET("/rollup/:rollup_id", s.handleRollupPage)
	engine.GET("/docs", func(c *gin.Context) {
		c.HTML(http.StatusOK, "docs.html", gin.H{})
	})

	// JSON API
	engine.GET("/api/summary", s.handleSummary)
	engine.GET("/api/rollups", s.handleRollups)
	engine.GET("/api/rollup/:rollup_id", s.handleRollup)

	// Operational endpoints
	engine.GET("/health", s.handleHealth)
	engine.GET("/health/live", s.handleLiveness)
	engine.GET("/health/ready", s.handleReadiness)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: engine,
	}
	return s
}

// Handler returns the HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start runs the server in the background.
func (s *Server) Start() {
	go func() {
		log.Info().Int("port", s.port).Msg("Starting dashboard server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Dashboard server error")
		}
	}()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Stopping dashboard server")
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHome(c *gin.Context) {
	summary, err := s.service.Summary(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{"error": err.Error()})
		return
	}
	rollups, err := s.service.Rollups(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"summary": summary, "rollups": rollups})
}

func (s *Server) handleRollupsPage(c *gin.Context) {
	rollups, err := s.service.Rollups(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "rollups.html", gin.H{"rollups": rollups})
}

func (s *Server) handleRollupPage(c *gin.Context) {
	rollupID, ok := parseRollupID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"error": fmt.Sprintf("Invalid rollup ID: %s", c.Param("rollup_id")),
		})
		return
	}

	detail, err := s.service.Rollup(c.Request.Context(), rollupID)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, dashboard.ErrRollupNotFound) {
			status = http.StatusNotFound
		}
		c.HTML(status, "error.html", gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "rollup.html", gin.H{"rollup": detail})
}

func (s *Server) handleSummary(c *gin.Context) {
	summary, err := s.service.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleRollups(c *gin.Context) {
	rollups, err := s.service.Rollups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rollups)
}

func (s *Server) handleRollup(c *gin.Context) {
	rollupID, ok := parseRollupID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("invalid rollup ID: %s", c.Param("rollup_id")),
		})
		return
	}

	detail, err := s.service.Rollup(c.Request.Context(), rollupID)
	if err != nil {
		if errors.Is(err, dashboard.ErrRollupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) handleHealth(c *gin.Context) {
	ready := s.isReady(c.Request.Context())
	status := "healthy"
	if !ready {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"uptime":    time.Since(s.startTime).String(),
		"timestamp": time.Now().Format(time.RFC3339),
		"components": gin.H{
			"l1_rpc": map[bool]string{true: "healthy", false: "unreachable"}[ready],
		},
	})
}

func (s *Server) handleLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleReadiness(c *gin.Context) {
	if s.isReady(c.Request.Context()) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
}

func (s *Server) isReady(ctx context.Context) bool {
	return s.ready == nil || s.ready(ctx)
}

func parseRollupID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("rollup_id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}
