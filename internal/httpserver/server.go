package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jovid18/nihonki/internal/lesson"
)

// Server publishes lessons over HTTP. /data/<id>.json keeps the layout of
// the static lesson site so the TUI's HTTP source works against either.
type Server struct {
	addr      string
	source    lesson.Source
	log       *zap.Logger
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP lesson server.
func NewServer(addr string, source lesson.Source, log *zap.Logger) *Server {
	if addr == "" {
		addr = "127.0.0.1:3000"
	}
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		source: source,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler returns the router serving the lesson API.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/lessons", s.handleListLessons)
	r.GET("/api/lessons/:id", s.handleGetLesson)
	r.GET("/data/:file", s.handleDataFile)

	return r
}

// Start binds the listener. Serve must be called to accept requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Serve accepts connections until Stop is called. It returns nil on a
// clean shutdown.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(timeout time.Duration) error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	summaries, err := s.source.List(c.Request.Context())
	if err != nil {
		s.log.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list lessons"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  time.Since(s.startTime).String(),
		"lessons": len(summaries),
	})
}

func (s *Server) handleListLessons(c *gin.Context) {
	summaries, err := s.source.List(c.Request.Context())
	if err != nil {
		s.log.Error("listing lessons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list lessons"})
		return
	}
	if summaries == nil {
		summaries = []lesson.Summary{}
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) handleGetLesson(c *gin.Context) {
	s.writeLesson(c, c.Param("id"))
}

func (s *Server) handleDataFile(c *gin.Context) {
	file := c.Param("file")
	id, ok := strings.CutSuffix(file, ".json")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	s.writeLesson(c, id)
}

func (s *Server) writeLesson(c *gin.Context, id string) {
	l, err := s.source.Load(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, l)
	case errors.Is(err, lesson.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
	case errors.Is(err, lesson.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "lesson not found"})
	default:
		s.log.Error("loading lesson", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load lesson"})
	}
}
