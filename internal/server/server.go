// Package server exposes the extraction pipeline and the event store over
// HTTP. Error-code-to-status mapping lives here and nowhere else; the
// pipeline itself knows nothing about status codes.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/entity"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/store"
)

// Extractor is the pipeline entry point the upload handler calls.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (*entity.ExtractionResult, error)
}

type Server struct {
	engine    *gin.Engine
	http      *http.Server
	extractor Extractor
	store     *store.Store
	logger    *slog.Logger
}

func New(cfg common.ServerConfig, extractor Extractor, st *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	if cfg.EnableCORS {
		engine.Use(cors.Default())
	}

	s := &Server{
		engine:    engine,
		extractor: extractor,
		store:     st,
		logger:    logger,
		http: &http.Server{
			Addr:         cfg.Addr,
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	api.POST("/syllabus", s.handleExtract)
	api.GET("/events", s.handleListEvents)
	api.GET("/events/:id", s.handleGetEvent)
	api.PATCH("/events/:id", s.handleUpdateEvent)
	api.DELETE("/events/:id", s.handleDeleteEvent)
	api.GET("/export/ics", s.handleExportICS)
	api.GET("/export/xlsx", s.handleExportXLSX)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start() error {
	s.logger.Info("server.start", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// statusFor maps pipeline error classes onto HTTP statuses. The original
// message travels to the client verbatim.
func statusFor(err error) int {
	switch common.ErrorCode(err) {
	case common.CodeInvalidFormat:
		return http.StatusBadRequest
	case common.CodeScannedDocument, common.CodeInsufficientContent:
		return http.StatusUnprocessableEntity
	case common.CodeNotConfigured:
		return http.StatusServiceUnavailable
	case common.CodeModelError, common.CodeExtractionFailed, common.CodeMalformedResponse:
		return http.StatusBadGateway
	case common.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
