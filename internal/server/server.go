// Package server exposes the insight backend over HTTP.
//
// The API is a thin shell over internal/insight: one endpoint accepts a
// material's scores and returns the derived score bundle plus insight text.
// AI failures degrade to static text rather than erroring, so the endpoint
// always answers with something displayable.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/matfocus/matfocus/internal/material"
)

// Server wraps the HTTP listener with graceful shutdown.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

// Options configures New.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// Catalog resolves material ids for catalog-backed requests.
	Catalog *material.Catalog
	// Insights produces insight text. Required.
	Insights InsightGenerator
	// Logger receives request and lifecycle logs.
	Logger zerolog.Logger
}

// New builds a Server around the insight API router.
func New(opts Options) *Server {
	handler := NewInsightHandler(opts.Catalog, opts.Insights, opts.Logger)
	router := NewRouter(handler, opts.Logger)

	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: opts.Logger,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully with a
// 10 second drain window.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().
			Str("component", "server").
			Str("addr", s.httpServer.Addr).
			Msg("insight backend listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info().
		Str("component", "server").
		Msg("shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// NewRouter assembles the gin engine. Split out from New so tests can
// exercise routes without binding a socket.
func NewRouter(insights *InsightHandler, logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", healthz)

	api := router.Group("/api")
	{
		api.POST("/insights", insights.Generate)
		api.GET("/materials", insights.ListMaterials)
		api.GET("/materials/:id", insights.GetMaterial)
	}

	return router
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("component", "server").
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
