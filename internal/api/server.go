// Package api serves the impact, sourcing and reference-data operations
// over HTTP with gin, plus an MCP tools/call endpoint exposing the same
// operations as tools.
//
// All handlers share one factors.Provider and one sourcing.Provider, so the
// reference datasets are loaded at most once per process.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/sourcing"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Server wires the HTTP routes to the engines.
type Server struct {
	factors  *factors.Provider
	sourcing *sourcing.Provider
	logger   zerolog.Logger
	router   *gin.Engine
}

// NewServer builds the router. The providers load lazily on first use;
// call Warm to surface dataset errors before serving.
func NewServer(logger zerolog.Logger, fp *factors.Provider, sp *sourcing.Provider) *Server {
	s := &Server{
		factors:  fp,
		sourcing: sp,
		logger:   logger.With().Str("component", "api").Logger(),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/healthz", s.handleHealth)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/impact", s.handleImpact)
		v1.GET("/sourcing/:month", s.handleSourcing)
		v1.GET("/factors", s.handleListFactors)
		v1.GET("/factors/:item", s.handleFactor)
		v1.GET("/categories", s.handleCategories)
		v1.GET("/alternatives/:meat", s.handleAlternatives)
		v1.GET("/waste-tips", s.handleWasteTips)
		v1.GET("/organic/:item", s.handleOrganic)
		v1.GET("/seasonal/:month", s.handleSeasonal)
		v1.GET("/transport", s.handleTransport)
		v1.GET("/canteens", s.handleListCanteens)
		v1.GET("/canteens/:id", s.handleCanteen)
		v1.GET("/canteens/:id/impact", s.handleCanteenImpact)
	}

	mcp := r.Group("/mcp")
	{
		mcp.GET("/tools", s.handleListTools)
		mcp.POST("/tools/call", s.handleCallTool)
	}

	s.router = r
	return s
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Warm loads both datasets, returning the first load error.
func (s *Server) Warm(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.factors.Store(gctx)
		return err
	})
	g.Go(func() error {
		_, err := s.sourcing.Engine(gctx)
		return err
	})
	return g.Wait()
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().Str("addr", addr).Msg("api server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		s.logger.Info().Msg("api server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
