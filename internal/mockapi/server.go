// Package mockapi serves scan data and a solution over HTTP, standing in
// for the scanning and solving service.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SeamusWaldron/gocube_viewer"
)

// Server serves one scrambled cube. Its coloring is the scramble applied to
// a solved cube in the standard scheme, and its solution is the inverse of
// the scramble.
type Server struct {
	engine   *gin.Engine
	scan     [6]string
	scramble string
	solution string
	logger   *slog.Logger
}

// ErrorResponse is the body of every non-200 reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// New builds a server for a scramble in standard notation.
func New(scramble string, logger *slog.Logger) (*Server, error) {
	moves, err := gocube.ParseMoves(scramble)
	if err != nil {
		return nil, fmt.Errorf("scramble: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	store := gocube.NewStore()
	for i, colors := range gocube.SolvedScan() {
		if err := store.ApplyFaceColors(gocube.Face(i), colors); err != nil {
			return nil, err
		}
	}
	store.ApplyMoves(moves)

	s := &Server{
		scramble: gocube.FormatMoves(moves),
		solution: gocube.FormatMoves(gocube.InverseMoves(moves)),
		logger:   logger,
	}
	c := store.Cube()
	for _, f := range gocube.Faces {
		s.scan[f] = c.Face(f)
	}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/colors/:face", s.handleColors)
	api.GET("/solution", s.handleSolution)
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Scan returns the coloring served, in face order.
func (s *Server) Scan() [6]string {
	return s.scan
}

// Scramble returns the scramble in canonical notation.
func (s *Server) Scramble() string {
	return s.scramble
}

// Solution returns the solution served.
func (s *Server) Solution() string {
	return s.solution
}

func (s *Server) handleColors(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("face"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "face must be an integer"})
		return
	}
	face, err := gocube.FaceFromIndex(index)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"face": index, "colors": s.scan[face]})
}

func (s *Server) handleSolution(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"solution": s.solution})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.logger.Debug("request served",
			"request_id", requestID,
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start),
		)
	}
}

// ListenAndServe serves on addr until ctx ends, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock API listening", "addr", addr, "scramble", s.scramble)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
