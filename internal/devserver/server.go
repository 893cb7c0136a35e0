// Package devserver serves the browser front end and runs one snake game per
// WebSocket connection.
package devserver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Config holds configuration for the dev server.
type Config struct {
	// Addr is the host:port to listen on (e.g., ":5173").
	Addr string

	// Root is the directory static files are served from.
	Root string

	// Game is the board every WebSocket session plays on.
	Game snake.Config

	// Seed fixes the food sequence, see session.SeededRNG.
	Seed int64
}

// Server is the static file server plus the /ws game endpoint.
type Server struct {
	config   Config
	router   *way.Router
	upgrader websocket.Upgrader
	logger   *log.Logger
	sessions atomic.Int64
}

// New creates a server. A nil logger logs to stderr.
func New(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-http",
		})
	}
	s := &Server{
		config: cfg,
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodGet, "/ws", s.handleWS)
	s.router.HandleFunc(http.MethodGet, "/...", s.handleStatic)
}

// Handler returns the router wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.router)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
// Open WebSocket sessions end when ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("starting dev server", "address", s.config.Addr, "root", s.config.Root)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the WebSocket upgrade take over the connection.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// logRequests logs method, path, status and duration of every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
