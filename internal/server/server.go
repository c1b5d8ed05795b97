// Package server hosts the generated static tree for local preview.
//
// The redirect table sits in front of the file server, so the preview
// reproduces exactly what the hosting layer does in production: matched
// legacy paths answer 301, everything else falls through to document
// resolution, and a 404 results only when no file owns the path.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/tomkeim/sitekit/internal/redirect"
)

const shutdownTimeout = 5 * time.Second

// Options configures a preview server.
type Options struct {
	SiteDir   string
	Addr      string
	Redirects *redirect.Table
	Metrics   *Metrics
	Logger    *slog.Logger
}

// Server serves the generated site with redirects applied.
type Server struct {
	opts Options
	http *http.Server
}

// New validates the options and builds the server.
func New(opts Options) (*Server, error) {
	if st, err := os.Stat(opts.SiteDir); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("site dir not found or not a directory: %s", opts.SiteDir)
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics(nil)
	}

	s := &Server{opts: opts}
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.buildHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *Server) buildHandler() http.Handler {
	files := http.FileServer(http.Dir(filepath.Clean(s.opts.SiteDir)))

	pages := http.Handler(files)
	if s.opts.Redirects != nil {
		pages = s.opts.Redirects.Handler(files)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", s.opts.Metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.Handle("/", pages)

	return chain(s.opts.Logger, s.opts.Metrics, mux)
}

// Handler exposes the composed handler (used by tests).
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run listens on the configured address and blocks until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}

	s.opts.Logger.Info("preview server listening",
		slog.String("addr", ln.Addr().String()),
		slog.String("site_dir", s.opts.SiteDir))

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.opts.Logger.Info("preview server stopped")
	return nil
}
