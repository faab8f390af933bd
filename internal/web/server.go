package web

import (
	"context"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/rozicdejan/keyence-iv-calculator/internal/catalog"
)

// Server wraps the HTTP server and handlers.
type Server struct {
	addr     string
	handlers *Handlers
}

// NewServer creates a server for the given address, catalog and
// pictures directory.
func NewServer(addr string, cat *catalog.Catalog, picturesDir string) *Server {
	subFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatalf("web: failed to sub static fs: %v", err)
	}

	return &Server{
		addr:     addr,
		handlers: NewHandlers(cat, picturesDir, subFS),
	}
}

// Mux returns an http.Handler with all routes registered.
func (s *Server) Mux() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/cameras", s.handlers.HandleCameras)
	mux.HandleFunc("GET /api/cameras/{model}", s.handlers.HandleCamera)
	mux.HandleFunc("POST /api/estimate", s.handlers.HandleEstimate)
	mux.HandleFunc("POST /api/distance", s.handlers.HandleDistance)
	mux.HandleFunc("POST /api/target", s.handlers.HandleTarget)
	mux.HandleFunc("GET /images/{model}", s.handlers.HandleImage)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.handlers.staticFS))))
	mux.HandleFunc("GET /{$}", s.handlers.ServeIndex) // exact match for root only

	return mux
}

// Run starts the server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Mux()}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("web server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
