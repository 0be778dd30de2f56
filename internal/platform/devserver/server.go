// Package devserver serves the browser build of the game from a content
// directory for local development.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/g2048/internal/config"
)

const (
	notFoundBody    = "404 Not Found"
	serverErrorBody = "500 Server Error"
)

// Server is a static file responder. It is stateless apart from its
// configuration and safe for concurrent requests.
type Server struct {
	cfg    config.ServerConfig
	fsys   fs.FS
	router *chi.Mux
	http   *http.Server
	logger *log.Logger
}

// New creates a server for cfg. Files are read from fsys, or from
// cfg.Root on disk when fsys is nil.
func New(cfg config.ServerConfig, fsys fs.FS, logger *log.Logger) *Server {
	if cfg.Index == "" {
		cfg.Index = "index.html"
	}
	if cfg.DefaultType == "" {
		cfg.DefaultType = "application/octet-stream"
	}
	if cfg.MIMETypes == nil {
		cfg.MIMETypes = config.DefaultMIMETypes()
	}
	if fsys == nil {
		fsys = os.DirFS(cfg.Root)
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "g2048-serve",
		})
	}

	s := &Server{
		cfg:    cfg,
		fsys:   fsys,
		router: chi.NewRouter(),
		logger: logger,
	}

	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.Recoverer)
	s.router.Use(s.requestLogger)

	s.router.Handle("/", http.HandlerFunc(s.serveFile))
	s.router.Handle("/*", http.HandlerFunc(s.serveFile))

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the request router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// ContentType picks the content type for name from the extension table.
func (s *Server) ContentType(name string) string {
	if ct, ok := s.cfg.MIMETypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return s.cfg.DefaultType
}

// resolve maps a request path to a name inside the content root.
// The second result is false when the path cannot name a file in the root.
func (s *Server) resolve(urlPath string) (string, bool) {
	if urlPath == "" || urlPath == "/" {
		return s.cfg.Index, true
	}
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return s.cfg.Index, true
	}
	return name, fs.ValidPath(name)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	name, ok := s.resolve(r.URL.Path)
	if !ok {
		s.logger.Warn("rejected path", "path", r.URL.Path)
		writeText(w, http.StatusNotFound, notFoundBody)
		return
	}

	content, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		s.logger.Error("read failed", "path", r.URL.Path, "error", err)
		if errors.Is(err, fs.ErrNotExist) {
			writeText(w, http.StatusNotFound, notFoundBody)
		} else {
			writeText(w, http.StatusInternalServerError, serverErrorBody)
		}
		return
	}

	w.Header().Set("Content-Type", s.ContentType(name))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(content)
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// requestLogger logs every request with its status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"id", chimw.GetReqID(r.Context()),
		)
	})
}

// ListenAndServe starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	s.logger.Info("serving", "address", s.cfg.Addr, "root", s.cfg.Root)

	errc := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("devserver: listen on %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-done:
	}

	s.logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("devserver: shutdown: %w", err)
	}
	return nil
}
