// Package web serves the interactive dashboard in the browser. Filter
// state lives in a per-browser cookie session; chart fragments are
// pushed over SSE so the page never reloads.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/filmlens/internal/session"
)

// Server is the dashboard web server.
type Server struct {
	session      *session.Session
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	bins         int
	datasetPath  string
	logger       *slog.Logger
	hub          *Hub
}

// Config holds configuration for the web server.
type Config struct {
	Session       *session.Session
	Port          int
	Watch         bool
	HistogramBins int
	SessionSecret string
	Logger        *slog.Logger
	DatasetPath   string
}

// NewServer creates a new dashboard server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return &Server{
		session:      cfg.Session,
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		bins:         cfg.HistogramBins,
		datasetPath:  cfg.DatasetPath,
		logger:       cfg.Logger,
		hub:          NewHub(),
	}
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting dashboard server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	h := NewHandlers(s.session, s.sessionStore, s.hub, s.bins, s.logger)
	h.SetupRoutes(r)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Reload the table when the dataset file changes on disk
	if s.watch {
		eg.Go(func() error {
			return s.watchDataset(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Hub returns the server's broadcast hub for SSE updates.
func (s *Server) Hub() *Hub {
	return s.hub
}

// watchDataset watches the dataset file for changes. The parent
// directory is watched because editors commonly replace the file
// instead of writing it in place.
func (s *Server) watchDataset(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.datasetPath)
	base := filepath.Base(s.datasetPath)
	if err := watcher.Add(dir); err != nil {
		s.logger.Error("failed to watch dataset directory", "dir", dir, "error", err)
		// Don't fail - continue without watching
		<-ctx.Done()
		return nil
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != base {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("dataset changed, reloading", "file", event.Name)

				if err := s.session.Reload(); err != nil {
					s.logger.Error("reload failed", "error", err)
					return
				}

				// Notify all SSE clients
				s.hub.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
