package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	g "maragu.dev/gomponents"

	"github.com/budjb/things-we-make/internal/catalog"
	"github.com/budjb/things-we-make/internal/config"
	"github.com/budjb/things-we-make/internal/middleware"
	"github.com/budjb/things-we-make/internal/session"
	"github.com/budjb/things-we-make/internal/shell"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config     *config.Config
	shell      *shell.Shell
	categories catalog.Provider
	index      *catalog.Index
	sessions   *session.Store
	health     HealthChecker
	upgrader   websocket.Upgrader
	liveWG     sync.WaitGroup
	logger     *slog.Logger
}

// New creates a new Handlers instance. categories must be the provider sh
// was built with so the category pages agree with the navigation panel.
// health may be nil when the site runs without a database.
func New(
	cfg *config.Config,
	sh *shell.Shell,
	categories catalog.Provider,
	index *catalog.Index,
	sessions *session.Store,
	health HealthChecker,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		config:     cfg,
		shell:      sh,
		categories: categories,
		index:      index,
		sessions:   sessions,
		health:     health,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}

// render writes a full page inside the shell, seeding the menu from the
// visitor's session.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, opts shell.PageOptions, children ...g.Node) {
	if sess := middleware.GetSession(r.Context()); sess != nil {
		opts.MenuOpen = sess.MenuOpen
	}
	if opts.ReturnTo == "" {
		opts.ReturnTo = r.URL.RequestURI()
	}

	var buf bytes.Buffer
	if err := h.shell.Page(opts, children...).Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, shell.PageOptions{Title: "Not Found"}, notFoundView())
}

// NotFound renders the shell's not-found page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}

// Health reports liveness, and database reachability when one is configured.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Health(r.Context()); err != nil {
			h.logger.Warn("health check failed", "error", err)
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
	}
	w.Write([]byte("ok"))
}
