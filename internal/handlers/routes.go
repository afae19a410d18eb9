package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/budjb/things-we-make/internal/middleware"
	"github.com/budjb/things-we-make/internal/web"
)

// Routes builds the site router.
func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery(h.logger))

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", web.FileServer()))

	// Operations
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(h.sessions))
		r.Use(middleware.EnsureVisitor(h.sessions, h.logger))

		r.Get("/", h.Home)
		r.Get("/search", h.Search)
		r.Post("/search", h.SubmitSearch)
		r.Get("/categories", h.Categories)
		r.Get("/categories/{slug}", h.Category)
		r.Get("/recipes/{slug}", h.Recipe)
		r.Post("/menu/{action}", h.MenuAction)
		r.Get("/live", h.Live)
	})

	r.NotFound(middleware.Session(h.sessions)(http.HandlerFunc(h.NotFound)).ServeHTTP)

	return r
}
