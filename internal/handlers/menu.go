package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/budjb/things-we-make/internal/metrics"
	"github.com/budjb/things-we-make/internal/middleware"
	"github.com/budjb/things-we-make/internal/session"
	"github.com/budjb/things-we-make/internal/shell"
)

// MenuAction is the no-script target of the menu buttons. It applies
// open, close or toggle to the visitor's stored menu state and sends them
// back to the page they came from.
func (h *Handlers) MenuAction(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		sess = session.New()
	}

	menu := shell.NewMenuController(
		shell.WithInitialState(sess.MenuOpen),
		shell.WithOnChange(func(_ bool, trigger shell.Trigger) {
			metrics.MenuTransitions.WithLabelValues(string(trigger)).Inc()
		}),
	)

	switch chi.URLParam(r, "action") {
	case "open":
		menu.Open()
	case "close":
		menu.Close()
	case "toggle":
		menu.Toggle()
	default:
		h.notFound(w, r)
		return
	}

	sess.MenuOpen = menu.IsOpen()
	if err := h.sessions.Set(w, sess); err != nil {
		h.logger.Error("failed to save menu state", "error", err)
		http.Error(w, "Failed to save menu state", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, safeReturn(r.PostFormValue("return_to")), http.StatusSeeOther)
}

// safeReturn keeps redirects on this site.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
