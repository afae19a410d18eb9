package handlers

import (
	"context"
	"net/http"

	"github.com/budjb/things-we-make/internal/live"
	"github.com/budjb/things-we-make/internal/middleware"
)

// Live upgrades to the websocket that drives the menu and search form. The
// session ends when the request context is cancelled, which the server's
// base context does on shutdown.
func (h *Handlers) Live(w http.ResponseWriter, r *http.Request) {
	h.liveWG.Add(1)
	defer h.liveWG.Done()

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	cfg := live.Config{Logger: h.logger}
	if sess := middleware.GetSession(r.Context()); sess != nil {
		cfg.InitialOpen = sess.MenuOpen
		cfg.Logger = h.logger.With("visitor", sess.VisitorID.String())
	}

	if err := live.Serve(r.Context(), ws, cfg); err != nil {
		cfg.Logger.Warn("live session ended", "error", err)
	}
}

// WaitLive blocks until every live session has ended or ctx is done.
// http.Server.Shutdown does not wait for hijacked connections.
func (h *Handlers) WaitLive(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.liveWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
