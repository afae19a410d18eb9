package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/budjb/things-we-make/internal/catalog"
	"github.com/budjb/things-we-make/internal/database"
	"github.com/budjb/things-we-make/internal/handlers"
	"github.com/budjb/things-we-make/internal/session"
	"github.com/budjb/things-we-make/internal/shell"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	idx, err := catalog.LoadIndex(cfg.ContentIndex)
	if err != nil {
		return err
	}

	// Categories come from Postgres when configured, else from the index.
	var (
		provider catalog.Provider = idx
		health   handlers.HealthChecker
	)
	if cfg.DatabaseURL != "" {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		provider = catalog.NewPostgresProvider(db.Pool)
		health = db
	}

	sessions := session.NewStore(cfg.SessionSecret, cfg.SessionMaxAge, cfg.IsProduction())
	sh := shell.New(cfg.Shell(), provider)
	h := handlers.New(cfg, sh, provider, idx, sessions, health, logger)

	// Live sessions hijack their connections, so Shutdown neither closes nor
	// waits for them. Cancelling the base context ends them.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancelBase)

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"variant", sh.Variant(),
			"recipes", len(idx.Recipes()),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	if err := h.WaitLive(shutdownCtx); err != nil {
		return fmt.Errorf("waiting for live sessions: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
