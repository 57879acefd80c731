package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"maniac.dev/waitlist-web/content"
	"maniac.dev/waitlist-web/internal/config"
	"maniac.dev/waitlist-web/internal/httpserver"
	"maniac.dev/waitlist-web/internal/observability"
	"maniac.dev/waitlist-web/internal/pages"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	baseLogger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("web")

	store, err := pages.Load(content.FS, content.Dir)
	if err != nil {
		logger.Fatal("failed to load pages", zap.Error(err))
	}

	srv, err := httpserver.New(cfg, httpserver.Dependencies{
		Logger: logger,
		Pages:  store,
	})
	if err != nil {
		logger.Fatal("failed to build http server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("web listening",
		zap.String("addr", cfg.Server.Address),
		zap.String("env", cfg.Environment),
		zap.Strings("pages", store.Slugs()),
	)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		cancel()
		stop()
		_ = baseLogger.Sync()
		os.Exit(1)
	}
	logger.Info("web stopped")
}
