// @title Evento API
// @version 1.0
// @description CRUD service for events with logical delete.
// @BasePath /
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"capgeticket/config"
	_ "capgeticket/docs"
	transporthttp "capgeticket/internal/delivery/http"
	"capgeticket/internal/delivery/http/controllers"
	"capgeticket/internal/delivery/http/helpers"
	"capgeticket/internal/domain"
	"capgeticket/internal/metrics"
	"capgeticket/internal/repository/memory"
	"capgeticket/internal/repository/sqlstore"
	"capgeticket/internal/services"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	repo, closer, err := openRepository(cfg, logger)
	if err != nil {
		logger.Error("open repository", "driver", cfg.DBDriver, "err", err)
		os.Exit(1)
	}
	defer closer.Close()

	svc := services.NewEventService(repo, logger, cfg.RequestTimeout)
	translator := helpers.NewErrorTranslator(logger)
	m := metrics.New()
	router := transporthttp.NewRouter(controllers.NewEventController(logger, svc), translator, m)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           transporthttp.NewHandler(router, logger, translator, m, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("api listening", "port", cfg.Port, "driver", cfg.DBDriver, "env", cfg.Environment)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "err", err)
	}
	logger.Info("server stopped")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openRepository(cfg *config.Config, logger *slog.Logger) (domain.EventRepository, io.Closer, error) {
	if cfg.DBDriver == config.DriverMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewEventRepository(), nopCloser{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := sqlstore.Open(ctx, cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		return nil, nil, err
	}
	if cfg.AutoMigrate {
		if err := sqlstore.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("migrations applied", "driver", cfg.DBDriver)
	}
	return sqlstore.NewEventRepository(db), db, nil
}
