package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/validation-status-listener/internal/application"
	"github.com/DanielPopoola/validation-status-listener/internal/application/services"
	"github.com/DanielPopoola/validation-status-listener/internal/config"
	"github.com/DanielPopoola/validation-status-listener/internal/infrastructure/codec"
	"github.com/DanielPopoola/validation-status-listener/internal/infrastructure/persistence/bolt"
	"github.com/DanielPopoola/validation-status-listener/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/queue"
	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/rest/handlers"
)

type store interface {
	application.ValidationRequestRepository
	handlers.Pinger
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting validation status listener",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"store", cfg.Store.Driver,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	requestStore, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open request store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	messageService := services.NewIncomingMessageService(requestStore, logger)
	queryService := services.NewQueryService(requestStore)

	listener := queue.NewListener(codec.NewDecoder(), messageService, logger)

	if cfg.Delivery.Secret == "" {
		logger.Warn("delivery signing secret not set, signatures are not checked")
	}
	h := handlers.NewHandlers(listener, queryService, requestStore, cfg.Delivery.Secret, logger)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handlers.NewRouter(h, logger, cfg.Server.ReadTimeout),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverBDB:
		db, err := bolt.Open(cfg.Store.BoltPath, logger)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close bolt store", "error", err)
			}
		}
		return boltStore{bolt.NewValidationRequestRepository(db), db}, closeFn, nil

	default:
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		return postgresStore{postgres.NewValidationRequestRepository(db), db}, db.Close, nil
	}
}

type boltStore struct {
	*bolt.ValidationRequestRepository
	*bolt.DB
}

type postgresStore struct {
	*postgres.ValidationRequestRepository
	*postgres.DB
}
