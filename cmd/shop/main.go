package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/localshop/internal/config"
	"github.com/Skotchmaster/localshop/internal/db"
	"github.com/Skotchmaster/localshop/internal/events"
	"github.com/Skotchmaster/localshop/internal/handlers"
	"github.com/Skotchmaster/localshop/internal/hash"
	"github.com/Skotchmaster/localshop/internal/logging"
	"github.com/Skotchmaster/localshop/internal/middleware/client"
	loggingmw "github.com/Skotchmaster/localshop/internal/middleware/logging"
	"github.com/Skotchmaster/localshop/internal/notify"
	"github.com/Skotchmaster/localshop/internal/service"
	httpserver "github.com/Skotchmaster/localshop/internal/transport/http"
)

func main() {
	config.LoadDotEnv(".env")
	cfg := config.Load()
	config.MustValid(cfg)

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, closeStore, err := db.OpenStore(ctx, cfg.StoreDriver, cfg.DatabaseURL, cfg.RedisURL)
	cancel()
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	hasher, err := hash.New(cfg.PasswordHash)
	if err != nil {
		log.Fatal(err)
	}

	prod := events.New(cfg.KafkaBrokers)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	opts := service.Options{Hasher: hasher, Publisher: prod}
	responder := handlers.Responder{Sink: notify.LogSink{Logger: logger}}

	deps := httpserver.Deps{
		Scope:          client.NewScope(store, cfg.ClientSecret, cfg.ClientTTL, hasher),
		AuthHandler:    &handlers.AuthHandler{Responder: responder, Opts: opts},
		ProductHandler: &handlers.ProductHandler{Responder: responder, Opts: opts},
		CartHandler:    &handlers.CartHandler{Responder: responder, Opts: opts},
		Ready: func(ctx context.Context) error {
			_, _, err := store.Get(ctx, "health")
			return err
		},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http_server_started", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting_down")

	go func() {
		<-quit
		log.Println("force exit")
		os.Exit(1)
	}()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}

	if err := closeStore(); err != nil {
		logger.Error("store_close_error", "error", err)
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka_close_error", "error", err)
	}

	logger.Info("shutdown_complete")
}
