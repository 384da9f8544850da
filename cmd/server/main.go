// Package main runs the event manager HTTP API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"eventmanager/config"
	httpdelivery "eventmanager/internal/delivery/http"
	"eventmanager/internal/delivery/http/controllers"
	"eventmanager/internal/delivery/http/middleware"
	"eventmanager/internal/repository/mongodb"
	"eventmanager/internal/services"

	_ "eventmanager/docs"
)

const (
	connectTimeout  = 10 * time.Second
	requestTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		cancel()
		logger.Error("failed to connect to mongodb", "err", err)
		os.Exit(1)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		cancel()
		logger.Error("failed to ping mongodb", "err", err)
		os.Exit(1)
	}
	cancel()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect from mongodb", "err", err)
		}
	}()

	eventRepo := mongodb.NewEventRepository(client.Database(cfg.DatabaseName))
	eventService := services.NewEventService(eventRepo, requestTimeout)
	eventController := controllers.NewEventController(logger, eventService)
	healthController := controllers.NewHealthController()

	mux := httpdelivery.NewRouter(eventController, healthController)
	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}
}
