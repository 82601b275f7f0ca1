package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/abhiburugu8586/StudentMart/internal/config"
	"github.com/abhiburugu8586/StudentMart/internal/es"
	"github.com/abhiburugu8586/StudentMart/internal/handlers"
	"github.com/abhiburugu8586/StudentMart/internal/logging"
	loggingmw "github.com/abhiburugu8586/StudentMart/internal/middleware/logging"
	"github.com/abhiburugu8586/StudentMart/internal/mykafka"
	"github.com/abhiburugu8586/StudentMart/internal/repo"
	"github.com/abhiburugu8586/StudentMart/internal/service"
	httpserver "github.com/abhiburugu8586/StudentMart/internal/transport/http"
)

const searchIndex = "products"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	db, err := config.InitDB(configuration)
	if err != nil {
		logger.Error("db init failed", "error", err)
		os.Exit(1)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	} else {
		logger.Warn("KAFKA_ADDRESS not set, events disabled")
	}

	esClient, err := es.NewClient(configuration)
	if err != nil {
		logger.Warn("elasticsearch unavailable, falling back to catalog search", "error", err)
		esClient = nil
	}

	repository := repo.New(db)
	authService := &service.AuthService{
		Repo:          repository,
		JWTSecret:     []byte(configuration.JWT_SECRET),
		RefreshSecret: []byte(configuration.REFRESH_SECRET),
	}
	catalogService := &service.CatalogService{Repo: repository, ES: esClient, Index: searchIndex}
	cartService := &service.CartService{Repo: repository}
	orderService := &service.OrderService{Repo: repository}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:             db,
		AuthService:    authService,
		AuthHandler:    &handlers.AuthHandler{Auth: authService, Producer: producer},
		ProductHandler: &handlers.ProductHandler{Catalog: catalogService, Producer: producer},
		CartHandler:    &handlers.CartHandler{Cart: cartService, Orders: orderService, Producer: producer},
		OrderHandler:   &handlers.OrderHandler{Orders: orderService},
		SearchHandler:  &handlers.SearchHandler{ES: esClient, Index: searchIndex, Catalog: catalogService},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":8080",
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
