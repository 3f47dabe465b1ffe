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

	"github.com/dxlr/storefront/internal/cart"
	"github.com/dxlr/storefront/internal/config"
	"github.com/dxlr/storefront/internal/events"
	"github.com/dxlr/storefront/internal/httpserver"
	"github.com/dxlr/storefront/internal/logging"
	"github.com/dxlr/storefront/internal/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	snaps := &cart.GormSnapshots{DB: db}
	sessions := session.NewManager(snaps, logger)

	cartEvents := events.NewProducer(cfg.KafkaAddress, events.TopicCart)
	orderEvents := events.NewProducer(cfg.KafkaAddress, events.TopicOrders)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHandler{},
		ShopHandler:    &httpserver.ShopHandler{},
		CartHandler: &httpserver.CartHandler{
			Sessions: sessions,
			Producer: cartEvents,
		},
		CheckoutHandler: &httpserver.CheckoutHandler{
			Sessions: sessions,
			Producer: orderEvents,
			Delay:    cfg.CheckoutDelay,
		},
		NewsletterHandler: &httpserver.NewsletterHandler{
			Delay: cfg.NewsletterDelay,
		},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting storefront", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

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

	if err := cartEvents.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}
	if err := orderEvents.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
