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

	"github.com/avolkov/canteen/internal/config"
	"github.com/avolkov/canteen/internal/es"
	"github.com/avolkov/canteen/internal/httpserver"
	"github.com/avolkov/canteen/internal/logging"
	"github.com/avolkov/canteen/internal/middleware/loggingmw"
	"github.com/avolkov/canteen/internal/mykafka"
	"github.com/avolkov/canteen/internal/repo"
	"github.com/avolkov/canteen/internal/service"
)

func main() {
	ctx := context.Background()

	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(ctx)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod, err = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("KAFKA_ADDRESS not set, events disabled")
	}

	var indexer *es.Indexer
	var searchHandler *httpserver.SearchHTTP
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		indexer = es.NewIndexer(esClient)
		searchHandler = &httpserver.SearchHTTP{ES: esClient, Index: es.FoodIndex}
	} else {
		logger.Warn("ES_URL not set, food search disabled")
	}

	r := repo.New(db)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		UserHandler:   &httpserver.UserHTTP{Svc: &service.UserService{Repo: r, Producer: prod}},
		FoodHandler:   &httpserver.FoodHTTP{Svc: &service.FoodService{Repo: r, Producer: prod, Indexer: indexer}},
		OrderHandler:  &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Producer: prod, Indexer: indexer}},
		SearchHandler: searchHandler,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
