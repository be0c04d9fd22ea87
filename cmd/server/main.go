package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/BradleyLewis08/uniform-store/internal/config"
	"github.com/BradleyLewis08/uniform-store/internal/database"
	"github.com/BradleyLewis08/uniform-store/internal/handler"
	"github.com/BradleyLewis08/uniform-store/internal/middleware"
	"github.com/BradleyLewis08/uniform-store/internal/queue"
	"github.com/BradleyLewis08/uniform-store/internal/repository"
	"github.com/BradleyLewis08/uniform-store/internal/router"
	"github.com/BradleyLewis08/uniform-store/internal/service"
	"github.com/BradleyLewis08/uniform-store/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	// Redis is optional: without it the selection store falls back to
	// memory and cache/rate limiting become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; selections in memory, cache and rate limiting disabled")
	}
	selections := session.NewSelectionStore(rdb, 30*time.Minute)

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	catalog := repository.NewCatalogRepo(db)
	orders := repository.NewOrderRepo(db)

	flow := service.NewOrderFlow(catalog, orders, service.BrokerPublisher{})

	authHandler := handler.NewAuthHandler(cfg, users, tokens, selections)
	catalogHandler := handler.NewCatalogHandler(catalog, selections)
	orderHandler := handler.NewOrderHandler(flow, orders, selections)
	adminHandler := handler.NewAdminHandler(catalog, orders)

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterShop(e, catalogHandler, orderHandler, cfg.JWTSecret, cacheMW, limitMW)
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)

	// Background consumer that tails order events into logs/orders.log.
	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
