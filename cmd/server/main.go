package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/restaurant-table-reservation/internal/allocation" // Table allocation engine
	"github.com/iliyamo/restaurant-table-reservation/internal/config"     // Internal config loader
	"github.com/iliyamo/restaurant-table-reservation/internal/database"   // MySQL connection and migrations
	"github.com/iliyamo/restaurant-table-reservation/internal/handler"    // HTTP handlers
	"github.com/iliyamo/restaurant-table-reservation/internal/middleware" // Rate limiting and response cache
	"github.com/iliyamo/restaurant-table-reservation/internal/queue"      // Background booking-event consumer
	"github.com/iliyamo/restaurant-table-reservation/internal/repository" // Data access layer
	"github.com/iliyamo/restaurant-table-reservation/internal/router"     // Route registration
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// Connect to MySQL and bring the schema up to date.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db, cfg.MigrationsDir, cfg.DBName); err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}

	// The store implements the allocation gateway over MySQL.
	store := repository.NewStore(db)
	engine := allocation.New(store)

	// Handlers.
	allocHandler := handler.NewAllocationHandler(engine)
	catalogHandler := handler.NewCatalogHandler(
		repository.NewOutletTableRepo(db), repository.NewSectionRepo(db))
	authHandler := handler.NewAuthHandler(repository.NewUserRepo(db), cfg)

	// Redis backs the rate limiter and the catalog response cache.
	// A nil client disables both; the API itself keeps working.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Consume booking.moved events in the background.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler)
	router.RegisterAllocation(e, allocHandler, catalogHandler, cfg.JWTSecret, limiter, cache)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
