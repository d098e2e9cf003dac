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

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/segyhp/affordability-engine/internal/calculator"
	"github.com/segyhp/affordability-engine/internal/config"
	"github.com/segyhp/affordability-engine/internal/handler"
	"github.com/segyhp/affordability-engine/internal/repository"
	"github.com/segyhp/affordability-engine/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	calculationRepo := repository.NewCalculationRepository(db)
	if err := calculationRepo.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	checks := map[string]handler.Pinger{
		"database": handler.PingFunc(db.PingContext),
	}

	// Redis is optional; without it results are cached in process
	var cache repository.Cache
	if cfg.Redis.Enabled {
		redisClient := initRedis(cfg)
		defer redisClient.Close()

		redisCache := repository.NewRedisCache(redisClient)
		checks["redis"] = redisCache
		cache = redisCache
	} else {
		log.Println("Redis disabled, using in-memory cache")
		cache = repository.NewMemoryCache()
	}

	engine, err := calculator.NewEngine(cfg.EngineConfig())
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	// Initialize service
	affordabilityService := service.NewAffordabilityService(calculationRepo, cache, engine, cfg)
	affordabilityHandler := handler.NewAffordabilityHandler(affordabilityService)
	healthHandler := handler.NewHealthHandler(checks, cfg.GetHealthTimeout())

	limiter := handler.NewRateLimiter(cfg.RateLimit.Requests, cfg.GetRateLimitWindow())
	defer limiter.Stop()

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler.NewRouter(affordabilityHandler, healthHandler, limiter),
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s (%s strategy)", server.Addr, cfg.Search.Strategy)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	return repository.Open(cfg.Database.Driver, cfg.Database.URL, repository.PoolOptions{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.GetConnMaxLifetime(),
	})
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
