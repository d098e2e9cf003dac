package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segyhp/affordability-engine/internal/calculator"
	"github.com/segyhp/affordability-engine/internal/config"
	"github.com/segyhp/affordability-engine/internal/repository"
	"github.com/segyhp/affordability-engine/internal/scheduler"
	"github.com/segyhp/affordability-engine/internal/service"
)

func main() {
	log.Println("Starting calculation purge scheduler...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := repository.Open(cfg.Database.Driver, cfg.Database.URL, repository.PoolOptions{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.GetConnMaxLifetime(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	calculationRepo := repository.NewCalculationRepository(db)
	if err := calculationRepo.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	engine, err := calculator.NewEngine(cfg.EngineConfig())
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}
	affordabilityService := service.NewAffordabilityService(calculationRepo, nil, engine, cfg)

	s, err := scheduler.New(affordabilityService, cfg.Scheduler.PurgeSchedule, cfg.GetLocation())
	if err != nil {
		log.Fatalf("Failed to schedule purge job: %v", err)
	}

	s.Start()
	log.Printf("Scheduler started, next purge at %s", s.Next().Format("2006-01-02 15:04:05 MST"))

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	s.Stop()
	log.Println("Scheduler stopped")
}
