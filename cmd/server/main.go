package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/broker"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/config"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/database"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/divdata"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/provider"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/repository"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	recordRepo := repository.NewDividendRecordRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	jobRepo := repository.NewJobRepository(db)

	// A crash mid-sync leaves jobs stuck in running, which ListDue skips.
	if reset, err := jobRepo.ResetAbandoned(context.Background()); err != nil {
		log.Fatalf("Failed to reset abandoned sync jobs: %v", err)
	} else if reset > 0 {
		log.Printf("Reset %d abandoned sync job(s) to pending", reset)
	}

	var credentialRepo *repository.CredentialRepository
	if cfg.Broker.FernetKey != "" {
		credentialRepo, err = repository.NewCredentialRepository(db, cfg.Broker.FernetKey)
		if err != nil {
			log.Fatalf("Failed to create credential repository: %v", err)
		}
	}

	// Build the provider fallback chain in fixed order. Yahoo needs no key;
	// keyed providers join the chain only when configured.
	providers := []provider.Client{provider.NewYahooClient()}
	if cfg.Providers.FMPAPIKey != "" {
		providers = append(providers, provider.NewFMPClient(cfg.Providers.FMPAPIKey))
	}
	if cfg.Providers.AlphaVantageAPIKey != "" {
		providers = append(providers, provider.NewAlphaVantageClient(cfg.Providers.AlphaVantageAPIKey))
	}
	resolver := divdata.NewResolver(providers)

	var brokerClient broker.Client
	if cfg.Broker.Enabled {
		brokerClient = broker.NewRESTClient(cfg.Broker.BaseURL)
	}

	// Create services
	systemService := service.NewSystemService(db)
	calculatorService := service.NewCalculatorService(resolver)
	reconcilerService := service.NewReconcilerService(recordRepo)
	positionService := service.NewPositionService(positionRepo, credentialRepo, brokerClient)
	syncService := service.NewSyncService(positionService, calculatorService, reconcilerService, jobRepo)
	dividendService := service.NewDividendService(recordRepo, positionRepo, calculatorService)
	credentialService := service.NewCredentialService(credentialRepo)

	// Create router
	router := api.NewRouter(systemService, dividendService, syncService, credentialService, cfg)

	// Recurring sync schedule: run all due portfolio jobs.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Sync.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		results, err := syncService.RunDue(ctx)
		if err != nil {
			log.Printf("Scheduled sync failed: %v", err)
			return
		}
		for _, result := range results {
			if result.Status == model.JobStatusFailed {
				log.Printf("Sync job for portfolio %s failed: %v", result.PortfolioID, result.Err)
			}
		}
		if len(results) > 0 {
			log.Printf("Scheduled sync processed %d job(s)", len(results))
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule sync: %v", err)
	}
	scheduler.Start()

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Stop the scheduler and wait for a running sync to finish
	schedulerCtx := scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	select {
	case <-schedulerCtx.Done():
	case <-ctx.Done():
	}

	log.Println("Server exited")
}
