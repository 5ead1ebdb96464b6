package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitforge/plan-generator/internal/api"
	"fitforge/plan-generator/internal/catalog"
	"fitforge/plan-generator/internal/config"
	"fitforge/plan-generator/internal/generator"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting plan generator service...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Load exercise catalog ---
	// The catalog is loaded once and shared, immutable, across all requests.
	source, err := catalogSource(cfg.Catalog)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	cat, err := source.Load(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatalf("FATAL: Could not load exercise catalog (source=%s): %v", cfg.Catalog.Source, err)
	}
	log.Printf("Exercise catalog loaded: %d entries (source=%s)", cat.Len(), cfg.Catalog.Source)

	// --- Initialize generator ---
	gen := generator.New(cat)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	planHandler := api.NewPlanHandler(gen)
	api.SetupRoutes(router, cfg.Auth, planHandler)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// catalogSource maps the configured source name to a loader.
func catalogSource(cfg config.CatalogConfig) (catalog.Source, error) {
	switch cfg.Source {
	case "", "builtin":
		return catalog.NewBuiltinSource(), nil
	case "file":
		if cfg.Path == "" {
			return nil, errors.New("catalog.path is required for the file source")
		}
		return catalog.NewFileSource(cfg.Path), nil
	case "mongo":
		return catalog.NewMongoSource(catalog.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		}), nil
	case "s3":
		return catalog.NewS3Source(catalog.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			BucketName:      cfg.S3.BucketName,
			ObjectKey:       cfg.S3.ObjectKey,
		}), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
