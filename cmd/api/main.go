package main

import (
	"context"
	"errors"
	"io"
	"github.com/oggyb/messages-api/internal/config"
	"github.com/oggyb/messages-api/internal/db/gormdb"
	"github.com/oggyb/messages-api/internal/handler"
	"github.com/oggyb/messages-api/internal/objectstore"
	"github.com/oggyb/messages-api/internal/objectstore/redis"
	"github.com/oggyb/messages-api/internal/objectstore/s3store"
	mesgRepo "github.com/oggyb/messages-api/internal/repository/gorm/message"
	routes "github.com/oggyb/messages-api/internal/router"
	"github.com/oggyb/messages-api/internal/server"
	"github.com/oggyb/messages-api/internal/service"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title       Messages API
// @version     1.0
// @description Paginated message listing and object store timestamp endpoints.
// @BasePath    /
func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()

	// Init DB.
	db, err := gormdb.New(cfg.PostgresDSN(), cfg.DB.MaxOpenConns)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	// Ping DB.
	pingCtx, cancelPing := context.WithTimeout(rootCtx, 5*time.Second)
	if err := db.Ping(pingCtx); err != nil {
		cancelPing()
		log.Fatalf("failed to ping db: %v", err)
	}
	cancelPing()

	// Init object store.
	store, err := newObjectStore(cfg)
	if err != nil {
		log.Fatalf("failed to init object store: %v", err)
	}
	defer closeObjectStore(store)

	// The bucket may already exist or the store may still be starting; the
	// timestamp endpoints report their own errors later, so only log here.
	bucketCtx, cancelBucket := context.WithTimeout(rootCtx, cfg.S3.Timeout)
	if err := store.EnsureBucket(bucketCtx, cfg.S3.Bucket); err != nil {
		log.Printf("[Main] Could not ensure bucket %q: %v", cfg.S3.Bucket, err)
	} else {
		log.Printf("[Main] Bucket %q ready (driver=%s).", cfg.S3.Bucket, cfg.ObjectStore.Driver)
	}
	cancelBucket()

	// Init repository and services.
	msgRepository := mesgRepo.NewRepository(db)
	msgSvc := service.NewMessageService(msgRepository)
	tsSvc := service.NewTimestampService(store, cfg.S3.Bucket, cfg.S3.Key)

	// HTTP dependencies & server wiring.
	deps := routes.AppDeps{
		Home:      handler.NewHomeHandler(),
		Message:   handler.NewMessageHandler(msgSvc),
		Timestamp: handler.NewTimestampHandler(tsSvc),
	}

	addr := cfg.Addr()
	srv := server.New(addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("HTTP server listening on %s", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Println("[Main] Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("[Main] Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP server graceful shutdown failed: %v", err)
	} else {
		log.Println("[Main] HTTP server stopped.")
	}

	log.Println("[Main] Shutdown complete.")
}

// newObjectStore picks the backend named by OBJECT_STORE_DRIVER.
func newObjectStore(cfg *config.Config) (objectstore.Store, error) {
	switch cfg.ObjectStore.Driver {
	case config.DriverS3:
		log.Printf("[Main] Using S3 endpoint %s", cfg.S3.Endpoint)
		return s3store.New(s3store.Options{
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Timeout:         cfg.S3.Timeout,
		}), nil
	case config.DriverRedis:
		log.Printf("[Main] Using Redis object store at %s", cfg.Redis.Addr)
		return redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), nil
	default:
		return nil, errors.New("unknown OBJECT_STORE_DRIVER " + cfg.ObjectStore.Driver)
	}
}

// closeObjectStore releases backends that hold a connection pool.
func closeObjectStore(store objectstore.Store) {
	c, ok := store.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		log.Printf("[Main] Object store close failed: %v", err)
		return
	}
	log.Println("[Main] Object store closed.")
}
