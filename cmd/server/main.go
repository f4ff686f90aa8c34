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

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"lexdraft/internal/config"
	"lexdraft/internal/domain"
	"lexdraft/internal/extractor"
	_ "lexdraft/internal/extractor/claude"
	_ "lexdraft/internal/extractor/gemini"
	_ "lexdraft/internal/extractor/openai"
	_ "lexdraft/internal/extractor/remote"
	"lexdraft/internal/handler"
	"lexdraft/internal/logging"
	"lexdraft/internal/port"
	"lexdraft/internal/profilestore"
	"lexdraft/internal/repository/memory"
	"lexdraft/internal/repository/postgres"
	"lexdraft/internal/repository/sqlite"
	"lexdraft/internal/router"
	"lexdraft/internal/service"
	s3storage "lexdraft/internal/storage/s3"
)

// @title lexdraft API
// @version 1.0
// @description Bilingual legal document extraction, review and drafting.
// @BasePath /api/v1
// @securityDefinitions.apikey ClientKey
// @in header
// @name X-Client-ID
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	extractionRepo := postgres.NewExtractionRepo(db)
	draftRepo := postgres.NewDraftRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewClient(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize extraction providers
	source, err := extractor.NewFromConfig(&cfg.Extractor, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	checks := map[string]handler.CheckFunc{
		"database": db.PingContext,
		"storage":  func(ctx context.Context) error { return s3Client.Ping(ctx, cfg.S3.Bucket) },
	}

	kv, closeKV, err := profileBackend(cfg.Profiles, db, logger, checks)
	if err != nil {
		return err
	}
	defer closeKV()
	profiles := profilestore.NewKeyedStore(kv, cfg.Profiles.KeyPrefix)

	// Initialize services
	extractionSvc := service.NewExtractionService(extractionRepo, s3Client, source, &cfg.S3, logger)
	draftSvc := service.NewDraftService(draftRepo, profiles, logger)
	profileSvc := service.NewProfileService(profiles, logger)
	reviewSvc := service.NewReviewService(extractionRepo, draftSvc, cfg.Review, logger)

	// Setup router
	r := router.Setup(cfg, router.Handlers{
		Extraction: handler.NewExtractionHandler(extractionSvc),
		Draft:      handler.NewDraftHandler(draftSvc),
		Review:     handler.NewReviewHandler(reviewSvc),
		Profile:    handler.NewProfileHandler(profileSvc),
		Health:     handler.NewHealthHandler(checks),
	}, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Server.Environment),
			zap.Strings("providers", extractor.Providers()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// profileBackend opens the key-value store saved profiles are kept in.
func profileBackend(cfg config.ProfilesConfig, db *sqlx.DB, logger *zap.Logger, checks map[string]handler.CheckFunc) (port.KeyValueStore, func(), error) {
	switch domain.ProfileBackend(cfg.Backend) {
	case domain.ProfileBackendSQLite:
		store, err := sqlite.Open(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open profile store: %w", err)
		}
		checks["profiles"] = store.Ping
		return store, func() { _ = store.Close() }, nil
	case domain.ProfileBackendMemory:
		logger.Warn("saved profiles are kept in memory and will not survive a restart")
		return memory.NewKVStore(), func() {}, nil
	case domain.ProfileBackendPostgres, "":
		return postgres.NewKVStore(db), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown profile backend: %s", cfg.Backend)
	}
}
