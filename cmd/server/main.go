package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordtiles/internal/config"
	"wordtiles/internal/database"
	"wordtiles/internal/handlers"
	"wordtiles/internal/logging"
	"wordtiles/internal/repository"
	"wordtiles/internal/security"
	"wordtiles/internal/service"
	"wordtiles/internal/source"
	"wordtiles/internal/version"
)

const (
	stepDatabase     = "Database connection"
	stepMigrations   = "Running migrations"
	stepSeed         = "Seeding dictionaries"
	stepDictionaries = "Loading dictionaries"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := logging.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		logging.Fatal().Err(err).Msg("Failed to configure logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startup := handlers.NewStartupStatus(stepDatabase, stepMigrations, stepSeed, stepDictionaries)

	// Serve health and readiness while dictionaries load
	registry := service.NewRegistry(cfg.DefaultDictionary)
	var limiter *security.RateLimiter
	if cfg.RateLimitRequests > 0 {
		limiter = security.NewRateLimiter(ctx, cfg.RateLimitRequests, cfg.RateLimitWindow)
	}
	var tokens *security.TokenManager
	if cfg.TokenSecret != "" {
		tokens = security.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	} else {
		logging.Warn().Msg("TOKEN_SECRET is not set, API authentication is disabled")
	}

	play := service.NewPlayService(registry, service.PlayLimits{
		MaxWordLength: cfg.MaxWordLength,
		MaxTrayLength: cfg.MaxTrayLength,
		Workers:       cfg.SuggestWorkers,
	})

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux,
		handlers.NewMiddleware(limiter, tokens),
		startup,
		handlers.NewDictionaryHandler(registry),
		handlers.NewPlayHandler(play),
	)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handlers.Logging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", addr).Str("version", version.Version).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Server failed")
		}
	}()

	db, err := initialize(ctx, cfg, startup, registry)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to start")
	}
	defer db.Close()

	startup.MarkReady()
	logging.Info().Strs("dictionaries", registry.Names()).Msg("Server ready")

	// Wait for interrupt signal
	<-ctx.Done()
	logging.Info().Msg("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Server shutdown failed")
	}
}

// initialize opens the database, seeds missing dictionaries and loads the
// served ones into the registry
func initialize(ctx context.Context, cfg *config.Config, startup *handlers.StartupStatus, registry *service.Registry) (*database.DB, error) {
	startup.SetCurrentStep(stepDatabase)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("type", cfg.DatabaseType).Msg("Database connection established")
	startup.CompleteStep(stepDatabase)

	startup.SetCurrentStep(stepMigrations)
	if err := db.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, err
	}
	startup.CompleteStep(stepMigrations)

	repo := repository.NewDictionaryRepository(db)
	dicts := service.NewDictionaryService(repo)

	startup.SetCurrentStep(stepSeed)
	for name, uri := range cfg.DictionarySeed {
		if err := seedDictionary(ctx, dicts, repo, cfg, name, uri); err != nil {
			logging.Warn().Err(err).Str("dictionary", name).Str("source", uri).Msg("Failed to seed dictionary")
		}
	}
	startup.CompleteStep(stepSeed)

	startup.SetCurrentStep(stepDictionaries)
	if err := registry.LoadAll(ctx, dicts, cfg.Dictionaries); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := registry.Get(""); err != nil {
		logging.Warn().Str("dictionary", cfg.DefaultDictionary).Msg("Default dictionary is not loaded")
	}
	startup.CompleteStep(stepDictionaries)

	return db, nil
}

func seedDictionary(ctx context.Context, dicts *service.DictionaryService, repo *repository.DictionaryRepository, cfg *config.Config, name, uri string) error {
	existing, err := repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	src, err := source.Open(ctx, uri, source.Options{Store: repo, AWSRegion: cfg.AWSRegion})
	if err != nil {
		return err
	}
	text, err := src.Load(ctx)
	if err != nil {
		return err
	}
	_, err = dicts.Import(ctx, name, text)
	return err
}
