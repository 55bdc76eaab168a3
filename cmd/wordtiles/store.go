package main

import (
	"context"
	"strings"

	"wordtiles/internal/database"
	"wordtiles/internal/lexicon"
	"wordtiles/internal/repository"
	"wordtiles/internal/service"
	"wordtiles/internal/source"
)

// openStore opens and migrates the configured database
func openStore(ctx context.Context) (*database.DB, *repository.DictionaryRepository, error) {
	db, err := database.InitializeWithConfig(appConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := db.RunMigrations(ctx, appConfig.MigrationsPath); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, repository.NewDictionaryRepository(db), nil
}

// loadText reads a word list from uri. A "db:" uri opens the database.
func loadText(ctx context.Context, uri string) (string, error) {
	opts := source.Options{AWSRegion: appConfig.AWSRegion}
	if strings.HasPrefix(uri, "db:") {
		db, repo, err := openStore(ctx)
		if err != nil {
			return "", err
		}
		defer db.Close()
		opts.Store = repo
	}

	src, err := source.Open(ctx, uri, opts)
	if err != nil {
		return "", err
	}
	return src.Load(ctx)
}

// playService builds a play service over the dictionary at uri. An empty
// uri means the stored default dictionary.
func playService(ctx context.Context, uri string) (*service.PlayService, error) {
	if uri == "" {
		uri = "db:" + appConfig.DefaultDictionary
	}

	text, err := loadText(ctx, uri)
	if err != nil {
		return nil, err
	}

	registry := service.NewRegistry("")
	registry.Add(uri, lexicon.BuildFromText(text))
	return service.NewPlayService(registry, service.PlayLimits{
		MaxWordLength: appConfig.MaxWordLength,
		MaxTrayLength: appConfig.MaxTrayLength,
		Workers:       appConfig.SuggestWorkers,
	}), nil
}
