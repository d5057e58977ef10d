package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/benkyo-app/benkyo/internal/config"
	"github.com/benkyo-app/benkyo/internal/database"
	"github.com/benkyo-app/benkyo/internal/flashcard"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Connect() > %w", err)
	}
	return db, nil
}

func newFlashcardService(db *sqlx.DB, cfg *config.Config) *flashcard.Service {
	return flashcard.NewService(flashcard.NewDBCardRepository(db), cfg.SRS)
}
