package cmd

import (
	"context"
	"fmt"

	"customer-importer/core/config"
	"customer-importer/core/database"
	"customer-importer/core/logger"
	"customer-importer/feature/customers/store"

	"go.uber.org/zap"
)

// deps is what every command needs before doing its own work.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
}

// bootstrap loads and validates configuration, builds the logger and opens
// the database. The customers table is migrated when migrate is set.
func bootstrap(cfg *config.Config, migrate bool) (*deps, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	s := store.New(db)
	if migrate {
		if err := s.Migrate(context.Background()); err != nil {
			return nil, err
		}
	}

	return &deps{cfg: cfg, logger: logg, store: s}, nil
}
