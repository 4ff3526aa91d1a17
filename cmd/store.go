package cmd

import (
	"context"
	"fmt"

	corecatalog "craft-calculator/core/catalog"
	"craft-calculator/core/config"
	"craft-calculator/core/database"
	"craft-calculator/core/storage"

	"go.uber.org/zap"
)

// buildStore constructs the catalog store backend selected in the
// configuration.
func buildStore(cfg *config.Config, logg *zap.Logger) (corecatalog.Store, error) {
	switch cfg.Catalog.Store {
	case corecatalog.StoreFile, "":
		return corecatalog.NewFileStore(cfg.Catalog.Path), nil

	case corecatalog.StoreObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("creating storage client: %w", err)
		}
		if err := storage.EnsureBucket(context.Background(), client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
		logg.Info("Catalog bucket ready", zap.String("bucket", cfg.Storage.Bucket))
		return corecatalog.NewObjectStore(client, cfg.Storage.Bucket, cfg.Catalog.Object), nil

	case corecatalog.StoreDB:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting database: %w", err)
		}
		logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
		return corecatalog.NewDBStore(db)

	default:
		return nil, fmt.Errorf("unknown catalog store backend %q", cfg.Catalog.Store)
	}
}
