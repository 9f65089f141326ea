package seeder

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Rana718/salesgen/internal/config"
	"github.com/Rana718/salesgen/internal/database/sqlite"
	"github.com/Rana718/salesgen/internal/schema"
	"github.com/fatih/color"
)

type Seeder struct {
	config    *config.Config
	generator *Generator
}

// NewSeeder validates cfg before anything touches the filesystem.
func NewSeeder(cfg *config.Config) (*Seeder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	generator, err := NewGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create data generator: %w", err)
	}

	return &Seeder{
		config:    cfg,
		generator: generator,
	}, nil
}

// Seed generates the dataset and writes it to a freshly recreated store at
// the configured path. When the schema cannot be created or verified, or the
// load fails, the partial store is removed before the error is returned.
func (s *Seeder) Seed(ctx context.Context) (*Result, error) {
	started := time.Now()
	color.Cyan("🌱 Generating sales dataset (seed %d)...", s.config.Seed)

	ds, err := s.generator.Generate()
	if err != nil {
		return nil, err
	}
	color.Green("📊 Generated %d customers, %d products, %d orders, %d order items",
		len(ds.Customers), len(ds.Products), len(ds.Orders), len(ds.Items))

	statements, err := schema.DDL()
	if err != nil {
		return nil, err
	}
	order, err := schema.CreationOrder()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(order))
	for i, table := range order {
		names[i] = table.Name
	}
	color.Cyan("📋 Creation order: %s", strings.Join(names, " → "))

	store, err := sqlite.Recreate(s.config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to recreate store: %w", err)
	}

	inserted, err := s.persist(ctx, store, statements, ds)
	if err != nil {
		color.Yellow("🔄 Removing partial store %s", store.Path())
		if discardErr := store.Discard(); discardErr != nil {
			log.Printf("Warning: failed to remove partial store: %v", discardErr)
		}
		return nil, err
	}
	if err := store.Close(); err != nil {
		return nil, fmt.Errorf("failed to close store: %w", err)
	}

	color.Green("✅ Wrote %s", s.config.DBPath)
	return &Result{
		Dataset:  ds,
		Inserted: inserted,
		Path:     s.config.DBPath,
		Duration: time.Since(started),
	}, nil
}

func (s *Seeder) persist(ctx context.Context, store *sqlite.Store, statements []string, ds *Dataset) (map[string]int, error) {
	if err := store.CreateSchema(ctx, statements); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := verifySchema(ctx, store); err != nil {
		return nil, err
	}
	color.Cyan("🔒 Loading in one transaction (batches of %d)", s.config.BatchSize)

	inserted, err := store.Load(ctx, ds, s.config.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return inserted, nil
}

// verifySchema reads the tables back from the store and compares them with
// the declared schema.
func verifySchema(ctx context.Context, store SchemaReader) error {
	tables, err := store.GetCurrentSchema(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema back: %w", err)
	}
	if err := schema.Check(tables); err != nil {
		return err
	}
	color.Green("🔍 Verified %d tables with their keys and indexes", len(tables))
	return nil
}
