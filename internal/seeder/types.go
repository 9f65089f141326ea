package seeder

import (
	"context"
	"time"

	"github.com/Rana718/salesgen/internal/types"
)

type Dataset = types.Dataset

// Result describes one successful Seed call.
type Result struct {
	Dataset  *Dataset
	Inserted map[string]int // table -> rows written
	Path     string
	Duration time.Duration
}

// Total returns the number of rows written across all tables.
func (r *Result) Total() int {
	total := 0
	for _, n := range r.Inserted {
		total += n
	}
	return total
}

// SchemaReader reads table definitions back from a store.
type SchemaReader interface {
	GetCurrentSchema(ctx context.Context) ([]types.SchemaTable, error)
}
