package sqlite

import (
	"context"
	"fmt"

	"github.com/Rana718/salesgen/internal/schema"
	"github.com/Rana718/salesgen/internal/types"
)

// Load inserts the whole dataset inside one transaction using multi-row
// INSERT statements of at most batchSize rows. Nothing is committed unless
// every table loads.
func (s *Store) Load(ctx context.Context, ds *types.Dataset, batchSize int) (map[string]int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}

	tables, err := schema.CreationOrder()
	if err != nil {
		return nil, err
	}
	rows := datasetRows(ds)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := make(map[string]int, len(tables))
	for _, table := range tables {
		tableRows := rows[table.Name]
		for startIdx := 0; startIdx < len(tableRows); startIdx += batchSize {
			endIdx := startIdx + batchSize
			if endIdx > len(tableRows) {
				endIdx = len(tableRows)
			}

			insert := s.qb.Insert(table.Name).Columns(table.ColumnNames()...)
			for _, row := range tableRows[startIdx:endIdx] {
				insert = insert.Values(row...)
			}

			query, args, err := insert.ToSql()
			if err != nil {
				return nil, fmt.Errorf("failed to build insert for %s: %w", table.Name, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return nil, fmt.Errorf("failed to insert into %s: %w", table.Name, err)
			}
		}
		inserted[table.Name] = len(tableRows)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit load transaction: %w", err)
	}
	return inserted, nil
}

// datasetRows flattens the dataset into column-ordered values per table.
func datasetRows(ds *types.Dataset) map[string][][]interface{} {
	customers := make([][]interface{}, len(ds.Customers))
	for i, c := range ds.Customers {
		customers[i] = []interface{}{c.ID, c.Name, c.Region}
	}

	products := make([][]interface{}, len(ds.Products))
	for i, p := range ds.Products {
		products[i] = []interface{}{p.ID, p.Name, p.Category, p.Price}
	}

	orders := make([][]interface{}, len(ds.Orders))
	for i, o := range ds.Orders {
		orders[i] = []interface{}{o.ID, o.CustomerID, o.Date(), o.TotalAmount}
	}

	items := make([][]interface{}, len(ds.Items))
	for i, it := range ds.Items {
		items[i] = []interface{}{it.OrderID, it.ProductID, it.Quantity, it.Revenue}
	}

	return map[string][][]interface{}{
		schema.Customers:  customers,
		schema.Products:   products,
		schema.Orders:     orders,
		schema.OrderItems: items,
	}
}
