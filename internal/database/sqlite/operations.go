package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Rana718/salesgen/internal/database/common"
	"github.com/Rana718/salesgen/internal/schema"
)

func (s *Store) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := s.qb.Select("name").From("sqlite_master").
		Where("type = 'table' AND name NOT LIKE 'sqlite_%'").
		OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, tableName)
	}
	return tables, rows.Err()
}

func (s *Store) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return 0, err
	}

	query, args, err := s.qb.Select("COUNT(*)").From(tableName).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", tableName, err)
	}
	return count, nil
}

func (s *Store) GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error) {
	counts := make(map[string]int, len(tableNames))
	for _, name := range tableNames {
		count, err := s.GetTableRowCount(ctx, name)
		if err != nil {
			return nil, err
		}
		counts[name] = count
	}
	return counts, nil
}

// GetTableData returns every row of a table in insertion order.
func (s *Store) GetTableData(ctx context.Context, tableName string) (*common.QueryResult, error) {
	return s.selectRows(ctx, tableName, []string{"rowid"}, 0)
}

// Preview returns at most limit rows of a table ordered by orderBy.
func (s *Store) Preview(ctx context.Context, tableName string, orderBy []string, limit int) (*common.QueryResult, error) {
	if limit <= 0 {
		return &common.QueryResult{}, nil
	}
	return s.selectRows(ctx, tableName, orderBy, limit)
}

// CategoryPriceTotals sums product prices per category.
func (s *Store) CategoryPriceTotals(ctx context.Context) (map[string]float64, error) {
	query, args, err := s.qb.Select("category", "SUM(price)").
		From(schema.Products).GroupBy("category").OrderBy("category").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to total prices: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan price total: %w", err)
		}
		totals[category] = total
	}
	return totals, rows.Err()
}

func (s *Store) selectRows(ctx context.Context, tableName string, orderBy []string, limit int) (*common.QueryResult, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return nil, err
	}

	builder := s.qb.Select("*").From(tableName).OrderBy(orderBy...)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", tableName, err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func scanRows(rows *sql.Rows) (*common.QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var results []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range columns {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			row[col] = common.FormatValue(values[i])
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return &common.QueryResult{
		Columns: columns,
		Rows:    results,
	}, nil
}
