package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Rana718/salesgen/internal/database/common"
	"github.com/Rana718/salesgen/internal/types"
)

// GetCurrentSchema reads table, column and index definitions back from the file.
func (s *Store) GetCurrentSchema(ctx context.Context) ([]types.SchemaTable, error) {
	tableNames, err := s.GetAllTableNames(ctx)
	if err != nil {
		return nil, err
	}

	tables := make([]types.SchemaTable, 0, len(tableNames))
	for _, name := range tableNames {
		columns, err := s.GetTableColumns(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", name, err)
		}
		indexes, err := s.GetTableIndexes(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get indexes for table %s: %w", name, err)
		}
		tables = append(tables, types.SchemaTable{
			Name:    name,
			Columns: columns,
			Indexes: indexes,
		})
	}
	return tables, nil
}

func (s *Store) GetTableColumns(ctx context.Context, tableName string) ([]types.SchemaColumn, error) {
	// PRAGMA arguments cannot be bound
	if err := common.ValidateIdentifier(tableName); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(\"%s\")", tableName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []types.SchemaColumn
	for rows.Next() {
		var cid int
		var column types.SchemaColumn
		var notNull int
		var defaultValue sql.NullString
		var pk int

		if err := rows.Scan(&cid, &column.Name, &column.Type, &notNull, &defaultValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		column.Nullable = notNull == 0 && pk == 0
		column.IsPrimary = pk > 0
		columns = append(columns, column)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	fkRows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA foreign_key_list(\"%s\")", tableName))
	if err != nil {
		return nil, err
	}
	defer fkRows.Close()

	for fkRows.Next() {
		var id, seq int
		var table, from, to, onUpdate, onDelete, match string
		if err := fkRows.Scan(&id, &seq, &table, &from, &to, &onUpdate, &onDelete, &match); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}
		for i := range columns {
			if columns[i].Name == from {
				columns[i].ForeignKeyTable = table
				columns[i].ForeignKeyColumn = to
				break
			}
		}
	}
	return columns, fkRows.Err()
}

func (s *Store) GetTableIndexes(ctx context.Context, tableName string) ([]types.SchemaIndex, error) {
	if err := common.ValidateIdentifier(tableName); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA index_list(\"%s\")", tableName))
	if err != nil {
		return nil, err
	}

	type indexInfo struct {
		name   string
		unique bool
	}
	var infos []indexInfo
	for rows.Next() {
		var seq int
		var indexName string
		var unique int
		var origin, partial string

		if err := rows.Scan(&seq, &indexName, &unique, &origin, &partial); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan index: %w", err)
		}
		// skip automatic primary key indexes
		if origin == "pk" {
			continue
		}
		infos = append(infos, indexInfo{name: indexName, unique: unique == 1})
	}
	rows.Close()

	var indexes []types.SchemaIndex
	for _, info := range infos {
		columns, err := s.getIndexColumns(ctx, info.name)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, types.SchemaIndex{
			Name:    info.name,
			Table:   tableName,
			Columns: columns,
			Unique:  info.unique,
		})
	}
	return indexes, nil
}

func (s *Store) getIndexColumns(ctx context.Context, indexName string) ([]string, error) {
	if err := common.ValidateIdentifier(indexName); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA index_info(\"%s\")", indexName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var seqno, cid int
		var name string
		if err := rows.Scan(&seqno, &cid, &name); err != nil {
			return nil, fmt.Errorf("failed to scan index column: %w", err)
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}
