package schema

import (
	"fmt"
	"strings"

	"github.com/Rana718/salesgen/internal/types"
)

const (
	Customers  = "Customers"
	Products   = "Products"
	Orders     = "Orders"
	OrderItems = "Order_Items"
)

// Tables returns the sales schema in declaration order.
func Tables() []types.SchemaTable {
	return []types.SchemaTable{
		{
			Name:        Customers,
			Description: "one row per customer",
			Columns: []types.SchemaColumn{
				{Name: "customer_id", Type: "TEXT", IsPrimary: true, Note: "UUID primary key"},
				{Name: "name", Type: "TEXT"},
				{Name: "region", Type: "TEXT"},
			},
			Indexes: []types.SchemaIndex{
				{Name: "idx_customers_region", Table: Customers, Columns: []string{"region"}},
			},
		},
		{
			Name:        Products,
			Description: "one row per product",
			Columns: []types.SchemaColumn{
				{Name: "product_id", Type: "TEXT", IsPrimary: true, Note: "UUID primary key"},
				{Name: "name", Type: "TEXT"},
				{Name: "category", Type: "TEXT"},
				{Name: "price", Type: "REAL"},
			},
			Indexes: []types.SchemaIndex{
				{Name: "idx_products_category", Table: Products, Columns: []string{"category"}},
			},
		},
		{
			Name:        Orders,
			Description: "one row per order",
			Columns: []types.SchemaColumn{
				{Name: "order_id", Type: "TEXT", IsPrimary: true, Note: "UUID primary key"},
				{Name: "customer_id", Type: "TEXT", ForeignKeyTable: Customers, ForeignKeyColumn: "customer_id"},
				{Name: "order_date", Type: "TEXT", Note: "ISO date YYYY-MM-DD"},
				{Name: "total_amount", Type: "REAL"},
			},
			Indexes: []types.SchemaIndex{
				{Name: "idx_orders_customer_date", Table: Orders, Columns: []string{"customer_id", "order_date"}},
			},
		},
		{
			Name:        OrderItems,
			Description: "one row per order line",
			Columns: []types.SchemaColumn{
				{Name: "order_id", Type: "TEXT", ForeignKeyTable: Orders, ForeignKeyColumn: "order_id"},
				{Name: "product_id", Type: "TEXT", ForeignKeyTable: Products, ForeignKeyColumn: "product_id"},
				{Name: "quantity", Type: "INTEGER"},
				{Name: "revenue", Type: "REAL"},
			},
			Indexes: []types.SchemaIndex{
				{Name: "idx_items_order", Table: OrderItems, Columns: []string{"order_id"}},
				{Name: "idx_items_product", Table: OrderItems, Columns: []string{"product_id"}},
			},
		},
	}
}

// Table looks up a table definition by name.
func Table(name string) (types.SchemaTable, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return types.SchemaTable{}, false
}

// DDL renders every CREATE TABLE statement, in dependency order, followed by
// the secondary indexes.
func DDL() ([]string, error) {
	ordered, err := CreationOrder()
	if err != nil {
		return nil, err
	}

	var statements []string
	for _, table := range ordered {
		statements = append(statements, CreateTableSQL(table))
	}
	for _, table := range ordered {
		for _, index := range table.Indexes {
			statements = append(statements, CreateIndexSQL(index))
		}
	}
	return statements, nil
}

// CreationOrder returns the tables with referenced tables first.
func CreationOrder() ([]types.SchemaTable, error) {
	graph := NewDependencyGraph()
	for _, table := range Tables() {
		graph.AddTable(table)
	}

	names, err := graph.BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to order tables: %w", err)
	}

	ordered := make([]types.SchemaTable, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, graph.Table(name))
	}
	return ordered, nil
}

func CreateTableSQL(table types.SchemaTable) string {
	var builder strings.Builder
	var foreignKeys []string

	builder.WriteString(fmt.Sprintf("CREATE TABLE %s (\n", table.Name))

	for i, column := range table.Columns {
		if i > 0 {
			builder.WriteString(",\n")
		}
		builder.WriteString(fmt.Sprintf("    %s %s", column.Name, formatColumnType(column)))

		if column.ForeignKeyTable != "" && column.ForeignKeyColumn != "" {
			foreignKeys = append(foreignKeys, fmt.Sprintf("FOREIGN KEY(%s) REFERENCES %s(%s)",
				column.Name, column.ForeignKeyTable, column.ForeignKeyColumn))
		}
	}

	for _, fk := range foreignKeys {
		builder.WriteString(",\n    ")
		builder.WriteString(fk)
	}

	builder.WriteString("\n);")
	return builder.String()
}

func CreateIndexSQL(index types.SchemaIndex) string {
	uniqueStr := ""
	if index.Unique {
		uniqueStr = "UNIQUE "
	}
	return fmt.Sprintf("CREATE %sINDEX %s ON %s(%s);",
		uniqueStr, index.Name, index.Table, strings.Join(index.Columns, ", "))
}

func formatColumnType(column types.SchemaColumn) string {
	if column.IsPrimary {
		return column.Type + " PRIMARY KEY"
	}
	if !column.Nullable {
		return column.Type + " NOT NULL"
	}
	return column.Type
}
