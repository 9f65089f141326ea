package types

import (
	"time"
)

// DateLayout is the on-disk representation of an order date.
const DateLayout = "2006-01-02"

type Customer struct {
	ID     string `json:"customer_id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

type Product struct {
	ID       string  `json:"product_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID          string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount float64   `json:"total_amount"`
}

// Date returns the order date in DateLayout.
func (o Order) Date() string {
	return o.OrderDate.Format(DateLayout)
}

type OrderItem struct {
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// Dataset is everything produced by one generation run.
type Dataset struct {
	Customers []Customer
	Products  []Product
	Orders    []Order
	Items     []OrderItem
}

type SchemaTable struct {
	Name        string
	Description string
	Columns     []SchemaColumn
	Indexes     []SchemaIndex
}

// Dependencies lists the tables referenced by foreign keys, excluding self references.
func (t SchemaTable) Dependencies() []string {
	var deps []string
	for _, col := range t.Columns {
		if col.ForeignKeyTable != "" && col.ForeignKeyTable != t.Name {
			deps = append(deps, col.ForeignKeyTable)
		}
	}
	return deps
}

// ColumnNames returns the column names in declaration order.
func (t SchemaTable) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

type SchemaColumn struct {
	Name             string
	Type             string
	Nullable         bool
	IsPrimary        bool
	ForeignKeyTable  string
	ForeignKeyColumn string
	Note             string
}

type SchemaIndex struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}

type ExportData struct {
	Timestamp string                 `json:"timestamp"`
	Version   string                 `json:"version"`
	Tables    map[string]interface{} `json:"tables"`
	Comment   string                 `json:"comment"`
}
