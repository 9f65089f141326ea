package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rana718/salesgen/internal/config"
	"github.com/Rana718/salesgen/internal/schema"
	"github.com/Rana718/salesgen/internal/types"
	"gopkg.in/yaml.v3"
)

// Questions are the analytical questions the dataset is shaped to answer.
var Questions = []string{
	"Which product category generated the most revenue in Q2 of 2024?",
	"List the top 5 customers by total spend in the last year.",
	"Show the month-over-month growth in total orders for the Electronics category.",
	"Which region had the lowest average order value in 2024?",
	"Find all customers who bought a Laptop but never a Smartphone.",
}

const quickstartQuery = `SELECT category, SUM(revenue)
FROM Order_Items oi JOIN Products p USING(product_id)
GROUP BY category ORDER BY 2 DESC LIMIT 5;`

type frontMatter struct {
	Title         string   `yaml:"title"`
	Database      string   `yaml:"database"`
	Seed          int64    `yaml:"seed"`
	StartDate     string   `yaml:"start_date"`
	EndDate       string   `yaml:"end_date"`
	Customers     int      `yaml:"customers"`
	Products      int      `yaml:"products"`
	Orders        int      `yaml:"orders"`
	ItemsPerOrder string   `yaml:"items_per_order"`
	Categories    []string `yaml:"categories"`
	Regions       []string `yaml:"regions"`
}

// Document renders the markdown description of a dataset generated with cfg.
func Document(cfg *config.Config) (string, error) {
	dbName := filepath.Base(cfg.DBPath)

	meta, err := yaml.Marshal(&frontMatter{
		Title:         "Synthetic Sales SQLite Database",
		Database:      dbName,
		Seed:          cfg.Seed,
		StartDate:     cfg.StartDate,
		EndDate:       cfg.EndDate,
		Customers:     cfg.Customers,
		Products:      cfg.Products,
		Orders:        cfg.Orders,
		ItemsPerOrder: fmt.Sprintf("%d-%d", cfg.MinItems, cfg.MaxItems),
		Categories:    cfg.CategoryNames(),
		Regions:       cfg.Regions,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")

	b.WriteString("# Synthetic Sales SQLite Database\n\n")
	fmt.Fprintf(&b, "This artifact is a single-file SQLite database **%s** with %d tables.\n\n", dbName, len(schema.Tables()))

	b.WriteString("## Schema\n")
	for _, table := range schema.Tables() {
		writeTable(&b, table)
	}

	b.WriteString("\n## Notes\n\n")
	fmt.Fprintf(&b, "- Data is synthetic and reproducible (seed=%d).\n", cfg.Seed)
	fmt.Fprintf(&b, "- Date range: %s to %s, biased toward more recent months.\n", cfg.StartDate, cfg.EndDate)
	fmt.Fprintf(&b, "- Regions: %s.\n", strings.Join(cfg.Regions, ", "))
	fmt.Fprintf(&b, "- Categories: %s.\n", strings.Join(cfg.CategoryNames(), ", "))
	fmt.Fprintf(&b, "- Sizes: Customers=%d, Products=%d, Orders=%d, Items per order %d-%d.\n",
		cfg.Customers, cfg.Products, cfg.Orders, cfg.MinItems, cfg.MaxItems)
	b.WriteString("- Order totals always equal the rounded sum of their line revenues.\n")

	b.WriteString("\n## Quickstart (SQL)\n\n")
	fmt.Fprintf(&b, "```sh\nsqlite3 %s\n```\n\n", dbName)
	fmt.Fprintf(&b, "```sql\n%s\n```\n", quickstartQuery)

	b.WriteString("\n## Example NL Questions\n\n")
	for _, q := range Questions {
		fmt.Fprintf(&b, "- %q\n", q)
	}

	return b.String(), nil
}

func writeTable(b *strings.Builder, table types.SchemaTable) {
	fmt.Fprintf(b, "\n**%s**\n", table.Name)
	for _, col := range table.Columns {
		fmt.Fprintf(b, "- %s (%s)\n", col.Name, describeColumn(col))
	}
	if len(table.Indexes) > 0 {
		names := make([]string, len(table.Indexes))
		for i, idx := range table.Indexes {
			names[i] = fmt.Sprintf("%s(%s)", idx.Name, strings.Join(idx.Columns, ", "))
		}
		fmt.Fprintf(b, "- indexes: %s\n", strings.Join(names, ", "))
	}
}

func describeColumn(col types.SchemaColumn) string {
	parts := []string{col.Type}
	if col.ForeignKeyTable != "" {
		parts = append(parts, fmt.Sprintf("FK -> %s.%s", col.ForeignKeyTable, col.ForeignKeyColumn))
	}
	if col.Note != "" {
		parts = append(parts, col.Note)
	}
	return strings.Join(parts, ", ")
}

// Write stores the document at path.
func Write(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
