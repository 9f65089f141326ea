package report

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Rana718/salesgen/internal/database/common"
	"github.com/Rana718/salesgen/internal/schema"
	"github.com/fatih/color"
)

// Source reads ordered, bounded slices of a table.
type Source interface {
	Preview(ctx context.Context, table string, orderBy []string, limit int) (*common.QueryResult, error)
}

type section struct {
	title   string
	table   string
	orderBy []string
}

func sections(n int) []section {
	return []section{
		{title: "Customers (preview)", table: schema.Customers, orderBy: []string{"rowid"}},
		{title: "Products (preview)", table: schema.Products, orderBy: []string{"rowid"}},
		{title: fmt.Sprintf("Orders (recent %d)", n), table: schema.Orders, orderBy: []string{"order_date DESC", "order_id"}},
		{title: "Order_Items (preview)", table: schema.OrderItems, orderBy: []string{"rowid"}},
	}
}

// Preview prints the first n rows of each table, and the n most recent
// orders, as aligned columns.
func Preview(ctx context.Context, w io.Writer, src Source, n int) error {
	heading := color.New(color.FgCyan, color.Bold)

	for i, sec := range sections(n) {
		result, err := src.Preview(ctx, sec.table, sec.orderBy, n)
		if err != nil {
			return fmt.Errorf("failed to preview %s: %w", sec.table, err)
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		heading.Fprintf(w, "%s:\n", sec.title)
		if len(result.Rows) == 0 {
			fmt.Fprintln(w, "(no rows)")
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, strings.Join(result.Columns, "\t"))
		for _, row := range result.Rows {
			cells := make([]string, len(result.Columns))
			for j, col := range result.Columns {
				cells[j] = formatCell(row[col])
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	default:
		return fmt.Sprint(val)
	}
}
