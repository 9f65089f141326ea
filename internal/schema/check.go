package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Rana718/salesgen/internal/types"
)

// ErrSchemaMismatch is returned by Check when a store does not carry the
// declared tables, keys and indexes.
var ErrSchemaMismatch = errors.New("schema mismatch")

// Check compares tables read back from a store against Tables().
func Check(got []types.SchemaTable) error {
	var problems []string
	fail := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	seen := make(map[string]bool, len(got))
	for _, actual := range got {
		seen[actual.Name] = true
		expected, ok := Table(actual.Name)
		if !ok {
			fail("unexpected table %s", actual.Name)
			continue
		}
		checkColumns(expected, actual, fail)
		checkIndexes(expected, actual, fail)
	}
	for _, table := range Tables() {
		if !seen[table.Name] {
			fail("missing table %s", table.Name)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(problems, "; "))
	}
	return nil
}

func checkColumns(expected, actual types.SchemaTable, fail func(string, ...interface{})) {
	columns := make(map[string]types.SchemaColumn, len(actual.Columns))
	for _, col := range actual.Columns {
		columns[col.Name] = col
	}
	if len(actual.Columns) != len(expected.Columns) {
		fail("%s has %d columns, want %d", expected.Name, len(actual.Columns), len(expected.Columns))
	}

	for _, want := range expected.Columns {
		col, ok := columns[want.Name]
		if !ok {
			fail("%s.%s is missing", expected.Name, want.Name)
			continue
		}
		if !strings.EqualFold(col.Type, want.Type) {
			fail("%s.%s is %s, want %s", expected.Name, want.Name, col.Type, want.Type)
		}
		if col.IsPrimary != want.IsPrimary {
			fail("%s.%s primary key is %v, want %v", expected.Name, want.Name, col.IsPrimary, want.IsPrimary)
		}
		if col.ForeignKeyTable != want.ForeignKeyTable || col.ForeignKeyColumn != want.ForeignKeyColumn {
			fail("%s.%s references %q, want %q", expected.Name, want.Name,
				reference(col), reference(want))
		}
	}
}

func checkIndexes(expected, actual types.SchemaTable, fail func(string, ...interface{})) {
	indexes := make(map[string]types.SchemaIndex, len(actual.Indexes))
	for _, idx := range actual.Indexes {
		indexes[idx.Name] = idx
	}

	for _, want := range expected.Indexes {
		idx, ok := indexes[want.Name]
		if !ok {
			fail("index %s on %s is missing", want.Name, expected.Name)
			continue
		}
		if strings.Join(idx.Columns, ",") != strings.Join(want.Columns, ",") {
			fail("index %s covers (%s), want (%s)", want.Name,
				strings.Join(idx.Columns, ", "), strings.Join(want.Columns, ", "))
		}
		delete(indexes, want.Name)
	}
	extra := make([]string, 0, len(indexes))
	for name := range indexes {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	for _, name := range extra {
		fail("unexpected index %s on %s", name, expected.Name)
	}
}

func reference(col types.SchemaColumn) string {
	if col.ForeignKeyTable == "" {
		return ""
	}
	return col.ForeignKeyTable + "." + col.ForeignKeyColumn
}
