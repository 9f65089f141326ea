package common

import (
	"fmt"
	"regexp"
)

var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type QueryResult struct {
	Columns []string
	Rows    []map[string]interface{}
}

// ValidateIdentifier rejects names that cannot be spliced into SQL safely.
// Table names cannot be bound as parameters, so they are checked instead.
func ValidateIdentifier(name string) error {
	if !validIdentifier.MatchString(name) {
		return fmt.Errorf("invalid identifier: %s", name)
	}
	return nil
}

// FormatValue converts driver values to display-friendly values.
func FormatValue(val interface{}) interface{} {
	if val == nil {
		return nil
	}

	if bytes, ok := val.([]byte); ok {
		str := string(bytes)
		for _, r := range str {
			if r < 32 && r != '\n' && r != '\r' && r != '\t' {
				return fmt.Sprintf("0x%x", bytes)
			}
		}
		return str
	}

	return val
}
