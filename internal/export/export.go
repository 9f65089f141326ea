package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Rana718/salesgen/internal/database/common"
	"github.com/Rana718/salesgen/internal/types"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// TableReader lists tables and reads them whole.
type TableReader interface {
	GetAllTableNames(ctx context.Context) ([]string, error)
	GetTableData(ctx context.Context, tableName string) (*common.QueryResult, error)
}

// Perform dumps every table of the store below dir and returns the path of
// the written file (json) or directory (csv).
func Perform(ctx context.Context, store TableReader, dir, format string) (string, error) {
	if format != FormatJSON && format != FormatCSV {
		return "", fmt.Errorf("unsupported export format %q (use json or csv)", format)
	}

	tables, err := store.GetAllTableNames(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get table names: %w", err)
	}
	if len(tables) == 0 {
		log.Println("No tables found in database")
		return "", nil
	}

	results := make(map[string]*common.QueryResult, len(tables))
	for _, name := range tables {
		data, err := store.GetTableData(ctx, name)
		if err != nil {
			return "", fmt.Errorf("failed to read table %s: %w", name, err)
		}
		results[name] = data
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	stamp := time.Now().Format("2006-01-02_15-04-05")

	if format == FormatCSV {
		return writeCSV(results, filepath.Join(dir, fmt.Sprintf("export_%s_csv", stamp)))
	}
	return writeJSON(results, filepath.Join(dir, fmt.Sprintf("export_%s.json", stamp)))
}

func writeJSON(results map[string]*common.QueryResult, filePath string) (string, error) {
	data := types.ExportData{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Version:   "1.0",
		Tables:    make(map[string]interface{}, len(results)),
		Comment:   "Sales dataset export",
	}
	for name, result := range results {
		rows := result.Rows
		if rows == nil {
			rows = []map[string]interface{}{}
		}
		data.Tables[name] = rows
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := os.WriteFile(filePath, encoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filePath, nil
}

func writeCSV(results map[string]*common.QueryResult, dirPath string) (string, error) {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create CSV directory: %w", err)
	}

	for name, result := range results {
		if err := writeTableCSV(filepath.Join(dirPath, name+".csv"), result); err != nil {
			return "", fmt.Errorf("failed to write CSV for %s: %w", name, err)
		}
	}
	return dirPath, nil
}

func writeTableCSV(path string, result *common.QueryResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	headers := append([]string(nil), result.Columns...)
	sort.Strings(headers)

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, row := range result.Rows {
		values := make([]string, len(headers))
		for i, header := range headers {
			if v := row[header]; v != nil {
				values[i] = fmt.Sprintf("%v", v)
			}
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}
