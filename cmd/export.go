package cmd

import (
	"fmt"

	"github.com/Rana718/salesgen/internal/database/sqlite"
	"github.com/Rana718/salesgen/internal/export"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the generated tables",
	Long: `
Export every table of an existing sales database to JSON (one document)
or CSV (one file per table).

Examples:
  salesgen export
  salesgen export --format csv --out dumps
  salesgen export --db demo.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outDir, _ := cmd.Flags().GetString("out")

		ctx := cmd.Context()

		store, err := sqlite.Open(viper.GetString("db_path"))
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		exportPath, err := export.Perform(ctx, store, outDir, format)
		if err != nil {
			return err
		}

		if exportPath != "" {
			color.Green("✅ Export completed: %s", exportPath)
		} else {
			color.Yellow("No export created (database is empty)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("format", export.FormatJSON, "output format: json or csv")
	exportCmd.Flags().String("out", "exports", "output directory")
}
