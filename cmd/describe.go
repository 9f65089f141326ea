package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/Rana718/salesgen/internal/database/sqlite"
	"github.com/Rana718/salesgen/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show row counts and category price totals of a generated database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := sqlite.Open(viper.GetString("db_path"))
		if err != nil {
			return err
		}
		defer store.Close()

		tables, err := schema.CreationOrder()
		if err != nil {
			return err
		}
		names := make([]string, len(tables))
		for i, t := range tables {
			names[i] = t.Name
		}
		counts, err := store.GetAllTableRowCounts(ctx, names)
		if err != nil {
			return err
		}
		totals, err := store.CategoryPriceTotals(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.Green("📊 %s", store.Path())

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TABLE\tROWS")
		fmt.Fprintln(w, "-----\t----")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%d\n", name, counts[name])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		categories := make([]string, 0, len(totals))
		for c := range totals {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tPRICE TOTAL")
		fmt.Fprintln(w, "--------\t-----------")
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%.2f\n", c, totals[c])
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
