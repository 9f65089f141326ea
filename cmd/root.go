package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Rana718/salesgen/internal/config"
	"github.com/Rana718/salesgen/internal/database/sqlite"
	"github.com/Rana718/salesgen/internal/report"
	"github.com/Rana718/salesgen/internal/seeder"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SALESGEN"

var (
	cfgFile string
	Version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "salesgen",
	Short: "Generate a reproducible synthetic sales SQLite database",
	Long: `
salesgen builds a small relational sales dataset (customers, products,
orders and order items), writes it to a single-file SQLite database,
prints a preview of every table and writes a markdown document describing
the schema and the generation parameters.

Running it twice with the same seed produces identical data.

Examples:
  salesgen
  salesgen --seed 7 --db demo.db --readme demo.md
  salesgen --config salesgen.config.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return readConfig() },
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "salesgen version %s\n", Version)
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return generate(cmd.Context(), cmd.OutOrStdout(), cfg)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := config.Default()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./salesgen.config.{json,yaml})")
	rootCmd.PersistentFlags().String("db", defaults.DBPath, "SQLite database path")
	rootCmd.Flags().String("readme", defaults.ReadmePath, "markdown document path")
	rootCmd.Flags().Int64("seed", defaults.Seed, "random seed")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	bindFlags()
}

func bindFlags() {
	viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("readme_path", rootCmd.Flags().Lookup("readme"))
	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}

// readConfig loads the --config file, or ./salesgen.config.* when present,
// before any command runs.
func readConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("salesgen.config")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// loadConfig returns the validated config assembled from defaults, the
// config file, the environment and flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// generate seeds the store, writes the document and prints the preview.
// A document failure leaves the store in place.
func generate(ctx context.Context, out io.Writer, cfg *config.Config) error {
	s, err := seeder.NewSeeder(cfg)
	if err != nil {
		return err
	}
	result, err := s.Seed(ctx)
	if err != nil {
		return err
	}
	color.Cyan("⏱️  %d rows in %s", result.Total(), result.Duration.Round(time.Millisecond))

	doc, err := report.Document(cfg)
	if err != nil {
		return err
	}
	if err := report.Write(cfg.ReadmePath, doc); err != nil {
		return fmt.Errorf("database kept at %s: %w", result.Path, err)
	}

	store, err := sqlite.Open(result.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintln(out)
	if err := report.Preview(ctx, out, store, cfg.PreviewRows); err != nil {
		return err
	}

	fmt.Fprintln(out)
	color.Green("✅ Generated database at %s", result.Path)
	color.Green("📝 Generated README at %s", cfg.ReadmePath)
	return nil
}
