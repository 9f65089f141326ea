package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Rana718/salesgen/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallConfig = `
seed: 11
customers: 20
products: 15
orders: 60
preview_rows: 2
`

// resetState gives each invocation the flags and viper state of a fresh process.
func resetState(t *testing.T) {
	t.Helper()
	viper.Reset()
	bindFlags()

	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		reset(c.Flags())
		reset(c.PersistentFlags())
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	resetState(t)
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateDescribeExport(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "salesgen.config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(smallConfig), 0644))
	dbPath := filepath.Join(dir, "sales.db")
	readmePath := filepath.Join(dir, "README.md")

	out, err := run(t, "--config", cfgPath, "--db", dbPath, "--readme", readmePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Customers (preview):")
	assert.Contains(t, out, "Orders (recent 2):")

	doc, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "seed=11")
	assert.Contains(t, string(doc), "Customers=20, Products=15, Orders=60")

	out, err = run(t, "describe", "--config", cfgPath, "--db", dbPath)
	require.NoError(t, err)
	assert.Regexp(t, `Customers\s+20`, out)
	assert.Regexp(t, `Orders\s+60`, out)
	assert.Contains(t, out, "PRICE TOTAL")

	exportDir := filepath.Join(dir, "exports")
	_, err = run(t, "export", "--config", cfgPath, "--db", dbPath, "--format", "csv", "--out", exportDir)
	require.NoError(t, err)
	matches, err := filepath.Glob(filepath.Join(exportDir, "export_*_csv", "Orders.csv"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("min_items: 6\nmax_items: 2\n"), 0644))
	dbPath := filepath.Join(dir, "sales.db")

	_, err := run(t, "--config", cfgPath, "--db", dbPath, "--readme", filepath.Join(dir, "r.md"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDescribeMissingStore(t *testing.T) {
	_, err := run(t, "describe", "--db", filepath.Join(t.TempDir(), "none.db"))
	assert.ErrorContains(t, err, "store not found")
}

func TestSubcommandsReadConfigFile(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "fromfile.db")
	cfgPath := filepath.Join(dir, "c.yaml")
	content := smallConfig + "db_path: " + dbPath + "\nreadme_path: " + filepath.Join(dir, "README.md") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	_, err := run(t, "--config", cfgPath)
	require.NoError(t, err)
	_, err = os.Stat(dbPath)
	require.NoError(t, err)

	out, err := run(t, "describe", "--config", cfgPath)
	require.NoError(t, err)
	assert.Regexp(t, `Customers\s+20`, out)

	exportDir := filepath.Join(dir, "exports")
	_, err = run(t, "export", "--config", cfgPath, "--out", exportDir)
	require.NoError(t, err)
	matches, err := filepath.Glob(filepath.Join(exportDir, "export_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestDBFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("db_path: "+filepath.Join(dir, "fromfile.db")+"\n"), 0644))

	_, err := run(t, "describe", "--config", cfgPath, "--db", filepath.Join(dir, "flag.db"))
	assert.ErrorContains(t, err, "flag.db")
}

func TestMissingConfigFileFails(t *testing.T) {
	_, err := run(t, "describe", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestDescribeReportsWriteErrors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(smallConfig), 0644))
	dbPath := filepath.Join(dir, "sales.db")

	_, err := run(t, "--config", cfgPath, "--db", dbPath, "--readme", filepath.Join(dir, "README.md"))
	require.NoError(t, err)

	resetState(t)
	rootCmd.SetOut(failingWriter{})
	rootCmd.SetArgs([]string{"describe", "--db", dbPath})
	assert.ErrorIs(t, rootCmd.Execute(), assert.AnError)
}
