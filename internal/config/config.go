package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Rana718/salesgen/internal/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// ErrInvalidConfig marks setup faults detected before any I/O.
var ErrInvalidConfig = errors.New("invalid config")

// maxBatchRows keeps a multi-row insert of the widest table (4 columns)
// under SQLite's default limit of 999 host parameters.
const maxBatchRows = 249

type Config struct {
	Seed        int64      `json:"seed" mapstructure:"seed" yaml:"seed"`
	Customers   int        `json:"customers" mapstructure:"customers" yaml:"customers"`
	Products    int        `json:"products" mapstructure:"products" yaml:"products"`
	Orders      int        `json:"orders" mapstructure:"orders" yaml:"orders"`
	MinItems    int        `json:"min_items" mapstructure:"min_items" yaml:"min_items"`
	MaxItems    int        `json:"max_items" mapstructure:"max_items" yaml:"max_items"`
	StartDate   string     `json:"start_date" mapstructure:"start_date" yaml:"start_date"`
	EndDate     string     `json:"end_date" mapstructure:"end_date" yaml:"end_date"`
	DBPath      string     `json:"db_path" mapstructure:"db_path" yaml:"db_path"`
	ReadmePath  string     `json:"readme_path" mapstructure:"readme_path" yaml:"readme_path"`
	PreviewRows int        `json:"preview_rows" mapstructure:"preview_rows" yaml:"preview_rows"`
	BatchSize   int        `json:"batch_size" mapstructure:"batch_size" yaml:"batch_size"`
	Regions     []string   `json:"regions" mapstructure:"regions" yaml:"regions"`
	Categories  []Category `json:"categories" mapstructure:"categories" yaml:"categories"`
	FirstNames  []string   `json:"first_names" mapstructure:"first_names" yaml:"first_names"`
	LastNames   []string   `json:"last_names" mapstructure:"last_names" yaml:"last_names"`
}

// Category is a product category with its name pool and price range.
type Category struct {
	Name     string   `json:"name" mapstructure:"name" yaml:"name"`
	Products []string `json:"products" mapstructure:"products" yaml:"products"`
	MinPrice float64  `json:"min_price" mapstructure:"min_price" yaml:"min_price"`
	MaxPrice float64  `json:"max_price" mapstructure:"max_price" yaml:"max_price"`
}

// Load reads the configuration from v on top of Default.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeToDateHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("customers", d.Customers)
	v.SetDefault("products", d.Products)
	v.SetDefault("orders", d.Orders)
	v.SetDefault("min_items", d.MinItems)
	v.SetDefault("max_items", d.MaxItems)
	v.SetDefault("start_date", d.StartDate)
	v.SetDefault("end_date", d.EndDate)
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("readme_path", d.ReadmePath)
	v.SetDefault("preview_rows", d.PreviewRows)
	v.SetDefault("batch_size", d.BatchSize)
	v.SetDefault("regions", d.Regions)
	v.SetDefault("categories", d.Categories)
	v.SetDefault("first_names", d.FirstNames)
	v.SetDefault("last_names", d.LastNames)
}

// timeToDateHook lets YAML files carry unquoted dates.
func timeToDateHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if t, ok := data.(time.Time); ok {
		return t.Format(types.DateLayout), nil
	}
	return data, nil
}

// DateRange parses the configured generation window.
func (c *Config) DateRange() (time.Time, time.Time, error) {
	start, end, err := c.parseDates()
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return start, end, nil
}

func (c *Config) parseDates() (time.Time, time.Time, error) {
	start, err := time.Parse(types.DateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date %q is not a YYYY-MM-DD date", c.StartDate)
	}
	end, err := time.Parse(types.DateLayout, c.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %q is not a YYYY-MM-DD date", c.EndDate)
	}
	return start, end, nil
}

// CategoryNames returns the category names in configured order.
func (c *Config) CategoryNames() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}

// Category looks up a category by name.
func (c *Config) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

func (c *Config) Validate() error {
	var problems []string
	fail := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Customers < 1 {
		fail("customers must be at least 1, got %d", c.Customers)
	}
	if c.Products < 1 {
		fail("products must be at least 1, got %d", c.Products)
	}
	if c.Orders < 0 {
		fail("orders cannot be negative, got %d", c.Orders)
	}
	if c.MinItems < 0 {
		fail("min_items cannot be negative, got %d", c.MinItems)
	}
	if c.MinItems > c.MaxItems {
		fail("min_items (%d) is greater than max_items (%d)", c.MinItems, c.MaxItems)
	}
	if c.MaxItems > c.Products {
		fail("max_items (%d) exceeds the number of products (%d)", c.MaxItems, c.Products)
	}

	if start, end, err := c.parseDates(); err != nil {
		fail("%v", err)
	} else if end.Before(start) {
		fail("end_date %s is before start_date %s", c.EndDate, c.StartDate)
	}

	if len(c.Regions) == 0 {
		fail("regions cannot be empty")
	}
	if len(c.FirstNames) == 0 {
		fail("first_names cannot be empty")
	}
	if len(c.LastNames) == 0 {
		fail("last_names cannot be empty")
	}
	if len(c.Categories) == 0 {
		fail("categories cannot be empty")
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			fail("category name cannot be empty")
			continue
		}
		if seen[cat.Name] {
			fail("duplicate category %s", cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.Products) == 0 {
			fail("category %s has no product names", cat.Name)
		}
		if cat.MinPrice <= 0 {
			fail("category %s: min_price must be positive, got %v", cat.Name, cat.MinPrice)
		}
		if cat.MaxPrice < cat.MinPrice {
			fail("category %s: max_price (%v) is below min_price (%v)", cat.Name, cat.MaxPrice, cat.MinPrice)
		}
	}

	if c.DBPath == "" {
		fail("db_path cannot be empty")
	}
	if c.ReadmePath == "" {
		fail("readme_path cannot be empty")
	}
	if c.PreviewRows < 0 {
		fail("preview_rows cannot be negative, got %d", c.PreviewRows)
	}
	if c.BatchSize < 1 || c.BatchSize > maxBatchRows {
		fail("batch_size must be between 1 and %d, got %d", maxBatchRows, c.BatchSize)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
