package seeder

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/Rana718/salesgen/internal/config"
	"github.com/Rana718/salesgen/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Customers = 40
	cfg.Products = 25
	cfg.Orders = 300
	return &cfg
}

func generate(t *testing.T, cfg *config.Config) *types.Dataset {
	t.Helper()
	g, err := NewGenerator(cfg)
	require.NoError(t, err)
	ds, err := g.Generate()
	require.NoError(t, err)
	return ds
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := generate(t, smallConfig())
	second := generate(t, smallConfig())
	assert.Equal(t, first, second)

	other := smallConfig()
	other.Seed = 7
	assert.NotEqual(t, first.Customers[0].ID, generate(t, other).Customers[0].ID)
}

func TestGenerateSizes(t *testing.T) {
	cfg := smallConfig()
	ds := generate(t, cfg)

	assert.Len(t, ds.Customers, cfg.Customers)
	assert.Len(t, ds.Products, cfg.Products)
	assert.Len(t, ds.Orders, cfg.Orders)
}

func TestIdentifiersAreUnique(t *testing.T) {
	ds := generate(t, smallConfig())

	seen := make(map[string]bool)
	add := func(id string) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	for _, c := range ds.Customers {
		add(c.ID)
	}
	for _, p := range ds.Products {
		add(p.ID)
	}
	for _, o := range ds.Orders {
		add(o.ID)
	}
}

func TestReferentialIntegrity(t *testing.T) {
	ds := generate(t, smallConfig())

	customers := make(map[string]bool)
	for _, c := range ds.Customers {
		customers[c.ID] = true
	}
	products := make(map[string]bool)
	for _, p := range ds.Products {
		products[p.ID] = true
	}
	orders := make(map[string]bool)
	for _, o := range ds.Orders {
		orders[o.ID] = true
		assert.True(t, customers[o.CustomerID], "order %s has unknown customer", o.ID)
	}
	for _, it := range ds.Items {
		assert.True(t, orders[it.OrderID], "item references unknown order %s", it.OrderID)
		assert.True(t, products[it.ProductID], "item references unknown product %s", it.ProductID)
	}
}

func TestCustomerAttributes(t *testing.T) {
	cfg := smallConfig()
	ds := generate(t, cfg)

	names := make(map[string]bool)
	for _, first := range cfg.FirstNames {
		for _, last := range cfg.LastNames {
			names[first+" "+last] = true
		}
	}
	for _, c := range ds.Customers {
		assert.True(t, names[c.Name], "unexpected name %q", c.Name)
		assert.Contains(t, cfg.Regions, c.Region)
	}
}

func TestProductAttributes(t *testing.T) {
	cfg := smallConfig()
	ds := generate(t, cfg)
	pattern := regexp.MustCompile(`^(.+) (\d{3})$`)

	for _, p := range ds.Products {
		cat, ok := cfg.Category(p.Category)
		require.True(t, ok, "unknown category %s", p.Category)

		match := pattern.FindStringSubmatch(p.Name)
		require.NotNil(t, match, "bad product name %q", p.Name)
		assert.Contains(t, cat.Products, match[1])
		suffix, _ := strconv.Atoi(match[2])
		assert.GreaterOrEqual(t, suffix, 100)
		assert.LessOrEqual(t, suffix, 999)

		assert.GreaterOrEqual(t, p.Price, cat.MinPrice)
		assert.LessOrEqual(t, p.Price, cat.MaxPrice)
		assert.Equal(t, round2(p.Price), p.Price)
	}
}

func TestPriceStaysInNarrowRange(t *testing.T) {
	g, err := NewGenerator(smallConfig())
	require.NoError(t, err)

	cat := config.Category{Name: "Pins", Products: []string{"Pin"}, MinPrice: 1.004, MaxPrice: 1.006}
	for i := 0; i < 200; i++ {
		price := g.Price(cat)
		assert.GreaterOrEqual(t, price, cat.MinPrice)
		assert.LessOrEqual(t, price, cat.MaxPrice)
	}
}

func TestItemInvariants(t *testing.T) {
	cfg := smallConfig()
	ds := generate(t, cfg)

	prices := make(map[string]float64)
	for _, p := range ds.Products {
		prices[p.ID] = p.Price
	}

	perOrder := make(map[string]map[string]bool)
	for _, it := range ds.Items {
		if perOrder[it.OrderID] == nil {
			perOrder[it.OrderID] = make(map[string]bool)
		}
		assert.False(t, perOrder[it.OrderID][it.ProductID], "product repeated in order %s", it.OrderID)
		perOrder[it.OrderID][it.ProductID] = true

		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 5)

		gross := float64(it.Quantity) * prices[it.ProductID]
		assert.GreaterOrEqual(t, it.Revenue, round2(gross*0.8)-0.01)
		assert.LessOrEqual(t, it.Revenue, round2(gross)+0.01)
	}

	for _, o := range ds.Orders {
		n := len(perOrder[o.ID])
		assert.GreaterOrEqual(t, n, cfg.MinItems)
		assert.LessOrEqual(t, n, cfg.MaxItems)
	}
}

func TestOrderTotalsMatchItems(t *testing.T) {
	ds := generate(t, smallConfig())

	sums := make(map[string]float64)
	for _, it := range ds.Items {
		sums[it.OrderID] += it.Revenue
	}
	for _, o := range ds.Orders {
		assert.Equal(t, round2(sums[o.ID]), o.TotalAmount, "order %s", o.ID)
	}
}

func TestOrderDatesInWindow(t *testing.T) {
	cfg := smallConfig()
	start, end, err := cfg.DateRange()
	require.NoError(t, err)

	for _, o := range generate(t, cfg).Orders {
		assert.False(t, o.OrderDate.Before(start), o.Date())
		assert.False(t, o.OrderDate.After(end), o.Date())
		assert.Equal(t, o.OrderDate, truncateDay(o.OrderDate))
	}
}

func TestZeroItemOrders(t *testing.T) {
	cfg := smallConfig()
	cfg.MinItems = 0
	cfg.MaxItems = 0
	ds := generate(t, cfg)

	assert.Empty(t, ds.Items)
	for _, o := range ds.Orders {
		assert.Zero(t, o.TotalAmount)
	}
}

func TestItemsRejectsOversizedOrders(t *testing.T) {
	cfg := smallConfig()
	g, err := NewGenerator(cfg)
	require.NoError(t, err)

	products, err := g.Products(2)
	require.NoError(t, err)
	_, err = g.Items([]types.Order{{ID: "o1"}}, products)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestOrdersWithoutCustomers(t *testing.T) {
	g, err := NewGenerator(smallConfig())
	require.NoError(t, err)

	_, err = g.Orders(nil, 3)
	assert.ErrorIs(t, err, ErrEmptyPool)

	orders, err := g.Orders(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSampleReturnsDistinctIndexes(t *testing.T) {
	g, err := NewGenerator(smallConfig())
	require.NoError(t, err)

	picked := g.sample(10, 10)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, picked)
	assert.Empty(t, g.sample(10, 0))
}
