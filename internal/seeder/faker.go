package seeder

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/Rana718/salesgen/internal/config"
	"github.com/Rana718/salesgen/internal/types"
	"github.com/google/uuid"
)

// ErrEmptyPool is returned when a draw is requested from an empty set.
var ErrEmptyPool = errors.New("cannot sample from an empty pool")

// discounts is weighted: no discount comes up three times out of seven.
var discounts = []float64{0, 0, 0, 0.05, 0.1, 0.15, 0.2}

const (
	minQuantity = 1
	maxQuantity = 5
	minSuffix   = 100
	maxSuffix   = 999
)

// Generator produces the entity sets from a single seeded source. Two
// generators built from the same config yield identical datasets.
type Generator struct {
	cfg  *config.Config
	rand *rand.Rand
	bias *DateBias
}

func NewGenerator(cfg *config.Config) (*Generator, error) {
	start, end, err := cfg.DateRange()
	if err != nil {
		return nil, err
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
		bias: NewDateBias(start, end),
	}, nil
}

// Generate builds the whole dataset, totals included.
func (g *Generator) Generate() (*types.Dataset, error) {
	customers, err := g.Customers(g.cfg.Customers)
	if err != nil {
		return nil, fmt.Errorf("failed to generate customers: %w", err)
	}
	products, err := g.Products(g.cfg.Products)
	if err != nil {
		return nil, fmt.Errorf("failed to generate products: %w", err)
	}
	orders, err := g.Orders(customers, g.cfg.Orders)
	if err != nil {
		return nil, fmt.Errorf("failed to generate orders: %w", err)
	}
	items, err := g.Items(orders, products)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order items: %w", err)
	}

	return &types.Dataset{
		Customers: customers,
		Products:  products,
		Orders:    ApplyTotals(orders, items),
		Items:     items,
	}, nil
}

func (g *Generator) Customers(n int) ([]types.Customer, error) {
	if len(g.cfg.FirstNames) == 0 || len(g.cfg.LastNames) == 0 || len(g.cfg.Regions) == 0 {
		return nil, fmt.Errorf("names and regions: %w", ErrEmptyPool)
	}

	customers := make([]types.Customer, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.newID()
		if err != nil {
			return nil, err
		}
		first := g.pick(g.cfg.FirstNames)
		last := g.pick(g.cfg.LastNames)
		customers = append(customers, types.Customer{
			ID:     id,
			Name:   first + " " + last,
			Region: g.pick(g.cfg.Regions),
		})
	}
	return customers, nil
}

func (g *Generator) Products(n int) ([]types.Product, error) {
	if len(g.cfg.Categories) == 0 {
		return nil, fmt.Errorf("categories: %w", ErrEmptyPool)
	}

	products := make([]types.Product, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.newID()
		if err != nil {
			return nil, err
		}
		cat := g.cfg.Categories[g.rand.Intn(len(g.cfg.Categories))]
		if len(cat.Products) == 0 {
			return nil, fmt.Errorf("category %s: %w", cat.Name, ErrEmptyPool)
		}
		noun := g.pick(cat.Products)
		suffix := minSuffix + g.rand.Intn(maxSuffix-minSuffix+1)
		products = append(products, types.Product{
			ID:       id,
			Name:     fmt.Sprintf("%s %d", noun, suffix),
			Category: cat.Name,
			Price:    g.Price(cat),
		})
	}
	return products, nil
}

// Price samples log-uniformly within the category range.
func (g *Generator) Price(cat config.Category) float64 {
	lo, hi := math.Log(cat.MinPrice), math.Log(cat.MaxPrice)
	price := round2(math.Exp(lo + g.rand.Float64()*(hi-lo)))
	// rounding must not push the price outside the range
	return math.Min(math.Max(price, cat.MinPrice), cat.MaxPrice)
}

func (g *Generator) Orders(customers []types.Customer, n int) ([]types.Order, error) {
	if n > 0 && len(customers) == 0 {
		return nil, fmt.Errorf("customers: %w", ErrEmptyPool)
	}

	orders := make([]types.Order, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.newID()
		if err != nil {
			return nil, err
		}
		customer := customers[g.rand.Intn(len(customers))]
		orders = append(orders, types.Order{
			ID:          id,
			CustomerID:  customer.ID,
			OrderDate:   g.bias.Sample(g.rand),
			TotalAmount: 0,
		})
	}
	return orders, nil
}

// Items draws the line items of every order. Products are sampled without
// replacement inside one order.
func (g *Generator) Items(orders []types.Order, products []types.Product) ([]types.OrderItem, error) {
	minItems, maxItems := g.cfg.MinItems, g.cfg.MaxItems
	if maxItems > len(products) {
		return nil, fmt.Errorf("max_items %d exceeds %d products: %w", maxItems, len(products), ErrEmptyPool)
	}

	items := make([]types.OrderItem, 0, len(orders)*(minItems+maxItems)/2)
	for _, order := range orders {
		k := minItems + g.rand.Intn(maxItems-minItems+1)
		for _, idx := range g.sample(len(products), k) {
			product := products[idx]
			qty := minQuantity + g.rand.Intn(maxQuantity-minQuantity+1)
			discount := discounts[g.rand.Intn(len(discounts))]
			items = append(items, types.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  qty,
				Revenue:   round2(float64(qty) * product.Price * (1 - discount)),
			})
		}
	}
	return items, nil
}

// sample returns k distinct indexes in [0, n) using a partial Fisher-Yates shuffle.
func (g *Generator) sample(n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + g.rand.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func (g *Generator) pick(values []string) string {
	return values[g.rand.Intn(len(values))]
}

func (g *Generator) newID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return "", fmt.Errorf("failed to generate identifier: %w", err)
	}
	return id.String(), nil
}
