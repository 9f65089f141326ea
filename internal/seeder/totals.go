package seeder

import (
	"math"

	"github.com/Rana718/salesgen/internal/types"
)

// ApplyTotals returns a copy of orders whose TotalAmount is the rounded sum
// of the revenue of their items. Orders without items total 0.
func ApplyTotals(orders []types.Order, items []types.OrderItem) []types.Order {
	totals := make(map[string]float64, len(orders))
	for _, item := range items {
		totals[item.OrderID] += item.Revenue
	}

	updated := make([]types.Order, len(orders))
	for i, order := range orders {
		order.TotalAmount = round2(totals[order.ID])
		updated[i] = order
	}
	return updated
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
