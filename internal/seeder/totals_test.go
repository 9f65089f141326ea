package seeder

import (
	"testing"

	"github.com/Rana718/salesgen/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestApplyTotals(t *testing.T) {
	orders := []types.Order{{ID: "a"}, {ID: "b"}, {ID: "c", TotalAmount: 99}}
	items := []types.OrderItem{
		{OrderID: "a", Revenue: 10.10},
		{OrderID: "a", Revenue: 20.2},
		{OrderID: "b", Revenue: 0.1},
		{OrderID: "b", Revenue: 0.2},
	}

	got := ApplyTotals(orders, items)

	assert.Equal(t, 30.3, got[0].TotalAmount)
	assert.Equal(t, 0.3, got[1].TotalAmount)
	assert.Zero(t, got[2].TotalAmount)
	assert.Equal(t, "c", got[2].ID)
}

func TestApplyTotalsLeavesInputUntouched(t *testing.T) {
	orders := []types.Order{{ID: "a", TotalAmount: 5}}
	items := []types.OrderItem{{OrderID: "a", Revenue: 12}}

	got := ApplyTotals(orders, items)

	assert.Equal(t, 5.0, orders[0].TotalAmount)
	assert.Equal(t, 12.0, got[0].TotalAmount)
}

func TestApplyTotalsEmpty(t *testing.T) {
	assert.Empty(t, ApplyTotals(nil, nil))
}
