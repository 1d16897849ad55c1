package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	m := KitchenExpenseModel{
		KitchenExpenseQuantity: 25,
		KitchenExpenseUnitCost: 48,
		// whatever a caller smuggled in is discarded
		KitchenExpenseTotalAmount: 1,
	}
	m.ComputeTotal()
	assert.Equal(t, 1200.0, m.KitchenExpenseTotalAmount)

	m.KitchenExpenseQuantity = 0
	m.ComputeTotal()
	assert.Equal(t, 0.0, m.KitchenExpenseTotalAmount)

	m.KitchenExpenseQuantity = 2.5
	m.KitchenExpenseUnitCost = 110
	m.ComputeTotal()
	assert.Equal(t, 275.0, m.KitchenExpenseTotalAmount)
}
