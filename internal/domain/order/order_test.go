package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateTotals(t *testing.T) {
	items := []LineItem{
		{Name: "Café Expresso", Quantity: 2, Subtotal: dec("20")},
		{Name: "Carajillo", Quantity: 1, Subtotal: dec("15")},
	}

	subtotal, tax, total, err := CalculateTotals(items)
	require.NoError(t, err)

	assert.True(t, subtotal.Equal(dec("35")), "subtotal = %s", subtotal)
	assert.True(t, tax.Equal(dec("6.3")), "tax = %s", tax)
	assert.True(t, total.Equal(dec("41.3")), "total = %s", total)
}

func TestCalculateTotals_TaxIsFixedRate(t *testing.T) {
	// tax = subtotal * 0.18 and total = subtotal + tax must hold exactly
	// for arbitrary subtotals, including fractional ones.
	for _, s := range []string{"0", "0.01", "12.5", "99.99", "1000"} {
		items := []LineItem{{Name: "item", Quantity: 1, Subtotal: dec(s)}}

		subtotal, tax, total, err := CalculateTotals(items)
		require.NoError(t, err)

		assert.True(t, tax.Equal(subtotal.Mul(dec("0.18"))), "subtotal %s", s)
		assert.True(t, total.Equal(subtotal.Add(tax)), "subtotal %s", s)
	}
}

func TestCalculateTotals_EmptyItems(t *testing.T) {
	_, _, _, err := CalculateTotals(nil)
	assert.ErrorIs(t, err, ErrEmptyItems)

	_, _, _, err = CalculateTotals([]LineItem{})
	assert.ErrorIs(t, err, ErrEmptyItems)
}

func TestCalculateTotals_InvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		index int
	}{
		{
			name: "missing name",
			items: []LineItem{
				{Name: "", Quantity: 1, Subtotal: dec("10")},
			},
			index: 0,
		},
		{
			name: "zero quantity",
			items: []LineItem{
				{Name: "Café Clásico", Quantity: 0, Subtotal: dec("8")},
			},
			index: 0,
		},
		{
			name: "negative subtotal",
			items: []LineItem{
				{Name: "Café Clásico", Quantity: 1, Subtotal: dec("8")},
				{Name: "Carajillo", Quantity: 1, Subtotal: dec("-15")},
			},
			index: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := CalculateTotals(tt.items)

			var itemErr *InvalidItemError
			require.ErrorAs(t, err, &itemErr)
			assert.Equal(t, tt.index, itemErr.Index)
		})
	}
}

func TestCalculateTotals_ZeroSubtotalAllowed(t *testing.T) {
	// A comped line has a zero subtotal; that is valid, only negatives fail.
	items := []LineItem{{Name: "agua", Quantity: 1, Subtotal: decimal.Zero}}

	subtotal, tax, total, err := CalculateTotals(items)
	require.NoError(t, err)
	assert.True(t, subtotal.IsZero())
	assert.True(t, tax.IsZero())
	assert.True(t, total.IsZero())
}
