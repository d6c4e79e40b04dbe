package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Run("TwoItemCart", func(t *testing.T) {
		items := []Item{
			{ProductID: "p-1", Name: "Keyboard", UnitPrice: 2000, Quantity: 2},
			{ProductID: "p-2", Name: "Mouse", UnitPrice: 1500, Quantity: 1},
		}

		res := Compute(items)

		assert.Equal(t, int64(5500), res.Subtotal)
		assert.Equal(t, int64(440), res.Tax)
		assert.Equal(t, int64(5940), res.Total)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, int64(4000), res.Items[0].LineTotal)
		assert.Equal(t, int64(1500), res.Items[1].LineTotal)
	})

	t.Run("TaxTruncatesTowardZero", func(t *testing.T) {
		// 1237 * 8 / 100 = 98.96 exactly; the store never sees .96 of a cent.
		res := Compute([]Item{{ProductID: "p-1", Name: "Sticker", UnitPrice: 1237, Quantity: 1}})

		assert.Equal(t, int64(1237), res.Subtotal)
		assert.Equal(t, int64(98), res.Tax)
		assert.Equal(t, int64(1335), res.Total)
	})

	t.Run("PreservesInputOrder", func(t *testing.T) {
		items := []Item{
			{ProductID: "z", Name: "Last alphabetically", UnitPrice: 100, Quantity: 1},
			{ProductID: "a", Name: "First alphabetically", UnitPrice: 200, Quantity: 3},
		}

		res := Compute(items)

		assert.Equal(t, "z", res.Items[0].ProductID)
		assert.Equal(t, "a", res.Items[1].ProductID)
	})

	t.Run("Deterministic", func(t *testing.T) {
		items := []Item{
			{ProductID: "p-1", Name: "Widget", UnitPrice: 333, Quantity: 7},
			{ProductID: "p-2", Name: "Gadget", UnitPrice: 125, Quantity: 4},
		}

		first := Compute(items)
		second := Compute(items)

		assert.Equal(t, first, second)
	})

	t.Run("LineTotalInvariant", func(t *testing.T) {
		cases := []struct {
			name      string
			unitPrice int64
			quantity  int64
		}{
			{"SingleUnit", 999, 1},
			{"BulkQuantity", 50, 1000},
			{"HighPrice", 10_000_000, 3},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				res := Compute([]Item{{ProductID: "p", Name: "n", UnitPrice: tc.unitPrice, Quantity: tc.quantity}})

				assert.Equal(t, tc.unitPrice*tc.quantity, res.Items[0].LineTotal)
				assert.Equal(t, res.Items[0].LineTotal, res.Subtotal)
				assert.Equal(t, res.Subtotal*8/100, res.Tax)
				assert.Equal(t, res.Subtotal+res.Tax, res.Total)
			})
		}
	})
}
