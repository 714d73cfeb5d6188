package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBeverage(t *testing.T) {
	t.Run("Valid beverage starts with zero stock", func(t *testing.T) {
		b, out := NewBeverage("Cola", 150, 40112345)

		require.True(t, out.IsApplied())
		assert.Equal(t, "Cola", b.Name())
		assert.Equal(t, int64(150), b.Price())
		assert.Equal(t, "1.50", b.PriceString())
		assert.Equal(t, 40112345, b.Barcode())
		assert.Equal(t, 0, b.Stock())
		assert.Equal(t, 0, b.LastRestock())
	})

	t.Run("Empty name is rejected", func(t *testing.T) {
		_, out := NewBeverage("", 150, 1)
		assert.False(t, out.IsApplied())
	})

	t.Run("Negative price is rejected", func(t *testing.T) {
		_, out := NewBeverage("Cola", -1, 1)
		assert.False(t, out.IsApplied())
	})

	t.Run("Free beverage is allowed", func(t *testing.T) {
		_, out := NewBeverage("Water", 0, 1)
		assert.True(t, out.IsApplied())
	})
}

func TestBeverageSetters(t *testing.T) {
	b, _ := NewBeverage("Cola", 150, 1)

	t.Run("Negative stock keeps the old value", func(t *testing.T) {
		b.SetStock(10)
		out := b.SetStock(-1)
		assert.False(t, out.IsApplied())
		assert.Equal(t, 10, b.Stock())
	})

	t.Run("Negative restock marker keeps the old value", func(t *testing.T) {
		b.SetLastRestock(10)
		out := b.SetLastRestock(-1)
		assert.False(t, out.IsApplied())
		assert.Equal(t, 10, b.LastRestock())
	})
}

func TestBeverageLowStock(t *testing.T) {
	b, _ := NewBeverage("Cola", 150, 1)

	b.SetStock(LowStockThreshold)
	assert.True(t, b.LowStock())

	b.SetStock(LowStockThreshold + 1)
	assert.False(t, b.LowStock())

	b.SetStock(0)
	assert.True(t, b.LowStock())
}
