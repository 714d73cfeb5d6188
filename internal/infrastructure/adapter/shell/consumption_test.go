package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsumptionBar(t *testing.T) {
	t.Run("Bar is always 25 cells wide", func(t *testing.T) {
		for stock := 0; stock <= 10; stock++ {
			assert.Len(t, consumptionBar(stock, 10), barWidth)
		}
	})

	t.Run("Full stock fills the bar", func(t *testing.T) {
		assert.Equal(t, strings.Repeat("=", 25), consumptionBar(10, 10))
	})

	t.Run("Empty stock empties the bar", func(t *testing.T) {
		assert.Equal(t, strings.Repeat(" ", 25), consumptionBar(0, 10))
	})

	t.Run("Half stock marks the level", func(t *testing.T) {
		expected := strings.Repeat("=", 11) + "<" + strings.Repeat(" ", 13)
		assert.Equal(t, expected, consumptionBar(5, 10))
	})
}
