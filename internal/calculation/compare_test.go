package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decSeries(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = dec(v)
	}
	return out
}

func TestCumulativeBreakEven(t *testing.T) {
	t.Run("sign change", func(t *testing.T) {
		a := decSeries("10", "20", "30")
		b := decSeries("15", "22", "29")

		be := CumulativeBreakEven(a, b)
		require.NotNil(t, be)
		assert.Equal(t, 3, be.Month)
		requireDecEqual(t, "30", be.CumulativeA)
		requireDecEqual(t, "29", be.CumulativeB)
		requireDecEqual(t, "1", be.Difference)
	})

	t.Run("meets within a cent", func(t *testing.T) {
		a := decSeries("10", "20")
		b := decSeries("12", "20.005")

		be := CumulativeBreakEven(a, b)
		require.NotNil(t, be)
		assert.Equal(t, 2, be.Month)
	})

	t.Run("no crossover", func(t *testing.T) {
		a := decSeries("10", "20", "30")
		b := decSeries("15", "25", "35")
		assert.Nil(t, CumulativeBreakEven(a, b))
	})

	t.Run("first month equality is trivial", func(t *testing.T) {
		a := decSeries("10", "20")
		b := decSeries("10", "30")
		assert.Nil(t, CumulativeBreakEven(a, b))
	})

	t.Run("compares the common length only", func(t *testing.T) {
		a := decSeries("10", "20")
		b := decSeries("15", "22", "5")
		assert.Nil(t, CumulativeBreakEven(a, b))
	})

	t.Run("empty series", func(t *testing.T) {
		assert.Nil(t, CumulativeBreakEven(nil, decSeries("1")))
	})
}

func TestCompareOffers(t *testing.T) {
	engine := NewCalculationEngine()

	t.Run("no offers", func(t *testing.T) {
		_, err := engine.CompareOffers(nil)
		require.Error(t, err)
	})

	t.Run("two offers", func(t *testing.T) {
		cheap := baseConfig()
		cheap.Deal.MonthlyRent = dec("300")
		expensive := baseConfig()
		expensive.Deal.Months = 36

		cmp, err := engine.CompareOffers([]NamedConfig{
			{Name: "offer-a", Config: cheap},
			{Name: "offer-b", Config: expensive},
		})
		require.NoError(t, err)
		require.Len(t, cmp.Offers, 2)
		assert.Equal(t, "offer-a", cmp.Offers[0].Name)
		assert.Equal(t, "offer-a", cmp.Offers[0].Summary.Name)
		assert.Equal(t, 48, cmp.MaxMonths)
		assert.Len(t, cmp.Offers[0].Series, 48)
		assert.Len(t, cmp.Offers[1].Series, 36)

		// Linear prorated series from the same origin never cross.
		assert.Nil(t, cmp.BreakEven)
	})

	t.Run("single offer has no break-even", func(t *testing.T) {
		cmp, err := engine.CompareOffers([]NamedConfig{{Name: "solo", Config: baseConfig()}})
		require.NoError(t, err)
		assert.Nil(t, cmp.BreakEven)
	})
}
