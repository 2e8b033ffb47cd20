package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

var breakdownOrder = []domain.Category{
	domain.CategoryRent,
	domain.CategoryEnergy,
	domain.CategoryMaintenance,
	domain.CategoryTires,
	domain.CategoryInsurance,
	domain.CategoryUpfront,
	domain.CategoryAccessories,
	domain.CategoryOtherFixed,
	domain.CategoryChargingCredits,
	domain.CategoryExcessPenalty,
	domain.CategoryIK,
	domain.CategoryRestitution,
	domain.CategoryOptionFee,
	domain.CategoryResidualValue,
	domain.CategoryResale,
}

func rowByCategory(t *testing.T, b *domain.Breakdown, cat domain.Category) domain.CostRow {
	t.Helper()
	for _, r := range b.Rows {
		if r.Category == cat {
			return r
		}
	}
	t.Fatalf("no row for category %s", cat)
	return domain.CostRow{}
}

func TestBuildBreakdownReturnScenario(t *testing.T) {
	engine := NewCalculationEngine()
	b := engine.BuildBreakdown(baseConfig())

	require.Len(t, b.Rows, 15)
	assert.Equal(t, domain.ScenarioReturn, b.Scenario)
	assert.Equal(t, 48, b.Months)
	requireDecEqual(t, "60000", b.ContractKM)

	for i, cat := range breakdownOrder {
		assert.Equal(t, cat, b.Rows[i].Category, "row %d", i)
	}

	// 16800 + 2346 + 800 + 700 + 2784 + 350 + 490 - 300 + 250
	requireDecEqual(t, "24220", b.Total)

	// Buyout rows stay zero in the return scenario.
	requireDecEqual(t, "250", rowByCategory(t, b, domain.CategoryRestitution).Amount)
	requireDecEqual(t, "0", rowByCategory(t, b, domain.CategoryOptionFee).Amount)
	requireDecEqual(t, "0", rowByCategory(t, b, domain.CategoryResidualValue).Amount)
	requireDecEqual(t, "0", rowByCategory(t, b, domain.CategoryResale).Amount)
}

func TestBuildBreakdownBuyoutScenario(t *testing.T) {
	cfg := baseConfig()
	resale := dec("16500")
	cfg.Buyout = domain.BuyoutTerms{
		Enabled:       true,
		OptionFee:     dec("300"),
		ResidualValue: dec("14800"),
		ResaleValue:   &resale,
	}

	b := NewCalculationEngine().BuildBreakdown(cfg)
	assert.Equal(t, domain.ScenarioBuyout, b.Scenario)

	// Restitution fees never apply when the vehicle is kept.
	requireDecEqual(t, "0", rowByCategory(t, b, domain.CategoryRestitution).Amount)
	requireDecEqual(t, "300", rowByCategory(t, b, domain.CategoryOptionFee).Amount)
	requireDecEqual(t, "14800", rowByCategory(t, b, domain.CategoryResidualValue).Amount)
	requireDecEqual(t, "-16500", rowByCategory(t, b, domain.CategoryResale).Amount)

	// 24220 - 250 restitution + 300 + 14800 - 16500
	requireDecEqual(t, "22570", b.Total)
}

func TestBuildBreakdownSigns(t *testing.T) {
	cfg := baseConfig()
	cfg.IK.Enabled = true

	b := NewCalculationEngine().BuildBreakdown(cfg)

	assert.True(t, rowByCategory(t, b, domain.CategoryChargingCredits).Amount.IsNegative())
	assert.True(t, rowByCategory(t, b, domain.CategoryIK).Amount.IsNegative())
	assert.True(t, rowByCategory(t, b, domain.CategoryRent).Amount.IsPositive())

	// Credits are deducted even when the config holds them as a negative
	// number already.
	cfg.Deal.ChargingCreditsTotal = dec("-300")
	b = NewCalculationEngine().BuildBreakdown(cfg)
	requireDecEqual(t, "-300", rowByCategory(t, b, domain.CategoryChargingCredits).Amount)
}

func TestBuildBreakdownTotalIsRowSum(t *testing.T) {
	cfg := baseConfig()
	cfg.IK.Enabled = true
	actual := dec("70000")
	cfg.Deal.ActualTotalKM = &actual

	b := NewCalculationEngine().BuildBreakdown(cfg)

	sum := decimal.Zero
	for _, r := range b.Rows {
		sum = sum.Add(r.Amount)
	}
	require.True(t, b.Total.Equal(sum), "total %s != row sum %s", b.Total, sum)
}

func TestBuildBreakdownSharesSumToHundred(t *testing.T) {
	b := NewCalculationEngine().BuildBreakdown(baseConfig())

	sum := decimal.Zero
	for _, r := range b.Rows {
		sum = sum.Add(r.Share)
	}
	diff := sum.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThan(dec("0.0001")), "shares sum to %s", sum)
}

func TestBuildBreakdownAllZeroConfig(t *testing.T) {
	cfg := &domain.LeaseConfig{Deal: domain.DealTerms{Months: 48}}
	b := NewCalculationEngine().BuildBreakdown(cfg)

	requireDecEqual(t, "0", b.Total)
	for _, r := range b.Rows {
		requireDecEqual(t, "0", r.Share)
	}
}

func TestBuildBreakdownZeroMonths(t *testing.T) {
	cfg := baseConfig()
	cfg.Deal.Months = 0

	b := NewCalculationEngine().BuildBreakdown(cfg)
	requireDecEqual(t, "0", b.TotalPerMonth)
	for _, r := range b.Rows {
		requireDecEqual(t, "0", r.PerMonth)
	}
}

func TestCumulativeMonthlySeries(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := baseConfig()

	series := engine.CumulativeMonthlySeries(cfg)
	require.Len(t, series, 48)

	total := engine.BuildBreakdown(cfg).Total
	require.True(t, series[47].Equal(total), "last element %s != total %s", series[47], total)
	requireDecEqual(t, "504.5833333333333333", series[0])

	for i := 1; i < len(series); i++ {
		assert.True(t, series[i].GreaterThan(series[i-1]), "series not increasing at %d", i)
	}
}

func TestCumulativeMonthlySeriesZeroMonths(t *testing.T) {
	cfg := baseConfig()
	cfg.Deal.Months = 0
	assert.Empty(t, NewCalculationEngine().CumulativeMonthlySeries(cfg))
}

func TestSummarize(t *testing.T) {
	cfg := baseConfig()
	cfg.IK.Enabled = true

	s := NewCalculationEngine().Summarize(cfg)
	assert.Equal(t, 48, s.Months)
	assert.False(t, s.BuyoutEnabled)
	assert.True(t, s.IKEnabled)
	requireDecEqual(t, "350", s.MonthlyRent)
	requireDecEqual(t, "60000", s.ContractKM)
	// 24220 - 17443.68 mileage allowances
	requireDecEqual(t, "6776.32", s.Total)
}

func TestRunOfferSharesOneBreakdown(t *testing.T) {
	rep := NewCalculationEngine().RunOffer(baseConfig())

	require.NotNil(t, rep.Breakdown)
	require.Len(t, rep.Series, 48)
	require.True(t, rep.Summary.Total.Equal(rep.Breakdown.Total))
	require.True(t, rep.Series[47].Equal(rep.Breakdown.Total))
}
