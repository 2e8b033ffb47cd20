package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcoloa/lease-calculator/internal/config"
)

// End-to-end: raw YAML document through parsing, normalization and the
// engine.
func TestOfferFromYAMLDocument(t *testing.T) {
	doc := []byte(`
deal:
  monthly_rent: 350
  months: 48
  annual_km: 15000
  upfront_costs: 350
  accessories_total: 490
  charging_credits_total: 300
  restitution_fees: 250
  excess_rate_eur_per_km: 0.10
maintenance:
  maint_eur_per_year: 200
  tire_set_cost: 700
  tire_sets_included: 1
  expected_tire_sets_total: 2
insurance:
  eur_per_month: 58
`)

	fc, err := config.NewInputParser().Parse(doc)
	require.NoError(t, err)
	cfg, notes := config.Normalize(fc)
	require.Empty(t, notes)

	rep := NewCalculationEngine().RunOffer(&cfg)

	requireDecEqual(t, "24220", rep.Summary.Total)
	assert.Equal(t, 48, rep.Summary.Months)
	assert.False(t, rep.Summary.BuyoutEnabled)
	require.Len(t, rep.Series, 48)
	require.True(t, rep.Series[47].Equal(rep.Summary.Total))
}
