package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

// Crossovers within one cent count as a meeting point.
var breakEvenTolerance = decimal.NewFromFloat(0.01)

// NamedConfig pairs an offer name (usually the config file name) with its
// normalized configuration.
type NamedConfig struct {
	Name   string
	Config *domain.LeaseConfig
}

// CompareOffers runs every offer independently and, when at least two are
// present, locates the cumulative break-even month between the first two.
func (ce *CalculationEngine) CompareOffers(offers []NamedConfig) (*domain.OfferComparison, error) {
	if len(offers) == 0 {
		return nil, fmt.Errorf("no offers to compare")
	}

	results := make([]domain.OfferResult, len(offers))
	maxMonths := 0
	for i, o := range offers {
		rep := ce.RunOffer(o.Config)
		summary := rep.Summary
		summary.Name = o.Name
		results[i] = domain.OfferResult{
			Name:      o.Name,
			Summary:   summary,
			Breakdown: rep.Breakdown,
			Series:    rep.Series,
		}
		if summary.Months > maxMonths {
			maxMonths = summary.Months
		}
	}

	cmp := &domain.OfferComparison{Offers: results, MaxMonths: maxMonths}
	if len(results) >= 2 {
		cmp.BreakEven = CumulativeBreakEven(results[0].Series, results[1].Series)
	}
	return cmp, nil
}

// CumulativeBreakEven finds the first month (1-based) at which two cumulative
// TCO series cross or meet within one cent. Series are aligned by month index
// and compared over their common length. An equality at the very first month
// is trivial (both series start from the same proration origin) and is
// skipped. Returns nil when no crossover exists.
func CumulativeBreakEven(a, b []decimal.Decimal) *domain.BreakEvenPoint {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}

	var prevDiff decimal.Decimal
	for i := 0; i < n; i++ {
		diff := a[i].Sub(b[i])

		if diff.Abs().LessThan(breakEvenTolerance) {
			if i == 0 {
				prevDiff = diff
				continue
			}
			return &domain.BreakEvenPoint{
				Month:       i + 1,
				CumulativeA: a[i],
				CumulativeB: b[i],
				Difference:  diff,
			}
		}

		if i > 0 && prevDiff.Sign() != 0 && diff.Sign() != prevDiff.Sign() {
			return &domain.BreakEvenPoint{
				Month:       i + 1,
				CumulativeA: a[i],
				CumulativeB: b[i],
				Difference:  diff,
			}
		}
		prevDiff = diff
	}
	return nil
}
