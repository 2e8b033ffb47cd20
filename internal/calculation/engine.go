package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

// Row labels, in breakdown order.
const (
	labelRent            = "Lease payments"
	labelEnergy          = "Energy (electricity)"
	labelMaintenance     = "Maintenance"
	labelTires           = "Tires"
	labelInsurance       = "Insurance"
	labelUpfront         = "Registration / delivery"
	labelAccessories     = "Accessories"
	labelOtherFixed      = "Other fixed costs"
	labelChargingCredits = "Charging credits (deducted)"
	labelExcessPenalty   = "Excess mileage penalty"
	labelIK              = "Mileage allowances (deducted)"
	labelRestitution     = "Restitution fees"
	labelOptionFee       = "Purchase option fee"
	labelResidualValue   = "Residual value (buyout)"
	labelResale          = "Resale after buyout (deducted)"
)

// Treat a grand total below this magnitude as zero when computing shares.
var shareEpsilon = decimal.New(1, -9)

// CalculationEngine orchestrates the per-category calculators into breakdowns,
// cumulative series and offer comparisons.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil value restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// BuildBreakdown assembles the ordered, signed cost rows for one offer.
// Costs are positive; charging credits, mileage allowances and resale value
// are negative. Exactly one of the return/buyout trailing blocks carries
// values; the other is all-zero. The grand total is the exact row sum.
func (ce *CalculationEngine) BuildBreakdown(cfg *domain.LeaseConfig) *domain.Breakdown {
	rows := make([]domain.CostRow, 0, 15)
	add := func(cat domain.Category, label string, amount decimal.Decimal) {
		rows = append(rows, domain.CostRow{Category: cat, Label: label, Amount: amount})
	}

	add(domain.CategoryRent, labelRent, RentTotal(cfg))
	add(domain.CategoryEnergy, labelEnergy, EnergyTotal(cfg))
	add(domain.CategoryMaintenance, labelMaintenance, MaintenanceTotal(cfg))
	add(domain.CategoryTires, labelTires, TiresTotal(cfg))
	add(domain.CategoryInsurance, labelInsurance, InsuranceTotal(cfg))
	add(domain.CategoryUpfront, labelUpfront, cfg.Deal.UpfrontCosts)
	add(domain.CategoryAccessories, labelAccessories, cfg.Deal.AccessoriesTotal)
	add(domain.CategoryOtherFixed, labelOtherFixed, cfg.Deal.OtherFixedCosts)
	add(domain.CategoryChargingCredits, labelChargingCredits, cfg.Deal.ChargingCreditsTotal.Abs().Neg())
	add(domain.CategoryExcessPenalty, labelExcessPenalty, ExcessMileagePenalty(cfg))
	add(domain.CategoryIK, labelIK, MileageIndemnityTotal(cfg).Neg())

	scenario := domain.ScenarioReturn
	if cfg.Buyout.Enabled {
		scenario = domain.ScenarioBuyout
		add(domain.CategoryRestitution, labelRestitution, decimal.Zero)
		add(domain.CategoryOptionFee, labelOptionFee, cfg.Buyout.OptionFee)
		add(domain.CategoryResidualValue, labelResidualValue, cfg.Buyout.ResidualValue)
		resale := decimal.Zero
		if cfg.Buyout.ResaleValue != nil {
			resale = cfg.Buyout.ResaleValue.Neg()
		}
		add(domain.CategoryResale, labelResale, resale)
	} else {
		add(domain.CategoryRestitution, labelRestitution, cfg.Deal.RestitutionFees)
		add(domain.CategoryOptionFee, labelOptionFee, decimal.Zero)
		add(domain.CategoryResidualValue, labelResidualValue, decimal.Zero)
		add(domain.CategoryResale, labelResale, decimal.Zero)
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}

	months := cfg.Deal.Months
	monthsDec := decimal.NewFromInt(int64(months))
	hasTotal := total.Abs().GreaterThan(shareEpsilon)
	for idx := range rows {
		if months > 0 {
			rows[idx].PerMonth = rows[idx].Amount.Div(monthsDec)
		}
		if hasTotal {
			rows[idx].Share = rows[idx].Amount.Div(total).Mul(hundred)
		}
		ce.Logger.Debugf("breakdown row %-30s amount=%s", rows[idx].Label, rows[idx].Amount.StringFixed(2))
	}

	b := &domain.Breakdown{
		Scenario:   scenario,
		Months:     months,
		ContractKM: cfg.Deal.ContractTotalKM(),
		ActualKM:   cfg.Deal.ActualTotalKMOverPeriod(),
		Rows:       rows,
		Total:      total,
	}
	if months > 0 {
		b.TotalPerMonth = total.Div(monthsDec)
	}
	ce.Logger.Debugf("breakdown scenario=%s months=%d total=%s", scenario, months, total.StringFixed(2))
	return b
}

// CumulativeMonthlySeries prorates the grand total linearly over the contract:
// element m (1-based) is total*m/months. The multiplication happens before
// the single division so the last element equals the total exactly. Empty
// when months <= 0.
func (ce *CalculationEngine) CumulativeMonthlySeries(cfg *domain.LeaseConfig) []decimal.Decimal {
	return seriesForTotal(ce.BuildBreakdown(cfg).Total, cfg.Deal.Months)
}

func seriesForTotal(total decimal.Decimal, months int) []decimal.Decimal {
	if months <= 0 {
		return nil
	}
	monthsDec := decimal.NewFromInt(int64(months))
	series := make([]decimal.Decimal, months)
	for m := 1; m <= months; m++ {
		series[m-1] = total.Mul(decimal.NewFromInt(int64(m))).Div(monthsDec)
	}
	return series
}

// Summarize lists the key parameters of an offer for headers and comparison
// tooltips.
func (ce *CalculationEngine) Summarize(cfg *domain.LeaseConfig) domain.OfferSummary {
	b := ce.BuildBreakdown(cfg)
	return summaryFromBreakdown(cfg, b)
}

func summaryFromBreakdown(cfg *domain.LeaseConfig, b *domain.Breakdown) domain.OfferSummary {
	return domain.OfferSummary{
		Months:        cfg.Deal.Months,
		MonthlyRent:   cfg.Deal.MonthlyRent,
		AnnualKM:      cfg.Deal.AnnualKM,
		ContractKM:    b.ContractKM,
		BuyoutEnabled: cfg.Buyout.Enabled,
		IKEnabled:     cfg.IK.Enabled,
		Total:         b.Total,
		TotalPerMonth: b.TotalPerMonth,
	}
}

// RunOffer computes the full report for one offer: summary, breakdown and
// cumulative monthly series. The breakdown is computed once and shared.
func (ce *CalculationEngine) RunOffer(cfg *domain.LeaseConfig) *domain.Report {
	b := ce.BuildBreakdown(cfg)
	return &domain.Report{
		Summary:   summaryFromBreakdown(cfg, b),
		Breakdown: b,
		Series:    seriesForTotal(b.Total, cfg.Deal.Months),
	}
}
