package domain

import (
	"github.com/shopspring/decimal"
)

// Category identifies a cost category of the breakdown.
type Category string

const (
	CategoryRent            Category = "rent"
	CategoryEnergy          Category = "energy"
	CategoryMaintenance     Category = "maintenance"
	CategoryTires           Category = "tires"
	CategoryInsurance       Category = "insurance"
	CategoryUpfront         Category = "upfront"
	CategoryAccessories     Category = "accessories"
	CategoryOtherFixed      Category = "other_fixed"
	CategoryChargingCredits Category = "charging_credits"
	CategoryExcessPenalty   Category = "excess_penalty"
	CategoryIK              Category = "mileage_indemnity"
	CategoryRestitution     Category = "restitution_fees"
	CategoryOptionFee       Category = "option_fee"
	CategoryResidualValue   Category = "residual_value"
	CategoryResale          Category = "resale"
)

// Scenario names for the trailing breakdown block.
const (
	ScenarioReturn = "return"
	ScenarioBuyout = "buyout"
)

// CostRow is one line of the breakdown. Amount is signed: costs are positive,
// reimbursements and credits negative.
type CostRow struct {
	Category Category        `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	PerMonth decimal.Decimal `json:"per_month"`
	Share    decimal.Decimal `json:"share_percent"`
}

// Breakdown is the full per-category cost table for one offer.
type Breakdown struct {
	Scenario      string           `json:"scenario"`
	Months        int              `json:"months"`
	ContractKM    decimal.Decimal  `json:"contract_km"`
	ActualKM      *decimal.Decimal `json:"actual_km,omitempty"`
	Rows          []CostRow        `json:"rows"`
	Total         decimal.Decimal  `json:"total"`
	TotalPerMonth decimal.Decimal  `json:"total_per_month"`
}

// OfferSummary lists the key parameters of an offer, for report headers and
// comparison tooltips.
type OfferSummary struct {
	Name          string          `json:"name,omitempty"`
	Months        int             `json:"months"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	AnnualKM      decimal.Decimal `json:"annual_km"`
	ContractKM    decimal.Decimal `json:"contract_km"`
	BuyoutEnabled bool            `json:"buyout_enabled"`
	IKEnabled     bool            `json:"ik_enabled"`
	Total         decimal.Decimal `json:"total"`
	TotalPerMonth decimal.Decimal `json:"total_per_month"`
}

// Report bundles everything a formatter needs for a single offer.
type Report struct {
	Summary   OfferSummary      `json:"summary"`
	Breakdown *Breakdown        `json:"breakdown"`
	Series    []decimal.Decimal `json:"cumulative_monthly_series"`
}

// OfferResult is one offer inside a comparison.
type OfferResult struct {
	Name      string            `json:"name"`
	Summary   OfferSummary      `json:"summary"`
	Breakdown *Breakdown        `json:"breakdown"`
	Series    []decimal.Decimal `json:"cumulative_monthly_series"`
}

// BreakEvenPoint is the first month at which the cumulative TCO of two offers
// crosses (or meets within one cent).
type BreakEvenPoint struct {
	Month       int             `json:"month"`
	CumulativeA decimal.Decimal `json:"cumulative_a"`
	CumulativeB decimal.Decimal `json:"cumulative_b"`
	Difference  decimal.Decimal `json:"difference"`
}

// OfferComparison holds several offers side by side. BreakEven compares the
// first two offers and is nil when their cumulative series never cross.
type OfferComparison struct {
	Offers    []OfferResult   `json:"offers"`
	MaxMonths int             `json:"max_months"`
	BreakEven *BreakEvenPoint `json:"break_even,omitempty"`
}
