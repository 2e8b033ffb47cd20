package domain

import (
	"github.com/shopspring/decimal"
)

// LeaseConfig is a fully-normalized lease configuration: every field carries a
// usable value, fractions are clamped into [0,1] and forbidden negatives have
// been clamped to zero. It is immutable input to the calculators; nothing in
// the engine mutates it.
type LeaseConfig struct {
	Deal        DealTerms        `json:"deal"`
	Energy      EnergyTerms      `json:"energy"`
	Maintenance MaintenanceTerms `json:"maintenance"`
	Insurance   InsuranceTerms   `json:"insurance"`
	Buyout      BuyoutTerms      `json:"buyout"`
	IK          IKTerms          `json:"ik"`
}

// DealTerms describes the lease contract itself.
type DealTerms struct {
	MonthlyRent          decimal.Decimal `json:"monthly_rent"`
	Months               int             `json:"months"`
	AnnualKM             decimal.Decimal `json:"annual_km"`
	UpfrontCosts         decimal.Decimal `json:"upfront_costs"`
	AccessoriesTotal     decimal.Decimal `json:"accessories_total"`
	OtherFixedCosts      decimal.Decimal `json:"other_fixed_costs"`
	ChargingCreditsTotal decimal.Decimal `json:"charging_credits_total"`
	RestitutionFees      decimal.Decimal `json:"restitution_fees"`

	// Actual mileage, if known. ActualTotalKM takes precedence over
	// ActualAnnualKM; when both are nil no excess penalty applies.
	ActualAnnualKM *decimal.Decimal `json:"actual_annual_km,omitempty"`
	ActualTotalKM  *decimal.Decimal `json:"actual_total_km,omitempty"`

	ExcessRatePerKM decimal.Decimal `json:"excess_rate_eur_per_km"`
	ExcessFreeKM    decimal.Decimal `json:"excess_free_km"`
}

// EnergyTerms describes electricity consumption and pricing. Energy is always
// priced on contractual mileage, never actual.
type EnergyTerms struct {
	KWhPer100KM       decimal.Decimal `json:"kwh_per_100km"`
	ShareFree         decimal.Decimal `json:"share_free"`
	HomePricePerKWh   decimal.Decimal `json:"home_price_eur_per_kwh"`
	PublicPricePerKWh decimal.Decimal `json:"public_price_eur_per_kwh"`
	ShareHomeOfPaid   decimal.Decimal `json:"share_home_of_paid"`
}

// MaintenanceTerms covers servicing and tires.
type MaintenanceTerms struct {
	PerYear               decimal.Decimal `json:"maint_eur_per_year"`
	TireSetCost           decimal.Decimal `json:"tire_set_cost"`
	TireSetsIncluded      int             `json:"tire_sets_included"`
	ExpectedTireSetsTotal int             `json:"expected_tire_sets_total"`
}

// InsuranceTerms is the monthly insurance premium.
type InsuranceTerms struct {
	PerMonth decimal.Decimal `json:"eur_per_month"`
}

// BuyoutTerms describes the end-of-lease purchase option. When Enabled is
// false the return scenario (restitution fees) applies instead.
type BuyoutTerms struct {
	Enabled       bool             `json:"enabled"`
	OptionFee     decimal.Decimal  `json:"option_fee"`
	ResidualValue decimal.Decimal  `json:"residual_value"`
	ResaleValue   *decimal.Decimal `json:"resale_value_after_buyout,omitempty"`
}

// IKTerms configures the mileage allowance reimbursement (French "indemnités
// kilométriques" scale).
type IKTerms struct {
	Enabled            bool            `json:"enabled"`
	VehicleCV          int             `json:"vehicle_cv"`
	IsElectric         bool            `json:"is_electric"`
	KMPerDay           decimal.Decimal `json:"km_per_day"`
	CompanyCapKMPerDay decimal.Decimal `json:"company_cap_km_per_day"`
	WorkedDays         decimal.Decimal `json:"worked_days"`
	DaysIsAnnual       bool            `json:"days_is_annual"`
	Annualize          bool            `json:"annualize"`
}

// Years returns the contract duration in (possibly fractional) years.
func (d DealTerms) Years() decimal.Decimal {
	return decimal.NewFromInt(int64(d.Months)).Div(decimal.NewFromInt(12))
}

// ContractTotalKM returns the contractual mileage over the whole period.
func (d DealTerms) ContractTotalKM() decimal.Decimal {
	return d.AnnualKM.Mul(d.Years())
}

// ActualTotalKMOverPeriod resolves the actual mileage driven over the whole
// period. ActualTotalKM wins when present; otherwise ActualAnnualKM is scaled
// by the duration. Returns nil when neither is set.
func (d DealTerms) ActualTotalKMOverPeriod() *decimal.Decimal {
	if d.ActualTotalKM != nil {
		v := *d.ActualTotalKM
		return &v
	}
	if d.ActualAnnualKM != nil {
		v := d.ActualAnnualKM.Mul(d.Years())
		return &v
	}
	return nil
}
