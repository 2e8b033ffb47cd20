package config

import (
	"github.com/shopspring/decimal"
)

// FileConfig mirrors the on-disk configuration schema. Every section and every
// field is optional; nil means "use the documented default". Unknown fields
// are ignored by the parser.
type FileConfig struct {
	Deal        *DealSection        `json:"deal,omitempty" yaml:"deal,omitempty"`
	Energy      *EnergySection      `json:"energy,omitempty" yaml:"energy,omitempty"`
	Maintenance *MaintenanceSection `json:"maintenance,omitempty" yaml:"maintenance,omitempty"`
	Insurance   *InsuranceSection   `json:"insurance,omitempty" yaml:"insurance,omitempty"`
	Buyout      *BuyoutSection      `json:"buyout,omitempty" yaml:"buyout,omitempty"`
	IK          *IKSection          `json:"ik,omitempty" yaml:"ik,omitempty"`
}

// DealSection holds the lease contract fields.
type DealSection struct {
	MonthlyRent          *decimal.Decimal `json:"monthly_rent,omitempty" yaml:"monthly_rent,omitempty"`
	Months               *int             `json:"months,omitempty" yaml:"months,omitempty"`
	AnnualKM             *decimal.Decimal `json:"annual_km,omitempty" yaml:"annual_km,omitempty"`
	UpfrontCosts         *decimal.Decimal `json:"upfront_costs,omitempty" yaml:"upfront_costs,omitempty"`
	AccessoriesTotal     *decimal.Decimal `json:"accessories_total,omitempty" yaml:"accessories_total,omitempty"`
	OtherFixedCosts      *decimal.Decimal `json:"other_fixed_costs,omitempty" yaml:"other_fixed_costs,omitempty"`
	ChargingCreditsTotal *decimal.Decimal `json:"charging_credits_total,omitempty" yaml:"charging_credits_total,omitempty"`
	RestitutionFees      *decimal.Decimal `json:"restitution_fees,omitempty" yaml:"restitution_fees,omitempty"`
	ActualAnnualKM       *decimal.Decimal `json:"actual_annual_km,omitempty" yaml:"actual_annual_km,omitempty"`
	ActualTotalKM        *decimal.Decimal `json:"actual_total_km,omitempty" yaml:"actual_total_km,omitempty"`
	ExcessRatePerKM      *decimal.Decimal `json:"excess_rate_eur_per_km,omitempty" yaml:"excess_rate_eur_per_km,omitempty"`
	ExcessFreeKM         *decimal.Decimal `json:"excess_free_km,omitempty" yaml:"excess_free_km,omitempty"`
}

// EnergySection holds electricity consumption and pricing fields.
type EnergySection struct {
	KWhPer100KM       *decimal.Decimal `json:"kwh_per_100km,omitempty" yaml:"kwh_per_100km,omitempty"`
	ShareFree         *decimal.Decimal `json:"share_free,omitempty" yaml:"share_free,omitempty"`
	HomePricePerKWh   *decimal.Decimal `json:"home_price_eur_per_kwh,omitempty" yaml:"home_price_eur_per_kwh,omitempty"`
	PublicPricePerKWh *decimal.Decimal `json:"public_price_eur_per_kwh,omitempty" yaml:"public_price_eur_per_kwh,omitempty"`
	ShareHomeOfPaid   *decimal.Decimal `json:"share_home_of_paid,omitempty" yaml:"share_home_of_paid,omitempty"`
}

// MaintenanceSection holds servicing and tire fields.
type MaintenanceSection struct {
	PerYear               *decimal.Decimal `json:"maint_eur_per_year,omitempty" yaml:"maint_eur_per_year,omitempty"`
	TireSetCost           *decimal.Decimal `json:"tire_set_cost,omitempty" yaml:"tire_set_cost,omitempty"`
	TireSetsIncluded      *int             `json:"tire_sets_included,omitempty" yaml:"tire_sets_included,omitempty"`
	ExpectedTireSetsTotal *int             `json:"expected_tire_sets_total,omitempty" yaml:"expected_tire_sets_total,omitempty"`
}

// InsuranceSection holds the insurance premium field.
type InsuranceSection struct {
	PerMonth *decimal.Decimal `json:"eur_per_month,omitempty" yaml:"eur_per_month,omitempty"`
}

// BuyoutSection holds the purchase option fields.
type BuyoutSection struct {
	Enabled       *bool            `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	OptionFee     *decimal.Decimal `json:"option_fee,omitempty" yaml:"option_fee,omitempty"`
	ResidualValue *decimal.Decimal `json:"residual_value,omitempty" yaml:"residual_value,omitempty"`
	ResaleValue   *decimal.Decimal `json:"resale_value_after_buyout,omitempty" yaml:"resale_value_after_buyout,omitempty"`
}

// IKSection holds the mileage allowance fields.
type IKSection struct {
	Enabled            *bool            `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	VehicleCV          *int             `json:"vehicle_cv,omitempty" yaml:"vehicle_cv,omitempty"`
	IsElectric         *bool            `json:"is_electric,omitempty" yaml:"is_electric,omitempty"`
	KMPerDay           *decimal.Decimal `json:"km_per_day,omitempty" yaml:"km_per_day,omitempty"`
	CompanyCapKMPerDay *decimal.Decimal `json:"company_cap_km_per_day,omitempty" yaml:"company_cap_km_per_day,omitempty"`
	WorkedDays         *decimal.Decimal `json:"worked_days,omitempty" yaml:"worked_days,omitempty"`
	DaysIsAnnual       *bool            `json:"days_is_annual,omitempty" yaml:"days_is_annual,omitempty"`
	Annualize          *bool            `json:"annualize,omitempty" yaml:"annualize,omitempty"`
}

// ensureSections allocates any missing section so merge and normalization can
// address fields without nil checks at every site.
func (fc *FileConfig) ensureSections() {
	if fc.Deal == nil {
		fc.Deal = &DealSection{}
	}
	if fc.Energy == nil {
		fc.Energy = &EnergySection{}
	}
	if fc.Maintenance == nil {
		fc.Maintenance = &MaintenanceSection{}
	}
	if fc.Insurance == nil {
		fc.Insurance = &InsuranceSection{}
	}
	if fc.Buyout == nil {
		fc.Buyout = &BuyoutSection{}
	}
	if fc.IK == nil {
		fc.IK = &IKSection{}
	}
}
