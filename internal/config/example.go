package config

import (
	"github.com/shopspring/decimal"
)

// CreateExampleConfiguration returns a populated configuration suitable for
// writing out as a starting point: a 37-month EV lease with a buyout option
// and mileage allowances claimed for commuting.
func CreateExampleConfiguration() *FileConfig {
	return &FileConfig{
		Deal: &DealSection{
			MonthlyRent:          decPtr(decimal.NewFromInt(289)),
			Months:               intPtr(37),
			AnnualKM:             decPtr(decimal.NewFromInt(10000)),
			UpfrontCosts:         decPtr(decimal.NewFromInt(350)),
			AccessoriesTotal:     decPtr(decimal.NewFromInt(490)),
			ChargingCreditsTotal: decPtr(decimal.NewFromInt(300)),
			RestitutionFees:      decPtr(decimal.NewFromInt(250)),
			ExcessRatePerKM:      decPtr(decimal.NewFromFloat(0.10)),
			ExcessFreeKM:         decPtr(decimal.NewFromInt(1500)),
		},
		Energy: &EnergySection{
			KWhPer100KM:     decPtr(decimal.NewFromFloat(14.5)),
			ShareFree:       decPtr(decimal.NewFromFloat(0.10)),
			HomePricePerKWh: decPtr(decimal.NewFromFloat(0.20)),
			ShareHomeOfPaid: decPtr(decimal.NewFromFloat(0.85)),
		},
		Maintenance: &MaintenanceSection{
			PerYear:               decPtr(decimal.NewFromInt(150)),
			TireSetCost:           decPtr(decimal.NewFromInt(650)),
			TireSetsIncluded:      intPtr(0),
			ExpectedTireSetsTotal: intPtr(1),
		},
		Insurance: &InsuranceSection{
			PerMonth: decPtr(decimal.NewFromInt(58)),
		},
		Buyout: &BuyoutSection{
			Enabled:       boolPtr(true),
			OptionFee:     decPtr(decimal.NewFromInt(300)),
			ResidualValue: decPtr(decimal.NewFromInt(14800)),
			ResaleValue:   decPtr(decimal.NewFromInt(16500)),
		},
		IK: &IKSection{
			Enabled:            boolPtr(true),
			VehicleCV:          intPtr(4),
			IsElectric:         boolPtr(true),
			KMPerDay:           decPtr(decimal.NewFromInt(40)),
			CompanyCapKMPerDay: decPtr(decimal.NewFromInt(30)),
			WorkedDays:         decPtr(decimal.NewFromInt(210)),
			DaysIsAnnual:       boolPtr(true),
			Annualize:          boolPtr(true),
		},
	}
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
func intPtr(i int) *int                         { return &i }
func boolPtr(b bool) *bool                      { return &b }
