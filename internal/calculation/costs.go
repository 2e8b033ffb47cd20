package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)

	// Floor for the duration in years when annualizing the allowance scale,
	// so a zero-month contract cannot divide by zero.
	yearsEpsilon = decimal.New(1, -9)
)

// RentTotal is the sum of all lease payments over the contract.
func RentTotal(cfg *domain.LeaseConfig) decimal.Decimal {
	return cfg.Deal.MonthlyRent.Mul(decimal.NewFromInt(int64(cfg.Deal.Months)))
}

// EnergyTotal prices the electricity for the contractual mileage. Free
// charging is removed first; the paid remainder is split between home and
// public charging at their respective prices. Actual mileage never feeds the
// energy cost, only the excess penalty.
func EnergyTotal(cfg *domain.LeaseConfig) decimal.Decimal {
	e := cfg.Energy
	totalKWh := cfg.Deal.ContractTotalKM().Div(hundred).Mul(e.KWhPer100KM)
	paidKWh := totalKWh.Mul(one.Sub(e.ShareFree))
	blendedPrice := e.ShareHomeOfPaid.Mul(e.HomePricePerKWh).
		Add(one.Sub(e.ShareHomeOfPaid).Mul(e.PublicPricePerKWh))
	return paidKWh.Mul(blendedPrice)
}

// MaintenanceTotal scales the yearly servicing budget by the contract
// duration.
func MaintenanceTotal(cfg *domain.LeaseConfig) decimal.Decimal {
	return cfg.Maintenance.PerYear.Mul(cfg.Deal.Years())
}

// TiresTotal charges only the shortfall: tire sets expected over the period
// beyond the ones the contract includes.
func TiresTotal(cfg *domain.LeaseConfig) decimal.Decimal {
	m := cfg.Maintenance
	shortfall := m.ExpectedTireSetsTotal - m.TireSetsIncluded
	if shortfall <= 0 {
		return decimal.Zero
	}
	return m.TireSetCost.Mul(decimal.NewFromInt(int64(shortfall)))
}

// InsuranceTotal is the premium over the whole contract.
func InsuranceTotal(cfg *domain.LeaseConfig) decimal.Decimal {
	return cfg.Insurance.PerMonth.Mul(decimal.NewFromInt(int64(cfg.Deal.Months)))
}

// ExcessMileagePenalty bills kilometers driven beyond the contractual
// mileage plus the franchise. Zero when actual mileage is unknown or within
// the allowance.
func ExcessMileagePenalty(cfg *domain.LeaseConfig) decimal.Decimal {
	actual := cfg.Deal.ActualTotalKMOverPeriod()
	if actual == nil {
		return decimal.Zero
	}
	over := actual.Sub(cfg.Deal.ContractTotalKM()).Sub(cfg.Deal.ExcessFreeKM)
	if over.Sign() <= 0 {
		return decimal.Zero
	}
	return over.Mul(cfg.Deal.ExcessRatePerKM)
}

// MileageIndemnityTotal computes the reimbursement claimed through the
// allowance scale over the whole contract. The daily distance is capped by
// the employer cap when one is set; worked days given per year are scaled by
// the duration. With Annualize the scale is applied to the average annual
// distance and multiplied back by the number of years, which keeps multi-year
// totals inside the realistic tiers; otherwise the scale is applied once to
// the full eligible distance.
func MileageIndemnityTotal(cfg *domain.LeaseConfig) decimal.Decimal {
	ik := cfg.IK
	if !ik.Enabled {
		return decimal.Zero
	}

	kmPerDay := ik.KMPerDay
	if ik.CompanyCapKMPerDay.Sign() > 0 {
		kmPerDay = decimal.Min(kmPerDay, ik.CompanyCapKMPerDay)
	}

	days := ik.WorkedDays
	if ik.DaysIsAnnual {
		days = days.Mul(decimal.NewFromInt(int64(cfg.Deal.Months))).Div(twelve)
	}

	eligibleKM := kmPerDay.Mul(days)
	if eligibleKM.Sign() <= 0 {
		return decimal.Zero
	}

	if !ik.Annualize {
		return IndemnityForDistance(eligibleKM, ik.VehicleCV, ik.IsElectric)
	}

	years := decimal.Max(cfg.Deal.Years(), yearsEpsilon)
	annualKM := eligibleKM.Div(years)
	return IndemnityForDistance(annualKM, ik.VehicleCV, ik.IsElectric).Mul(years)
}

// CategoryTotal dispatches to the calculator for one cost category. Only the
// computed categories are addressable here; pass-through amounts (upfront,
// accessories, fees) live directly on the configuration.
func CategoryTotal(cat domain.Category, cfg *domain.LeaseConfig) decimal.Decimal {
	switch cat {
	case domain.CategoryRent:
		return RentTotal(cfg)
	case domain.CategoryEnergy:
		return EnergyTotal(cfg)
	case domain.CategoryMaintenance:
		return MaintenanceTotal(cfg)
	case domain.CategoryTires:
		return TiresTotal(cfg)
	case domain.CategoryInsurance:
		return InsuranceTotal(cfg)
	case domain.CategoryExcessPenalty:
		return ExcessMileagePenalty(cfg)
	case domain.CategoryIK:
		return MileageIndemnityTotal(cfg)
	default:
		return decimal.Zero
	}
}
