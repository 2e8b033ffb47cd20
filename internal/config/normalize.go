package config

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

// Documented defaults for every optional field. These are the effective
// runtime defaults: months 48, 15000 km/year, a 17 kWh/100km EV charged at
// home for 0.23 €/kWh, 200 €/year servicing, 700 € per tire set, 5 CV.
var (
	defaultMonths        = 48
	defaultAnnualKM      = decimal.NewFromInt(15000)
	defaultKWhPer100KM   = decimal.NewFromFloat(17)
	defaultHomePrice     = decimal.NewFromFloat(0.23)
	defaultPublicPrice   = decimal.NewFromFloat(0.45)
	defaultShareHomePaid = decimal.NewFromInt(1)
	defaultMaintPerYear  = decimal.NewFromInt(200)
	defaultTireSetCost   = decimal.NewFromInt(700)
	defaultVehicleCV     = 5
)

var (
	one = decimal.NewFromInt(1)
)

// Normalize fills defaults and clamps out-of-domain values, producing the
// fully-populated immutable configuration the calculators consume. The input
// is not mutated. The returned notes describe every clamp that was applied,
// for debug logging; the numeric result is always the clamped one.
func Normalize(fc *FileConfig) (domain.LeaseConfig, []string) {
	if fc == nil {
		fc = &FileConfig{}
	}
	var notes []string

	var cfg domain.LeaseConfig

	d := fc.Deal
	if d == nil {
		d = &DealSection{}
	}
	cfg.Deal = domain.DealTerms{
		MonthlyRent:          decOr(d.MonthlyRent, decimal.Zero),
		Months:               intOr(d.Months, defaultMonths),
		AnnualKM:             clampNonNegative("deal.annual_km", decOr(d.AnnualKM, defaultAnnualKM), &notes),
		UpfrontCosts:         decOr(d.UpfrontCosts, decimal.Zero),
		AccessoriesTotal:     decOr(d.AccessoriesTotal, decimal.Zero),
		OtherFixedCosts:      decOr(d.OtherFixedCosts, decimal.Zero),
		ChargingCreditsTotal: decOr(d.ChargingCreditsTotal, decimal.Zero),
		RestitutionFees:      decOr(d.RestitutionFees, decimal.Zero),
		ActualAnnualKM:       copyDec(d.ActualAnnualKM),
		ActualTotalKM:        copyDec(d.ActualTotalKM),
		ExcessRatePerKM:      clampNonNegative("deal.excess_rate_eur_per_km", decOr(d.ExcessRatePerKM, decimal.Zero), &notes),
		ExcessFreeKM:         clampNonNegative("deal.excess_free_km", decOr(d.ExcessFreeKM, decimal.Zero), &notes),
	}

	e := fc.Energy
	if e == nil {
		e = &EnergySection{}
	}
	cfg.Energy = domain.EnergyTerms{
		KWhPer100KM:       decOr(e.KWhPer100KM, defaultKWhPer100KM),
		ShareFree:         clampFraction("energy.share_free", decOr(e.ShareFree, decimal.Zero), &notes),
		HomePricePerKWh:   decOr(e.HomePricePerKWh, defaultHomePrice),
		PublicPricePerKWh: decOr(e.PublicPricePerKWh, defaultPublicPrice),
		ShareHomeOfPaid:   clampFraction("energy.share_home_of_paid", decOr(e.ShareHomeOfPaid, defaultShareHomePaid), &notes),
	}

	m := fc.Maintenance
	if m == nil {
		m = &MaintenanceSection{}
	}
	cfg.Maintenance = domain.MaintenanceTerms{
		PerYear:               decOr(m.PerYear, defaultMaintPerYear),
		TireSetCost:           decOr(m.TireSetCost, defaultTireSetCost),
		TireSetsIncluded:      clampNonNegativeInt("maintenance.tire_sets_included", intOr(m.TireSetsIncluded, 0), &notes),
		ExpectedTireSetsTotal: clampNonNegativeInt("maintenance.expected_tire_sets_total", intOr(m.ExpectedTireSetsTotal, 0), &notes),
	}

	i := fc.Insurance
	if i == nil {
		i = &InsuranceSection{}
	}
	cfg.Insurance = domain.InsuranceTerms{
		PerMonth: decOr(i.PerMonth, decimal.Zero),
	}

	b := fc.Buyout
	if b == nil {
		b = &BuyoutSection{}
	}
	cfg.Buyout = domain.BuyoutTerms{
		Enabled:       boolOr(b.Enabled, false),
		OptionFee:     decOr(b.OptionFee, decimal.Zero),
		ResidualValue: decOr(b.ResidualValue, decimal.Zero),
		ResaleValue:   copyDec(b.ResaleValue),
	}

	k := fc.IK
	if k == nil {
		k = &IKSection{}
	}
	cv := intOr(k.VehicleCV, defaultVehicleCV)
	if cv < 1 {
		notes = append(notes, fmt.Sprintf("ik.vehicle_cv clamped from %d to 1", cv))
		cv = 1
	}
	cfg.IK = domain.IKTerms{
		Enabled:            boolOr(k.Enabled, false),
		VehicleCV:          cv,
		IsElectric:         boolOr(k.IsElectric, true),
		KMPerDay:           clampNonNegative("ik.km_per_day", decOr(k.KMPerDay, decimal.Zero), &notes),
		CompanyCapKMPerDay: clampNonNegative("ik.company_cap_km_per_day", decOr(k.CompanyCapKMPerDay, decimal.Zero), &notes),
		WorkedDays:         clampNonNegative("ik.worked_days", decOr(k.WorkedDays, decimal.Zero), &notes),
		DaysIsAnnual:       boolOr(k.DaysIsAnnual, true),
		Annualize:          boolOr(k.Annualize, true),
	}

	return cfg, notes
}

func decOr(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func copyDec(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func clampFraction(field string, v decimal.Decimal, notes *[]string) decimal.Decimal {
	if v.IsNegative() {
		*notes = append(*notes, fmt.Sprintf("%s clamped from %s to 0", field, v))
		return decimal.Zero
	}
	if v.GreaterThan(one) {
		*notes = append(*notes, fmt.Sprintf("%s clamped from %s to 1", field, v))
		return one
	}
	return v
}

func clampNonNegative(field string, v decimal.Decimal, notes *[]string) decimal.Decimal {
	if v.IsNegative() {
		*notes = append(*notes, fmt.Sprintf("%s clamped from %s to 0", field, v))
		return decimal.Zero
	}
	return v
}

func clampNonNegativeInt(field string, v int, notes *[]string) int {
	if v < 0 {
		*notes = append(*notes, fmt.Sprintf("%s clamped from %d to 0", field, v))
		return 0
	}
	return v
}

func overlayDec(dst **decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func overlayInt(dst **int, src *int) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func overlayBool(dst **bool, src *bool) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
