package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tcoloa/lease-calculator/internal/config"
)

// registerOverrideFlags declares one flag per configuration field so any
// value from the config file can be overridden on the command line. Boolean
// fields come in on/off pairs because "not passed" must stay distinguishable
// from "false".
func registerOverrideFlags(cmd *cobra.Command) {
	fl := cmd.Flags()

	// deal
	fl.Int("months", 0, "override: contract duration in months")
	fl.Float64("monthly-rent", 0, "override: monthly lease payment (EUR)")
	fl.Float64("annual-km", 0, "override: contractual annual mileage (km)")
	fl.Float64("upfront", 0, "override: upfront costs (EUR)")
	fl.Float64("accessories", 0, "override: accessories total (EUR)")
	fl.Float64("other-fixed", 0, "override: other fixed costs (EUR)")
	fl.Float64("charging-credits", 0, "override: charging credits over the period (EUR)")
	fl.Float64("restitution-fees", 0, "override: restitution fees on return (EUR)")
	fl.Float64("actual-annual-km", 0, "override: actual annual mileage (km)")
	fl.Float64("actual-total-km", 0, "override: actual total mileage over the period (km, wins over --actual-annual-km)")
	fl.Float64("excess-rate", 0, "override: excess mileage rate (EUR/km)")
	fl.Float64("excess-free-km", 0, "override: mileage franchise over the period (km)")

	// energy
	fl.Float64("kwh-per-100", 0, "override: consumption (kWh/100km)")
	fl.Float64("share-free", 0, "override: share of free charging [0..1]")
	fl.Float64("home-price", 0, "override: home electricity price (EUR/kWh)")
	fl.Float64("public-price", 0, "override: public charging price (EUR/kWh)")
	fl.Float64("share-home-paid", 0, "override: home share of paid charging [0..1]")

	// maintenance and insurance
	fl.Float64("maint-year", 0, "override: maintenance cost (EUR/year)")
	fl.Float64("tire-cost", 0, "override: cost of one tire set (EUR)")
	fl.Int("tire-included", 0, "override: tire sets included in the contract")
	fl.Int("tire-expected-total", 0, "override: tire sets expected over the period")
	fl.Float64("ins-month", 0, "override: insurance premium (EUR/month)")

	// buyout
	fl.Bool("buyout", false, "override: enable the buyout scenario")
	fl.Bool("no-buyout", false, "override: disable the buyout scenario")
	fl.Float64("option-fee", 0, "override: purchase option fee (EUR)")
	fl.Float64("vr", 0, "override: residual (buyout) value (EUR)")
	fl.Float64("resale", 0, "override: expected resale value after buyout (EUR)")

	// mileage allowance
	fl.Bool("ik", false, "override: enable the mileage allowance")
	fl.Bool("no-ik", false, "override: disable the mileage allowance")
	fl.Int("ik-cv", 0, "override: fiscal power (CV) for the allowance scale")
	fl.Bool("ik-ev", false, "override: apply the electric vehicle bonus")
	fl.Bool("ik-no-ev", false, "override: do not apply the electric vehicle bonus")
	fl.Float64("ik-km-day", 0, "override: reimbursed distance per worked day (km)")
	fl.Float64("ik-cap-km-day", 0, "override: employer cap per worked day (km, 0 = no cap)")
	fl.Float64("ik-days", 0, "override: worked days")
	fl.Bool("ik-days-annual", false, "override: --ik-days counts days per year")
	fl.Bool("ik-days-total", false, "override: --ik-days counts days over the whole period")
	fl.Bool("ik-annualize", false, "override: apply the scale per year")
	fl.Bool("ik-no-annualize", false, "override: apply the scale once on the total distance")

	cmd.MarkFlagsMutuallyExclusive("buyout", "no-buyout")
	cmd.MarkFlagsMutuallyExclusive("ik", "no-ik")
	cmd.MarkFlagsMutuallyExclusive("ik-ev", "ik-no-ev")
	cmd.MarkFlagsMutuallyExclusive("ik-days-annual", "ik-days-total")
	cmd.MarkFlagsMutuallyExclusive("ik-annualize", "ik-no-annualize")
}

// collectOverrides turns the flags that were actually passed into an override
// document for ApplyOverrides.
func collectOverrides(cmd *cobra.Command) *config.Overrides {
	fl := cmd.Flags()

	decFlag := func(name string, dst **decimal.Decimal) {
		if fl.Changed(name) {
			v, _ := fl.GetFloat64(name)
			d := decimal.NewFromFloat(v)
			*dst = &d
		}
	}
	intFlag := func(name string, dst **int) {
		if fl.Changed(name) {
			v, _ := fl.GetInt(name)
			*dst = &v
		}
	}

	ov := &config.Overrides{
		Deal:        &config.DealSection{},
		Energy:      &config.EnergySection{},
		Maintenance: &config.MaintenanceSection{},
		Insurance:   &config.InsuranceSection{},
		Buyout:      &config.BuyoutSection{},
		IK:          &config.IKSection{},
	}

	intFlag("months", &ov.Deal.Months)
	decFlag("monthly-rent", &ov.Deal.MonthlyRent)
	decFlag("annual-km", &ov.Deal.AnnualKM)
	decFlag("upfront", &ov.Deal.UpfrontCosts)
	decFlag("accessories", &ov.Deal.AccessoriesTotal)
	decFlag("other-fixed", &ov.Deal.OtherFixedCosts)
	decFlag("charging-credits", &ov.Deal.ChargingCreditsTotal)
	decFlag("restitution-fees", &ov.Deal.RestitutionFees)
	decFlag("actual-annual-km", &ov.Deal.ActualAnnualKM)
	decFlag("actual-total-km", &ov.Deal.ActualTotalKM)
	decFlag("excess-rate", &ov.Deal.ExcessRatePerKM)
	decFlag("excess-free-km", &ov.Deal.ExcessFreeKM)

	decFlag("kwh-per-100", &ov.Energy.KWhPer100KM)
	decFlag("share-free", &ov.Energy.ShareFree)
	decFlag("home-price", &ov.Energy.HomePricePerKWh)
	decFlag("public-price", &ov.Energy.PublicPricePerKWh)
	decFlag("share-home-paid", &ov.Energy.ShareHomeOfPaid)

	decFlag("maint-year", &ov.Maintenance.PerYear)
	decFlag("tire-cost", &ov.Maintenance.TireSetCost)
	intFlag("tire-included", &ov.Maintenance.TireSetsIncluded)
	intFlag("tire-expected-total", &ov.Maintenance.ExpectedTireSetsTotal)

	decFlag("ins-month", &ov.Insurance.PerMonth)

	ov.Buyout.Enabled = boolPair(fl, "buyout", "no-buyout")
	decFlag("option-fee", &ov.Buyout.OptionFee)
	decFlag("vr", &ov.Buyout.ResidualValue)
	decFlag("resale", &ov.Buyout.ResaleValue)

	ov.IK.Enabled = boolPair(fl, "ik", "no-ik")
	intFlag("ik-cv", &ov.IK.VehicleCV)
	ov.IK.IsElectric = boolPair(fl, "ik-ev", "ik-no-ev")
	decFlag("ik-km-day", &ov.IK.KMPerDay)
	decFlag("ik-cap-km-day", &ov.IK.CompanyCapKMPerDay)
	decFlag("ik-days", &ov.IK.WorkedDays)
	ov.IK.DaysIsAnnual = boolPair(fl, "ik-days-annual", "ik-days-total")
	ov.IK.Annualize = boolPair(fl, "ik-annualize", "ik-no-annualize")

	return ov
}

// boolPair resolves an on/off flag pair into an optional boolean.
func boolPair(fl *pflag.FlagSet, on, off string) *bool {
	switch {
	case fl.Changed(on):
		v := true
		return &v
	case fl.Changed(off):
		v := false
		return &v
	default:
		return nil
	}
}
