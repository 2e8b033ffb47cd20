package config

// Overrides carries field-level overrides collected from CLI flags or
// environment. It reuses the file schema: a nil field leaves the loaded value
// untouched, a non-nil field replaces it.
type Overrides = FileConfig

// ApplyOverrides overlays non-nil override fields onto the loaded
// configuration. The receiver is modified in place; the overrides are not.
func ApplyOverrides(fc *FileConfig, ov *Overrides) {
	fc.ensureSections()
	if ov == nil {
		return
	}

	if d := ov.Deal; d != nil {
		dst := fc.Deal
		overlayDec(&dst.MonthlyRent, d.MonthlyRent)
		overlayInt(&dst.Months, d.Months)
		overlayDec(&dst.AnnualKM, d.AnnualKM)
		overlayDec(&dst.UpfrontCosts, d.UpfrontCosts)
		overlayDec(&dst.AccessoriesTotal, d.AccessoriesTotal)
		overlayDec(&dst.OtherFixedCosts, d.OtherFixedCosts)
		overlayDec(&dst.ChargingCreditsTotal, d.ChargingCreditsTotal)
		overlayDec(&dst.RestitutionFees, d.RestitutionFees)
		overlayDec(&dst.ActualAnnualKM, d.ActualAnnualKM)
		overlayDec(&dst.ActualTotalKM, d.ActualTotalKM)
		overlayDec(&dst.ExcessRatePerKM, d.ExcessRatePerKM)
		overlayDec(&dst.ExcessFreeKM, d.ExcessFreeKM)
	}
	if e := ov.Energy; e != nil {
		dst := fc.Energy
		overlayDec(&dst.KWhPer100KM, e.KWhPer100KM)
		overlayDec(&dst.ShareFree, e.ShareFree)
		overlayDec(&dst.HomePricePerKWh, e.HomePricePerKWh)
		overlayDec(&dst.PublicPricePerKWh, e.PublicPricePerKWh)
		overlayDec(&dst.ShareHomeOfPaid, e.ShareHomeOfPaid)
	}
	if m := ov.Maintenance; m != nil {
		dst := fc.Maintenance
		overlayDec(&dst.PerYear, m.PerYear)
		overlayDec(&dst.TireSetCost, m.TireSetCost)
		overlayInt(&dst.TireSetsIncluded, m.TireSetsIncluded)
		overlayInt(&dst.ExpectedTireSetsTotal, m.ExpectedTireSetsTotal)
	}
	if i := ov.Insurance; i != nil {
		overlayDec(&fc.Insurance.PerMonth, i.PerMonth)
	}
	if b := ov.Buyout; b != nil {
		dst := fc.Buyout
		overlayBool(&dst.Enabled, b.Enabled)
		overlayDec(&dst.OptionFee, b.OptionFee)
		overlayDec(&dst.ResidualValue, b.ResidualValue)
		overlayDec(&dst.ResaleValue, b.ResaleValue)
	}
	if k := ov.IK; k != nil {
		dst := fc.IK
		overlayBool(&dst.Enabled, k.Enabled)
		overlayInt(&dst.VehicleCV, k.VehicleCV)
		overlayBool(&dst.IsElectric, k.IsElectric)
		overlayDec(&dst.KMPerDay, k.KMPerDay)
		overlayDec(&dst.CompanyCapKMPerDay, k.CompanyCapKMPerDay)
		overlayDec(&dst.WorkedDays, k.WorkedDays)
		overlayBool(&dst.DaysIsAnnual, k.DaysIsAnnual)
		overlayBool(&dst.Annualize, k.Annualize)
	}
}
