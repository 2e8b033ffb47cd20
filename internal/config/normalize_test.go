package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNormalizeDefaults(t *testing.T) {
	cfg, notes := Normalize(nil)
	assert.Empty(t, notes)

	assert.Equal(t, 48, cfg.Deal.Months)
	assert.True(t, cfg.Deal.MonthlyRent.IsZero())
	assert.True(t, cfg.Deal.AnnualKM.Equal(dec("15000")))
	assert.Nil(t, cfg.Deal.ActualTotalKM)
	assert.Nil(t, cfg.Deal.ActualAnnualKM)

	assert.True(t, cfg.Energy.KWhPer100KM.Equal(dec("17")))
	assert.True(t, cfg.Energy.ShareFree.IsZero())
	assert.True(t, cfg.Energy.HomePricePerKWh.Equal(dec("0.23")))
	assert.True(t, cfg.Energy.PublicPricePerKWh.Equal(dec("0.45")))
	assert.True(t, cfg.Energy.ShareHomeOfPaid.Equal(dec("1")))

	assert.True(t, cfg.Maintenance.PerYear.Equal(dec("200")))
	assert.True(t, cfg.Maintenance.TireSetCost.Equal(dec("700")))
	assert.Equal(t, 0, cfg.Maintenance.TireSetsIncluded)

	assert.False(t, cfg.Buyout.Enabled)
	assert.Nil(t, cfg.Buyout.ResaleValue)

	assert.False(t, cfg.IK.Enabled)
	assert.Equal(t, 5, cfg.IK.VehicleCV)
	assert.True(t, cfg.IK.IsElectric)
	assert.True(t, cfg.IK.DaysIsAnnual)
	assert.True(t, cfg.IK.Annualize)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	fc := CreateExampleConfiguration()
	cfg, notes := Normalize(fc)
	assert.Empty(t, notes)

	assert.Equal(t, 37, cfg.Deal.Months)
	assert.True(t, cfg.Deal.MonthlyRent.Equal(dec("289")))
	assert.True(t, cfg.Buyout.Enabled)
	require.NotNil(t, cfg.Buyout.ResaleValue)
	assert.True(t, cfg.Buyout.ResaleValue.Equal(dec("16500")))
	assert.Equal(t, 4, cfg.IK.VehicleCV)
}

func TestNormalizeClampsFractions(t *testing.T) {
	over := dec("1.5")
	under := dec("-0.2")
	fc := &FileConfig{Energy: &EnergySection{
		ShareFree:       &over,
		ShareHomeOfPaid: &under,
	}}

	cfg, notes := Normalize(fc)
	assert.True(t, cfg.Energy.ShareFree.Equal(dec("1")))
	assert.True(t, cfg.Energy.ShareHomeOfPaid.IsZero())
	require.Len(t, notes, 2)
	assert.Contains(t, notes[0], "energy.share_free")
	assert.Contains(t, notes[1], "energy.share_home_of_paid")
}

func TestNormalizeClampsNegatives(t *testing.T) {
	negKM := dec("-1000")
	negRate := dec("-0.1")
	negSets := -2
	fc := &FileConfig{
		Deal: &DealSection{
			AnnualKM:        &negKM,
			ExcessRatePerKM: &negRate,
		},
		Maintenance: &MaintenanceSection{TireSetsIncluded: &negSets},
	}

	cfg, notes := Normalize(fc)
	assert.True(t, cfg.Deal.AnnualKM.IsZero())
	assert.True(t, cfg.Deal.ExcessRatePerKM.IsZero())
	assert.Equal(t, 0, cfg.Maintenance.TireSetsIncluded)
	assert.Len(t, notes, 3)
}

func TestNormalizeClampsFiscalPower(t *testing.T) {
	cv := 0
	fc := &FileConfig{IK: &IKSection{VehicleCV: &cv}}

	cfg, notes := Normalize(fc)
	assert.Equal(t, 1, cfg.IK.VehicleCV)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "ik.vehicle_cv")

	// High fiscal power is left alone; the scale clamps it at lookup time.
	cv = 12
	cfg, notes = Normalize(fc)
	assert.Equal(t, 12, cfg.IK.VehicleCV)
	assert.Empty(t, notes)
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	actual := dec("70000")
	fc := &FileConfig{Deal: &DealSection{ActualTotalKM: &actual}}

	cfg, _ := Normalize(fc)
	require.NotNil(t, cfg.Deal.ActualTotalKM)

	// Mutating the source must not reach the normalized config.
	actual = dec("1")
	assert.True(t, cfg.Deal.ActualTotalKM.Equal(dec("70000")))
}
