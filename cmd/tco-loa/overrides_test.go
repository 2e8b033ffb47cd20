package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcoloa/lease-calculator/internal/config"
)

func parseFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	registerOverrideFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestCollectOverridesOnlyChangedFlags(t *testing.T) {
	cmd := parseFlags(t, "--monthly-rent", "305", "--months", "48", "--no-buyout")
	ov := collectOverrides(cmd)

	require.NotNil(t, ov.Deal.MonthlyRent)
	assert.Equal(t, "305", ov.Deal.MonthlyRent.String())
	require.NotNil(t, ov.Deal.Months)
	assert.Equal(t, 48, *ov.Deal.Months)

	require.NotNil(t, ov.Buyout.Enabled)
	assert.False(t, *ov.Buyout.Enabled)

	// Untouched flags leave no override behind.
	assert.Nil(t, ov.Deal.AnnualKM)
	assert.Nil(t, ov.Energy.KWhPer100KM)
	assert.Nil(t, ov.IK.Enabled)
}

func TestCollectOverridesBoolPairs(t *testing.T) {
	cmd := parseFlags(t, "--ik", "--ik-no-ev", "--ik-days-total")
	ov := collectOverrides(cmd)

	require.NotNil(t, ov.IK.Enabled)
	assert.True(t, *ov.IK.Enabled)
	require.NotNil(t, ov.IK.IsElectric)
	assert.False(t, *ov.IK.IsElectric)
	require.NotNil(t, ov.IK.DaysIsAnnual)
	assert.False(t, *ov.IK.DaysIsAnnual)
	assert.Nil(t, ov.IK.Annualize)
}

func TestCollectOverridesApply(t *testing.T) {
	cmd := parseFlags(t, "--ins-month", "62.5", "--tire-included", "1")

	fc := &config.FileConfig{}
	config.ApplyOverrides(fc, collectOverrides(cmd))

	require.NotNil(t, fc.Insurance.PerMonth)
	assert.Equal(t, "62.5", fc.Insurance.PerMonth.String())
	require.NotNil(t, fc.Maintenance.TireSetsIncluded)
	assert.Equal(t, 1, *fc.Maintenance.TireSetsIncluded)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, "csv", extensionFor("csv"))
	assert.Equal(t, "json", extensionFor("json"))
	assert.Equal(t, "txt", extensionFor("console"))
}
