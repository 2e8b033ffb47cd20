package output

import (
	"bytes"
	"encoding/csv"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

func TestCSVFormatter(t *testing.T) {
	report := sampleReport(t)
	data, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// Header + 15 category rows + total row.
	require.Len(t, records, 17)
	assert.Equal(t, []string{"Category", "Label", "TotalEUR", "PerMonthEUR", "SharePercent"}, records[0])
	assert.Equal(t, "rent", records[1][0])
	assert.Equal(t, "resale", records[15][0])

	totalRow := records[16]
	assert.Equal(t, "total", totalRow[0])
	assert.Contains(t, totalRow[1], "buyout, 36 months")
	assert.Equal(t, report.Breakdown.Total.StringFixed(2), totalRow[2])
	assert.Equal(t, "100.0", totalRow[4])
}

func TestJSONFormatter(t *testing.T) {
	report := sampleReport(t)
	data, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 36, decoded.Summary.Months)
	require.NotNil(t, decoded.Breakdown)
	assert.Len(t, decoded.Breakdown.Rows, 15)
	assert.Len(t, decoded.Series, 36)
	assert.True(t, decoded.Breakdown.Total.Equal(report.Breakdown.Total))
	assert.Equal(t, "buyout", decoded.Breakdown.Scenario)
}
