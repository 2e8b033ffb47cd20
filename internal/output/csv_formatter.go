package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

// CSVFormatter writes the breakdown as CSV, one row per cost category plus a
// trailing TOTAL row. Amounts are plain fixed-point numbers (no currency
// symbol) so the file loads cleanly in spreadsheets.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	b := report.Breakdown
	header := []string{"Category", "Label", "TotalEUR", "PerMonthEUR", "SharePercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range b.Rows {
		record := []string{
			string(row.Category),
			row.Label,
			row.Amount.StringFixed(2),
			row.PerMonth.StringFixed(2),
			row.Share.StringFixed(1),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	totalRow := []string{
		"total",
		"TOTAL (" + b.Scenario + ", " + strconv.Itoa(b.Months) + " months)",
		b.Total.StringFixed(2),
		b.TotalPerMonth.StringFixed(2),
		"100.0",
	}
	if err := w.Write(totalRow); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
