package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

// Actual mileage is only worth showing when it differs from the contract.
var mileageDisplayTolerance = decimal.NewFromFloat(1e-6)

// ConsoleFormatter renders the per-category table: one line per cost row with
// the period total, the monthly share and the percentage of the grand total.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	b := report.Breakdown

	fmt.Fprintln(&buf, "=== Lease TCO (per-category detail + monthly cost) ===")
	header := fmt.Sprintf("Duration: %d months | Contract mileage: %s km", b.Months, b.ContractKM.Round(0))
	if b.ActualKM != nil && !b.ActualKM.Sub(b.ContractKM).Abs().LessThanOrEqual(mileageDisplayTolerance) {
		header += fmt.Sprintf(" | Actual: %s km", b.ActualKM.Round(0))
	}
	fmt.Fprintln(&buf, header)
	fmt.Fprintln(&buf)

	if b.Scenario == domain.ScenarioBuyout {
		fmt.Fprintln(&buf, "-- BUYOUT scenario --")
	} else {
		fmt.Fprintln(&buf, "-- RETURN scenario --")
	}

	fmt.Fprintf(&buf, "%-36s %16s %14s %8s\n", "Item", "Total", "/month", "Share")
	fmt.Fprintln(&buf, strings.Repeat("-", 78))
	for _, row := range b.Rows {
		fmt.Fprintf(&buf, "%-36s %16s %14s %8s\n",
			row.Label,
			FormatEuro(row.Amount),
			FormatEuro(row.PerMonth),
			FormatPercent(row.Share),
		)
	}
	fmt.Fprintln(&buf, strings.Repeat("-", 78))
	fmt.Fprintf(&buf, "%-36s %16s %14s %8s\n",
		"TOTAL",
		FormatEuro(b.Total),
		FormatEuro(b.TotalPerMonth),
		"100.0%",
	)

	return buf.Bytes(), nil
}
