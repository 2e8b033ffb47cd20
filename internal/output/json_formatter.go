package output

import (
	json "github.com/goccy/go-json"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

// JSONFormatter serializes the full report (summary, breakdown, cumulative
// series) as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
