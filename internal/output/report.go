package output

import (
	"fmt"
	"os"
	"time"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

// WriteFormatted runs a formatter and writes the output to a timestamped file
// with the given extension, returning the file name.
func WriteFormatted(f Formatter, report *domain.Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tco_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
