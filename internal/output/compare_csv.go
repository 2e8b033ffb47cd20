package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

// CompareCSV writes the cumulative monthly series of every offer side by
// side, one row per month up to the longest contract. Offers shorter than
// the longest leave their cell empty past their own end. The layout matches
// what charting front-ends expect: Month column plus one column per offer.
func CompareCSV(cmp *domain.OfferComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := make([]string, 0, len(cmp.Offers)+1)
	header = append(header, "Month")
	for _, offer := range cmp.Offers {
		header = append(header, offer.Name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for m := 1; m <= cmp.MaxMonths; m++ {
		record := make([]string, 0, len(cmp.Offers)+1)
		record = append(record, strconv.Itoa(m))
		for _, offer := range cmp.Offers {
			if m <= len(offer.Series) {
				record = append(record, offer.Series[m-1].StringFixed(2))
			} else {
				record = append(record, "")
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
