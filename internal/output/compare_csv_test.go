package output

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcoloa/lease-calculator/internal/domain"
)

func TestCompareCSV(t *testing.T) {
	cmp := &domain.OfferComparison{
		MaxMonths: 3,
		Offers: []domain.OfferResult{
			{Name: "offer-a", Series: []decimal.Decimal{
				decimal.NewFromInt(100),
				decimal.NewFromInt(200),
				decimal.NewFromInt(300),
			}},
			{Name: "offer-b", Series: []decimal.Decimal{
				decimal.NewFromInt(150),
				decimal.NewFromInt(250),
			}},
		},
	}

	data, err := CompareCSV(cmp)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"Month", "offer-a", "offer-b"}, records[0])
	assert.Equal(t, []string{"1", "100.00", "150.00"}, records[1])
	assert.Equal(t, []string{"2", "200.00", "250.00"}, records[2])
	// The shorter offer leaves its cell empty past its own end.
	assert.Equal(t, []string{"3", "300.00", ""}, records[3])
}
