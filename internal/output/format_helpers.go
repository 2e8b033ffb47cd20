package output

import (
	"github.com/shopspring/decimal"

	money "github.com/tcoloa/lease-calculator/pkg/decimal"
)

// FormatEuro renders an amount in French currency style ("1 234,56 €").
// Kept here so every formatter shares one rendering and it can be unit
// tested in isolation.
func FormatEuro(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercent formats a percentage with one decimal ("45.2%").
func FormatPercent(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}
