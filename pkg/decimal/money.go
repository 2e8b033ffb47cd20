package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a euro amount with proper financial precision.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a Money from a decimal.Decimal.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a Money from a string.
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to cents using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// PerMonth spreads the amount over a number of months. Zero or negative
// durations yield zero rather than dividing by zero.
func (m Money) PerMonth(months int) Money {
	if months <= 0 {
		return Zero()
	}
	return Money{m.Decimal.Div(decimal.NewFromInt(int64(months)))}
}

// Add adds another amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Neg flips the sign; used for credits and reimbursements.
func (m Money) Neg() Money {
	return Money{m.Decimal.Neg()}
}

// GreaterThan reports whether this amount exceeds another.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan reports whether this amount is below another.
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal reports whether two amounts are equal.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative reports whether the amount is negative.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the smaller of two amounts.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the plain fixed-point representation ("1234.56").
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in French currency style: space-grouped
// thousands, comma decimal separator, trailing euro sign ("1 234,56 €").
func (m Money) Format() string {
	fixed := m.Decimal.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	decPart := fixed[len(fixed)-2:]

	if len(intPart) > 3 {
		var b strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(digit)
		}
		intPart = b.String()
	}

	return sign + intPart + "," + decPart + " €"
}
