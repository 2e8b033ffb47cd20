package calculation

import (
	"github.com/shopspring/decimal"
)

// scaleCoefficients holds one row of the official mileage allowance scale:
// up to tierLow km the allowance is d*A1, between tierLow and tierHigh it is
// d*A2a + A2b, and above tierHigh it is d*A3.
type scaleCoefficients struct {
	A1  decimal.Decimal
	A2a decimal.Decimal
	A2b decimal.Decimal
	A3  decimal.Decimal
}

var (
	tierLow  = decimal.NewFromInt(5000)
	tierHigh = decimal.NewFromInt(20000)

	// Electric vehicles get a 20% uplift on the scale result.
	electricBonus = decimal.NewFromFloat(1.20)

	// 2024 barème kilométrique, keyed by fiscal power (CV). 3 CV and below
	// share one row, 7 CV and above share another.
	mileageScale = map[int]scaleCoefficients{
		1: {coef(0.529), coef(0.316), decimal.NewFromInt(1065), coef(0.370)},
		2: {coef(0.529), coef(0.316), decimal.NewFromInt(1065), coef(0.370)},
		3: {coef(0.529), coef(0.316), decimal.NewFromInt(1065), coef(0.370)},
		4: {coef(0.606), coef(0.340), decimal.NewFromInt(1330), coef(0.407)},
		5: {coef(0.636), coef(0.357), decimal.NewFromInt(1385), coef(0.427)},
		6: {coef(0.665), coef(0.374), decimal.NewFromInt(1435), coef(0.447)},
		7: {coef(0.697), coef(0.394), decimal.NewFromInt(1517), coef(0.470)},
	}
)

func coef(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// IndemnityForDistance applies the allowance scale to a distance in km.
// Fiscal power is clamped into the table range [1,7]; the electric uplift is
// applied after the tier formula. Negative distances return zero.
func IndemnityForDistance(distanceKM decimal.Decimal, fiscalPower int, isElectric bool) decimal.Decimal {
	if distanceKM.Sign() <= 0 {
		return decimal.Zero
	}
	if fiscalPower < 1 {
		fiscalPower = 1
	}
	if fiscalPower > 7 {
		fiscalPower = 7
	}
	c := mileageScale[fiscalPower]

	var amount decimal.Decimal
	switch {
	case distanceKM.LessThanOrEqual(tierLow):
		amount = distanceKM.Mul(c.A1)
	case distanceKM.LessThanOrEqual(tierHigh):
		amount = distanceKM.Mul(c.A2a).Add(c.A2b)
	default:
		amount = distanceKM.Mul(c.A3)
	}

	if isElectric {
		amount = amount.Mul(electricBonus)
	}
	return amount
}
