package mathutil

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmountDecimals is the number of fractional digits a coin amount can
// carry.
const MaxAmountDecimals = 9

func init() {
	decimal.DivisionPrecision = MaxAmountDecimals
}

// ParseAmount parses an exact decimal amount string as reported by the node.
// Binary floating point is never involved.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return d, nil
}

// SumAmounts parses and sums a list of exact decimal amount strings.
func SumAmounts(amounts []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, amount := range amounts {
		d, err := ParseAmount(amount)
		if err != nil {
			return decimal.Zero, err
		}
		total = AddDecimal(total, d)
	}
	return total, nil
}

// AddDecimal takes two decimal.Decimal numbers and sums them x + y and returns the result as decimal.Decimal
func AddDecimal(x, y decimal.Decimal) (z decimal.Decimal) {
	z = x.Add(y)
	return
}

// SubDecimal takes two decimal.Decimal numbers and subtracts them x - y and returns the result as decimal.Decimal
func SubDecimal(x, y decimal.Decimal) (z decimal.Decimal) {
	z = x.Sub(y)
	return
}

// MulDecimal takes two decimal.Decimal numbers and multiplies them x * y and returns the result as decimal.Decimal
func MulDecimal(x, y decimal.Decimal) (z decimal.Decimal) {
	z = x.Mul(y)
	return
}

// DivDecimal takes two decimal.Decimal numbers and divides them x / y and returns the result as decimal.Decimal
func DivDecimal(x, y decimal.Decimal) (z decimal.Decimal) {
	z = x.Div(y)
	return
}
