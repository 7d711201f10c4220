package decimal

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// Non-finite inputs have no decimal representation and become zero;
// callers that care check math.IsNaN/IsInf before converting.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Whole rounds the money amount to whole dollars
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as whole US dollars with thousands separators,
// e.g. "$1,234,567". Halves round away from zero.
func (m Money) Format() string {
	return FormatUSD(m.Whole().Decimal.InexactFloat64())
}

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a float amount as whole US dollars with thousands separators.
// Negative amounts keep their sign ahead of the currency symbol.
func FormatUSD(v float64) string {
	switch {
	case math.IsNaN(v):
		return "n/a"
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if v < 0 {
		return usPrinter.Sprintf("-$%.0f", -v)
	}
	return usPrinter.Sprintf("$%.0f", v)
}
