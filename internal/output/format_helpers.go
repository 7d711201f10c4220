package output

import (
	"math"
	"strconv"

	"github.com/rpgo/mcplanner/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as whole US dollars with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string { return decimal.FormatUSD(amount) }

// FormatCents formats an amount as US dollars with cents.
func FormatCents(amount float64) string { return "$" + decimal.NewMoney(amount).String() }

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(amount shop.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a decimal fraction as a percentage, 0.065 becomes "6.50%".
func FormatRate(fraction float64) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return "n/a"
	}
	return FormatPercentage(shop.NewFromFloat(fraction).Mul(shop.NewFromInt(100)))
}

// formatCSVFloat renders a value for CSV cells, keeping NaN and Inf visible.
func formatCSVFloat(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
