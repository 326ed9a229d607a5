package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultTaxRate is the fixed VAT rate applied when no rate is given.
const DefaultTaxRate = 0.21

var printer = message.NewPrinter(language.Dutch)

// FormatCurrency renders amount as a euro string with Dutch grouping and
// exactly two fraction digits, e.g. "€ 1.234,50". It accepts float64, int,
// int64, a string-encoded decimal or a decimal.Decimal. String inputs go
// through decimal parsing so no binary float artifact leaks into the
// rendered value. A malformed string is a caller error and panics.
func FormatCurrency(amount interface{}) string {
	var d decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		d = v
	case string:
		d = decimal.RequireFromString(v)
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("money: unsupported amount type %T", amount))
	}
	rounded, _ := d.Round(2).Float64()
	return printer.Sprintf("€ %v", number.Decimal(rounded, number.Scale(2)))
}

type LineTotal struct {
	Price    decimal.Decimal
	Quantity int32
}

// CalculateTotal sums price times quantity with plain float arithmetic.
// This is the cheap display path; billing amounts go through the decimal
// path instead.
func CalculateTotal(items []LineTotal) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price.InexactFloat64() * float64(item.Quantity)
	}
	return total
}

// CalculateTax computes amount times rate with decimal precision so the
// result carries no binary float drift.
func CalculateTax(amount float64, rate float64) float64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(rate)).
		InexactFloat64()
}
