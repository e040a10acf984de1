// Package currency renders decimal amounts as localized currency strings.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format renders the amount for display in the given language, using the
// symbol and rounding rules of the ISO 4217 currency code.
//
// The amount is rounded to the cash rounding scale of the currency before
// formatting, so the exact decimal never loses precision anywhere else.
func Format(amount decimal.Decimal, code string, lang language.Tag) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("unknown currency code %q: %w", code, err)
	}

	scale, _ := currency.Cash.Rounding(unit)
	rounded := amount.Round(int32(scale))
	printer := message.NewPrinter(lang)

	// x/text formats numeric values, not decimals. A rounded amount below
	// 10^13 has at most 15 significant digits and survives the float64
	// round trip digit for digit. Anything larger is rendered from the
	// decimal directly so no digit can drift.
	if rounded.Abs().GreaterThanOrEqual(decimal.New(1, 13)) {
		return printer.Sprintf("%v%s", currency.Symbol(unit), rounded.StringFixed(int32(scale))), nil
	}

	value, _ := rounded.Float64()
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(value))), nil
}
