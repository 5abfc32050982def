package cli

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayLanguage = language.LatinAmericanSpanish

func newPrinter() *message.Printer {
	return message.NewPrinter(displayLanguage)
}

// formatMoney renders an amount with two decimals and locale grouping.
func formatMoney(p *message.Printer, amount decimal.Decimal) string {
	return "$" + p.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}
