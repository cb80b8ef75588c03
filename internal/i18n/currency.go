package i18n

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
)

// FormatCurrency renders an amount in the language's locale conventions,
// rounded to whole units. Unknown currency codes fall back to USD.
func FormatCurrency(amount float64, lang Lang, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	n := int64(math.Round(amount))
	p := message.NewPrinter(lang.Tag())
	return p.Sprint(currency.Symbol(unit.Amount(n)))
}
