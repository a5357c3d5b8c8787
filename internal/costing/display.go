package costing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DisplayWhole rounds to whole currency units.
func DisplayWhole(d decimal.Decimal) string {
	return d.Round(0).StringFixed(0)
}

// Display formats with two decimal places.
func Display(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// DisplayMoney prefixes the whole-unit amount with the currency code.
func DisplayMoney(currency string, d decimal.Decimal) string {
	if currency == "" {
		return DisplayWhole(d)
	}
	return fmt.Sprintf("%s %s", currency, DisplayWhole(d))
}
