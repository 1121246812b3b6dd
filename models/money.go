package models

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places currency amounts are rounded to.
const MoneyPlaces = 2

// RoundMoney rounds to the nearest cent, ties away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// MoneyString formats d with two decimal places. Amounts carrying more
// precision, such as per-unit tax, are printed in full.
func MoneyString(d decimal.Decimal) string {
	if !d.Equal(RoundMoney(d)) {
		return d.String()
	}
	return d.StringFixed(MoneyPlaces)
}
