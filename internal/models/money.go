package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places kept in category totals.
const AmountPlaces int32 = 2

// RoundAmount rounds to AmountPlaces using round-half-to-even on the exact
// decimal value, so 0.125 becomes 0.12 and 0.135 becomes 0.14.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(AmountPlaces)
}

// ParseAmount parses a signed decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// jsonNumber renders a decimal as a bare JSON number.
func jsonNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// yamlNumber renders a decimal for YAML output.
func yamlNumber(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
