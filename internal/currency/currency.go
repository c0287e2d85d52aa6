// Package currency implements the conversion, formatting and country
// lookup collaborators the analytics core depends on. Rates are a static
// caller-supplied table — historical exchange rates are out of scope.
package currency

import (
	"fmt"
	"strings"
)

// StaticConverter converts through a table of per-unit rates expressed
// relative to EUR. Unknown codes are forwarded at rate 1 — validating
// currency codes is the data-entry boundary's job, not the converter's.
type StaticConverter struct {
	rates map[string]float64
}

// defaultRates is a snapshot of ECB reference rates, units per EUR.
var defaultRates = map[string]float64{
	"EUR": 1,
	"USD": 1.09,
	"GBP": 0.86,
	"CHF": 0.96,
	"JPY": 163.2,
	"THB": 39.1,
	"VND": 27200,
	"IDR": 17150,
	"MYR": 5.12,
	"SGD": 1.46,
	"PHP": 61.3,
	"INR": 90.6,
	"LKR": 326,
	"NPR": 145,
	"AUD": 1.65,
	"NZD": 1.78,
	"CAD": 1.48,
	"MXN": 18.6,
	"BRL": 5.45,
	"ARS": 950,
	"PEN": 4.07,
	"COP": 4260,
	"TRY": 34.9,
	"MAD": 10.9,
	"EGP": 52.4,
	"ZAR": 20.3,
	"KRW": 1455,
	"CNY": 7.86,
	"TWD": 34.6,
	"HKD": 8.51,
	"NOK": 11.5,
	"SEK": 11.3,
	"DKK": 7.46,
	"PLN": 4.31,
	"CZK": 25.3,
	"HUF": 392,
	"RON": 4.97,
}

// NewStaticConverter builds a converter over the default rate table, with
// overrides merged on top.
func NewStaticConverter(overrides map[string]float64) *StaticConverter {
	rates := make(map[string]float64, len(defaultRates)+len(overrides))
	for code, rate := range defaultRates {
		rates[code] = rate
	}
	for code, rate := range overrides {
		if rate > 0 {
			rates[strings.ToUpper(code)] = rate
		}
	}
	return &StaticConverter{rates: rates}
}

// Convert normalizes amount from one currency into another. Identity when
// the codes match; unknown codes pass through at rate 1.
func (c *StaticConverter) Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	return amount / c.rate(from) * c.rate(to)
}

func (c *StaticConverter) rate(code string) float64 {
	if r, ok := c.rates[strings.ToUpper(code)]; ok && r > 0 {
		return r
	}
	return 1
}

var symbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"JPY": "¥",
	"THB": "฿",
	"VND": "₫",
	"INR": "₹",
	"KRW": "₩",
	"TRY": "₺",
}

// Format renders an amount for display. Presentation only — never used
// for comparisons.
func Format(amount float64, code string) string {
	if symbol, ok := symbols[strings.ToUpper(code)]; ok {
		return fmt.Sprintf("%s%.2f", symbol, amount)
	}
	return fmt.Sprintf("%.2f %s", amount, strings.ToUpper(code))
}
