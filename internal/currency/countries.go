package currency

import "strings"

// countryByCurrency backs the country fallback for expenses without an
// explicit country. Shared currencies (EUR, USD, ...) have no single home
// country and deliberately resolve to nothing; country aggregation drops
// such expenses unless they carry an explicit country.
var countryByCurrency = map[string]string{
	"THB": "Thailand",
	"VND": "Vietnam",
	"IDR": "Indonesia",
	"MYR": "Malaysia",
	"SGD": "Singapore",
	"PHP": "Philippines",
	"INR": "India",
	"LKR": "Sri Lanka",
	"NPR": "Nepal",
	"JPY": "Japan",
	"KRW": "South Korea",
	"CNY": "China",
	"TWD": "Taiwan",
	"HKD": "Hong Kong",
	"GBP": "United Kingdom",
	"CHF": "Switzerland",
	"NOK": "Norway",
	"SEK": "Sweden",
	"DKK": "Denmark",
	"PLN": "Poland",
	"CZK": "Czech Republic",
	"HUF": "Hungary",
	"RON": "Romania",
	"TRY": "Turkey",
	"MAD": "Morocco",
	"EGP": "Egypt",
	"ZAR": "South Africa",
	"AUD": "Australia",
	"NZD": "New Zealand",
	"CAD": "Canada",
	"MXN": "Mexico",
	"BRL": "Brazil",
	"ARS": "Argentina",
	"PEN": "Peru",
	"COP": "Colombia",
}

// CountryForCurrency resolves a currency code to its country, or "" when
// the currency has no unambiguous one.
func CountryForCurrency(code string) string {
	return countryByCurrency[strings.ToUpper(code)]
}
