// Package analytics contains the pure derivations that turn a trip's raw
// multi-currency expense list into the series consumed by charts, summaries
// and the narrative-insight payloads.
//
// Every function here is pure: no I/O, no clocks (the caller injects "now"),
// and no ambient currency state — the Converter is passed in explicitly so
// aggregations stay independently testable.
package analytics

import (
	"math"
	"time"
)

// Converter normalizes an amount from one currency into another. It is
// invoked for every amount before it is summed or compared, including when
// from == to (identity). Implementations must be pure.
type Converter interface {
	Convert(amount float64, from, to string) float64
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(amount float64, from, to string) float64

func (f ConverterFunc) Convert(amount float64, from, to string) float64 {
	return f(amount, from, to)
}

// CountryResolver maps a currency code to a country name. An empty return
// means the country cannot be resolved.
type CountryResolver func(currency string) string

// dayOf truncates an instant to its calendar day. The wall-clock date is
// kept and re-anchored in UTC so day arithmetic never shifts across DST
// boundaries.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey renders an instant's calendar day as the canonical YYYY-MM-DD
// bucket key.
func DayKey(t time.Time) string {
	return dayOf(t).Format("2006-01-02")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
