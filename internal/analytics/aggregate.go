package analytics

import (
	"math"
	"sort"
	"time"

	"voyagr/internal/models"
)

// Slice is one named group's normalized total plus its share of the
// overall spend. Percent is 0 when the total across groups is 0.
type Slice struct {
	Key     string
	Amount  float64
	Percent float64
}

// DailyBucket is one calendar day of the trip's burn curve. Spent is the
// day's normalized total; HasSpend distinguishes a genuine zero-spend day
// (bar charts plot a gap, cumulative charts plot zero) so callers can pick
// either representation.
type DailyBucket struct {
	Date            string
	Day             int // 1-based ordinal over generated buckets
	Spent           float64
	HasSpend        bool
	Cumulative      float64
	IdealCumulative float64
}

// HeatmapCell is one calendar day's spend intensity. Intensity is
// sqrt(spent/max) to compress the dynamic range; Level buckets it into
// bands 1-4 at 0.25/0.5/0.75, with 0 reserved for no-spend days.
type HeatmapCell struct {
	Date      string
	Amount    float64
	Intensity float64
	Level     int
}

// CategoryTotals groups expenses by category, normalizes each amount into
// the main currency and sums. Groups are sorted descending by amount with
// ties keeping first-seen order.
func CategoryTotals(expenses []models.Expense, conv Converter, mainCurrency string) []Slice {
	return groupTotals(expenses, conv, mainCurrency, func(e models.Expense) string {
		return e.Category
	})
}

// CountryTotals groups expenses by country: the explicit country override
// when set, otherwise the currency lookup. Expenses whose country cannot
// be resolved are silently excluded here — they still count everywhere
// else.
func CountryTotals(expenses []models.Expense, conv Converter, mainCurrency string, resolve CountryResolver) []Slice {
	return groupTotals(expenses, conv, mainCurrency, func(e models.Expense) string {
		if e.Country != "" {
			return e.Country
		}
		return resolve(e.Currency)
	})
}

func groupTotals(expenses []models.Expense, conv Converter, mainCurrency string, keyOf func(models.Expense) string) []Slice {
	index := make(map[string]int)
	var slices []Slice
	var total float64

	for _, e := range expenses {
		key := keyOf(e)
		if key == "" {
			continue
		}
		amount := conv.Convert(e.Amount, e.Currency, mainCurrency)
		i, ok := index[key]
		if !ok {
			i = len(slices)
			index[key] = i
			slices = append(slices, Slice{Key: key})
		}
		slices[i].Amount += amount
		total += amount
	}

	for i := range slices {
		if total > 0 {
			slices[i].Percent = slices[i].Amount / total * 100
		}
	}

	// Stable keeps first-seen order on equal amounts.
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Amount > slices[j].Amount
	})
	return slices
}

// DailyTotals sums normalized spend per calendar day, keyed by YYYY-MM-DD.
// Each expense's timestamp is truncated to its date portion.
func DailyTotals(expenses []models.Expense, conv Converter, mainCurrency string) map[string]float64 {
	totals := make(map[string]float64, len(expenses))
	for _, e := range expenses {
		totals[DayKey(e.Date)] += conv.Convert(e.Amount, e.Currency, mainCurrency)
	}
	return totals
}

// BurnCurve walks the trip's day timeline accumulating actual spend and
// pairing it with the ideal linear budget consumption at each step. The
// ideal daily burn is totalBudget over the inclusive trip duration, or 0
// for a zero budget.
func BurnCurve(expenses []models.Expense, conv Converter, mainCurrency string, totalBudget float64, start, end, now time.Time) []DailyBucket {
	days := Timeline(start, end, now)
	if len(days) == 0 {
		return nil
	}

	totals := DailyTotals(expenses, conv, mainCurrency)

	var idealDailyBurn float64
	if totalBudget > 0 {
		idealDailyBurn = totalBudget / float64(TripDurationDays(start, end))
	}

	buckets := make([]DailyBucket, 0, len(days))
	var cumulative float64
	for i, d := range days {
		key := DayKey(d)
		spent, hasSpend := totals[key]
		cumulative += spent
		buckets = append(buckets, DailyBucket{
			Date:            key,
			Day:             i + 1,
			Spent:           spent,
			HasSpend:        hasSpend,
			Cumulative:      cumulative,
			IdealCumulative: idealDailyBurn * float64(i+1),
		})
	}
	return buckets
}

// Heatmap derives per-day intensity cells from a burn curve. Raw linear
// intensity leaves most days uniformly pale next to the single largest
// outlier day, so the scale is square-root compressed before bucketing.
func Heatmap(buckets []DailyBucket) []HeatmapCell {
	var max float64
	for _, b := range buckets {
		if b.Spent > max {
			max = b.Spent
		}
	}

	cells := make([]HeatmapCell, 0, len(buckets))
	for _, b := range buckets {
		cell := HeatmapCell{Date: b.Date, Amount: b.Spent}
		if b.HasSpend && max > 0 {
			cell.Intensity = math.Sqrt(b.Spent / max)
			cell.Level = intensityLevel(cell.Intensity)
		}
		cells = append(cells, cell)
	}
	return cells
}

func intensityLevel(intensity float64) int {
	switch {
	case intensity <= 0.25:
		return 1
	case intensity <= 0.5:
		return 2
	case intensity <= 0.75:
		return 3
	default:
		return 4
	}
}
