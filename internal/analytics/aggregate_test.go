package analytics

import (
	"math"
	"testing"
	"time"

	"voyagr/internal/models"
)

// testConverter converts through fixed EUR multipliers so expectations
// stay exact: 50 USD -> 46 EUR.
var testConverter = ConverterFunc(func(amount float64, from, to string) float64 {
	rates := map[string]float64{"EUR": 1, "USD": 0.92, "THB": 0.025}
	return amount * rates[from] / rates[to]
})

func expense(amount float64, cur, category string, day time.Time) models.Expense {
	return models.Expense{Amount: amount, Currency: cur, Category: category, Date: day}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCategoryTotals(t *testing.T) {
	expenses := []models.Expense{
		expense(100, "EUR", "food", date(2024, 1, 1)),
		expense(50, "USD", "transport", date(2024, 1, 1)),
		expense(200, "EUR", "food", date(2024, 1, 5)),
	}

	slices := CategoryTotals(expenses, testConverter, "EUR")
	if len(slices) != 2 {
		t.Fatalf("got %d slices, want 2", len(slices))
	}
	if slices[0].Key != "food" || !almostEqual(slices[0].Amount, 300) {
		t.Errorf("top slice = %+v, want food/300", slices[0])
	}
	if slices[1].Key != "transport" || !almostEqual(slices[1].Amount, 46) {
		t.Errorf("second slice = %+v, want transport/46", slices[1])
	}

	var percentSum float64
	for _, s := range slices {
		percentSum += s.Percent
	}
	if !almostEqual(percentSum, 100) {
		t.Errorf("percentages sum to %f, want 100", percentSum)
	}
}

func TestCategoryTotals_SingleCategoryFullShare(t *testing.T) {
	expenses := []models.Expense{
		expense(10, "EUR", "food", date(2024, 1, 1)),
		expense(20, "EUR", "food", date(2024, 1, 2)),
	}
	slices := CategoryTotals(expenses, testConverter, "EUR")
	if len(slices) != 1 || !almostEqual(slices[0].Percent, 100) {
		t.Errorf("got %+v, want one slice at 100%%", slices)
	}
}

func TestCategoryTotals_EmptyInput(t *testing.T) {
	if slices := CategoryTotals(nil, testConverter, "EUR"); len(slices) != 0 {
		t.Errorf("got %+v, want empty", slices)
	}
}

func TestCategoryTotals_TieKeepsFirstSeenOrder(t *testing.T) {
	expenses := []models.Expense{
		expense(50, "EUR", "museums", date(2024, 1, 1)),
		expense(50, "EUR", "food", date(2024, 1, 2)),
	}
	slices := CategoryTotals(expenses, testConverter, "EUR")
	if slices[0].Key != "museums" || slices[1].Key != "food" {
		t.Errorf("tie order = [%s %s], want [museums food]", slices[0].Key, slices[1].Key)
	}
}

func TestCountryTotals(t *testing.T) {
	resolve := CountryResolver(func(cur string) string {
		if cur == "THB" {
			return "Thailand"
		}
		return ""
	})

	expenses := []models.Expense{
		{Amount: 1000, Currency: "THB", Category: "food", Date: date(2024, 1, 1)},
		{Amount: 30, Currency: "EUR", Category: "food", Country: "Italy", Date: date(2024, 1, 2)},
		// EUR with no explicit country resolves to nothing and is dropped
		// from country aggregation only.
		{Amount: 99, Currency: "EUR", Category: "food", Date: date(2024, 1, 3)},
	}

	slices := CountryTotals(expenses, testConverter, "EUR", resolve)
	if len(slices) != 2 {
		t.Fatalf("got %d slices, want 2 (unresolvable dropped)", len(slices))
	}
	if slices[0].Key != "Italy" || slices[1].Key != "Thailand" {
		t.Errorf("order = [%s %s], want [Italy Thailand]", slices[0].Key, slices[1].Key)
	}
	if !almostEqual(slices[1].Amount, 25) {
		t.Errorf("Thailand total = %f, want 25", slices[1].Amount)
	}
}

func TestDailyTotals_TruncatesToDate(t *testing.T) {
	expenses := []models.Expense{
		expense(10, "EUR", "food", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)),
		expense(15, "EUR", "food", time.Date(2024, 1, 1, 22, 30, 0, 0, time.UTC)),
		expense(5, "EUR", "food", time.Date(2024, 1, 2, 0, 0, 1, 0, time.UTC)),
	}
	totals := DailyTotals(expenses, testConverter, "EUR")
	if !almostEqual(totals["2024-01-01"], 25) {
		t.Errorf("day one total = %f, want 25", totals["2024-01-01"])
	}
	if !almostEqual(totals["2024-01-02"], 5) {
		t.Errorf("day two total = %f, want 5", totals["2024-01-02"])
	}
}

// The worked scenario: EUR trip, 1000 budget, Jan 1-10, observed on Jan 5.
func TestBurnCurve_Scenario(t *testing.T) {
	start, end, now := date(2024, 1, 1), date(2024, 1, 10), date(2024, 1, 5)
	expenses := []models.Expense{
		expense(100, "EUR", "food", date(2024, 1, 1)),
		expense(50, "USD", "transport", date(2024, 1, 1)),
		expense(200, "EUR", "food", date(2024, 1, 5)),
	}

	buckets := BurnCurve(expenses, testConverter, "EUR", 1000, start, end, now)
	if len(buckets) != 5 {
		t.Fatalf("got %d buckets, want 5", len(buckets))
	}

	last := buckets[4]
	if last.Day != 5 {
		t.Errorf("daysElapsedInclusive = %d, want 5", last.Day)
	}
	if !almostEqual(last.IdealCumulative, 500) {
		t.Errorf("ideal cumulative at day 5 = %f, want 500 (burn 100/day)", last.IdealCumulative)
	}
	if !almostEqual(last.Cumulative, 346) {
		t.Errorf("cumulative spend at day 5 = %f, want 346", last.Cumulative)
	}

	// Zero-spend days keep a zero amount but flag the gap.
	for _, day := range []int{1, 2, 3} {
		b := buckets[day]
		if b.HasSpend || b.Spent != 0 {
			t.Errorf("bucket %d = %+v, want zero-spend gap", day, b)
		}
	}

	// Cumulative at the last bucket equals the sum of all per-day spends.
	var sum float64
	for _, b := range buckets {
		sum += b.Spent
	}
	if !almostEqual(sum, last.Cumulative) {
		t.Errorf("sum of spentToday = %f, cumulative = %f", sum, last.Cumulative)
	}
}

func TestBurnCurve_ZeroBudget(t *testing.T) {
	expenses := []models.Expense{expense(10, "EUR", "food", date(2024, 1, 1))}
	buckets := BurnCurve(expenses, testConverter, "EUR", 0, date(2024, 1, 1), date(2024, 1, 3), date(2024, 1, 3))
	for _, b := range buckets {
		if b.IdealCumulative != 0 {
			t.Errorf("bucket %s ideal = %f, want 0 for zero budget", b.Date, b.IdealCumulative)
		}
	}
}

func TestBurnCurve_Deterministic(t *testing.T) {
	expenses := []models.Expense{
		expense(100, "EUR", "food", date(2024, 1, 1)),
		expense(50, "USD", "transport", date(2024, 1, 2)),
	}
	a := BurnCurve(expenses, testConverter, "EUR", 500, date(2024, 1, 1), date(2024, 1, 10), date(2024, 1, 4))
	b := BurnCurve(expenses, testConverter, "EUR", 500, date(2024, 1, 1), date(2024, 1, 10), date(2024, 1, 4))
	if len(a) != len(b) {
		t.Fatalf("re-aggregation changed length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("bucket %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestHeatmap(t *testing.T) {
	buckets := []DailyBucket{
		{Date: "2024-01-01", Spent: 100, HasSpend: true},
		{Date: "2024-01-02", Spent: 0},
		{Date: "2024-01-03", Spent: 25, HasSpend: true},
		{Date: "2024-01-04", Spent: 4, HasSpend: true},
	}

	cells := Heatmap(buckets)
	if len(cells) != 4 {
		t.Fatalf("got %d cells, want 4", len(cells))
	}

	// Max day saturates at level 4.
	if cells[0].Level != 4 || !almostEqual(cells[0].Intensity, 1) {
		t.Errorf("max day cell = %+v, want intensity 1 level 4", cells[0])
	}
	// No-spend day stays at level 0.
	if cells[1].Level != 0 || cells[1].Intensity != 0 {
		t.Errorf("empty day cell = %+v, want level 0", cells[1])
	}
	// sqrt(25/100) = 0.5 lands in the second band.
	if cells[2].Level != 2 {
		t.Errorf("quarter-of-max cell level = %d, want 2", cells[2].Level)
	}
	// sqrt(4/100) = 0.2 lands in the first band.
	if cells[3].Level != 1 {
		t.Errorf("small day cell level = %d, want 1", cells[3].Level)
	}
}

func TestHeatmap_AllZero(t *testing.T) {
	cells := Heatmap([]DailyBucket{{Date: "2024-01-01"}, {Date: "2024-01-02"}})
	for _, c := range cells {
		if c.Intensity != 0 || c.Level != 0 {
			t.Errorf("cell %+v, want zero intensity when no day has spend", c)
		}
	}
}
