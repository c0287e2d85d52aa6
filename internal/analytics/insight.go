package analytics

import (
	"time"

	"voyagr/internal/models"
)

const (
	// MinSampleSize is the smallest filtered expense count worth handing
	// to the narrative generator. Below it the builders report not
	// applicable instead of a degenerate payload.
	MinSampleSize = 3

	// RecentExpenseLimit caps the expense excerpt embedded in forecast
	// payloads.
	RecentExpenseLimit = 15
)

// CategoryAmount is a compact per-category total for LLM payloads,
// rounded to two decimals to keep the payload small and currency-safe.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SpendingSummary is the numeric payload handed to the narrative-insight
// generator. It describes only the filtered set: PeriodDays spans the
// set's own date extent, not the trip's.
type SpendingSummary struct {
	TotalSpent   float64          `json:"total_spent"`
	Count        int              `json:"transaction_count"`
	PeriodDays   int              `json:"period_days"`
	MainCurrency string           `json:"main_currency"`
	Categories   []CategoryAmount `json:"categories"`
}

// RecentExpense is one entry of the excerpt embedded in forecast payloads.
type RecentExpense struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// ForecastInput is the numeric payload for budget-forecast narratives,
// measured against the trip's full date range.
type ForecastInput struct {
	TotalBudget   float64         `json:"total_budget"`
	TotalSpent    float64         `json:"total_spent"`
	DaysElapsed   int             `json:"days_elapsed"`
	DaysRemaining int             `json:"days_remaining"`
	DailyAverage  float64         `json:"daily_average"`
	MainCurrency  string          `json:"main_currency"`
	Recent        []RecentExpense `json:"recent_expenses"`
}

// BuildSpendingSummary shapes the insight payload from a filtered expense
// list. ok is false below the minimum sample size; callers must check it
// before invoking any downstream narrative generation.
func BuildSpendingSummary(expenses []models.Expense, conv Converter, mainCurrency string) (SpendingSummary, bool) {
	if len(expenses) < MinSampleSize {
		return SpendingSummary{}, false
	}

	first := dayOf(expenses[0].Date)
	last := first
	var total float64
	for _, e := range expenses {
		total += conv.Convert(e.Amount, e.Currency, mainCurrency)
		day := dayOf(e.Date)
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	var categories []CategoryAmount
	for _, s := range CategoryTotals(expenses, conv, mainCurrency) {
		categories = append(categories, CategoryAmount{Category: s.Key, Amount: round2(s.Amount)})
	}

	return SpendingSummary{
		TotalSpent:   round2(total),
		Count:        len(expenses),
		PeriodDays:   int(last.Sub(first).Hours()/24) + 1,
		MainCurrency: mainCurrency,
		Categories:   categories,
	}, true
}

// BuildForecastInput shapes the forecast payload for a trip. ok is false
// below the minimum sample size, when the trip has already ended, or when
// it has not started yet — there is nothing left (or yet) to forecast.
// Expenses are expected in the caller's date-descending order; the excerpt
// takes the first RecentExpenseLimit of them.
func BuildForecastInput(trip *models.Trip, expenses []models.Expense, conv Converter, now time.Time) (ForecastInput, bool) {
	if len(expenses) < MinSampleSize || trip.Ended(now) {
		return ForecastInput{}, false
	}

	elapsed := len(Timeline(trip.StartDate, trip.EndDate, now))
	if elapsed == 0 {
		return ForecastInput{}, false
	}

	var total float64
	for _, e := range expenses {
		total += conv.Convert(e.Amount, e.Currency, trip.MainCurrency)
	}

	recent := expenses
	if len(recent) > RecentExpenseLimit {
		recent = recent[:RecentExpenseLimit]
	}
	excerpt := make([]RecentExpense, 0, len(recent))
	for _, e := range recent {
		excerpt = append(excerpt, RecentExpense{
			Description: e.Description,
			Category:    e.Category,
			Amount:      round2(conv.Convert(e.Amount, e.Currency, trip.MainCurrency)),
			Date:        DayKey(e.Date),
		})
	}

	return ForecastInput{
		TotalBudget:   trip.TotalBudget,
		TotalSpent:    round2(total),
		DaysElapsed:   elapsed,
		DaysRemaining: TripDurationDays(trip.StartDate, trip.EndDate) - elapsed,
		DailyAverage:  round2(total / float64(elapsed)),
		MainCurrency:  trip.MainCurrency,
		Recent:        excerpt,
	}, true
}
