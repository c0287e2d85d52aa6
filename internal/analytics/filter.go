package analytics

import (
	"time"

	"voyagr/internal/models"
)

// DateRange restricts expenses to a window relative to "now".
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// Filter combines a date-range predicate with a category-inclusion
// predicate. An empty category list means no category filtering. Both
// predicates AND together and filtering never reorders the input.
type Filter struct {
	Range      DateRange
	Categories []string
}

// Apply returns the expenses matching the filter, preserving input order.
// Applying the same filter twice yields the same result as once.
func (f Filter) Apply(expenses []models.Expense, now time.Time) []models.Expense {
	var categories map[string]struct{}
	if len(f.Categories) > 0 {
		categories = make(map[string]struct{}, len(f.Categories))
		for _, c := range f.Categories {
			categories[c] = struct{}{}
		}
	}

	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !f.matchesDate(e.Date, now) {
			continue
		}
		if categories != nil {
			if _, ok := categories[e.Category]; !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func (f Filter) matchesDate(date, now time.Time) bool {
	switch f.Range {
	case RangeToday:
		return dayOf(date).Equal(dayOf(now))
	case RangeWeek:
		return !dayOf(date).Before(WeekStart(now))
	case RangeMonth:
		return date.Year() == now.Year() && date.Month() == now.Month()
	default:
		return true
	}
}

// WeekStart returns the Monday of now's week, truncated to the day. A now
// falling on Sunday rolls back six days, never forward.
func WeekStart(now time.Time) time.Time {
	day := dayOf(now)
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back)
}
