package models

import (
	"time"

	"github.com/google/uuid"
)

// FrequentExpense is a template the user can stamp out as a real expense
// with one tap (coffee, metro ticket, ...).
type FrequentExpense struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
}

type Trip struct {
	ID                    uuid.UUID         `db:"id"`
	UserID                uuid.UUID         `db:"user_id"`
	Name                  string            `db:"name"`
	StartDate             time.Time         `db:"start_date"`
	EndDate               time.Time         `db:"end_date"`
	MainCurrency          string            `db:"main_currency"`
	TotalBudget           float64           `db:"total_budget"`
	Countries             []string          `db:"countries"`
	EnableCategoryBudgets bool              `db:"enable_category_budgets"`
	FrequentExpenses      []FrequentExpense `db:"frequent_expenses"`
	CreatedAt             time.Time         `db:"created_at"`
	UpdatedAt             time.Time         `db:"updated_at"`
}

// DurationDays is the inclusive length of the trip in whole days,
// clamped to at least one day so burn-rate denominators never hit zero.
func (t *Trip) DurationDays() int {
	start := truncateToDay(t.StartDate)
	end := truncateToDay(t.EndDate)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Ended reports whether the trip's end date is already in the past.
func (t *Trip) Ended(now time.Time) bool {
	return truncateToDay(now).After(truncateToDay(t.EndDate))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
