package dto

import "voyagr/internal/models"

type TripRequest struct {
	Name                  string                   `json:"name"`
	StartDate             string                   `json:"start_date"` // YYYY-MM-DD
	EndDate               string                   `json:"end_date"`   // YYYY-MM-DD
	MainCurrency          string                   `json:"main_currency"`
	TotalBudget           float64                  `json:"total_budget"`
	Countries             []string                 `json:"countries"`
	EnableCategoryBudgets bool                     `json:"enable_category_budgets"`
	FrequentExpenses      []models.FrequentExpense `json:"frequent_expenses"`
}

type TripResponse struct {
	ID                    string                   `json:"id"`
	Name                  string                   `json:"name"`
	StartDate             string                   `json:"start_date"`
	EndDate               string                   `json:"end_date"`
	MainCurrency          string                   `json:"main_currency"`
	TotalBudget           float64                  `json:"total_budget"`
	Countries             []string                 `json:"countries"`
	EnableCategoryBudgets bool                     `json:"enable_category_budgets"`
	FrequentExpenses      []models.FrequentExpense `json:"frequent_expenses"`
	DurationDays          int                      `json:"duration_days"`
	CreatedAt             string                   `json:"created_at"`
}
