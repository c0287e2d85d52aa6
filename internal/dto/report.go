package dto

// SliceResponse is one category or country group with its share of the
// filtered total.
type SliceResponse struct {
	Key     string  `json:"key"`
	Icon    string  `json:"icon,omitempty"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// DailyPointResponse is one day of the burn curve. HasSpend lets bar-style
// consumers plot zero-spend days as gaps while cumulative consumers plot
// zeros; both the raw and the running amount are always present.
type DailyPointResponse struct {
	Date            string  `json:"date"`
	Day             int     `json:"day"`
	Spent           float64 `json:"spent"`
	HasSpend        bool    `json:"has_spend"`
	Cumulative      float64 `json:"cumulative"`
	IdealCumulative float64 `json:"ideal_cumulative"`
}

type HeatmapCellResponse struct {
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Intensity float64 `json:"intensity"`
	Level     int     `json:"level"`
}

type ExpenseHighlightResponse struct {
	Expense ExpenseResponse `json:"expense"`
	Amount  float64         `json:"amount"` // normalized into the main currency
}

type DayHighlightResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type CategoryHighlightResponse struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// HighlightsResponse holds the statistical highlights. Every field is
// absent when the filtered expense list is empty.
type HighlightsResponse struct {
	LargestExpense     *ExpenseHighlightResponse  `json:"largest_expense,omitempty"`
	HighestSpendingDay *DayHighlightResponse      `json:"highest_spending_day,omitempty"`
	TopCategory        *CategoryHighlightResponse `json:"top_category,omitempty"`
	AvgTransaction     *float64                   `json:"avg_transaction,omitempty"`
}

// ReportResponse is the full analytics payload for a trip under one
// filter. Empty aggregations come back as empty lists, never as errors.
type ReportResponse struct {
	TripID           string               `json:"trip_id"`
	MainCurrency     string               `json:"main_currency"`
	Range            string               `json:"range"`
	FilterCategories []string             `json:"filter_categories,omitempty"`
	TotalSpent       float64              `json:"total_spent"`
	DisplayTotal     string               `json:"display_total"`
	TransactionCount int                  `json:"transaction_count"`
	Categories       []SliceResponse      `json:"categories"`
	Countries        []SliceResponse      `json:"countries"`
	Daily            []DailyPointResponse `json:"daily"`
	Highlights       HighlightsResponse   `json:"highlights"`
}
