package dto

type ExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Country     string  `json:"country,omitempty"`
	Date        string  `json:"date"` // RFC 3339
}

type ExpenseResponse struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	DisplayAmount string  `json:"display_amount"`
	Category      string  `json:"category"`
	CategoryIcon  string  `json:"category_icon"`
	Description   string  `json:"description"`
	Country       string  `json:"country,omitempty"`
	Date          string  `json:"date"`
	CreatedAt     string  `json:"created_at"`
}

type CategoryResponse struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}
