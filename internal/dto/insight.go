package dto

type InsightsResponse struct {
	Insights []string `json:"insights"`
}

type ForecastResponse struct {
	ForecastText string   `json:"forecast_text"`
	Anomalies    []string `json:"anomalies"`
}

type StoredInsightResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}
