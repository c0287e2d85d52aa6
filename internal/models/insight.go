package models

import (
	"time"

	"github.com/google/uuid"
)

type InsightKind string

const (
	// InsightKindObservation is one narrative observation about spending
	// patterns in the analyzed window.
	InsightKindObservation InsightKind = "observation"
	// InsightKindForecast is a budget outlook for the remainder of the trip.
	InsightKindForecast InsightKind = "forecast"
	// InsightKindAnomaly flags an unusual expense the narrative generator
	// noticed alongside a forecast.
	InsightKindAnomaly InsightKind = "anomaly"
)

// Insight is one generated narrative fragment persisted for a trip.
type Insight struct {
	ID        uuid.UUID   `db:"id"`
	TripID    uuid.UUID   `db:"trip_id"`
	UserID    uuid.UUID   `db:"user_id"`
	Kind      InsightKind `db:"kind"`
	Text      string      `db:"text"`
	CreatedAt time.Time   `db:"created_at"`
}
