package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("expense amount must be positive")
	ErrInvalidDate   = errors.New("expense date is not a valid instant")
)

type Expense struct {
	ID          uuid.UUID `db:"id"`
	TripID      uuid.UUID `db:"trip_id"`
	Amount      float64   `db:"amount"`
	Currency    string    `db:"currency"`
	Category    string    `db:"category"`
	Description string    `db:"description"`
	Country     string    `db:"country"` // optional override; empty falls back to currency lookup
	Date        time.Time `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Validate guards the data-entry boundary. The analytics core assumes
// expenses passed to it already satisfy these invariants.
func (e *Expense) Validate() error {
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}
