package service

import (
	"context"
	"errors"

	"voyagr/internal/models"

	"github.com/google/uuid"
)

var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrExpenseNotFound = errors.New("expense not found")
	ErrForbidden       = errors.New("resource belongs to another user")
	ErrInvalidInput    = errors.New("invalid input")
)

// Store interfaces are defined on the consumer side so services stay
// testable with in-memory fakes; the repository package satisfies them.

type TripStore interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExpenseStore interface {
	Create(ctx context.Context, e *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Upsert(ctx context.Context, c *models.Category) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type InsightStore interface {
	CreateBatch(ctx context.Context, insights []*models.Insight) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Insight, error)
}
