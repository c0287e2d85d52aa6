package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyagr/internal/dto"
	"voyagr/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ExpenseService struct {
	expenseStore  ExpenseStore
	categoryStore CategoryStore
	tripService   *TripService
	logger        *zap.Logger
}

func NewExpenseService(expenseStore ExpenseStore, categoryStore CategoryStore, tripService *TripService, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseStore:  expenseStore,
		categoryStore: categoryStore,
		tripService:   tripService,
		logger:        logger,
	}
}

// Add appends a new expense to the trip's collection.
func (s *ExpenseService) Add(ctx context.Context, userID, tripID uuid.UUID, req *dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if _, err := s.tripService.Get(ctx, userID, tripID); err != nil {
		return nil, err
	}

	expense, err := expenseFromRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense.ID = uuid.New()
	expense.TripID = tripID
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := s.expenseStore.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.logger.Info("Expense added",
		zap.String("trip_id", tripID.String()),
		zap.String("expense_id", expense.ID.String()),
		zap.Float64("amount", expense.Amount),
		zap.String("currency", expense.Currency),
	)
	return s.render(ctx, expense)
}

// List returns the trip's expenses in their native date-descending order.
func (s *ExpenseService) List(ctx context.Context, userID, tripID uuid.UUID) ([]dto.ExpenseResponse, error) {
	if _, err := s.tripService.Get(ctx, userID, tripID); err != nil {
		return nil, err
	}
	expenses, err := s.expenseStore.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	icon, err := iconLookup(ctx, s.categoryStore)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, expenseResponse(&expenses[i], icon))
	}
	return out, nil
}

// Update replaces the expense identified by expenseID. Expenses are never
// mutated in place anywhere else.
func (s *ExpenseService) Update(ctx context.Context, userID, tripID, expenseID uuid.UUID, req *dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	existing, err := s.getOwned(ctx, userID, tripID, expenseID)
	if err != nil {
		return nil, err
	}

	updated, err := expenseFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.TripID = existing.TripID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if err := s.expenseStore.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return s.render(ctx, updated)
}

func (s *ExpenseService) Delete(ctx context.Context, userID, tripID, expenseID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, tripID, expenseID); err != nil {
		return err
	}
	return s.expenseStore.Delete(ctx, expenseID)
}

func (s *ExpenseService) render(ctx context.Context, e *models.Expense) (*dto.ExpenseResponse, error) {
	icon, err := iconLookup(ctx, s.categoryStore)
	if err != nil {
		return nil, err
	}
	resp := expenseResponse(e, icon)
	return &resp, nil
}

func (s *ExpenseService) getOwned(ctx context.Context, userID, tripID, expenseID uuid.UUID) (*models.Expense, error) {
	if _, err := s.tripService.Get(ctx, userID, tripID); err != nil {
		return nil, err
	}
	expense, err := s.expenseStore.GetByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	if expense.TripID != tripID {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

func expenseFromRequest(req *dto.ExpenseRequest) (*models.Expense, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be RFC 3339", ErrInvalidInput)
	}
	if req.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", ErrInvalidInput)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	expense := &models.Expense{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
		Country:     req.Country,
		Date:        date,
	}
	if err := expense.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return expense, nil
}
