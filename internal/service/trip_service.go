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

const dateLayout = "2006-01-02"

type TripService struct {
	tripStore TripStore
	logger    *zap.Logger
}

func NewTripService(tripStore TripStore, logger *zap.Logger) *TripService {
	return &TripService{
		tripStore: tripStore,
		logger:    logger,
	}
}

func (s *TripService) Create(ctx context.Context, userID uuid.UUID, req *dto.TripRequest) (*models.Trip, error) {
	trip, err := tripFromRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip.ID = uuid.New()
	trip.UserID = userID
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if err := s.tripStore.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	s.logger.Info("Trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.String("name", trip.Name),
	)
	return trip, nil
}

// Get loads a trip and verifies it belongs to the requesting user.
func (s *TripService) Get(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := s.tripStore.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	if trip.UserID != userID {
		return nil, ErrForbidden
	}
	return trip, nil
}

func (s *TripService) List(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	return s.tripStore.ListByUser(ctx, userID)
}

func (s *TripService) Update(ctx context.Context, userID, tripID uuid.UUID, req *dto.TripRequest) (*models.Trip, error) {
	existing, err := s.Get(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	updated, err := tripFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if err := s.tripStore.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	return updated, nil
}

func (s *TripService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, tripID); err != nil {
		return err
	}
	return s.tripStore.Delete(ctx, tripID)
}

func tripFromRequest(req *dto.TripRequest) (*models.Trip, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: trip name is required", ErrInvalidInput)
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date before start_date", ErrInvalidInput)
	}
	if req.TotalBudget < 0 {
		return nil, fmt.Errorf("%w: total_budget must be non-negative", ErrInvalidInput)
	}
	if req.MainCurrency == "" {
		return nil, fmt.Errorf("%w: main_currency is required", ErrInvalidInput)
	}

	return &models.Trip{
		Name:                  req.Name,
		StartDate:             start,
		EndDate:               end,
		MainCurrency:          req.MainCurrency,
		TotalBudget:           req.TotalBudget,
		Countries:             req.Countries,
		EnableCategoryBudgets: req.EnableCategoryBudgets,
		FrequentExpenses:      req.FrequentExpenses,
	}, nil
}
