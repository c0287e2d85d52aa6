package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyagr/internal/analytics"
	"voyagr/internal/dto"
	"voyagr/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNotEnoughData means the filtered expense set is below the
	// minimum sample size for narrative generation.
	ErrNotEnoughData = errors.New("not enough expense data for insights")
	// ErrTripEnded means a forecast was requested for a trip whose end
	// date is already in the past.
	ErrTripEnded = errors.New("trip has already ended")
)

// NarrativeGenerator is the external text-generation boundary. Calls may
// fail; failures surface to the caller and never corrupt aggregation
// state.
type NarrativeGenerator interface {
	GenerateInsights(ctx context.Context, summary analytics.SpendingSummary) ([]string, error)
	GenerateForecast(ctx context.Context, input analytics.ForecastInput) (string, []string, error)
}

type InsightService struct {
	tripService  *TripService
	expenseStore ExpenseStore
	insightStore InsightStore
	generator    NarrativeGenerator
	converter    analytics.Converter
	now          func() time.Time
	// flight collapses concurrent triggers for the same trip into a
	// single outstanding LLM request.
	flight singleflight.Group
	logger *zap.Logger
}

func NewInsightService(
	tripService *TripService,
	expenseStore ExpenseStore,
	insightStore InsightStore,
	generator NarrativeGenerator,
	converter analytics.Converter,
	logger *zap.Logger,
) *InsightService {
	return &InsightService{
		tripService:  tripService,
		expenseStore: expenseStore,
		insightStore: insightStore,
		generator:    generator,
		converter:    converter,
		now:          time.Now,
		logger:       logger,
	}
}

// GenerateInsights builds the numeric summary for the filtered expense set
// and asks the narrative generator for observations. The generated texts
// are persisted and returned.
func (s *InsightService) GenerateInsights(ctx context.Context, userID, tripID uuid.UUID, filter analytics.Filter) (*dto.InsightsResponse, error) {
	trip, err := s.tripService.Get(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseStore.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(expenses, s.now())
	summary, ok := analytics.BuildSpendingSummary(filtered, s.converter, trip.MainCurrency)
	if !ok {
		return nil, ErrNotEnoughData
	}

	// Persisting inside the flight keeps one stored batch per generation:
	// singleflight hands the shared result to every collapsed caller.
	key := fmt.Sprintf("insights:%s", tripID)
	result, err, _ := s.flight.Do(key, func() (any, error) {
		insights, err := s.generator.GenerateInsights(ctx, summary)
		if err != nil {
			return nil, err
		}
		s.persist(ctx, trip, userID, models.InsightKindObservation, insights)
		return insights, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}
	insights := result.([]string)

	s.logger.Info("Insights generated",
		zap.String("trip_id", tripID.String()),
		zap.Int("count", len(insights)),
	)
	return &dto.InsightsResponse{Insights: insights}, nil
}

// GenerateForecast builds the forecast payload against the trip's full
// date range and asks the narrative generator for a budget outlook.
func (s *InsightService) GenerateForecast(ctx context.Context, userID, tripID uuid.UUID) (*dto.ForecastResponse, error) {
	trip, err := s.tripService.Get(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseStore.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if trip.Ended(now) {
		return nil, ErrTripEnded
	}
	input, ok := analytics.BuildForecastInput(trip, expenses, s.converter, now)
	if !ok {
		return nil, ErrNotEnoughData
	}

	key := fmt.Sprintf("forecast:%s", tripID)
	result, err, _ := s.flight.Do(key, func() (any, error) {
		text, anomalies, err := s.generator.GenerateForecast(ctx, input)
		if err != nil {
			return nil, err
		}
		s.persist(ctx, trip, userID, models.InsightKindForecast, []string{text})
		s.persist(ctx, trip, userID, models.InsightKindAnomaly, anomalies)
		return &dto.ForecastResponse{ForecastText: text, Anomalies: anomalies}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate forecast: %w", err)
	}

	return result.(*dto.ForecastResponse), nil
}

// List returns previously generated insights for a trip, newest first.
func (s *InsightService) List(ctx context.Context, userID, tripID uuid.UUID) ([]dto.StoredInsightResponse, error) {
	if _, err := s.tripService.Get(ctx, userID, tripID); err != nil {
		return nil, err
	}
	insights, err := s.insightStore.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StoredInsightResponse, 0, len(insights))
	for _, in := range insights {
		out = append(out, dto.StoredInsightResponse{
			ID:        in.ID.String(),
			Kind:      string(in.Kind),
			Text:      in.Text,
			CreatedAt: in.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// persist stores generated texts best-effort: a storage failure is logged
// but does not fail the request that already has its narrative.
func (s *InsightService) persist(ctx context.Context, trip *models.Trip, userID uuid.UUID, kind models.InsightKind, texts []string) {
	if len(texts) == 0 {
		return
	}
	now := s.now()
	rows := make([]*models.Insight, 0, len(texts))
	for _, text := range texts {
		rows = append(rows, &models.Insight{
			ID:        uuid.New(),
			TripID:    trip.ID,
			UserID:    userID,
			Kind:      kind,
			Text:      sanitizeUTF8(text),
			CreatedAt: now,
		})
	}
	if err := s.insightStore.CreateBatch(ctx, rows); err != nil {
		s.logger.Warn("Failed to persist insights", zap.Error(err))
	}
}
