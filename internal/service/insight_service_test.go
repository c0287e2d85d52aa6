package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"voyagr/internal/analytics"
	"voyagr/internal/models"

	"github.com/google/uuid"
)

func insightFixture(gen NarrativeGenerator) (*InsightService, *models.Trip, uuid.UUID, *fakeExpenseStore, *fakeInsightStore) {
	userID := uuid.New()
	trip := &models.Trip{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Kyoto",
		StartDate:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		MainCurrency: "EUR",
		TotalBudget:  1000,
	}

	expenseStore := &fakeExpenseStore{}
	insightStore := &fakeInsightStore{}
	tripService := NewTripService(newFakeTripStore(trip), testLogger())

	s := NewInsightService(tripService, expenseStore, insightStore, gen, identityConverter{}, testLogger())
	s.now = func() time.Time { return time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC) }
	return s, trip, userID, expenseStore, insightStore
}

func seedExpenses(store *fakeExpenseStore, trip *models.Trip, n int) {
	// Newest first, matching the repository's ordering.
	for i := 0; i < n; i++ {
		store.expenses = append(store.expenses, models.Expense{
			ID:       uuid.New(),
			TripID:   trip.ID,
			Amount:   float64(10 * (i + 1)),
			Currency: "EUR",
			Category: "food",
			Date:     trip.StartDate.AddDate(0, 0, n-1-i),
		})
	}
}

func TestGenerateInsights(t *testing.T) {
	gen := &fakeGenerator{}
	s, trip, userID, store, insightStore := insightFixture(gen)
	seedExpenses(store, trip, 4)

	resp, err := s.GenerateInsights(context.Background(), userID, trip.ID, analytics.Filter{Range: analytics.RangeAll})
	if err != nil {
		t.Fatalf("GenerateInsights: %v", err)
	}
	if len(resp.Insights) != 2 {
		t.Fatalf("got %d insights, want 2", len(resp.Insights))
	}
	if gen.insightCalls != 1 {
		t.Errorf("generator called %d times, want 1", gen.insightCalls)
	}
	if gen.lastSummary.Count != 4 || gen.lastSummary.TotalSpent != 100 {
		t.Errorf("summary = %+v, want count 4 total 100", gen.lastSummary)
	}
	if gen.lastSummary.MainCurrency != "EUR" {
		t.Errorf("summary currency = %q, want EUR", gen.lastSummary.MainCurrency)
	}

	stored, _ := insightStore.ListByTrip(context.Background(), trip.ID)
	if len(stored) != 2 {
		t.Fatalf("got %d stored insights, want 2", len(stored))
	}
	if stored[0].Kind != models.InsightKindObservation {
		t.Errorf("stored kind = %s, want observation", stored[0].Kind)
	}
}

func TestGenerateInsights_NotEnoughData(t *testing.T) {
	gen := &fakeGenerator{}
	s, trip, userID, store, _ := insightFixture(gen)
	seedExpenses(store, trip, 2)

	_, err := s.GenerateInsights(context.Background(), userID, trip.ID, analytics.Filter{Range: analytics.RangeAll})
	if !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("error = %v, want ErrNotEnoughData", err)
	}
	if gen.insightCalls != 0 {
		t.Errorf("generator called %d times for a below-minimum set", gen.insightCalls)
	}
}

func TestGenerateInsights_GeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	s, trip, userID, store, insightStore := insightFixture(gen)
	seedExpenses(store, trip, 3)

	if _, err := s.GenerateInsights(context.Background(), userID, trip.ID, analytics.Filter{Range: analytics.RangeAll}); err == nil {
		t.Fatal("expected error from failing generator")
	}
	if len(insightStore.insights) != 0 {
		t.Errorf("stored %d insights after a failed generation", len(insightStore.insights))
	}
}

func TestGenerateForecast(t *testing.T) {
	gen := &fakeGenerator{}
	s, trip, userID, store, insightStore := insightFixture(gen)
	seedExpenses(store, trip, 4)

	resp, err := s.GenerateForecast(context.Background(), userID, trip.ID)
	if err != nil {
		t.Fatalf("GenerateForecast: %v", err)
	}
	if resp.ForecastText == "" {
		t.Error("empty forecast text")
	}
	if len(resp.Anomalies) != 1 {
		t.Errorf("got %d anomalies, want 1", len(resp.Anomalies))
	}

	in := gen.lastInput
	if in.DaysElapsed != 5 || in.DaysRemaining != 5 {
		t.Errorf("elapsed/remaining = %d/%d, want 5/5", in.DaysElapsed, in.DaysRemaining)
	}
	if in.TotalSpent != 100 || in.DailyAverage != 20 {
		t.Errorf("spent/average = %v/%v, want 100/20", in.TotalSpent, in.DailyAverage)
	}
	if len(in.Recent) != 4 {
		t.Errorf("excerpt has %d entries, want 4", len(in.Recent))
	}

	// Forecast text and anomaly are persisted under separate kinds.
	stored, _ := insightStore.ListByTrip(context.Background(), trip.ID)
	kinds := map[models.InsightKind]int{}
	for _, row := range stored {
		kinds[row.Kind]++
	}
	if kinds[models.InsightKindForecast] != 1 || kinds[models.InsightKindAnomaly] != 1 {
		t.Errorf("stored kinds = %v, want one forecast and one anomaly", kinds)
	}
}

func TestGenerateInsights_ConcurrentTriggersPersistOnce(t *testing.T) {
	gen := &gateGenerator{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	s, trip, userID, store, insightStore := insightFixture(gen)
	seedExpenses(store, trip, 3)

	filter := analytics.Filter{Range: analytics.RangeAll}
	errs := make(chan error, 2)
	run := func() {
		_, err := s.GenerateInsights(context.Background(), userID, trip.ID, filter)
		errs <- err
	}

	go run()
	// First call is inside the generator and holding the flight open; a
	// second trigger must join it instead of generating again.
	<-gen.started
	go run()
	time.Sleep(10 * time.Millisecond)
	close(gen.release)

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("GenerateInsights: %v", err)
		}
	}

	if gen.insightCalls != 1 {
		t.Errorf("generator called %d times, want 1", gen.insightCalls)
	}
	stored, _ := insightStore.ListByTrip(context.Background(), trip.ID)
	if len(stored) != 2 {
		t.Errorf("stored %d insights for one generation, want 2", len(stored))
	}
}

func TestGenerateForecast_TripEnded(t *testing.T) {
	gen := &fakeGenerator{}
	s, trip, userID, store, _ := insightFixture(gen)
	seedExpenses(store, trip, 4)
	s.now = func() time.Time { return trip.EndDate.AddDate(0, 0, 3) }

	_, err := s.GenerateForecast(context.Background(), userID, trip.ID)
	if !errors.Is(err, ErrTripEnded) {
		t.Fatalf("error = %v, want ErrTripEnded", err)
	}
	if gen.forecastCalls != 0 {
		t.Errorf("generator called %d times for an ended trip", gen.forecastCalls)
	}
}

func TestListInsights_OwnershipCheck(t *testing.T) {
	gen := &fakeGenerator{}
	s, trip, _, _, _ := insightFixture(gen)

	if _, err := s.List(context.Background(), uuid.New(), trip.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
}
