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

func reportFixture() (*ReportService, *models.Trip, uuid.UUID, *fakeExpenseStore) {
	userID := uuid.New()
	trip := &models.Trip{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Lisbon",
		StartDate:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		MainCurrency: "EUR",
		TotalBudget:  1000,
	}

	expenseStore := &fakeExpenseStore{}
	categoryStore := &fakeCategoryStore{categories: []models.Category{
		{Name: "food", Icon: "🍜"},
		{Name: "transport", Icon: "🚕"},
	}}

	tripService := NewTripService(newFakeTripStore(trip), testLogger())
	s := NewReportService(tripService, expenseStore, categoryStore, identityConverter{}, testLogger())
	s.now = func() time.Time { return time.Date(2024, 5, 5, 15, 0, 0, 0, time.UTC) }
	return s, trip, userID, expenseStore
}

func addExpense(store *fakeExpenseStore, tripID uuid.UUID, amount float64, category, country string, date time.Time) {
	store.expenses = append(store.expenses, models.Expense{
		ID:       uuid.New(),
		TripID:   tripID,
		Amount:   amount,
		Currency: "EUR",
		Category: category,
		Country:  country,
		Date:     date,
	})
}

func TestBuildReport(t *testing.T) {
	s, trip, userID, store := reportFixture()
	day := func(n int) time.Time { return trip.StartDate.AddDate(0, 0, n) }

	addExpense(store, trip.ID, 100, "food", "Portugal", day(0))
	addExpense(store, trip.ID, 60, "transport", "Portugal", day(1))
	addExpense(store, trip.ID, 40, "food", "Spain", day(3))

	report, err := s.BuildReport(context.Background(), userID, trip.ID, analytics.Filter{Range: analytics.RangeAll})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if report.TotalSpent != 200 {
		t.Errorf("TotalSpent = %v, want 200", report.TotalSpent)
	}
	if report.TransactionCount != 3 {
		t.Errorf("TransactionCount = %d, want 3", report.TransactionCount)
	}
	if report.DisplayTotal != "€200.00" {
		t.Errorf("DisplayTotal = %q, want €200.00", report.DisplayTotal)
	}

	if len(report.Categories) != 2 {
		t.Fatalf("got %d category slices, want 2", len(report.Categories))
	}
	if report.Categories[0].Key != "food" || report.Categories[0].Amount != 140 {
		t.Errorf("top category = %s/%v, want food/140", report.Categories[0].Key, report.Categories[0].Amount)
	}
	if report.Categories[0].Icon != "🍜" {
		t.Errorf("top category icon = %q, want 🍜", report.Categories[0].Icon)
	}
	if report.Categories[0].Percent != 70 {
		t.Errorf("top category percent = %v, want 70", report.Categories[0].Percent)
	}

	if len(report.Countries) != 2 || report.Countries[0].Key != "Portugal" {
		t.Errorf("countries = %+v, want Portugal first", report.Countries)
	}

	// Trip is mid-flight on May 5: one burn-curve point per elapsed day.
	if len(report.Daily) != 5 {
		t.Fatalf("got %d daily points, want 5", len(report.Daily))
	}
	last := report.Daily[len(report.Daily)-1]
	if last.Cumulative != 200 {
		t.Errorf("final cumulative = %v, want 200", last.Cumulative)
	}
	if last.IdealCumulative != 500 {
		t.Errorf("final ideal = %v, want 500", last.IdealCumulative)
	}

	if report.Highlights.LargestExpense == nil || report.Highlights.LargestExpense.Amount != 100 {
		t.Errorf("largest expense highlight = %+v, want amount 100", report.Highlights.LargestExpense)
	}
	if report.Highlights.TopCategory == nil || report.Highlights.TopCategory.Name != "food" {
		t.Errorf("top category highlight = %+v, want food", report.Highlights.TopCategory)
	}
}

func TestBuildReport_CategoryFilter(t *testing.T) {
	s, trip, userID, store := reportFixture()
	day := func(n int) time.Time { return trip.StartDate.AddDate(0, 0, n) }

	addExpense(store, trip.ID, 100, "food", "Portugal", day(0))
	addExpense(store, trip.ID, 60, "transport", "Portugal", day(1))

	report, err := s.BuildReport(context.Background(), userID, trip.ID, analytics.Filter{
		Range:      analytics.RangeAll,
		Categories: []string{"transport"},
	})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if report.TotalSpent != 60 || report.TransactionCount != 1 {
		t.Errorf("filtered total/count = %v/%d, want 60/1", report.TotalSpent, report.TransactionCount)
	}
	if len(report.Categories) != 1 || report.Categories[0].Key != "transport" {
		t.Errorf("filtered categories = %+v, want transport only", report.Categories)
	}
	// Percent is relative to the filtered total, so a single surviving
	// category owns all of it.
	if report.Categories[0].Percent != 100 {
		t.Errorf("filtered percent = %v, want 100", report.Categories[0].Percent)
	}
}

func TestBuildReport_UncategorizedExpense(t *testing.T) {
	s, trip, userID, store := reportFixture()
	day := func(n int) time.Time { return trip.StartDate.AddDate(0, 0, n) }

	// A category-less row can only predate the entry-boundary validation,
	// but it must still reconcile: total and curve agree, and only the
	// category breakdown leaves it out.
	addExpense(store, trip.ID, 60, "food", "Portugal", day(0))
	addExpense(store, trip.ID, 40, "", "Portugal", day(1))

	report, err := s.BuildReport(context.Background(), userID, trip.ID, analytics.Filter{Range: analytics.RangeAll})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if report.TotalSpent != 100 {
		t.Errorf("TotalSpent = %v, want 100", report.TotalSpent)
	}
	if report.TransactionCount != 2 {
		t.Errorf("TransactionCount = %d, want 2", report.TransactionCount)
	}
	last := report.Daily[len(report.Daily)-1]
	if last.Cumulative != report.TotalSpent {
		t.Errorf("cumulative %v diverges from total %v", last.Cumulative, report.TotalSpent)
	}
	if len(report.Categories) != 1 || report.Categories[0].Key != "food" {
		t.Errorf("categories = %+v, want food only", report.Categories)
	}
}

func TestBuildReport_Empty(t *testing.T) {
	s, trip, userID, _ := reportFixture()

	report, err := s.BuildReport(context.Background(), userID, trip.ID, analytics.Filter{Range: analytics.RangeAll})
	if err != nil {
		t.Fatalf("BuildReport on empty trip: %v", err)
	}

	if report.TotalSpent != 0 || report.TransactionCount != 0 {
		t.Errorf("empty report total/count = %v/%d, want 0/0", report.TotalSpent, report.TransactionCount)
	}
	if len(report.Categories) != 0 || len(report.Countries) != 0 {
		t.Errorf("empty report has slices: %+v / %+v", report.Categories, report.Countries)
	}
	// The burn curve still covers elapsed days so the ideal line renders.
	if len(report.Daily) != 5 {
		t.Errorf("got %d daily points, want 5", len(report.Daily))
	}
	h := report.Highlights
	if h.LargestExpense != nil || h.HighestSpendingDay != nil || h.TopCategory != nil || h.AvgTransaction != nil {
		t.Errorf("empty report has highlights: %+v", h)
	}
}

func TestBuildReport_Ownership(t *testing.T) {
	s, trip, _, _ := reportFixture()

	if _, err := s.BuildReport(context.Background(), uuid.New(), trip.ID, analytics.Filter{Range: analytics.RangeAll}); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign user error = %v, want ErrForbidden", err)
	}
	if _, err := s.BuildReport(context.Background(), trip.UserID, uuid.New(), analytics.Filter{Range: analytics.RangeAll}); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("unknown trip error = %v, want ErrTripNotFound", err)
	}
}

func TestHeatmap(t *testing.T) {
	s, trip, userID, store := reportFixture()
	day := func(n int) time.Time { return trip.StartDate.AddDate(0, 0, n) }

	addExpense(store, trip.ID, 100, "food", "Portugal", day(0))
	addExpense(store, trip.ID, 25, "food", "Portugal", day(2))

	cells, err := s.Heatmap(context.Background(), userID, trip.ID, analytics.Filter{Range: analytics.RangeAll})
	if err != nil {
		t.Fatalf("Heatmap: %v", err)
	}
	if len(cells) != 5 {
		t.Fatalf("got %d cells, want 5", len(cells))
	}

	if cells[0].Level != 4 || cells[0].Intensity != 1 {
		t.Errorf("peak day cell = %+v, want level 4 intensity 1", cells[0])
	}
	// sqrt(25/100) = 0.5 sits on the inclusive upper edge of band 2.
	if cells[2].Level != 2 {
		t.Errorf("quarter-spend cell level = %d, want 2", cells[2].Level)
	}
	if cells[1].Level != 0 || cells[1].Amount != 0 {
		t.Errorf("zero-spend cell = %+v, want level 0", cells[1])
	}
}
