package service

import (
	"context"
	"sync"

	"voyagr/internal/analytics"
	"voyagr/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// In-memory store fakes backing the service tests. Missing rows surface
// as pgx.ErrNoRows, matching what the repositories return.

type fakeTripStore struct {
	trips map[uuid.UUID]*models.Trip
}

func newFakeTripStore(trips ...*models.Trip) *fakeTripStore {
	s := &fakeTripStore{trips: map[uuid.UUID]*models.Trip{}}
	for _, t := range trips {
		s.trips[t.ID] = t
	}
	return s
}

func (s *fakeTripStore) Create(_ context.Context, trip *models.Trip) error {
	s.trips[trip.ID] = trip
	return nil
}

func (s *fakeTripStore) GetByID(_ context.Context, id uuid.UUID) (*models.Trip, error) {
	trip, ok := s.trips[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return trip, nil
}

func (s *fakeTripStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	var out []*models.Trip
	for _, t := range s.trips {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTripStore) Update(_ context.Context, trip *models.Trip) error {
	s.trips[trip.ID] = trip
	return nil
}

func (s *fakeTripStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.trips, id)
	return nil
}

type fakeExpenseStore struct {
	expenses []models.Expense
}

func (s *fakeExpenseStore) Create(_ context.Context, e *models.Expense) error {
	s.expenses = append(s.expenses, *e)
	return nil
}

func (s *fakeExpenseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			e := s.expenses[i]
			return &e, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeExpenseStore) ListByTrip(_ context.Context, tripID uuid.UUID) ([]models.Expense, error) {
	var out []models.Expense
	for _, e := range s.expenses {
		if e.TripID == tripID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeExpenseStore) Update(_ context.Context, e *models.Expense) error {
	for i := range s.expenses {
		if s.expenses[i].ID == e.ID {
			s.expenses[i] = *e
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *fakeExpenseStore) Delete(_ context.Context, id uuid.UUID) error {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeCategoryStore struct {
	categories []models.Category
}

func (s *fakeCategoryStore) List(_ context.Context) ([]models.Category, error) {
	return s.categories, nil
}

func (s *fakeCategoryStore) Upsert(_ context.Context, c *models.Category) error {
	for i := range s.categories {
		if s.categories[i].Name == c.Name {
			s.categories[i] = *c
			return nil
		}
	}
	s.categories = append(s.categories, *c)
	return nil
}

type fakeInsightStore struct {
	mu       sync.Mutex
	insights []*models.Insight
}

func (s *fakeInsightStore) CreateBatch(_ context.Context, insights []*models.Insight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights = append(s.insights, insights...)
	return nil
}

func (s *fakeInsightStore) ListByTrip(_ context.Context, tripID uuid.UUID) ([]*models.Insight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Insight
	for _, in := range s.insights {
		if in.TripID == tripID {
			out = append(out, in)
		}
	}
	return out, nil
}

// fakeGenerator records how often each narrative call was made and
// returns canned texts.
type fakeGenerator struct {
	insightCalls  int
	forecastCalls int
	lastSummary   analytics.SpendingSummary
	lastInput     analytics.ForecastInput
	err           error
}

func (g *fakeGenerator) GenerateInsights(_ context.Context, summary analytics.SpendingSummary) ([]string, error) {
	g.insightCalls++
	g.lastSummary = summary
	if g.err != nil {
		return nil, g.err
	}
	return []string{"Food dominates your spending.", "Spending is steady day to day."}, nil
}

func (g *fakeGenerator) GenerateForecast(_ context.Context, input analytics.ForecastInput) (string, []string, error) {
	g.forecastCalls++
	g.lastInput = input
	if g.err != nil {
		return "", nil, g.err
	}
	return "On pace to stay under budget.", []string{"One unusually large purchase on day 2."}, nil
}

// gateGenerator blocks every generation until release is closed, so tests
// can hold a flight open while more callers pile onto it. started is
// signaled once, on first entry.
type gateGenerator struct {
	fakeGenerator
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gateGenerator) GenerateInsights(ctx context.Context, summary analytics.SpendingSummary) ([]string, error) {
	g.once.Do(func() { close(g.started) })
	<-g.release
	return g.fakeGenerator.GenerateInsights(ctx, summary)
}

// identityConverter treats every currency at par, which keeps expected
// totals trivial to compute by hand.
type identityConverter struct{}

func (identityConverter) Convert(amount float64, _, _ string) float64 { return amount }

func testLogger() *zap.Logger { return zap.NewNop() }
