package service

import (
	"context"
	"time"

	"voyagr/internal/analytics"
	"voyagr/internal/currency"
	"voyagr/internal/dto"
	"voyagr/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService runs the analytics engine over a trip's expenses and maps
// the derived series to API shapes. All derivations are recomputed per
// call; nothing is cached across filter changes.
type ReportService struct {
	tripService   *TripService
	expenseStore  ExpenseStore
	categoryStore CategoryStore
	converter     analytics.Converter
	resolve       analytics.CountryResolver
	now           func() time.Time
	logger        *zap.Logger
}

func NewReportService(
	tripService *TripService,
	expenseStore ExpenseStore,
	categoryStore CategoryStore,
	converter analytics.Converter,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		tripService:   tripService,
		expenseStore:  expenseStore,
		categoryStore: categoryStore,
		converter:     converter,
		resolve:       currency.CountryForCurrency,
		now:           time.Now,
		logger:        logger,
	}
}

// BuildReport produces the full analytics payload for one trip under one
// filter. An empty filtered set yields empty series and absent highlights,
// never an error.
func (s *ReportService) BuildReport(ctx context.Context, userID, tripID uuid.UUID, filter analytics.Filter) (*dto.ReportResponse, error) {
	trip, expenses, err := s.load(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := filter.Apply(expenses, now)

	icons, err := iconLookup(ctx, s.categoryStore)
	if err != nil {
		return nil, err
	}

	report := &dto.ReportResponse{
		TripID:           trip.ID.String(),
		MainCurrency:     trip.MainCurrency,
		Range:            string(filter.Range),
		FilterCategories: filter.Categories,
		TransactionCount: len(filtered),
		Categories:       []dto.SliceResponse{},
		Countries:        []dto.SliceResponse{},
		Daily:            []dto.DailyPointResponse{},
	}

	// The total covers every filtered expense, keeping it in step with the
	// burn curve even for rows that never formed a category group.
	for i := range filtered {
		report.TotalSpent += s.converter.Convert(filtered[i].Amount, filtered[i].Currency, trip.MainCurrency)
	}

	for _, slice := range analytics.CategoryTotals(filtered, s.converter, trip.MainCurrency) {
		report.Categories = append(report.Categories, dto.SliceResponse{
			Key:     slice.Key,
			Icon:    icons(slice.Key),
			Amount:  slice.Amount,
			Percent: slice.Percent,
		})
	}
	report.DisplayTotal = currency.Format(report.TotalSpent, trip.MainCurrency)

	for _, slice := range analytics.CountryTotals(filtered, s.converter, trip.MainCurrency, s.resolve) {
		report.Countries = append(report.Countries, dto.SliceResponse{
			Key:     slice.Key,
			Amount:  slice.Amount,
			Percent: slice.Percent,
		})
	}

	curve := analytics.BurnCurve(filtered, s.converter, trip.MainCurrency, trip.TotalBudget,
		trip.StartDate, trip.EndDate, now)
	for _, b := range curve {
		report.Daily = append(report.Daily, dto.DailyPointResponse{
			Date:            b.Date,
			Day:             b.Day,
			Spent:           b.Spent,
			HasSpend:        b.HasSpend,
			Cumulative:      b.Cumulative,
			IdealCumulative: b.IdealCumulative,
		})
	}

	report.Highlights = s.highlights(filtered, trip, icons)
	return report, nil
}

// Heatmap derives the calendar intensity cells for a trip under a filter.
func (s *ReportService) Heatmap(ctx context.Context, userID, tripID uuid.UUID, filter analytics.Filter) ([]dto.HeatmapCellResponse, error) {
	trip, expenses, err := s.load(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := filter.Apply(expenses, now)
	curve := analytics.BurnCurve(filtered, s.converter, trip.MainCurrency, trip.TotalBudget,
		trip.StartDate, trip.EndDate, now)

	cells := []dto.HeatmapCellResponse{}
	for _, c := range analytics.Heatmap(curve) {
		cells = append(cells, dto.HeatmapCellResponse{
			Date:      c.Date,
			Amount:    c.Amount,
			Intensity: c.Intensity,
			Level:     c.Level,
		})
	}
	return cells, nil
}

func (s *ReportService) load(ctx context.Context, userID, tripID uuid.UUID) (*models.Trip, []models.Expense, error) {
	trip, err := s.tripService.Get(ctx, userID, tripID)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := s.expenseStore.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, err
	}
	return trip, expenses, nil
}

// iconLookup loads the category registry once and returns a resolver. A
// missing category falls back to the default glyph, never an error.
func iconLookup(ctx context.Context, store CategoryStore) (func(name string) string, error) {
	categories, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	return func(name string) string {
		return models.IconFor(categories, name)
	}, nil
}

func (s *ReportService) highlights(filtered []models.Expense, trip *models.Trip, icon func(string) string) dto.HighlightsResponse {
	var h dto.HighlightsResponse

	if e, amount, ok := analytics.LargestExpense(filtered, s.converter, trip.MainCurrency); ok {
		h.LargestExpense = &dto.ExpenseHighlightResponse{
			Expense: expenseResponse(&e, icon),
			Amount:  amount,
		}
	}
	if day, amount, ok := analytics.HighestSpendingDay(filtered, s.converter, trip.MainCurrency); ok {
		h.HighestSpendingDay = &dto.DayHighlightResponse{Date: day, Amount: amount}
	}
	if name, count, ok := analytics.MostFrequentCategory(filtered); ok {
		h.TopCategory = &dto.CategoryHighlightResponse{Name: name, Icon: icon(name), Count: count}
	}
	if avg, ok := analytics.AverageTransaction(filtered, s.converter, trip.MainCurrency); ok {
		h.AvgTransaction = &avg
	}
	return h
}

// expenseResponse maps an expense to its API shape, formatting the amount
// in its own currency for display.
func expenseResponse(e *models.Expense, icon func(string) string) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:            e.ID.String(),
		Amount:        e.Amount,
		Currency:      e.Currency,
		DisplayAmount: currency.Format(e.Amount, e.Currency),
		Category:      e.Category,
		CategoryIcon:  icon(e.Category),
		Description:   e.Description,
		Country:       e.Country,
		Date:          e.Date.Format(time.RFC3339),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
