// Command seed populates the database with the default category registry
// and a demo user with one multi-currency trip, for local development.
package main

import (
	"context"
	"log"
	"time"

	"voyagr/internal/models"
	"voyagr/internal/repository"
	"voyagr/pkg/auth"
	"voyagr/pkg/config"
	"voyagr/pkg/logger"
	"voyagr/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var defaultCategories = []models.Category{
	{Name: "food", Icon: "🍜"},
	{Name: "transport", Icon: "🚕"},
	{Name: "accommodation", Icon: "🏨"},
	{Name: "activities", Icon: "🎟️"},
	{Name: "shopping", Icon: "🛍️"},
	{Name: "drinks", Icon: "🍹"},
	{Name: "health", Icon: "💊"},
	{Name: "other", Icon: "💸"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	tripRepo := repository.NewTripRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	for i := range defaultCategories {
		if err := categoryRepo.Upsert(ctx, &defaultCategories[i]); err != nil {
			appLogger.Fatal("Failed to seed category",
				zap.String("name", defaultCategories[i].Name), zap.Error(err))
		}
	}
	appLogger.Info("Seeded categories", zap.Int("count", len(defaultCategories)))

	user, err := seedDemoUser(ctx, userRepo)
	if err != nil {
		appLogger.Fatal("Failed to seed demo user", zap.Error(err))
	}

	trip, err := seedDemoTrip(ctx, tripRepo, user.ID)
	if err != nil {
		appLogger.Fatal("Failed to seed demo trip", zap.Error(err))
	}

	count, err := seedDemoExpenses(ctx, expenseRepo, trip)
	if err != nil {
		appLogger.Fatal("Failed to seed demo expenses", zap.Error(err))
	}
	appLogger.Info("Seeded demo trip",
		zap.String("trip_id", trip.ID.String()),
		zap.Int("expenses", count),
	)

	appLogger.Info("Database seeding completed successfully!")
}

func seedDemoUser(ctx context.Context, repo *repository.UserRepository) (*models.User, error) {
	if existing, err := repo.GetByEmail(ctx, "demo@voyagr.app"); err == nil {
		return existing, nil
	}

	hash, err := auth.HashPassword("demo1234")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Username:  "demo",
		Email:     "demo@voyagr.app",
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func seedDemoTrip(ctx context.Context, repo *repository.TripRepository, userID uuid.UUID) (*models.Trip, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -6)
	trip := &models.Trip{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Southeast Asia",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 20),
		MainCurrency: "EUR",
		TotalBudget:  2100,
		Countries:    []string{"Thailand", "Vietnam"},
		FrequentExpenses: []models.FrequentExpense{
			{Description: "Iced coffee", Amount: 60, Currency: "THB", Category: "drinks"},
			{Description: "Street food dinner", Amount: 120, Currency: "THB", Category: "food"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func seedDemoExpenses(ctx context.Context, repo *repository.ExpenseRepository, trip *models.Trip) (int, error) {
	day := func(n int) time.Time { return trip.StartDate.AddDate(0, 0, n) }

	expenses := []models.Expense{
		{Amount: 1200, Currency: "THB", Category: "accommodation", Description: "Hostel, 3 nights", Country: "Thailand", Date: day(0)},
		{Amount: 350, Currency: "THB", Category: "transport", Description: "Airport rail link + taxi", Country: "Thailand", Date: day(0)},
		{Amount: 180, Currency: "THB", Category: "food", Description: "Pad thai and mango sticky rice", Country: "Thailand", Date: day(1)},
		{Amount: 90, Currency: "THB", Category: "drinks", Description: "Iced coffee", Country: "Thailand", Date: day(1)},
		{Amount: 1500, Currency: "THB", Category: "activities", Description: "Cooking class", Country: "Thailand", Date: day(2)},
		{Amount: 25, Currency: "EUR", Category: "health", Description: "Travel pharmacy restock", Country: "Thailand", Date: day(3)},
		{Amount: 420, Currency: "THB", Category: "shopping", Description: "Market souvenirs", Country: "Thailand", Date: day(4)},
		{Amount: 45, Currency: "USD", Category: "transport", Description: "Flight to Hanoi", Country: "Vietnam", Date: day(5)},
		{Amount: 650000, Currency: "VND", Category: "accommodation", Description: "Old Quarter guesthouse", Country: "Vietnam", Date: day(5)},
		{Amount: 120000, Currency: "VND", Category: "food", Description: "Pho and egg coffee", Country: "Vietnam", Date: day(6)},
	}

	now := time.Now()
	for i := range expenses {
		e := &expenses[i]
		e.ID = uuid.New()
		e.TripID = trip.ID
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := repo.Create(ctx, e); err != nil {
			return i, err
		}
	}
	return len(expenses), nil
}
