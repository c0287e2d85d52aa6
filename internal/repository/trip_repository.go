package repository

import (
	"context"
	"encoding/json"

	"voyagr/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TripRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTripRepository(db *pgxpool.Pool, logger *zap.Logger) *TripRepository {
	return &TripRepository{
		db:     db,
		logger: logger,
	}
}

var tripColumns = []string{
	"id", "user_id", "name", "start_date", "end_date", "main_currency",
	"total_budget", "countries", "enable_category_budgets",
	"frequent_expenses", "created_at", "updated_at",
}

func (r *TripRepository) Create(ctx context.Context, trip *models.Trip) error {
	frequent, err := json.Marshal(trip.FrequentExpenses)
	if err != nil {
		return err
	}

	query := squirrel.Insert("trips").
		Columns(tripColumns...).
		Values(trip.ID, trip.UserID, trip.Name, trip.StartDate, trip.EndDate,
			trip.MainCurrency, trip.TotalBudget, trip.Countries,
			trip.EnableCategoryBudgets, frequent, trip.CreatedAt, trip.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := squirrel.Select(tripColumns...).
		From("trips").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanTrip(r.db.QueryRow(ctx, sql, args...))
}

func (r *TripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	query := squirrel.Select(tripColumns...).
		From("trips").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		trip, err := r.scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

func (r *TripRepository) Update(ctx context.Context, trip *models.Trip) error {
	frequent, err := json.Marshal(trip.FrequentExpenses)
	if err != nil {
		return err
	}

	query := squirrel.Update("trips").
		Set("name", trip.Name).
		Set("start_date", trip.StartDate).
		Set("end_date", trip.EndDate).
		Set("main_currency", trip.MainCurrency).
		Set("total_budget", trip.TotalBudget).
		Set("countries", trip.Countries).
		Set("enable_category_budgets", trip.EnableCategoryBudgets).
		Set("frequent_expenses", frequent).
		Set("updated_at", trip.UpdatedAt).
		Where(squirrel.Eq{"id": trip.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("trips").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TripRepository) scanTrip(row rowScanner) (*models.Trip, error) {
	var trip models.Trip
	var frequent []byte
	if err := row.Scan(
		&trip.ID, &trip.UserID, &trip.Name, &trip.StartDate, &trip.EndDate,
		&trip.MainCurrency, &trip.TotalBudget, &trip.Countries,
		&trip.EnableCategoryBudgets, &frequent, &trip.CreatedAt, &trip.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(frequent) > 0 {
		if err := json.Unmarshal(frequent, &trip.FrequentExpenses); err != nil {
			return nil, err
		}
	}
	return &trip, nil
}
