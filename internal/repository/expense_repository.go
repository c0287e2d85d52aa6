package repository

import (
	"context"

	"voyagr/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

var expenseColumns = []string{
	"id", "trip_id", "amount", "currency", "category", "description",
	"country", "date", "created_at", "updated_at",
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns(expenseColumns...).
		Values(e.ID, e.TripID, e.Amount, e.Currency, e.Category, e.Description,
			e.Country, e.Date, e.CreatedAt, e.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var e models.Expense
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.TripID, &e.Amount, &e.Currency, &e.Category, &e.Description,
		&e.Country, &e.Date, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByTrip returns a trip's expenses date-descending — the collection's
// native order that filters and excerpt builders rely on.
func (r *ExpenseRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"trip_id": tripID}).
		OrderBy("date DESC", "created_at DESC").
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

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(
			&e.ID, &e.TripID, &e.Amount, &e.Currency, &e.Category, &e.Description,
			&e.Country, &e.Date, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// Update replaces the expense identified by its id.
func (r *ExpenseRepository) Update(ctx context.Context, e *models.Expense) error {
	query := squirrel.Update("expenses").
		Set("amount", e.Amount).
		Set("currency", e.Currency).
		Set("category", e.Category).
		Set("description", e.Description).
		Set("country", e.Country).
		Set("date", e.Date).
		Set("updated_at", e.UpdatedAt).
		Where(squirrel.Eq{"id": e.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
