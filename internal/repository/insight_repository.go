package repository

import (
	"context"

	"voyagr/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type InsightRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInsightRepository(db *pgxpool.Pool, logger *zap.Logger) *InsightRepository {
	return &InsightRepository{
		db:     db,
		logger: logger,
	}
}

var insightColumns = []string{"id", "trip_id", "user_id", "kind", "text", "created_at"}

func (r *InsightRepository) CreateBatch(ctx context.Context, insights []*models.Insight) error {
	if len(insights) == 0 {
		return nil
	}

	builder := squirrel.Insert("insights").
		Columns(insightColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, in := range insights {
		builder = builder.Values(in.ID, in.TripID, in.UserID, in.Kind, in.Text, in.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *InsightRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Insight, error) {
	query := squirrel.Select(insightColumns...).
		From("insights").
		Where(squirrel.Eq{"trip_id": tripID}).
		OrderBy("created_at DESC").
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

	var insights []*models.Insight
	for rows.Next() {
		var in models.Insight
		if err := rows.Scan(&in.ID, &in.TripID, &in.UserID, &in.Kind, &in.Text, &in.CreatedAt); err != nil {
			return nil, err
		}
		insights = append(insights, &in)
	}

	return insights, rows.Err()
}
