package repository

import (
	"context"

	"voyagr/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := squirrel.Select("name", "icon").
		From("categories").
		OrderBy("name ASC").
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

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Name, &c.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Upsert registers a category glyph, replacing an existing one by name.
func (r *CategoryRepository) Upsert(ctx context.Context, c *models.Category) error {
	query := squirrel.Insert("categories").
		Columns("name", "icon").
		Values(c.Name, c.Icon).
		Suffix("ON CONFLICT (name) DO UPDATE SET icon = EXCLUDED.icon").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
