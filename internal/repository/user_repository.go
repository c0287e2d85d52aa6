package repository

import (
	"context"

	"voyagr/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

var userColumns = []string{"id", "username", "email", "password", "created_at", "updated_at"}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.Password, user.CreatedAt, user.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepository) getBy(ctx context.Context, cond squirrel.Eq) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where(cond).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}
