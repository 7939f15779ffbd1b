package repository

import (
	"context"
	"fmt"

	"catalog-admin/internal/data/entity"
	"catalog-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MaturityRatingRepository interface {
	Create(ctx context.Context, rating *entity.MaturityRating) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MaturityRating, error)
	FindAll(ctx context.Context) ([]*entity.MaturityRating, error)
}

type maturityRatingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMaturityRatingRepository(db database.PgxIface, log *zap.Logger) MaturityRatingRepository {
	return &maturityRatingRepository{
		db:  db,
		log: log.With(zap.String("repository", "maturity_rating")),
	}
}

func (r *maturityRatingRepository) Create(ctx context.Context, rating *entity.MaturityRating) error {
	query := `INSERT INTO maturity_ratings (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.Name,
		rating.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create maturity rating",
			zap.Error(err),
			zap.String("name", rating.Name),
		)
		return storeErr("create maturity rating", err)
	}

	return nil
}

func (r *maturityRatingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaturityRating, error) {
	query := `SELECT id, name, created_at FROM maturity_ratings WHERE id = $1`

	var rating entity.MaturityRating
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rating.ID,
		&rating.Name,
		&rating.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find maturity rating by ID",
			zap.Error(err),
			zap.String("rating_id", id.String()),
		)
		return nil, storeErr("find maturity rating by id", err)
	}

	return &rating, nil
}

func (r *maturityRatingRepository) FindAll(ctx context.Context) ([]*entity.MaturityRating, error) {
	query := `SELECT id, name, created_at FROM maturity_ratings ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all maturity ratings", zap.Error(err))
		return nil, storeErr("find all maturity ratings", err)
	}
	defer rows.Close()

	var ratings []*entity.MaturityRating
	for rows.Next() {
		var rating entity.MaturityRating
		err := rows.Scan(
			&rating.ID,
			&rating.Name,
			&rating.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan maturity rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate maturity rating rows: %w", err)
	}

	return ratings, nil
}
