package repository

import (
	"context"
	"fmt"

	"catalog-admin/internal/catalogerr"
	"catalog-admin/internal/data/entity"
	"catalog-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeriesRepository interface {
	Create(ctx context.Context, series *entity.Series) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error)
	FindAll(ctx context.Context) ([]*entity.Series, error)

	// AppendGenreID adds one genre id to the series' genre_ids list,
	// used when a series genre is created with an initial assignment.
	// Atomic per row.
	AppendGenreID(ctx context.Context, seriesID, genreID uuid.UUID) error
}

type seriesRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeriesRepository(db database.PgxIface, log *zap.Logger) SeriesRepository {
	return &seriesRepository{
		db:  db,
		log: log.With(zap.String("repository", "series")),
	}
}

func (r *seriesRepository) Create(ctx context.Context, series *entity.Series) error {
	query := `
		INSERT INTO series (id, title, description, genre_ids, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		series.ID,
		series.Title,
		series.Description,
		series.GenreIDs,
		series.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create series",
			zap.Error(err),
			zap.String("title", series.Title),
		)
		return storeErr("create series", err)
	}

	return nil
}

func (r *seriesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
	query := `SELECT id, title, description, genre_ids, created_at FROM series WHERE id = $1`

	var series entity.Series
	err := r.db.QueryRow(ctx, query, id).Scan(
		&series.ID,
		&series.Title,
		&series.Description,
		&series.GenreIDs,
		&series.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find series by ID",
			zap.Error(err),
			zap.String("series_id", id.String()),
		)
		return nil, storeErr("find series by id", err)
	}

	return &series, nil
}

func (r *seriesRepository) AppendGenreID(ctx context.Context, seriesID, genreID uuid.UUID) error {
	query := `UPDATE series SET genre_ids = array_append(genre_ids, $2) WHERE id = $1`

	result, err := r.db.Exec(ctx, query, seriesID, genreID)
	if err != nil {
		r.log.Error("Failed to append genre ID to series",
			zap.Error(err),
			zap.String("series_id", seriesID.String()),
			zap.String("genre_id", genreID.String()),
		)
		return storeErr("append genre id to series", err)
	}

	if result.RowsAffected() == 0 {
		return &catalogerr.NotFoundError{Kind: "series", ID: seriesID.String()}
	}

	return nil
}

func (r *seriesRepository) FindAll(ctx context.Context) ([]*entity.Series, error) {
	query := `SELECT id, title, description, genre_ids, created_at FROM series ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all series", zap.Error(err))
		return nil, storeErr("find all series", err)
	}
	defer rows.Close()

	var list []*entity.Series
	for rows.Next() {
		var series entity.Series
		err := rows.Scan(
			&series.ID,
			&series.Title,
			&series.Description,
			&series.GenreIDs,
			&series.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan series row: %w", err)
		}
		list = append(list, &series)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate series rows: %w", err)
	}

	return list, nil
}
