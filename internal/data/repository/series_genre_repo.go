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

type SeriesGenreRepository interface {
	Create(ctx context.Context, genre *entity.SeriesGenre) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SeriesGenre, error)
	FindAll(ctx context.Context) ([]*entity.SeriesGenre, error)

	// Inverse scan: genres whose series_ids list contains the series.
	FindBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]*entity.SeriesGenre, error)

	// AppendSeriesID adds one series id to the genre's series_ids list,
	// atomic per row, same as the movie side.
	AppendSeriesID(ctx context.Context, genreID, seriesID uuid.UUID) error
}

type seriesGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeriesGenreRepository(db database.PgxIface, log *zap.Logger) SeriesGenreRepository {
	return &seriesGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "series_genre")),
	}
}

func (r *seriesGenreRepository) Create(ctx context.Context, genre *entity.SeriesGenre) error {
	query := `INSERT INTO series_genres (id, name, series_ids, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		genre.ID,
		genre.Name,
		genre.SeriesIDs,
		genre.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create series genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return storeErr("create series genre", err)
	}

	return nil
}

func (r *seriesGenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SeriesGenre, error) {
	query := `SELECT id, name, series_ids, created_at FROM series_genres WHERE id = $1`

	var genre entity.SeriesGenre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&genre.ID,
		&genre.Name,
		&genre.SeriesIDs,
		&genre.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find series genre by ID",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return nil, storeErr("find series genre by id", err)
	}

	return &genre, nil
}

func (r *seriesGenreRepository) FindAll(ctx context.Context) ([]*entity.SeriesGenre, error) {
	query := `SELECT id, name, series_ids, created_at FROM series_genres ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all series genres", zap.Error(err))
		return nil, storeErr("find all series genres", err)
	}
	defer rows.Close()

	return scanSeriesGenres(rows)
}

func (r *seriesGenreRepository) FindBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]*entity.SeriesGenre, error) {
	query := `SELECT id, name, series_ids, created_at FROM series_genres WHERE $1 = ANY(series_ids) ORDER BY name`

	rows, err := r.db.Query(ctx, query, seriesID)
	if err != nil {
		r.log.Error("Failed to find series genres by series ID",
			zap.Error(err),
			zap.String("series_id", seriesID.String()),
		)
		return nil, storeErr("find series genres by series id", err)
	}
	defer rows.Close()

	return scanSeriesGenres(rows)
}

func (r *seriesGenreRepository) AppendSeriesID(ctx context.Context, genreID, seriesID uuid.UUID) error {
	query := `UPDATE series_genres SET series_ids = array_append(series_ids, $2) WHERE id = $1`

	result, err := r.db.Exec(ctx, query, genreID, seriesID)
	if err != nil {
		r.log.Error("Failed to append series ID to genre",
			zap.Error(err),
			zap.String("genre_id", genreID.String()),
			zap.String("series_id", seriesID.String()),
		)
		return storeErr("append series id to genre", err)
	}

	if result.RowsAffected() == 0 {
		return &catalogerr.NotFoundError{Kind: "series genre", ID: genreID.String()}
	}

	return nil
}

func scanSeriesGenres(rows pgx.Rows) ([]*entity.SeriesGenre, error) {
	var genres []*entity.SeriesGenre
	for rows.Next() {
		var genre entity.SeriesGenre
		err := rows.Scan(
			&genre.ID,
			&genre.Name,
			&genre.SeriesIDs,
			&genre.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan series genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate series genre rows: %w", err)
	}

	return genres, nil
}
