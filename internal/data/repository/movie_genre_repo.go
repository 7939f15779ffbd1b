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

type MovieGenreRepository interface {
	Create(ctx context.Context, genre *entity.MovieGenre) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieGenre, error)
	FindAll(ctx context.Context) ([]*entity.MovieGenre, error)

	// Inverse scan: genres whose movie_ids list contains the movie.
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieGenre, error)

	// AppendMovieID adds one movie id to the genre's movie_ids list.
	// The UPDATE is a single statement, so each append is atomic with
	// respect to other appends on the same row.
	AppendMovieID(ctx context.Context, genreID, movieID uuid.UUID) error
}

type movieGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieGenreRepository(db database.PgxIface, log *zap.Logger) MovieGenreRepository {
	return &movieGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_genre")),
	}
}

func (r *movieGenreRepository) Create(ctx context.Context, genre *entity.MovieGenre) error {
	query := `INSERT INTO movie_genres (id, name, movie_ids, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		genre.ID,
		genre.Name,
		genre.MovieIDs,
		genre.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return storeErr("create movie genre", err)
	}

	return nil
}

func (r *movieGenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieGenre, error) {
	query := `SELECT id, name, movie_ids, created_at FROM movie_genres WHERE id = $1`

	var genre entity.MovieGenre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&genre.ID,
		&genre.Name,
		&genre.MovieIDs,
		&genre.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie genre by ID",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return nil, storeErr("find movie genre by id", err)
	}

	return &genre, nil
}

func (r *movieGenreRepository) FindAll(ctx context.Context) ([]*entity.MovieGenre, error) {
	query := `SELECT id, name, movie_ids, created_at FROM movie_genres ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movie genres", zap.Error(err))
		return nil, storeErr("find all movie genres", err)
	}
	defer rows.Close()

	return scanMovieGenres(rows)
}

func (r *movieGenreRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieGenre, error) {
	query := `SELECT id, name, movie_ids, created_at FROM movie_genres WHERE $1 = ANY(movie_ids) ORDER BY name`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find movie genres by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, storeErr("find movie genres by movie id", err)
	}
	defer rows.Close()

	return scanMovieGenres(rows)
}

func (r *movieGenreRepository) AppendMovieID(ctx context.Context, genreID, movieID uuid.UUID) error {
	query := `UPDATE movie_genres SET movie_ids = array_append(movie_ids, $2) WHERE id = $1`

	result, err := r.db.Exec(ctx, query, genreID, movieID)
	if err != nil {
		r.log.Error("Failed to append movie ID to genre",
			zap.Error(err),
			zap.String("genre_id", genreID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return storeErr("append movie id to genre", err)
	}

	if result.RowsAffected() == 0 {
		return &catalogerr.NotFoundError{Kind: "movie genre", ID: genreID.String()}
	}

	return nil
}

func scanMovieGenres(rows pgx.Rows) ([]*entity.MovieGenre, error) {
	var genres []*entity.MovieGenre
	for rows.Next() {
		var genre entity.MovieGenre
		err := rows.Scan(
			&genre.ID,
			&genre.Name,
			&genre.MovieIDs,
			&genre.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie genre rows: %w", err)
	}

	return genres, nil
}
