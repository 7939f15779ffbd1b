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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)

	// Inverse scan for the MaturityRating -> movies relation, nothing
	// is stored on the rating side.
	FindByMaturityRatingID(ctx context.Context, ratingID uuid.UUID) ([]*entity.Movie, error)

	// AppendGenreID adds one genre id to the movie's genre_ids list,
	// used when a genre is created with an initial movie assignment.
	// Atomic per row.
	AppendGenreID(ctx context.Context, movieID, genreID uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, description, released_year, image,
		                    maturity_rating_id, genre_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.ReleasedYear,
		movie.Image,
		movie.MaturityRatingID,
		movie.GenreIDs,
		movie.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return storeErr("create movie", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, released_year, image,
		       maturity_rating_id, genre_ids, created_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleasedYear,
		&movie.Image,
		&movie.MaturityRatingID,
		&movie.GenreIDs,
		&movie.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, storeErr("find movie by id", err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, description, released_year, image,
		       maturity_rating_id, genre_ids, created_at
		FROM movies
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, storeErr("find all movies", err)
	}
	defer rows.Close()

	movies, err := scanMovies(rows)
	if err != nil {
		r.log.Error("Failed to scan movie rows", zap.Error(err))
		return nil, err
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) FindByMaturityRatingID(ctx context.Context, ratingID uuid.UUID) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, description, released_year, image,
		       maturity_rating_id, genre_ids, created_at
		FROM movies
		WHERE maturity_rating_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, ratingID)
	if err != nil {
		r.log.Error("Failed to find movies by maturity rating ID",
			zap.Error(err),
			zap.String("maturity_rating_id", ratingID.String()),
		)
		return nil, storeErr("find movies by maturity rating id", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *movieRepository) AppendGenreID(ctx context.Context, movieID, genreID uuid.UUID) error {
	query := `UPDATE movies SET genre_ids = array_append(genre_ids, $2) WHERE id = $1`

	result, err := r.db.Exec(ctx, query, movieID, genreID)
	if err != nil {
		r.log.Error("Failed to append genre ID to movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("genre_id", genreID.String()),
		)
		return storeErr("append genre id to movie", err)
	}

	if result.RowsAffected() == 0 {
		return &catalogerr.NotFoundError{Kind: "movie", ID: movieID.String()}
	}

	return nil
}

func scanMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.ReleasedYear,
			&movie.Image,
			&movie.MaturityRatingID,
			&movie.GenreIDs,
			&movie.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}
