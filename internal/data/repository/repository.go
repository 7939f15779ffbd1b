package repository

import (
	"errors"
	"fmt"

	"catalog-admin/internal/catalogerr"
	"catalog-admin/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	Movie          MovieRepository
	MovieGenre     MovieGenreRepository
	SeriesGenre    SeriesGenreRepository
	MaturityRating MaturityRatingRepository
	Series         SeriesRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:          NewMovieRepository(db, log),
		MovieGenre:     NewMovieGenreRepository(db, log),
		SeriesGenre:    NewSeriesGenreRepository(db, log),
		MaturityRating: NewMaturityRatingRepository(db, log),
		Series:         NewSeriesRepository(db, log),
	}
}

// storeErr classifies a failed database call. A PgError means the
// server answered, so the store itself was reachable; anything else
// (dial failure, closed pool, timeout) is StoreUnavailable.
func storeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return &catalogerr.StoreUnavailableError{Op: op, Err: err}
}
