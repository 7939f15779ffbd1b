package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-admin/internal/data/entity"
	"catalog-admin/internal/data/repository"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Resolver expands the id references stored on a record into the
// related records. It is strictly read-only.
//
// Forward relations follow the id list stored on the source record, one
// lookup per id, in stored order; an id that no longer resolves is
// skipped, not an error. Inverse relations (maturity rating -> movies)
// scan the target kind, since nothing is stored on the source side.
//
// Each relation edge is resolved independently: sibling records
// requesting the same target kind each issue their own lookups. The
// optional read cache absorbs the repeated single-record fetches when a
// TTL is configured.
type Resolver struct {
	repo  *repository.Repository
	cache *gocache.Cache
	log   *zap.Logger
}

func NewResolver(repo *repository.Repository, cacheTTL time.Duration, log *zap.Logger) *Resolver {
	var c *gocache.Cache
	if cacheTTL > 0 {
		c = gocache.New(cacheTTL, 2*cacheTTL)
	}

	return &Resolver{
		repo:  repo,
		cache: c,
		log:   log.With(zap.String("service", "resolver")),
	}
}

// MovieGenres resolves the movie's genre references in stored order.
func (r *Resolver) MovieGenres(ctx context.Context, movie *entity.Movie) ([]*entity.MovieGenre, error) {
	genres := make([]*entity.MovieGenre, 0, len(movie.GenreIDs))
	for _, genreID := range movie.GenreIDs {
		genre, err := r.movieGenreByID(ctx, genreID)
		if err != nil {
			return nil, fmt.Errorf("resolve movie genres: %w", err)
		}
		if genre == nil {
			r.log.Debug("Skipping dangling genre reference",
				zap.String("movie_id", movie.ID.String()),
				zap.String("genre_id", genreID.String()),
			)
			continue
		}
		genres = append(genres, genre)
	}

	return genres, nil
}

// MovieMaturityRating resolves the movie's maturity rating. Returns nil
// when the reference dangles.
func (r *Resolver) MovieMaturityRating(ctx context.Context, movie *entity.Movie) (*entity.MaturityRating, error) {
	rating, err := r.maturityRatingByID(ctx, movie.MaturityRatingID)
	if err != nil {
		return nil, fmt.Errorf("resolve maturity rating: %w", err)
	}
	if rating == nil {
		r.log.Debug("Skipping dangling maturity rating reference",
			zap.String("movie_id", movie.ID.String()),
			zap.String("maturity_rating_id", movie.MaturityRatingID.String()),
		)
	}

	return rating, nil
}

// GenreMovies resolves the genre's movie references in stored order.
func (r *Resolver) GenreMovies(ctx context.Context, genre *entity.MovieGenre) ([]*entity.Movie, error) {
	movies := make([]*entity.Movie, 0, len(genre.MovieIDs))
	for _, movieID := range genre.MovieIDs {
		movie, err := r.movieByID(ctx, movieID)
		if err != nil {
			return nil, fmt.Errorf("resolve genre movies: %w", err)
		}
		if movie == nil {
			r.log.Debug("Skipping dangling movie reference",
				zap.String("genre_id", genre.ID.String()),
				zap.String("movie_id", movieID.String()),
			)
			continue
		}
		movies = append(movies, movie)
	}

	return movies, nil
}

// SeriesGenres resolves the series' genre references in stored order.
func (r *Resolver) SeriesGenres(ctx context.Context, series *entity.Series) ([]*entity.SeriesGenre, error) {
	genres := make([]*entity.SeriesGenre, 0, len(series.GenreIDs))
	for _, genreID := range series.GenreIDs {
		genre, err := r.seriesGenreByID(ctx, genreID)
		if err != nil {
			return nil, fmt.Errorf("resolve series genres: %w", err)
		}
		if genre == nil {
			r.log.Debug("Skipping dangling genre reference",
				zap.String("series_id", series.ID.String()),
				zap.String("genre_id", genreID.String()),
			)
			continue
		}
		genres = append(genres, genre)
	}

	return genres, nil
}

// SeriesGenreSeries resolves the genre's series references in stored
// order.
func (r *Resolver) SeriesGenreSeries(ctx context.Context, genre *entity.SeriesGenre) ([]*entity.Series, error) {
	list := make([]*entity.Series, 0, len(genre.SeriesIDs))
	for _, seriesID := range genre.SeriesIDs {
		series, err := r.repo.Series.FindByID(ctx, seriesID)
		if err != nil {
			return nil, fmt.Errorf("resolve genre series: %w", err)
		}
		if series == nil {
			r.log.Debug("Skipping dangling series reference",
				zap.String("genre_id", genre.ID.String()),
				zap.String("series_id", seriesID.String()),
			)
			continue
		}
		list = append(list, series)
	}

	return list, nil
}

// MaturityRatingMovies resolves the inverse edge by scanning movies for
// the rating's id. Result order follows store iteration order, callers
// must not depend on it.
func (r *Resolver) MaturityRatingMovies(ctx context.Context, rating *entity.MaturityRating) ([]*entity.Movie, error) {
	movies, err := r.repo.Movie.FindByMaturityRatingID(ctx, rating.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve maturity rating movies: %w", err)
	}

	return movies, nil
}

// GenresWithMovie resolves the movie -> genres edge from the genre
// side: genres whose movie_ids list contains the movie. Mirrors
// MaturityRatingMovies, result order follows store iteration order.
func (r *Resolver) GenresWithMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieGenre, error) {
	genres, err := r.repo.MovieGenre.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("resolve genres with movie: %w", err)
	}

	return genres, nil
}

// GenresWithSeries resolves the series -> genres edge from the genre
// side.
func (r *Resolver) GenresWithSeries(ctx context.Context, seriesID uuid.UUID) ([]*entity.SeriesGenre, error) {
	genres, err := r.repo.SeriesGenre.FindBySeriesID(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("resolve genres with series: %w", err)
	}

	return genres, nil
}

// InvalidateMovieGenre drops a genre from the read cache after its
// movie_ids list changed.
func (r *Resolver) InvalidateMovieGenre(id uuid.UUID) {
	if r.cache != nil {
		r.cache.Delete("movie_genre:" + id.String())
	}
}

// InvalidateSeriesGenre drops a series genre from the read cache.
func (r *Resolver) InvalidateSeriesGenre(id uuid.UUID) {
	if r.cache != nil {
		r.cache.Delete("series_genre:" + id.String())
	}
}

// InvalidateMovie drops a movie from the read cache after its
// genre_ids list changed.
func (r *Resolver) InvalidateMovie(id uuid.UUID) {
	if r.cache != nil {
		r.cache.Delete("movie:" + id.String())
	}
}

// ---------- cached single-record lookups ----------

func (r *Resolver) movieGenreByID(ctx context.Context, id uuid.UUID) (*entity.MovieGenre, error) {
	key := "movie_genre:" + id.String()
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return cached.(*entity.MovieGenre), nil
		}
	}

	genre, err := r.repo.MovieGenre.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre != nil && r.cache != nil {
		r.cache.SetDefault(key, genre)
	}

	return genre, nil
}

func (r *Resolver) seriesGenreByID(ctx context.Context, id uuid.UUID) (*entity.SeriesGenre, error) {
	key := "series_genre:" + id.String()
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return cached.(*entity.SeriesGenre), nil
		}
	}

	genre, err := r.repo.SeriesGenre.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre != nil && r.cache != nil {
		r.cache.SetDefault(key, genre)
	}

	return genre, nil
}

func (r *Resolver) maturityRatingByID(ctx context.Context, id uuid.UUID) (*entity.MaturityRating, error) {
	key := "maturity_rating:" + id.String()
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return cached.(*entity.MaturityRating), nil
		}
	}

	rating, err := r.repo.MaturityRating.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating != nil && r.cache != nil {
		r.cache.SetDefault(key, rating)
	}

	return rating, nil
}

func (r *Resolver) movieByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	key := "movie:" + id.String()
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return cached.(*entity.Movie), nil
		}
	}

	movie, err := r.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie != nil && r.cache != nil {
		r.cache.SetDefault(key, movie)
	}

	return movie, nil
}
