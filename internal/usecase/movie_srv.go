package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"catalog-admin/internal/catalogerr"
	"catalog-admin/internal/data/entity"
	"catalog-admin/internal/data/repository"
	"catalog-admin/internal/dto/request"
	"catalog-admin/internal/dto/response"
	"catalog-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetAllMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetMovieGenres(ctx context.Context, movieID string) ([]response.GenreResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo     *repository.Repository
	resolver *Resolver
	log      *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	resolver *Resolver,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:     repo,
		resolver: resolver,
		log:      log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	// Depth-first: resolve each movie's relations before moving on
	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		resp, err := buildMovieResponse(ctx, s.resolver, movie)
		if err != nil {
			s.log.Error("Failed to resolve movie relations",
				zap.Error(err),
				zap.String("movie_id", movie.ID.String()),
			)
			return nil, err
		}
		movieResponses[i] = resp
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))

	return movieResponses, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, catalogerr.NewValidation("id", "must be a valid UUID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, &catalogerr.NotFoundError{Kind: "movie", ID: movieID}
	}

	resp, err := buildMovieResponse(ctx, s.resolver, movie)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetMovieGenres returns the genres the movie belongs to, read from
// the genre side of the relation (genres whose movie_ids list contains
// the movie) rather than the movie's own genre_ids list.
func (s *movieService) GetMovieGenres(ctx context.Context, movieID string) ([]response.GenreResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, catalogerr.NewValidation("id", "must be a valid UUID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, &catalogerr.NotFoundError{Kind: "movie", ID: movieID}
	}

	genres, err := s.resolver.GenresWithMovie(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.MovieGenreToResponse(genre)
	}

	return genreResponses, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	// Required-field and format validation, nothing is persisted past
	// this point on failure
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, &catalogerr.ValidationError{Errors: errs}
	}

	releasedYear, err := strconv.Atoi(*req.ReleasedYear)
	if err != nil {
		s.log.Warn("Invalid released year",
			zap.String("released_year", *req.ReleasedYear),
		)
		return nil, catalogerr.NewValidation("released_year", "must be an integer")
	}

	// Verify the maturity rating reference
	ratingID, err := uuid.Parse(*req.MaturityRatingID)
	if err != nil {
		return nil, catalogerr.NewValidation("maturity_rating_id", "must be a valid UUID")
	}

	rating, err := s.repo.MaturityRating.FindByID(ctx, ratingID)
	if err != nil {
		s.log.Error("Failed to check maturity rating existence",
			zap.Error(err),
			zap.String("maturity_rating_id", ratingID.String()),
		)
		return nil, fmt.Errorf("check maturity rating: %w", err)
	}
	if rating == nil {
		return nil, &catalogerr.ReferenceError{Kind: "maturity rating", ID: ratingID.String()}
	}

	// Verify every genre reference, first missing one rejects
	genreIDs := make([]uuid.UUID, 0, len(req.GenreIDs))
	genres := make([]*entity.MovieGenre, 0, len(req.GenreIDs))
	for _, genreIDStr := range req.GenreIDs {
		genreID, err := uuid.Parse(genreIDStr)
		if err != nil {
			return nil, catalogerr.NewValidation("genre_ids", "must contain valid UUIDs")
		}

		genre, err := s.repo.MovieGenre.FindByID(ctx, genreID)
		if err != nil {
			s.log.Error("Failed to check genre existence",
				zap.Error(err),
				zap.String("genre_id", genreIDStr),
			)
			return nil, fmt.Errorf("check genre: %w", err)
		}
		if genre == nil {
			return nil, &catalogerr.ReferenceError{Kind: "movie genre", ID: genreIDStr}
		}

		genreIDs = append(genreIDs, genreID)
		genres = append(genres, genre)
	}

	// Persist the movie
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:            *req.Title,
		Description:      *req.Description,
		ReleasedYear:     releasedYear,
		Image:            *req.Image,
		MaturityRatingID: ratingID,
		GenreIDs:         genreIDs,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	// Cross-reference the other side of the relation. The movie is
	// already persisted; a failure here leaves some genres without the
	// back-reference and is surfaced without rollback.
	for _, genreID := range genreIDs {
		if err := s.repo.MovieGenre.AppendMovieID(ctx, genreID, movie.ID); err != nil {
			s.log.Error("Failed to append movie to genre",
				zap.Error(err),
				zap.String("movie_id", movie.ID.String()),
				zap.String("genre_id", genreID.String()),
			)
			return nil, fmt.Errorf("append movie to genre: %w", err)
		}
		s.resolver.InvalidateMovieGenre(genreID)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("genre_count", len(genreIDs)),
	)

	movieResp := response.MovieToResponse(movie, rating, genres)
	return &movieResp, nil
}

// buildMovieResponse resolves the movie's relations and assembles the
// full response shape. Shared with the genre and maturity rating
// detail queries.
func buildMovieResponse(ctx context.Context, resolver *Resolver, movie *entity.Movie) (response.MovieResponse, error) {
	rating, err := resolver.MovieMaturityRating(ctx, movie)
	if err != nil {
		return response.MovieResponse{}, err
	}

	genres, err := resolver.MovieGenres(ctx, movie)
	if err != nil {
		return response.MovieResponse{}, err
	}

	return response.MovieToResponse(movie, rating, genres), nil
}
