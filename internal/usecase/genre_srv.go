package usecase

import (
	"context"
	"fmt"
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

type GenreService interface {
	GetAllMovieGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetMovieGenreByID(ctx context.Context, genreID string) (*response.MovieGenreDetailResponse, error)
	CreateMovieGenre(ctx context.Context, req *request.MovieGenreRequest) (*response.GenreResponse, error)

	GetAllSeriesGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetSeriesGenreByID(ctx context.Context, genreID string) (*response.SeriesGenreDetailResponse, error)
	CreateSeriesGenre(ctx context.Context, req *request.SeriesGenreRequest) (*response.GenreResponse, error)
}

type genreService struct {
	repo     *repository.Repository
	resolver *Resolver
	log      *zap.Logger
}

func NewGenreService(
	repo *repository.Repository,
	resolver *Resolver,
	log *zap.Logger,
) GenreService {
	return &genreService{
		repo:     repo,
		resolver: resolver,
		log:      log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetAllMovieGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.MovieGenre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movie genres", zap.Error(err))
		return nil, fmt.Errorf("get movie genres: %w", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.MovieGenreToResponse(genre)
	}

	return genreResponses, nil
}

// GetMovieGenreByID returns the genre with its movies relation fully
// expanded, each movie resolved the same way the movie list resolves
// them.
func (s *genreService) GetMovieGenreByID(ctx context.Context, genreID string) (*response.MovieGenreDetailResponse, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, catalogerr.NewValidation("id", "must be a valid UUID")
	}

	genre, err := s.repo.MovieGenre.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie genre by ID",
			zap.Error(err),
			zap.String("genre_id", genreID),
		)
		return nil, fmt.Errorf("get movie genre by id: %w", err)
	}
	if genre == nil {
		return nil, &catalogerr.NotFoundError{Kind: "movie genre", ID: genreID}
	}

	movies, err := s.resolver.GenreMovies(ctx, genre)
	if err != nil {
		return nil, err
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		resp, err := buildMovieResponse(ctx, s.resolver, movie)
		if err != nil {
			return nil, err
		}
		movieResponses[i] = resp
	}

	return &response.MovieGenreDetailResponse{
		GenreResponse: response.MovieGenreToResponse(genre),
		Movies:        movieResponses,
	}, nil
}

func (s *genreService) CreateMovieGenre(ctx context.Context, req *request.MovieGenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie genre validation failed", zap.Any("errors", errs))
		return nil, &catalogerr.ValidationError{Errors: errs}
	}

	// Verify every initial movie reference before persisting
	movieIDs := make([]uuid.UUID, 0, len(req.MovieIDs))
	for _, movieIDStr := range req.MovieIDs {
		movieID, err := uuid.Parse(movieIDStr)
		if err != nil {
			return nil, catalogerr.NewValidation("movie_ids", "must contain valid UUIDs")
		}

		movie, err := s.repo.Movie.FindByID(ctx, movieID)
		if err != nil {
			s.log.Error("Failed to check movie existence",
				zap.Error(err),
				zap.String("movie_id", movieIDStr),
			)
			return nil, fmt.Errorf("check movie: %w", err)
		}
		if movie == nil {
			return nil, &catalogerr.ReferenceError{Kind: "movie", ID: movieIDStr}
		}

		movieIDs = append(movieIDs, movieID)
	}

	genre := &entity.MovieGenre{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:     *req.Name,
		MovieIDs: movieIDs,
	}

	if err := s.repo.MovieGenre.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create movie genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return nil, fmt.Errorf("create movie genre: %w", err)
	}

	// Back-reference each assigned movie, no rollback on partial
	// failure
	for _, movieID := range movieIDs {
		if err := s.repo.Movie.AppendGenreID(ctx, movieID, genre.ID); err != nil {
			s.log.Error("Failed to append genre to movie",
				zap.Error(err),
				zap.String("genre_id", genre.ID.String()),
				zap.String("movie_id", movieID.String()),
			)
			return nil, fmt.Errorf("append genre to movie: %w", err)
		}
		s.resolver.InvalidateMovie(movieID)
	}

	s.log.Info("Movie genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name),
	)

	genreResp := response.MovieGenreToResponse(genre)
	return &genreResp, nil
}

func (s *genreService) GetAllSeriesGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.SeriesGenre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get series genres", zap.Error(err))
		return nil, fmt.Errorf("get series genres: %w", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.SeriesGenreToResponse(genre)
	}

	return genreResponses, nil
}

// GetSeriesGenreByID returns the genre with its series relation fully
// expanded, the series-side twin of GetMovieGenreByID.
func (s *genreService) GetSeriesGenreByID(ctx context.Context, genreID string) (*response.SeriesGenreDetailResponse, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, catalogerr.NewValidation("id", "must be a valid UUID")
	}

	genre, err := s.repo.SeriesGenre.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get series genre by ID",
			zap.Error(err),
			zap.String("genre_id", genreID),
		)
		return nil, fmt.Errorf("get series genre by id: %w", err)
	}
	if genre == nil {
		return nil, &catalogerr.NotFoundError{Kind: "series genre", ID: genreID}
	}

	list, err := s.resolver.SeriesGenreSeries(ctx, genre)
	if err != nil {
		return nil, err
	}

	seriesResponses := make([]response.SeriesResponse, len(list))
	for i, series := range list {
		genres, err := s.resolver.SeriesGenres(ctx, series)
		if err != nil {
			return nil, err
		}
		seriesResponses[i] = response.SeriesToResponse(series, genres)
	}

	return &response.SeriesGenreDetailResponse{
		GenreResponse: response.SeriesGenreToResponse(genre),
		Series:        seriesResponses,
	}, nil
}

func (s *genreService) CreateSeriesGenre(ctx context.Context, req *request.SeriesGenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create series genre validation failed", zap.Any("errors", errs))
		return nil, &catalogerr.ValidationError{Errors: errs}
	}

	seriesIDs := make([]uuid.UUID, 0, len(req.SeriesIDs))
	for _, seriesIDStr := range req.SeriesIDs {
		seriesID, err := uuid.Parse(seriesIDStr)
		if err != nil {
			return nil, catalogerr.NewValidation("series_ids", "must contain valid UUIDs")
		}

		series, err := s.repo.Series.FindByID(ctx, seriesID)
		if err != nil {
			s.log.Error("Failed to check series existence",
				zap.Error(err),
				zap.String("series_id", seriesIDStr),
			)
			return nil, fmt.Errorf("check series: %w", err)
		}
		if series == nil {
			return nil, &catalogerr.ReferenceError{Kind: "series", ID: seriesIDStr}
		}

		seriesIDs = append(seriesIDs, seriesID)
	}

	genre := &entity.SeriesGenre{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:      *req.Name,
		SeriesIDs: seriesIDs,
	}

	if err := s.repo.SeriesGenre.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create series genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return nil, fmt.Errorf("create series genre: %w", err)
	}

	for _, seriesID := range seriesIDs {
		if err := s.repo.Series.AppendGenreID(ctx, seriesID, genre.ID); err != nil {
			s.log.Error("Failed to append genre to series",
				zap.Error(err),
				zap.String("genre_id", genre.ID.String()),
				zap.String("series_id", seriesID.String()),
			)
			return nil, fmt.Errorf("append genre to series: %w", err)
		}
	}

	s.log.Info("Series genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name),
	)

	genreResp := response.SeriesGenreToResponse(genre)
	return &genreResp, nil
}
