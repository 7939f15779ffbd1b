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

type SeriesService interface {
	GetAllSeries(ctx context.Context) ([]response.SeriesResponse, error)
	GetSeriesGenres(ctx context.Context, seriesID string) ([]response.GenreResponse, error)
	CreateSeries(ctx context.Context, req *request.SeriesRequest) (*response.SeriesResponse, error)
}

type seriesService struct {
	repo     *repository.Repository
	resolver *Resolver
	log      *zap.Logger
}

func NewSeriesService(
	repo *repository.Repository,
	resolver *Resolver,
	log *zap.Logger,
) SeriesService {
	return &seriesService{
		repo:     repo,
		resolver: resolver,
		log:      log.With(zap.String("service", "series")),
	}
}

func (s *seriesService) GetAllSeries(ctx context.Context) ([]response.SeriesResponse, error) {
	list, err := s.repo.Series.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get series", zap.Error(err))
		return nil, fmt.Errorf("get series: %w", err)
	}

	seriesResponses := make([]response.SeriesResponse, len(list))
	for i, series := range list {
		genres, err := s.resolver.SeriesGenres(ctx, series)
		if err != nil {
			s.log.Error("Failed to resolve series genres",
				zap.Error(err),
				zap.String("series_id", series.ID.String()),
			)
			return nil, err
		}
		seriesResponses[i] = response.SeriesToResponse(series, genres)
	}

	return seriesResponses, nil
}

// GetSeriesGenres returns the genres the series belongs to, read from
// the genre side of the relation.
func (s *seriesService) GetSeriesGenres(ctx context.Context, seriesID string) ([]response.GenreResponse, error) {
	id, err := uuid.Parse(seriesID)
	if err != nil {
		return nil, catalogerr.NewValidation("id", "must be a valid UUID")
	}

	series, err := s.repo.Series.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get series by ID",
			zap.Error(err),
			zap.String("series_id", seriesID),
		)
		return nil, fmt.Errorf("get series by id: %w", err)
	}
	if series == nil {
		return nil, &catalogerr.NotFoundError{Kind: "series", ID: seriesID}
	}

	genres, err := s.resolver.GenresWithSeries(ctx, series.ID)
	if err != nil {
		return nil, err
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.SeriesGenreToResponse(genre)
	}

	return genreResponses, nil
}

func (s *seriesService) CreateSeries(ctx context.Context, req *request.SeriesRequest) (*response.SeriesResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create series validation failed", zap.Any("errors", errs))
		return nil, &catalogerr.ValidationError{Errors: errs}
	}

	// Verify every genre reference before persisting
	genreIDs := make([]uuid.UUID, 0, len(req.GenreIDs))
	genres := make([]*entity.SeriesGenre, 0, len(req.GenreIDs))
	for _, genreIDStr := range req.GenreIDs {
		genreID, err := uuid.Parse(genreIDStr)
		if err != nil {
			return nil, catalogerr.NewValidation("genre_ids", "must contain valid UUIDs")
		}

		genre, err := s.repo.SeriesGenre.FindByID(ctx, genreID)
		if err != nil {
			s.log.Error("Failed to check series genre existence",
				zap.Error(err),
				zap.String("genre_id", genreIDStr),
			)
			return nil, fmt.Errorf("check series genre: %w", err)
		}
		if genre == nil {
			return nil, &catalogerr.ReferenceError{Kind: "series genre", ID: genreIDStr}
		}

		genreIDs = append(genreIDs, genreID)
		genres = append(genres, genre)
	}

	series := &entity.Series{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:       *req.Title,
		Description: *req.Description,
		GenreIDs:    genreIDs,
	}

	if err := s.repo.Series.Create(ctx, series); err != nil {
		s.log.Error("Failed to create series",
			zap.Error(err),
			zap.String("title", series.Title),
		)
		return nil, fmt.Errorf("create series: %w", err)
	}

	// Cross-reference the genre side, no rollback on partial failure
	for _, genreID := range genreIDs {
		if err := s.repo.SeriesGenre.AppendSeriesID(ctx, genreID, series.ID); err != nil {
			s.log.Error("Failed to append series to genre",
				zap.Error(err),
				zap.String("series_id", series.ID.String()),
				zap.String("genre_id", genreID.String()),
			)
			return nil, fmt.Errorf("append series to genre: %w", err)
		}
		s.resolver.InvalidateSeriesGenre(genreID)
	}

	s.log.Info("Series created",
		zap.String("series_id", series.ID.String()),
		zap.String("title", series.Title),
		zap.Int("genre_count", len(genreIDs)),
	)

	seriesResp := response.SeriesToResponse(series, genres)
	return &seriesResp, nil
}
