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

type MaturityRatingService interface {
	GetAllMaturityRatings(ctx context.Context) ([]response.MaturityRatingResponse, error)
	GetMaturityRatingByID(ctx context.Context, ratingID string) (*response.MaturityRatingDetailResponse, error)
	CreateMaturityRating(ctx context.Context, req *request.MaturityRatingRequest) (*response.MaturityRatingResponse, error)
}

type maturityRatingService struct {
	repo     *repository.Repository
	resolver *Resolver
	log      *zap.Logger
}

func NewMaturityRatingService(
	repo *repository.Repository,
	resolver *Resolver,
	log *zap.Logger,
) MaturityRatingService {
	return &maturityRatingService{
		repo:     repo,
		resolver: resolver,
		log:      log.With(zap.String("service", "maturity_rating")),
	}
}

func (s *maturityRatingService) GetAllMaturityRatings(ctx context.Context) ([]response.MaturityRatingResponse, error) {
	ratings, err := s.repo.MaturityRating.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get maturity ratings", zap.Error(err))
		return nil, fmt.Errorf("get maturity ratings: %w", err)
	}

	ratingResponses := make([]response.MaturityRatingResponse, len(ratings))
	for i, rating := range ratings {
		ratingResponses[i] = response.MaturityRatingToResponse(rating)
	}

	return ratingResponses, nil
}

// GetMaturityRatingByID returns the rating with its movies relation
// expanded. Nothing points from the rating to its movies, so this is
// the resolver's inverse scan.
func (s *maturityRatingService) GetMaturityRatingByID(ctx context.Context, ratingID string) (*response.MaturityRatingDetailResponse, error) {
	id, err := uuid.Parse(ratingID)
	if err != nil {
		return nil, catalogerr.NewValidation("id", "must be a valid UUID")
	}

	rating, err := s.repo.MaturityRating.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get maturity rating by ID",
			zap.Error(err),
			zap.String("rating_id", ratingID),
		)
		return nil, fmt.Errorf("get maturity rating by id: %w", err)
	}
	if rating == nil {
		return nil, &catalogerr.NotFoundError{Kind: "maturity rating", ID: ratingID}
	}

	movies, err := s.resolver.MaturityRatingMovies(ctx, rating)
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

	return &response.MaturityRatingDetailResponse{
		MaturityRatingResponse: response.MaturityRatingToResponse(rating),
		Movies:                 movieResponses,
	}, nil
}

func (s *maturityRatingService) CreateMaturityRating(ctx context.Context, req *request.MaturityRatingRequest) (*response.MaturityRatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create maturity rating validation failed", zap.Any("errors", errs))
		return nil, &catalogerr.ValidationError{Errors: errs}
	}

	rating := &entity.MaturityRating{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: *req.Name,
	}

	if err := s.repo.MaturityRating.Create(ctx, rating); err != nil {
		s.log.Error("Failed to create maturity rating",
			zap.Error(err),
			zap.String("name", rating.Name),
		)
		return nil, fmt.Errorf("create maturity rating: %w", err)
	}

	s.log.Info("Maturity rating created",
		zap.String("rating_id", rating.ID.String()),
		zap.String("name", rating.Name),
	)

	ratingResp := response.MaturityRatingToResponse(rating)
	return &ratingResp, nil
}
