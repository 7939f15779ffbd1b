package usecase

import (
	"time"

	"catalog-admin/internal/data/repository"
	"catalog-admin/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie          MovieService
	Genre          GenreService
	MaturityRating MaturityRatingService
	Series         SeriesService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	cacheTTL := time.Duration(config.Cache.ResolverTTLSeconds) * time.Second
	resolver := NewResolver(repo, cacheTTL, log)

	return &Service{
		Movie:          NewMovieService(repo, resolver, log),
		Genre:          NewGenreService(repo, resolver, log),
		MaturityRating: NewMaturityRatingService(repo, resolver, log),
		Series:         NewSeriesService(repo, resolver, log),
	}
}
