package response

import "catalog-admin/internal/data/entity"

type SeriesResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Genres      []GenreResponse `json:"genres"`
}

// Helper converter
func SeriesToResponse(series *entity.Series, genres []*entity.SeriesGenre) SeriesResponse {
	genreResps := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		genreResps[i] = SeriesGenreToResponse(genre)
	}

	return SeriesResponse{
		ID:          series.ID.String(),
		Title:       series.Title,
		Description: series.Description,
		Genres:      genreResps,
	}
}
