package response

import "catalog-admin/internal/data/entity"

type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MovieGenreDetailResponse carries the genre's movies relation fully
// expanded.
type MovieGenreDetailResponse struct {
	GenreResponse
	Movies []MovieResponse `json:"movies"`
}

// SeriesGenreDetailResponse carries the genre's series relation fully
// expanded.
type SeriesGenreDetailResponse struct {
	GenreResponse
	Series []SeriesResponse `json:"series"`
}

// Helper converters
func MovieGenreToResponse(genre *entity.MovieGenre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID.String(),
		Name: genre.Name,
	}
}

func SeriesGenreToResponse(genre *entity.SeriesGenre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID.String(),
		Name: genre.Name,
	}
}
