package response

import (
	"catalog-admin/internal/data/entity"
)

// MovieResponse is the full query shape the admin UI requests for a
// movie: scalars plus the resolved maturity rating and genre records.
// MaturityRating is nil when its reference dangles.
type MovieResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	ReleasedYear   int                     `json:"released_year"`
	Image          string                  `json:"image"`
	MaturityRating *MaturityRatingResponse `json:"maturity_rating,omitempty"`
	Genres         []GenreResponse         `json:"genres"`
}

// Helper converter
func MovieToResponse(movie *entity.Movie, rating *entity.MaturityRating, genres []*entity.MovieGenre) MovieResponse {
	var ratingResp *MaturityRatingResponse
	if rating != nil {
		resp := MaturityRatingToResponse(rating)
		ratingResp = &resp
	}

	genreResps := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		genreResps[i] = MovieGenreToResponse(genre)
	}

	return MovieResponse{
		ID:             movie.ID.String(),
		Title:          movie.Title,
		Description:    movie.Description,
		ReleasedYear:   movie.ReleasedYear,
		Image:          movie.Image,
		MaturityRating: ratingResp,
		Genres:         genreResps,
	}
}
