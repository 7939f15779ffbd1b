package request

type MovieGenreRequest struct {
	Name *string `json:"name" validate:"required"`

	// Optional initial assignment, each id must reference an existing
	// movie.
	MovieIDs []string `json:"movie_ids" validate:"dive,uuid4"`
}

type SeriesGenreRequest struct {
	Name      *string  `json:"name" validate:"required"`
	SeriesIDs []string `json:"series_ids" validate:"dive,uuid4"`
}
