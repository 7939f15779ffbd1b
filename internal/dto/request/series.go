package request

type SeriesRequest struct {
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	GenreIDs    []string `json:"genre_ids" validate:"dive,uuid4"`
}
