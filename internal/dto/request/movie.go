package request

// MovieRequest uses pointer fields so "not supplied" stays distinct
// from an empty string. The admin form converts blank inputs to null
// before submitting; the service re-checks presence regardless.
type MovieRequest struct {
	Title            *string  `json:"title" validate:"required"`
	Description      *string  `json:"description" validate:"required"`
	ReleasedYear     *string  `json:"released_year" validate:"required"`
	MaturityRatingID *string  `json:"maturity_rating_id" validate:"required,uuid4"`
	GenreIDs         []string `json:"genre_ids" validate:"dive,uuid4"`
	Image            *string  `json:"image" validate:"required"`
}
