package entity

import (
	"github.com/google/uuid"
)

// Movie stores its relations denormalized: the maturity rating as a
// single id, the genres as an id list in selection order. Both sides of
// the movie/genre relation keep a list, the mutation layer maintains
// the cross-references.
type Movie struct {
	Base
	Title            string      `db:"title"`
	Description      string      `db:"description"`
	ReleasedYear     int         `db:"released_year"`
	Image            string      `db:"image"`
	MaturityRatingID uuid.UUID   `db:"maturity_rating_id"`
	GenreIDs         []uuid.UUID `db:"genre_ids"`
}
