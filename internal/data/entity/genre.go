package entity

import (
	"github.com/google/uuid"
)

// MovieGenre holds the ids of the movies assigned to it. A stored id
// with no matching movie row is a dangling reference and is tolerated
// on read.
type MovieGenre struct {
	Base
	Name     string      `db:"name"`
	MovieIDs []uuid.UUID `db:"movie_ids"`
}

// SeriesGenre is the series-side twin of MovieGenre.
type SeriesGenre struct {
	Base
	Name      string      `db:"name"`
	SeriesIDs []uuid.UUID `db:"series_ids"`
}
