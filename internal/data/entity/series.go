package entity

import (
	"github.com/google/uuid"
)

type Series struct {
	Base
	Title       string      `db:"title"`
	Description string      `db:"description"`
	GenreIDs    []uuid.UUID `db:"genre_ids"`
}
