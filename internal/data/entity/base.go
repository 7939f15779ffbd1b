package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base is shared by every catalog entity. Records are immutable after
// creation except the relation id lists, which are append-only.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
