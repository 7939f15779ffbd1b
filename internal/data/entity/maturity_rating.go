package entity

// MaturityRating stores nothing back toward movies; its movies relation
// is resolved by scanning movies for maturity_rating_id matches.
type MaturityRating struct {
	Base
	Name string `db:"name"`
}
