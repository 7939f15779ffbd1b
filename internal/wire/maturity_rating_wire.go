package wire

import (
	"catalog-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMaturityRating(r chi.Router, ratingHandler *adaptor.MaturityRatingHandler) {
	r.Get("/api/maturity-ratings", ratingHandler.GetMaturityRatings)
	r.Get("/api/maturity-ratings/{id}", ratingHandler.GetMaturityRatingByID)
	r.Post("/api/maturity-ratings", ratingHandler.CreateMaturityRating)
}
