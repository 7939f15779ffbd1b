package response

import "catalog-admin/internal/data/entity"

type MaturityRatingResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MaturityRatingDetailResponse adds the inverse movies relation.
type MaturityRatingDetailResponse struct {
	MaturityRatingResponse
	Movies []MovieResponse `json:"movies"`
}

// Helper converter
func MaturityRatingToResponse(rating *entity.MaturityRating) MaturityRatingResponse {
	return MaturityRatingResponse{
		ID:   rating.ID.String(),
		Name: rating.Name,
	}
}
