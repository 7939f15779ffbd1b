package request

type MaturityRatingRequest struct {
	Name *string `json:"name" validate:"required"`
}
