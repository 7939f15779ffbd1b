package adaptor

import (
	"encoding/json"
	"net/http"

	"catalog-admin/internal/dto/request"
	"catalog-admin/internal/usecase"
	"catalog-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MaturityRatingHandler struct {
	service usecase.MaturityRatingService
	log     *zap.Logger
}

func NewMaturityRatingHandler(service usecase.MaturityRatingService, log *zap.Logger) *MaturityRatingHandler {
	return &MaturityRatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "maturity_rating")),
	}
}

// GetMaturityRatings handles GET /api/maturity-ratings
func (h *MaturityRatingHandler) GetMaturityRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.service.GetAllMaturityRatings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get maturity ratings")
		return
	}

	utils.ResponseSuccess(w, "Maturity ratings retrieved successfully", ratings)
}

// GetMaturityRatingByID handles GET /api/maturity-ratings/{id}
func (h *MaturityRatingHandler) GetMaturityRatingByID(w http.ResponseWriter, r *http.Request) {
	ratingID := chi.URLParam(r, "id")
	if ratingID == "" {
		utils.ResponseBadRequest(w, "Maturity rating ID is required", nil)
		return
	}

	rating, err := h.service.GetMaturityRatingByID(r.Context(), ratingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get maturity rating by ID")
		return
	}

	utils.ResponseSuccess(w, "Maturity rating retrieved successfully", rating)
}

// CreateMaturityRating handles POST /api/maturity-ratings
func (h *MaturityRatingHandler) CreateMaturityRating(w http.ResponseWriter, r *http.Request) {
	var req request.MaturityRatingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rating, err := h.service.CreateMaturityRating(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create maturity rating")
		return
	}

	utils.ResponseCreated(w, "Maturity rating created successfully", rating)
}
