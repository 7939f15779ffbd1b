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

type SeriesHandler struct {
	service usecase.SeriesService
	log     *zap.Logger
}

func NewSeriesHandler(service usecase.SeriesService, log *zap.Logger) *SeriesHandler {
	return &SeriesHandler{
		service: service,
		log:     log.With(zap.String("handler", "series")),
	}
}

// GetSeries handles GET /api/series
func (h *SeriesHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.GetAllSeries(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get series")
		return
	}

	utils.ResponseSuccess(w, "Series retrieved successfully", series)
}

// GetSeriesGenres handles GET /api/series/{id}/genres
func (h *SeriesHandler) GetSeriesGenres(w http.ResponseWriter, r *http.Request) {
	seriesID := chi.URLParam(r, "id")
	if seriesID == "" {
		utils.ResponseBadRequest(w, "Series ID is required", nil)
		return
	}

	genres, err := h.service.GetSeriesGenres(r.Context(), seriesID)
	if err != nil {
		handleServiceError(w, h.log, err, "get series genres")
		return
	}

	utils.ResponseSuccess(w, "Series genres retrieved successfully", genres)
}

// CreateSeries handles POST /api/series
func (h *SeriesHandler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	var req request.SeriesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	series, err := h.service.CreateSeries(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create series")
		return
	}

	utils.ResponseCreated(w, "Series created successfully", series)
}
