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

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetMovieGenres handles GET /api/movie-genres
func (h *GenreHandler) GetMovieGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetAllMovieGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get movie genres")
		return
	}

	utils.ResponseSuccess(w, "Movie genres retrieved successfully", genres)
}

// GetMovieGenreByID handles GET /api/movie-genres/{id}
func (h *GenreHandler) GetMovieGenreByID(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	genre, err := h.service.GetMovieGenreByID(r.Context(), genreID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie genre by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie genre retrieved successfully", genre)
}

// CreateMovieGenre handles POST /api/movie-genres
func (h *GenreHandler) CreateMovieGenre(w http.ResponseWriter, r *http.Request) {
	var req request.MovieGenreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateMovieGenre(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie genre")
		return
	}

	utils.ResponseCreated(w, "Movie genre created successfully", genre)
}

// GetSeriesGenres handles GET /api/series-genres
func (h *GenreHandler) GetSeriesGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetAllSeriesGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get series genres")
		return
	}

	utils.ResponseSuccess(w, "Series genres retrieved successfully", genres)
}

// GetSeriesGenreByID handles GET /api/series-genres/{id}
func (h *GenreHandler) GetSeriesGenreByID(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	genre, err := h.service.GetSeriesGenreByID(r.Context(), genreID)
	if err != nil {
		handleServiceError(w, h.log, err, "get series genre by ID")
		return
	}

	utils.ResponseSuccess(w, "Series genre retrieved successfully", genre)
}

// CreateSeriesGenre handles POST /api/series-genres
func (h *GenreHandler) CreateSeriesGenre(w http.ResponseWriter, r *http.Request) {
	var req request.SeriesGenreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateSeriesGenre(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create series genre")
		return
	}

	utils.ResponseCreated(w, "Series genre created successfully", genre)
}
