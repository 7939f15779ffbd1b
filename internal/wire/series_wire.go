package wire

import (
	"catalog-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeries(r chi.Router, seriesHandler *adaptor.SeriesHandler) {
	r.Get("/api/series", seriesHandler.GetSeries)
	r.Get("/api/series/{id}/genres", seriesHandler.GetSeriesGenres)
	r.Post("/api/series", seriesHandler.CreateSeries)
}
