package wire

import (
	"catalog-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	// Movie genres
	r.Get("/api/movie-genres", genreHandler.GetMovieGenres)
	r.Get("/api/movie-genres/{id}", genreHandler.GetMovieGenreByID)
	r.Post("/api/movie-genres", genreHandler.CreateMovieGenre)

	// Series genres
	r.Get("/api/series-genres", genreHandler.GetSeriesGenres)
	r.Get("/api/series-genres/{id}", genreHandler.GetSeriesGenreByID)
	r.Post("/api/series-genres", genreHandler.CreateSeriesGenre)
}
