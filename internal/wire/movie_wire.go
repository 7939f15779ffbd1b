package wire

import (
	"catalog-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - list with resolved relations
	r.Get("/api/movies", movieHandler.GetMovies)

	// GET /api/movies/{id} - single movie
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// GET /api/movies/{id}/genres - genre membership, read from the
	// genre side
	r.Get("/api/movies/{id}/genres", movieHandler.GetMovieGenres)

	// POST /api/movies - create
	r.Post("/api/movies", movieHandler.CreateMovie)
}
