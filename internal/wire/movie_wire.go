package wire

import (
	"movie-diary/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies/search?query= - metadata provider title search
	r.Get("/api/movies/search", movieHandler.SearchMovies)

	// GET /api/movies/{id}/credits - director and top-billed cast
	r.Get("/api/movies/{id}/credits", movieHandler.GetMovieCredits)
}
