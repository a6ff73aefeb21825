package adaptor

import (
	"net/http"
	"strings"

	"movie-diary/internal/dto/response"
	"movie-diary/internal/usecase"
	"movie-diary/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// SearchMovies handles GET /api/movies/search?query=
// Lookup failures degrade to an empty list, never an error status.
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	movies := h.service.SearchMovies(r.Context(), query)
	if movies == nil {
		movies = []response.MovieResponse{}
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieCredits handles GET /api/movies/{id}/credits
func (h *MovieHandler) GetMovieCredits(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required")
		return
	}

	credits, err := h.service.GetMovieCredits(r.Context(), movieID)
	if err != nil {
		if strings.Contains(err.Error(), "invalid") {
			utils.ResponseBadRequest(w, err.Error())
			return
		}
		h.log.Error("Failed to get movie credits", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, credits)
}
