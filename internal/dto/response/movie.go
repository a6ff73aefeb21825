package response

import (
	"movie-diary/internal/metadata"
)

// MovieResponse is one search candidate from the metadata provider.
type MovieResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"posterPath"`
	ReleaseDate string `json:"releaseDate"`
}

type CreditsResponse struct {
	Director string `json:"director"`
	Cast     string `json:"cast"`
}

func MoviesToResponse(movies []metadata.Movie) []MovieResponse {
	responses := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = MovieResponse{
			ID:          movie.ID,
			Title:       movie.Title,
			PosterPath:  movie.PosterPath,
			ReleaseDate: movie.ReleaseDate,
		}
	}
	return responses
}

func CreditsToResponse(credits metadata.Credits) CreditsResponse {
	return CreditsResponse{
		Director: credits.Director,
		Cast:     credits.Cast,
	}
}
