package usecase

import (
	"context"
	"fmt"
	"strconv"

	"movie-diary/internal/dto/response"
	"movie-diary/internal/metadata"

	"go.uber.org/zap"
)

// MovieService fronts the metadata provider for the create/edit flow.
// Lookups never fail, a degraded provider just yields empty results.
type MovieService interface {
	SearchMovies(ctx context.Context, query string) []response.MovieResponse
	GetMovieCredits(ctx context.Context, movieID string) (*response.CreditsResponse, error)
}

type movieService struct {
	meta   metadata.Client
	search *metadata.Searcher
	log    *zap.Logger
}

func NewMovieService(meta metadata.Client, search *metadata.Searcher, log *zap.Logger) MovieService {
	return &movieService{
		meta:   meta,
		search: search,
		log:    log.With(zap.String("service", "movie")),
	}
}

// SearchMovies goes through the debouncing searcher, so a burst of queries
// from fast typing collapses into one provider call and superseded queries
// come back empty.
func (s *movieService) SearchMovies(ctx context.Context, query string) []response.MovieResponse {
	movies := s.search.SearchLatest(ctx, query)

	s.log.Debug("Movie search",
		zap.String("query", query),
		zap.Int("results", len(movies)),
	)

	return response.MoviesToResponse(movies)
}

func (s *movieService) GetMovieCredits(ctx context.Context, movieID string) (*response.CreditsResponse, error) {
	id, err := strconv.ParseInt(movieID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	credits := response.CreditsToResponse(s.meta.Credits(ctx, id))
	return &credits, nil
}
