package usecase

import (
	"time"

	"movie-diary/internal/data/repository"
	"movie-diary/internal/metadata"
	"movie-diary/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Review ReviewService
	Movie  MovieService
	Diary  DiaryService
}

func NewService(repo *repository.Repository, meta metadata.Client, config *utils.Config, log *zap.Logger) *Service {
	review := NewReviewService(repo, log)
	searcher := metadata.NewSearcher(meta, time.Duration(config.TMDB.SearchDebounceMs)*time.Millisecond)

	return &Service{
		Review: review,
		Movie:  NewMovieService(meta, searcher, log),
		// Diary view cache is keyed by the review service's revision
		Diary: NewDiaryService(repo, review, log),
	}
}
