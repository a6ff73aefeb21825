package usecase

import (
	"context"
	"fmt"
	"sync"

	"movie-diary/internal/data/repository"
	"movie-diary/internal/diary"
	"movie-diary/internal/dto/response"

	"go.uber.org/zap"
)

// RevisionSource tells the diary view when the underlying review set
// changed. The review service implements it.
type RevisionSource interface {
	Revision() uint64
}

type DiaryService interface {
	GetDiary(ctx context.Context, params diary.Params) (*response.DiaryResponse, error)
}

type diaryKey struct {
	params   diary.Params
	revision uint64
}

type diaryService struct {
	repo *repository.Repository
	rev  RevisionSource
	log  *zap.Logger

	// Fully processed output for the current input combination. Any change
	// of params or revision recomputes from scratch.
	mu     sync.Mutex
	key    diaryKey
	cached *response.DiaryResponse
}

func NewDiaryService(repo *repository.Repository, rev RevisionSource, log *zap.Logger) DiaryService {
	return &diaryService{
		repo: repo,
		rev:  rev,
		log:  log.With(zap.String("service", "diary")),
	}
}

func (s *diaryService) GetDiary(ctx context.Context, params diary.Params) (*response.DiaryResponse, error) {
	// Defaults match the front end's initial state
	if params.Filter == "" {
		params.Filter = diary.FilterAll
	}
	if params.Sort == "" {
		params.Sort = diary.SortDateDesc
	}

	if !diary.ValidFilter(params.Filter) {
		return nil, fmt.Errorf("validation failed: unknown filter %q", params.Filter)
	}
	if !diary.ValidSort(params.Sort) {
		return nil, fmt.Errorf("validation failed: unknown sort %q", params.Sort)
	}

	key := diaryKey{params: params, revision: s.rev.Revision()}

	s.mu.Lock()
	if s.cached != nil && s.key == key {
		cached := s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	reviews, err := s.repo.Review.ListActive(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews for diary view", zap.Error(err))
		return nil, fmt.Errorf("load diary reviews: %w", err)
	}

	processed := diary.Apply(reviews, params)
	groups := diary.GroupByMonth(processed)

	resp := &response.DiaryResponse{
		Groups: make([]response.DiaryGroupResponse, len(groups)),
		Total:  len(processed),
	}
	for i, group := range groups {
		resp.Groups[i] = response.DiaryGroupResponse{
			Month:   group.Month,
			Reviews: response.ReviewsToResponse(group.Reviews),
		}
	}

	s.mu.Lock()
	s.key = key
	s.cached = resp
	s.mu.Unlock()

	return resp, nil
}
