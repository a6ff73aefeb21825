package usecase

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"movie-diary/internal/data/entity"
	"movie-diary/internal/data/repository"
	"movie-diary/internal/dto/request"
	"movie-diary/internal/dto/response"
	"movie-diary/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	ListReviews(ctx context.Context) ([]response.ReviewResponse, error)
	GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error

	// Revision increments on every successful mutation, the diary view
	// uses it to know when its cached output is stale.
	Revision() uint64
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
	rev  atomic.Uint64
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Revision() uint64 {
	return s.rev.Load()
}

func (s *reviewService) ListReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.ListActive(ctx)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.findActive(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !validHalfStep(req.Rating) {
		return nil, fmt.Errorf("validation failed: rating must be in 0.5 increments")
	}

	// Create review entity
	review := &entity.Review{
		ID:          uuid.New(),
		MovieID:     req.MovieID,
		MovieTitle:  req.MovieTitle,
		PosterPath:  req.PosterPath,
		ReleaseDate: req.ReleaseDate,
		Director:    req.Director,
		Cast:        req.Cast,
		Rating:      req.Rating,
		Liked:       *req.Liked,
		ReviewText:  *req.ReviewText,
		WatchedDate: req.WatchedDate,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := s.repo.Review.Insert(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.rev.Add(1)

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.Int64("movie_id", review.MovieID),
		zap.String("movie_title", review.MovieTitle),
		zap.Float64("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Rating != nil && !validHalfStep(*req.Rating) {
		return nil, fmt.Errorf("validation failed: rating must be in 0.5 increments")
	}

	review, err := s.findActive(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	// Partial overwrite: absent fields keep their stored values,
	// id and createdAt are never touched.
	if req.MovieID != nil {
		review.MovieID = *req.MovieID
	}
	if req.MovieTitle != nil {
		review.MovieTitle = *req.MovieTitle
	}
	if req.PosterPath != nil {
		review.PosterPath = *req.PosterPath
	}
	if req.ReleaseDate != nil {
		review.ReleaseDate = *req.ReleaseDate
	}
	if req.Director != nil {
		review.Director = *req.Director
	}
	if req.Cast != nil {
		review.Cast = *req.Cast
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Liked != nil {
		review.Liked = *req.Liked
	}
	if req.ReviewText != nil {
		review.ReviewText = *req.ReviewText
	}
	if req.WatchedDate != nil {
		review.WatchedDate = *req.WatchedDate
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.rev.Add(1)

	s.log.Info("Review updated", zap.String("review_id", reviewID))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	review, err := s.findActive(ctx, reviewID)
	if err != nil {
		return err
	}

	// Soft delete only, the row stays around for recovery
	if err := s.repo.Review.SoftDelete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.rev.Add(1)

	return nil
}

// findActive resolves an id string to its active review. A malformed id is
// reported the same as a missing one, lookups only ever answer "found" or
// "not found".
func (s *reviewService) findActive(ctx context.Context, reviewID string) (*entity.Review, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	review, err := s.repo.Review.GetActive(ctx, id)
	if err != nil {
		s.log.Error("Failed to get review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	return review, nil
}

// validHalfStep reports whether rating lands on a 0.5 increment.
func validHalfStep(rating float64) bool {
	return math.Mod(rating*2, 1) == 0
}
