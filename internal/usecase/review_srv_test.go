package usecase

import (
	"context"
	"fmt"
	"testing"

	"movie-diary/internal/data/entity"
	"movie-diary/internal/data/repository"
	"movie-diary/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReviewRepo is an in-memory ReviewRepository for service tests.
type fakeReviewRepo struct {
	reviews     map[uuid.UUID]*entity.Review
	insertOrder []uuid.UUID
	listCalls   int
	failAll     bool
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (f *fakeReviewRepo) ListActive(ctx context.Context) ([]*entity.Review, error) {
	f.listCalls++
	if f.failAll {
		return nil, fmt.Errorf("connection refused")
	}
	var out []*entity.Review
	// newest created first
	for i := len(f.insertOrder) - 1; i >= 0; i-- {
		r := f.reviews[f.insertOrder[i]]
		if r != nil && !r.Deleted {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListDeleted(ctx context.Context) ([]*entity.Review, error) {
	var out []*entity.Review
	for i := len(f.insertOrder) - 1; i >= 0; i-- {
		r := f.reviews[f.insertOrder[i]]
		if r != nil && r.Deleted {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) GetActive(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	if f.failAll {
		return nil, fmt.Errorf("connection refused")
	}
	r, ok := f.reviews[id]
	if !ok || r.Deleted {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReviewRepo) Insert(ctx context.Context, review *entity.Review) error {
	if f.failAll {
		return fmt.Errorf("connection refused")
	}
	if _, exists := f.reviews[review.ID]; exists {
		return fmt.Errorf("duplicate id")
	}
	copied := *review
	f.reviews[review.ID] = &copied
	f.insertOrder = append(f.insertOrder, review.ID)
	return nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	existing, ok := f.reviews[review.ID]
	if !ok || existing.Deleted {
		return fmt.Errorf("review %s not found", review.ID.String())
	}
	copied := *review
	copied.CreatedAt = existing.CreatedAt
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if r, ok := f.reviews[id]; ok {
		r.Deleted = true
	}
	return nil
}

func (f *fakeReviewRepo) Restore(ctx context.Context, id uuid.UUID) error {
	if r, ok := f.reviews[id]; ok {
		r.Deleted = false
	}
	return nil
}

func (f *fakeReviewRepo) HardDelete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.reviews[id]; !ok {
		return fmt.Errorf("review %s not found", id.String())
	}
	delete(f.reviews, id)
	return nil
}

func newTestReviewService() (ReviewService, *fakeReviewRepo) {
	fake := newFakeReviewRepo()
	repo := &repository.Repository{Review: fake}
	return NewReviewService(repo, zap.NewNop()), fake
}

func boolPtr(b bool) *bool      { return &b }
func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func validCreateRequest() *request.CreateReviewRequest {
	return &request.CreateReviewRequest{
		MovieID:     155,
		MovieTitle:  "The Dark Knight",
		PosterPath:  "/poster.jpg",
		ReleaseDate: "2008-07-16",
		Director:    "Christopher Nolan",
		Cast:        "Christian Bale, Heath Ledger",
		Rating:      4.5,
		Liked:       boolPtr(true),
		ReviewText:  strPtr("Still holds up."),
		WatchedDate: "2024-03-01",
	}
}

func TestCreateReview(t *testing.T) {
	svc, _ := newTestReviewService()

	created, err := svc.CreateReview(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)
	assert.True(t, created.Liked)
	assert.Equal(t, 4.5, created.Rating)
	assert.Equal(t, "2008", created.ReleaseYear)

	// A second create gets a fresh id
	other, err := svc.CreateReview(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestCreateReview_LikedFalseRoundTrips(t *testing.T) {
	svc, _ := newTestReviewService()

	req := validCreateRequest()
	req.Liked = boolPtr(false)

	created, err := svc.CreateReview(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created.Liked)

	fetched, err := svc.GetReview(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Liked)
}

func TestCreateReview_Validation(t *testing.T) {
	svc, _ := newTestReviewService()

	tests := []struct {
		name   string
		mutate func(*request.CreateReviewRequest)
	}{
		{"missing movie title", func(r *request.CreateReviewRequest) { r.MovieTitle = "" }},
		{"missing poster path", func(r *request.CreateReviewRequest) { r.PosterPath = "" }},
		{"missing liked", func(r *request.CreateReviewRequest) { r.Liked = nil }},
		{"missing review text", func(r *request.CreateReviewRequest) { r.ReviewText = nil }},
		{"missing watched date", func(r *request.CreateReviewRequest) { r.WatchedDate = "" }},
		{"malformed watched date", func(r *request.CreateReviewRequest) { r.WatchedDate = "March 1st" }},
		{"rating too high", func(r *request.CreateReviewRequest) { r.Rating = 5.5 }},
		{"rating below half star", func(r *request.CreateReviewRequest) { r.Rating = 0.25 }},
		{"rating off the half step", func(r *request.CreateReviewRequest) { r.Rating = 3.7 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(req)

			_, err := svc.CreateReview(context.Background(), req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestCreateReview_EmptyReviewTextAllowed(t *testing.T) {
	svc, _ := newTestReviewService()

	req := validCreateRequest()
	req.ReviewText = strPtr("")

	created, err := svc.CreateReview(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, created.ReviewText)
}

func TestUpdateReview_PartialOverwrite(t *testing.T) {
	svc, _ := newTestReviewService()

	created, err := svc.CreateReview(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateReview(context.Background(), created.ID, &request.UpdateReviewRequest{
		Rating: f64Ptr(5),
		Liked:  boolPtr(false),
	})
	require.NoError(t, err)

	// Only rating and liked changed
	assert.Equal(t, float64(5), updated.Rating)
	assert.False(t, updated.Liked)
	assert.Equal(t, created.MovieTitle, updated.MovieTitle)
	assert.Equal(t, created.ReviewText, updated.ReviewText)
	assert.Equal(t, created.WatchedDate, updated.WatchedDate)

	// Identity never moves
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateReview_BlankTitleRejected(t *testing.T) {
	svc, _ := newTestReviewService()

	created, err := svc.CreateReview(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// A present but empty movieTitle or posterPath cannot blank out a
	// required field, unlike reviewText which may legitimately be empty
	for _, req := range []*request.UpdateReviewRequest{
		{MovieTitle: strPtr("")},
		{PosterPath: strPtr("")},
	} {
		_, err := svc.UpdateReview(context.Background(), created.ID, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	}

	// The stored review is untouched
	got, err := svc.GetReview(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.MovieTitle, got.MovieTitle)
	assert.Equal(t, created.PosterPath, got.PosterPath)
}

func TestUpdateReview_NotFound(t *testing.T) {
	svc, _ := newTestReviewService()

	_, err := svc.UpdateReview(context.Background(), uuid.NewString(), &request.UpdateReviewRequest{
		Rating: f64Ptr(3),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteReview_SoftDelete(t *testing.T) {
	svc, fake := newTestReviewService()

	created, err := svc.CreateReview(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(context.Background(), created.ID))

	// Gone from reads
	_, err = svc.GetReview(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	list, err := svc.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	// Row still recoverable at the storage layer
	deleted, err := fake.ListDeleted(context.Background())
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, created.ID, deleted[0].ID.String())

	// Deleting again reports not found
	err = svc.DeleteReview(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteReview_MalformedIDIsNotFound(t *testing.T) {
	svc, _ := newTestReviewService()

	err := svc.DeleteReview(context.Background(), "definitely-not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRevision_BumpsOnMutation(t *testing.T) {
	svc, _ := newTestReviewService()

	before := svc.Revision()

	created, err := svc.CreateReview(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, before+1, svc.Revision())

	_, err = svc.UpdateReview(context.Background(), created.ID, &request.UpdateReviewRequest{Rating: f64Ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, before+2, svc.Revision())

	require.NoError(t, svc.DeleteReview(context.Background(), created.ID))
	assert.Equal(t, before+3, svc.Revision())

	// Reads do not bump
	_, err = svc.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before+3, svc.Revision())
}

func TestListReviews_NewestCreatedFirst(t *testing.T) {
	svc, _ := newTestReviewService()

	first, err := svc.CreateReview(context.Background(), validCreateRequest())
	require.NoError(t, err)
	second, err := svc.CreateReview(context.Background(), validCreateRequest())
	require.NoError(t, err)

	list, err := svc.ListReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListReviews_StoreFault(t *testing.T) {
	svc, fake := newTestReviewService()
	fake.failAll = true

	_, err := svc.ListReviews(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "not found")
}
