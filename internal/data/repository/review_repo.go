package repository

import (
	"context"
	"fmt"

	"movie-diary/internal/data/entity"
	"movie-diary/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Liked and deleted are stored as SMALLINT 0/1. The conversion to bool
// happens here and nowhere else; everything above the repository sees
// native booleans.
type ReviewRepository interface {
	ListActive(ctx context.Context) ([]*entity.Review, error)
	GetActive(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	ListDeleted(ctx context.Context) ([]*entity.Review, error)
	Insert(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, movie_id, movie_title, poster_path, release_date, director, cast_names, rating, liked, review_text, watched_date, created_at`

func boolToInt(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	var liked int16

	err := row.Scan(
		&review.ID,
		&review.MovieID,
		&review.MovieTitle,
		&review.PosterPath,
		&review.ReleaseDate,
		&review.Director,
		&review.Cast,
		&review.Rating,
		&liked,
		&review.ReviewText,
		&review.WatchedDate,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	review.Liked = liked == 1
	return &review, nil
}

func (r *reviewRepository) list(ctx context.Context, deleted bool) ([]*entity.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews
		WHERE deleted = $1
		ORDER BY created_at DESC
	`, reviewColumns)

	rows, err := r.db.Query(ctx, query, boolToInt(deleted))
	if err != nil {
		r.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Bool("deleted", deleted),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		review.Deleted = deleted
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) ListActive(ctx context.Context) ([]*entity.Review, error) {
	return r.list(ctx, false)
}

// ListDeleted is the recovery path, soft-deleted rows ordered newest first.
func (r *reviewRepository) ListDeleted(ctx context.Context) ([]*entity.Review, error) {
	return r.list(ctx, true)
}

// GetActive returns (nil, nil) when the id is absent or soft-deleted.
func (r *reviewRepository) GetActive(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews
		WHERE id = $1 AND deleted = 0
	`, reviewColumns)

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) Insert(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, movie_id, movie_title, poster_path, release_date, director, cast_names, rating, liked, review_text, watched_date, created_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.MovieID,
		review.MovieTitle,
		review.PosterPath,
		review.ReleaseDate,
		review.Director,
		review.Cast,
		review.Rating,
		boolToInt(review.Liked),
		review.ReviewText,
		review.WatchedDate,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to insert review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("insert review %s: %w", review.ID.String(), err)
	}

	return nil
}

// Update overwrites all mutable fields on the matching active row.
// id and created_at are never touched.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET movie_id = $2,
			movie_title = $3,
			poster_path = $4,
			release_date = $5,
			director = $6,
			cast_names = $7,
			rating = $8,
			liked = $9,
			review_text = $10,
			watched_date = $11
		WHERE id = $1 AND deleted = 0
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.MovieID,
		review.MovieTitle,
		review.PosterPath,
		review.ReleaseDate,
		review.Director,
		review.Cast,
		review.Rating,
		boolToInt(review.Liked),
		review.ReviewText,
		review.WatchedDate,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

// SoftDelete flips the deleted flag. Idempotent, re-deleting is a no-op.
func (r *reviewRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE reviews SET deleted = 1 WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to soft-delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("soft-delete review %s: %w", id.String(), err)
	}

	r.log.Info("Review soft-deleted", zap.String("review_id", id.String()))
	return nil
}

// Restore clears the deleted flag. Idempotent.
func (r *reviewRepository) Restore(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE reviews SET deleted = 0 WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to restore review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("restore review %s: %w", id.String(), err)
	}

	r.log.Info("Review restored", zap.String("review_id", id.String()))
	return nil
}

// HardDelete permanently removes the row. Not exposed over HTTP.
func (r *reviewRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to hard-delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("hard-delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	r.log.Info("Review hard-deleted", zap.String("review_id", id.String()))
	return nil
}
