package wire

import (
	"movie-diary/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /api/reviews - all active reviews, newest created first
	r.Get("/api/reviews", reviewHandler.ListReviews)

	// POST /api/reviews - log a new diary entry
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// GET /api/reviews/{id} - single active review
	r.Get("/api/reviews/{id}", reviewHandler.GetReview)

	// PUT /api/reviews/{id} - partial overwrite
	r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)

	// DELETE /api/reviews/{id} - soft delete
	r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
}
