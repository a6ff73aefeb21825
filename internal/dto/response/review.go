package response

import (
	"movie-diary/internal/data/entity"
	"movie-diary/pkg/utils"
)

// Wire format matches the diary front end: camelCase fields, liked as a
// native boolean regardless of how the store encodes it.
type ReviewResponse struct {
	ID          string  `json:"id"`
	MovieID     int64   `json:"movieId"`
	MovieTitle  string  `json:"movieTitle"`
	PosterPath  string  `json:"posterPath"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
	ReleaseYear string  `json:"releaseYear,omitempty"`
	Director    string  `json:"director,omitempty"`
	Cast        string  `json:"cast,omitempty"`
	Rating      float64 `json:"rating"`
	Liked       bool    `json:"liked"`
	ReviewText  string  `json:"reviewText"`
	WatchedDate string  `json:"watchedDate"`
	CreatedAt   int64   `json:"createdAt"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:          review.ID.String(),
		MovieID:     review.MovieID,
		MovieTitle:  review.MovieTitle,
		PosterPath:  review.PosterPath,
		ReleaseDate: review.ReleaseDate,
		ReleaseYear: utils.ReleaseYear(review.ReleaseDate),
		Director:    review.Director,
		Cast:        review.Cast,
		Rating:      review.Rating,
		Liked:       review.Liked,
		ReviewText:  review.ReviewText,
		WatchedDate: review.WatchedDate,
		CreatedAt:   review.CreatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewToResponse(review)
	}
	return responses
}
