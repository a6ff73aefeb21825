package request

// Liked and ReviewText are pointers so "present but false/empty" is
// distinguishable from "missing". A create with liked=false is valid,
// a create without liked is not.
type CreateReviewRequest struct {
	MovieID     int64   `json:"movieId" validate:"required"`
	MovieTitle  string  `json:"movieTitle" validate:"required"`
	PosterPath  string  `json:"posterPath" validate:"required"`
	ReleaseDate string  `json:"releaseDate"`
	Director    string  `json:"director"`
	Cast        string  `json:"cast"`
	Rating      float64 `json:"rating" validate:"required,min=0.5,max=5"`
	Liked       *bool   `json:"liked" validate:"required"`
	ReviewText  *string `json:"reviewText" validate:"required"`
	WatchedDate string  `json:"watchedDate" validate:"required,datetime=2006-01-02"`
}

// UpdateReviewRequest is a partial overwrite, absent fields keep their
// stored values. id and createdAt are not accepted here at all.
type UpdateReviewRequest struct {
	MovieID     *int64   `json:"movieId,omitempty"`
	MovieTitle  *string  `json:"movieTitle,omitempty" validate:"omitempty,min=1"`
	PosterPath  *string  `json:"posterPath,omitempty" validate:"omitempty,min=1"`
	ReleaseDate *string  `json:"releaseDate,omitempty"`
	Director    *string  `json:"director,omitempty"`
	Cast        *string  `json:"cast,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0.5,max=5"`
	Liked       *bool    `json:"liked,omitempty"`
	ReviewText  *string  `json:"reviewText,omitempty"`
	WatchedDate *string  `json:"watchedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
