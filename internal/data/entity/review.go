package entity

import (
	"github.com/google/uuid"
)

// Review is a single diary entry. Movie metadata (title, poster, director,
// cast) is denormalized from the lookup provider at write time and never
// re-fetched, so entries stay stable if the provider's data changes later.
type Review struct {
	ID          uuid.UUID `db:"id"`
	MovieID     int64     `db:"movie_id"`
	MovieTitle  string    `db:"movie_title"`
	PosterPath  string    `db:"poster_path"`
	ReleaseDate string    `db:"release_date"` // YYYY-MM-DD or empty
	Director    string    `db:"director"`
	Cast        string    `db:"cast_names"`
	Rating      float64   `db:"rating"` // 0.5 - 5.0 in half steps
	Liked       bool      `db:"liked"`
	ReviewText  string    `db:"review_text"`
	WatchedDate string    `db:"watched_date"` // YYYY-MM-DD, user editable
	CreatedAt   int64     `db:"created_at"`   // epoch millis, set once at insert
	Deleted     bool      `db:"deleted"`
}
