package metadata

import (
	"context"
)

// Movie is one search candidate from the provider.
type Movie struct {
	ID          int64
	Title       string
	PosterPath  string // may be empty, provider can return null posters
	ReleaseDate string // YYYY-MM-DD or empty
}

// Credits is the condensed crew/cast info shown on a diary entry.
type Credits struct {
	Director string // first crew entry with job "Director", or empty
	Cast     string // first five billed names joined by ", ", or empty
}

// Client looks up movie metadata. Both calls are read-only and degrade to
// empty results on any failure, a broken provider must never block writing
// a diary entry.
type Client interface {
	Search(ctx context.Context, query string) []Movie
	Credits(ctx context.Context, movieID int64) Credits
}
