package utils

import (
	"strings"
)

// ReleaseYear extracts the year from a YYYY-MM-DD release date.
// Returns empty string when the date itself is empty.
func ReleaseYear(releaseDate string) string {
	if releaseDate == "" {
		return ""
	}

	year, _, found := strings.Cut(releaseDate, "-")
	if !found {
		return releaseDate
	}

	return year
}
