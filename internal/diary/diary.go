// Package diary derives the presented view of the review log: text and
// category filtering, sorting, and month grouping. Everything here is a
// pure transformation over the active review set, recomputed from scratch
// on every input change.
package diary

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"movie-diary/internal/data/entity"
)

type SortOption string

const (
	SortDateDesc   SortOption = "date-desc"
	SortDateAsc    SortOption = "date-asc"
	SortRatingDesc SortOption = "rating-desc"
	SortRatingAsc  SortOption = "rating-asc"
)

type FilterOption string

const (
	FilterAll      FilterOption = "all"
	FilterLiked    FilterOption = "liked"
	FilterFiveStar FilterOption = "5-star"
)

// Params is one input combination of the view.
type Params struct {
	Search string
	Filter FilterOption
	Sort   SortOption
}

func ValidSort(s SortOption) bool {
	switch s {
	case SortDateDesc, SortDateAsc, SortRatingDesc, SortRatingAsc:
		return true
	}
	return false
}

func ValidFilter(f FilterOption) bool {
	switch f {
	case FilterAll, FilterLiked, FilterFiveStar:
		return true
	}
	return false
}

// Apply filters and sorts reviews according to params. The input slice is
// not mutated. Sorting is stable, ties keep the order filtering produced.
func Apply(reviews []*entity.Review, params Params) []*entity.Review {
	result := make([]*entity.Review, 0, len(reviews))

	// Text filter: case-insensitive substring on title or review text.
	// Blank queries pass everything through.
	query := strings.ToLower(strings.TrimSpace(params.Search))
	for _, review := range reviews {
		if query != "" &&
			!strings.Contains(strings.ToLower(review.MovieTitle), query) &&
			!strings.Contains(strings.ToLower(review.ReviewText), query) {
			continue
		}

		// Category filter. 5-star means exactly 5, a 4.5 does not count.
		switch params.Filter {
		case FilterLiked:
			if !review.Liked {
				continue
			}
		case FilterFiveStar:
			if review.Rating != 5 {
				continue
			}
		}

		result = append(result, review)
	}

	sort.SliceStable(result, func(i, j int) bool {
		switch params.Sort {
		case SortDateAsc:
			return watchedTime(result[i]).Before(watchedTime(result[j]))
		case SortRatingDesc:
			return result[i].Rating > result[j].Rating
		case SortRatingAsc:
			return result[i].Rating < result[j].Rating
		default: // date-desc
			return watchedTime(result[i]).After(watchedTime(result[j]))
		}
	})

	return result
}

func watchedTime(review *entity.Review) time.Time {
	t, _ := time.Parse("2006-01-02", review.WatchedDate)
	return t
}

// Group is one month bucket of the diary.
type Group struct {
	Month   string
	Reviews []*entity.Review
}

// GroupByMonth partitions an already filtered and sorted sequence into
// "MONTH YEAR" buckets. Bucket order is first-encounter order of the
// input, not forced chronological order.
func GroupByMonth(reviews []*entity.Review) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, review := range reviews {
		label := monthLabel(review.WatchedDate)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Month: label})
		}
		groups[i].Reviews = append(groups[i].Reviews, review)
	}

	return groups
}

func monthLabel(watchedDate string) string {
	t, err := time.Parse("2006-01-02", watchedDate)
	if err != nil {
		return "UNKNOWN"
	}
	return strings.ToUpper(t.Month().String()) + " " + strconv.Itoa(t.Year())
}
