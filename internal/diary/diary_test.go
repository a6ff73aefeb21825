package diary

import (
	"testing"

	"movie-diary/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReview(title, text string, rating float64, liked bool, watched string) *entity.Review {
	return &entity.Review{
		ID:          uuid.New(),
		MovieID:     1,
		MovieTitle:  title,
		PosterPath:  "/poster.jpg",
		Rating:      rating,
		Liked:       liked,
		ReviewText:  text,
		WatchedDate: watched,
	}
}

func titles(reviews []*entity.Review) []string {
	out := make([]string, len(reviews))
	for i, r := range reviews {
		out[i] = r.MovieTitle
	}
	return out
}

func TestApply_TextFilter(t *testing.T) {
	reviews := []*entity.Review{
		makeReview("The Dark Knight", "great", 5, true, "2024-01-05"),
		makeReview("Amelie", "a dark undertone throughout", 4, false, "2024-01-06"),
		makeReview("Paddington", "wholesome", 4.5, true, "2024-01-07"),
	}

	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{
			name:     "matches title and review text case-insensitively",
			search:   "dark",
			expected: []string{"Amelie", "The Dark Knight"},
		},
		{
			name:     "blank query passes everything through",
			search:   "   ",
			expected: []string{"Paddington", "Amelie", "The Dark Knight"},
		},
		{
			name:     "no match yields empty result",
			search:   "zzz",
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Apply(reviews, Params{Search: tc.search, Filter: FilterAll, Sort: SortDateDesc})
			assert.Equal(t, tc.expected, titles(result))
		})
	}
}

func TestApply_CategoryFilter(t *testing.T) {
	reviews := []*entity.Review{
		makeReview("Five", "", 5, false, "2024-01-01"),
		makeReview("FourHalf", "", 4.5, true, "2024-01-02"),
		makeReview("Liked", "", 3, true, "2024-01-03"),
	}

	t.Run("5-star is exact, 4.5 is excluded", func(t *testing.T) {
		result := Apply(reviews, Params{Filter: FilterFiveStar, Sort: SortDateDesc})
		require.Len(t, result, 1)
		assert.Equal(t, "Five", result[0].MovieTitle)
	})

	t.Run("liked only", func(t *testing.T) {
		result := Apply(reviews, Params{Filter: FilterLiked, Sort: SortDateAsc})
		assert.Equal(t, []string{"FourHalf", "Liked"}, titles(result))
	})
}

func TestApply_Sort(t *testing.T) {
	reviews := []*entity.Review{
		makeReview("A", "", 2, false, "2024-02-10"),
		makeReview("B", "", 5, false, "2024-01-01"),
		makeReview("C", "", 3.5, false, "2024-03-20"),
	}

	tests := []struct {
		name     string
		sort     SortOption
		expected []string
	}{
		{"rating descending", SortRatingDesc, []string{"B", "C", "A"}},
		{"rating ascending", SortRatingAsc, []string{"A", "C", "B"}},
		{"date descending", SortDateDesc, []string{"C", "A", "B"}},
		{"date ascending", SortDateAsc, []string{"B", "A", "C"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Apply(reviews, Params{Filter: FilterAll, Sort: tc.sort})
			assert.Equal(t, tc.expected, titles(result))
		})
	}
}

func TestApply_SortStableOnTies(t *testing.T) {
	reviews := []*entity.Review{
		makeReview("First", "", 4, false, "2024-01-01"),
		makeReview("Second", "", 4, false, "2024-01-01"),
		makeReview("Third", "", 4, false, "2024-01-01"),
	}

	result := Apply(reviews, Params{Filter: FilterAll, Sort: SortRatingDesc})
	assert.Equal(t, []string{"First", "Second", "Third"}, titles(result))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	reviews := []*entity.Review{
		makeReview("A", "", 1, false, "2024-01-02"),
		makeReview("B", "", 5, false, "2024-01-01"),
	}

	Apply(reviews, Params{Filter: FilterAll, Sort: SortRatingDesc})
	assert.Equal(t, []string{"A", "B"}, titles(reviews))
}

func TestGroupByMonth(t *testing.T) {
	reviews := []*entity.Review{
		makeReview("Jan1", "", 4, false, "2024-01-20"),
		makeReview("Jan2", "", 3, false, "2024-01-05"),
		makeReview("Dec", "", 5, false, "2023-12-31"),
	}

	groups := GroupByMonth(reviews)

	require.Len(t, groups, 2)
	assert.Equal(t, "JANUARY 2024", groups[0].Month)
	assert.Equal(t, []string{"Jan1", "Jan2"}, titles(groups[0].Reviews))
	assert.Equal(t, "DECEMBER 2023", groups[1].Month)
	assert.Equal(t, []string{"Dec"}, titles(groups[1].Reviews))
}

func TestGroupByMonth_FirstEncounterOrder(t *testing.T) {
	// Rating sort interleaves months, buckets follow the sorted sequence
	reviews := Apply([]*entity.Review{
		makeReview("FebLow", "", 1, false, "2024-02-10"),
		makeReview("JanHigh", "", 5, false, "2024-01-10"),
		makeReview("FebHigh", "", 4, false, "2024-02-20"),
	}, Params{Filter: FilterAll, Sort: SortRatingDesc})

	groups := GroupByMonth(reviews)

	require.Len(t, groups, 2)
	assert.Equal(t, "JANUARY 2024", groups[0].Month)
	assert.Equal(t, "FEBRUARY 2024", groups[1].Month)
	assert.Equal(t, []string{"FebHigh", "FebLow"}, titles(groups[1].Reviews))
}

func TestValidOptions(t *testing.T) {
	assert.True(t, ValidSort(SortDateDesc))
	assert.True(t, ValidFilter(FilterFiveStar))
	assert.False(t, ValidSort("alphabetical"))
	assert.False(t, ValidFilter("hated"))
}
