package query

import (
	"cmp"
	"slices"

	"github.com/amonks/movies/data"
)

// sortUnique sorts movies by compare and then drops every movie that compares
// equal to the one before it. The sort is stable, so of any group of equal
// movies, the earliest in dataset order is the one that's kept.
func sortUnique(movies []*data.Movie, compare func(a, b *data.Movie) int) []*data.Movie {
	slices.SortStableFunc(movies, compare)
	return slices.CompactFunc(movies, func(a, b *data.Movie) bool {
		return compare(a, b) == 0
	})
}

// byTitleThenYear orders movies by title, then by year.
func byTitleThenYear(a, b *data.Movie) int {
	return cmp.Or(
		cmp.Compare(a.Title, b.Title),
		cmp.Compare(a.Year, b.Year),
	)
}

// byRuntimeDescThenTitle orders movies from longest to shortest, then by
// title. Movies with an unknown runtime sort last.
func byRuntimeDescThenTitle(a, b *data.Movie) int {
	ra, oka := a.Runtime()
	rb, okb := b.Runtime()
	if oka != okb {
		if oka {
			return -1
		}
		return 1
	}
	return cmp.Or(
		cmp.Compare(rb, ra),
		cmp.Compare(a.Title, b.Title),
	)
}

func byVotesDesc(a, b *data.Movie) int {
	return cmp.Compare(b.Votes(), a.Votes())
}

// byRatingDesc orders rated movies from best to worst average. Ties go to
// the movie with more votes, then to the lower ID, so no two distinct movies
// compare equal.
func byRatingDesc(a, b *data.Movie) int {
	return cmp.Or(
		cmp.Compare(b.Rating.Average, a.Rating.Average),
		cmp.Compare(b.Rating.Votes, a.Rating.Votes),
		cmp.Compare(a.ID, b.ID),
	)
}
