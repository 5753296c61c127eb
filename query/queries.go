package query

import (
	"fmt"
	"slices"
	"strings"

	"github.com/amonks/movies/data"
)

// SearchTitlesContaining returns the movies of the given type whose title
// contains substr, in dataset order. The match is literal and case-sensitive;
// an empty substr matches every title.
func (eng *Engine) SearchTitlesContaining(titleType data.TitleType, substr string) []*data.Movie {
	return eng.filter(titleType, func(movie *data.Movie) bool {
		return strings.Contains(movie.Title, substr)
	})
}

// FilterByYearAndGenre returns the movies of the given type, released in the
// given year, that carry the given genre. They are sorted by title and then
// year, and movies sharing a title and year are collapsed into one.
func (eng *Engine) FilterByYearAndGenre(titleType data.TitleType, year int, genre data.Genre) []*data.Movie {
	movies := eng.filter(titleType, func(movie *data.Movie) bool {
		return movie.Year == year && movie.HasGenre(genre)
	})
	return sortUnique(movies, byTitleThenYear)
}

// FilterByRuntimeRange returns the movies of the given type whose runtime is
// within [minMinutes, maxMinutes]. Movies with no known runtime never match.
// They are sorted longest first, then by title, and movies sharing a runtime
// and title are collapsed into one.
func (eng *Engine) FilterByRuntimeRange(titleType data.TitleType, minMinutes, maxMinutes int) []*data.Movie {
	movies := eng.filter(titleType, func(movie *data.Movie) bool {
		runtime, ok := movie.Runtime()
		return ok && runtime >= minMinutes && runtime <= maxMinutes
	})
	return sortUnique(movies, byRuntimeDescThenTitle)
}

// TopByVotes returns the count movies of the given type with the most votes,
// most first. Movies with equal votes stay in dataset order. If there are
// fewer than count such movies, all of them are returned.
func (eng *Engine) TopByVotes(count int, titleType data.TitleType) []*data.Movie {
	movies := eng.filter(titleType, nil)
	slices.SortStableFunc(movies, byVotesDesc)
	count = max(0, min(count, len(movies)))
	return slices.Clip(movies[:count])
}

// TopRatedPerYear returns, for each year from startYear to endYear inclusive,
// up to count of the best-rated movies of the given type released that year.
// Only movies with at least MinVotesForTopRanked votes are considered.
//
// Every year in the range is a key in the result, even if no movie qualified
// for it. Callers taking the range from user input should bound it with
// CheckYearSpan first.
func (eng *Engine) TopRatedPerYear(count int, titleType data.TitleType, startYear, endYear int) map[int][]*data.Movie {
	result := map[int][]*data.Movie{}
	if startYear > endYear {
		return result
	}
	for year := startYear; ; year++ {
		result[year] = []*data.Movie{}
		if year == endYear {
			break
		}
	}

	ranked := eng.filter(titleType, func(movie *data.Movie) bool {
		return movie.Rating != nil &&
			movie.Rating.Votes >= MinVotesForTopRanked &&
			movie.Year >= startYear && movie.Year <= endYear
	})
	slices.SortFunc(ranked, byRatingDesc)

	for _, movie := range ranked {
		if bucket := result[movie.Year]; len(bucket) < count {
			result[movie.Year] = append(bucket, movie)
		}
	}
	return result
}

// CheckYearSpan returns an error wrapping ErrYearSpan if the range from
// startYear to endYear, inclusive, covers more than MaxYearSpan years.
func CheckYearSpan(startYear, endYear int) error {
	if startYear > endYear {
		return nil
	}
	// end-start wraps for ranges wider than MaxInt; as a uint it doesn't.
	if span := uint(endYear - startYear); span >= MaxYearSpan {
		return fmt.Errorf("%d to %d: %w", startYear, endYear, ErrYearSpan)
	}
	return nil
}
