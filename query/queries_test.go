package query_test

import (
	"math"
	"testing"

	"github.com/amonks/movies/data"
	"github.com/amonks/movies/query"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTitlesContaining(t *testing.T) {
	eng := newEngine(t, fixture()...)

	for _, tc := range []struct {
		name      string
		titleType data.TitleType
		substr    string
		expect    []string
	}{
		{"substring", data.TitleTypeMovie, "Matrix", []string{"tt01", "tt02"}},
		{"case sensitive", data.TitleTypeMovie, "matrix", []string{}},
		{"literal", data.TitleTypeMovie, "M.*x", []string{}},
		{"title type", data.TitleTypeTvEpisode, "", []string{"tt15"}},
		{"no such type", data.TitleTypeVideoGame, "", []string{}},
		{"middle of word", data.TitleTypeMovie, "ist", []string{"tt14"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(eng.SearchTitlesContaining(tc.titleType, tc.substr))
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchEmptySubstringMatchesType(t *testing.T) {
	movies := fixture()
	eng := newEngine(t, movies...)

	for _, tt := range data.TitleTypes() {
		var want []string
		for _, m := range movies {
			if m.TitleType == tt {
				want = append(want, m.ID)
			}
		}
		got := eng.SearchTitlesContaining(tt, "")
		for _, m := range got {
			assert.Equal(t, tt, m.TitleType)
		}
		assert.Equal(t, len(want), len(got), tt.String())
	}
}

func TestFilterByYearAndGenre(t *testing.T) {
	eng := newEngine(t, fixture()...)

	got := eng.FilterByYearAndGenre(data.TitleTypeMovie, 2000, data.GenreDrama)
	assert.Equal(t, []string{"tt06", "tt04", "tt07", "tt05"}, ids(got))

	got = eng.FilterByYearAndGenre(data.TitleTypeMovie, 2000, data.GenreWestern)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got = eng.FilterByYearAndGenre(data.TitleTypeTvEpisode, 2002, data.GenreDrama)
	assert.Equal(t, []string{"tt15"}, ids(got))
}

func TestFilterByYearAndGenreCollapsesTitleAndYear(t *testing.T) {
	eng := newEngine(t,
		movie("tt1", "Solaris", 2002, genres(data.GenreDrama)),
		movie("tt2", "Alpha", 2002, genres(data.GenreDrama)),
		movie("tt3", "Solaris", 2002, genres(data.GenreDrama, data.GenreSciFi)),
		movie("tt4", "Solaris", 1972, genres(data.GenreDrama)),
	)

	got := eng.FilterByYearAndGenre(data.TitleTypeMovie, 2002, data.GenreDrama)
	assert.Equal(t, []string{"tt2", "tt1"}, ids(got))

	got = eng.FilterByYearAndGenre(data.TitleTypeMovie, 2002, data.GenreSciFi)
	assert.Equal(t, []string{"tt3"}, ids(got))
}

func TestFilterByYearAndGenreIsStrictlyOrdered(t *testing.T) {
	eng := newEngine(t, fixture()...)
	for year := 1999; year <= 2003; year++ {
		for _, genre := range data.Genres() {
			got := eng.FilterByYearAndGenre(data.TitleTypeMovie, year, genre)
			for i := 1; i < len(got); i++ {
				assert.Less(t, got[i-1].Title, got[i].Title)
			}
			for _, m := range got {
				assert.Equal(t, year, m.Year)
				assert.True(t, m.HasGenre(genre))
			}
		}
	}
}

func TestFilterByRuntimeRange(t *testing.T) {
	eng := newEngine(t, fixture()...)

	got := eng.FilterByRuntimeRange(data.TitleTypeMovie, 130, 150)
	assert.Equal(t, []string{"tt14", "tt11", "tt05", "tt12", "tt02", "tt01", "tt13"}, ids(got))

	for _, m := range got {
		runtime, ok := m.Runtime()
		require.True(t, ok)
		assert.GreaterOrEqual(t, runtime, 130)
		assert.LessOrEqual(t, runtime, 150)
	}
	for i := 1; i < len(got); i++ {
		prev, _ := got[i-1].Runtime()
		this, _ := got[i].Runtime()
		if prev == this {
			assert.Less(t, got[i-1].Title, got[i].Title)
		} else {
			assert.Greater(t, prev, this)
		}
	}

	assert.Empty(t, eng.FilterByRuntimeRange(data.TitleTypeMovie, 150, 130))
	assert.Equal(t, []string{"tt15"}, ids(eng.FilterByRuntimeRange(data.TitleTypeTvEpisode, 0, 60)))
}

func TestFilterByRuntimeRangeSkipsUnknownRuntime(t *testing.T) {
	eng := newEngine(t, fixture()...)
	for _, m := range eng.FilterByRuntimeRange(data.TitleTypeMovie, -1000, 1000) {
		assert.NotEqual(t, "tt16", m.ID)
	}
}

func TestFilterByRuntimeRangeCollapsesRuntimeAndTitle(t *testing.T) {
	eng := newEngine(t,
		movie("tt1", "Hamlet", 1948, runtime(155)),
		movie("tt2", "Hamlet", 1996, runtime(242)),
		movie("tt3", "Hamlet", 2000, runtime(112)),
		movie("tt4", "Hamlet", 1990, runtime(155)),
	)
	got := eng.FilterByRuntimeRange(data.TitleTypeMovie, 100, 250)
	assert.Equal(t, []string{"tt2", "tt1", "tt3"}, ids(got))
}

func TestTopByVotes(t *testing.T) {
	eng := newEngine(t, fixture()...)

	assert.Equal(t, []string{"tt01", "tt04", "tt03"}, ids(eng.TopByVotes(3, data.TitleTypeMovie)))
	assert.Equal(t, []string{"tt15"}, ids(eng.TopByVotes(1, data.TitleTypeTvEpisode)))
}

func TestTopByVotesIsPrefixOfVoteOrder(t *testing.T) {
	movies := fixture()
	eng := newEngine(t, movies...)

	for n := 0; n <= 15; n++ {
		got := eng.TopByVotes(n, data.TitleTypeMovie)
		require.Len(t, got, n)

		inside := map[string]bool{}
		fewest := -1
		for i, m := range got {
			inside[m.ID] = true
			if i > 0 {
				assert.GreaterOrEqual(t, got[i-1].Votes(), m.Votes())
			}
			fewest = m.Votes()
		}
		if n == 0 {
			continue
		}
		for _, m := range movies {
			if m.TitleType == data.TitleTypeMovie && !inside[m.ID] {
				assert.LessOrEqual(t, m.Votes(), fewest, m.ID)
			}
		}
	}
}

func TestTopByVotesKeepsDatasetOrderForTies(t *testing.T) {
	eng := newEngine(t,
		movie("a", "A", 2000, rated(5, 10)),
		movie("b", "B", 2000, rated(5, 20)),
		movie("c", "C", 2000, rated(5, 10)),
		movie("d", "D", 2000),
		movie("e", "E", 2000, rated(5, 0)),
	)
	assert.Equal(t, []string{"b", "a", "c", "d", "e"}, ids(eng.TopByVotes(5, data.TitleTypeMovie)))
}

func TestTopByVotesClamps(t *testing.T) {
	eng := newEngine(t, fixture()...)

	assert.Len(t, eng.TopByVotes(100, data.TitleTypeMovie), 15)
	assert.Empty(t, eng.TopByVotes(-1, data.TitleTypeMovie))
	assert.Empty(t, eng.TopByVotes(3, data.TitleTypeVideo))
}

func TestTopRatedPerYear(t *testing.T) {
	eng := newEngine(t, fixture()...)

	got := eng.TopRatedPerYear(3, data.TitleTypeMovie, 2000, 2002)
	want := map[int][]string{
		2000: {"tt04", "tt03", "tt06"},
		2001: {"tt10", "tt09", "tt08"},
		2002: {"tt13", "tt14", "tt12"},
	}
	require.Len(t, got, 3)
	for year, expect := range want {
		assert.Equal(t, expect, ids(got[year]), year)
	}

	for year, bucket := range got {
		assert.LessOrEqual(t, len(bucket), 3)
		for i, m := range bucket {
			assert.Equal(t, year, m.Year)
			assert.GreaterOrEqual(t, m.Rating.Votes, 1000)
			if i > 0 {
				assert.GreaterOrEqual(t, bucket[i-1].Rating.Average, m.Rating.Average)
			}
		}
	}
}

func TestTopRatedPerYearIncludesEmptyYears(t *testing.T) {
	eng := newEngine(t, fixture()...)

	got := eng.TopRatedPerYear(2, data.TitleTypeMovie, 1998, 2000)
	assert.Equal(t, map[int][]string{
		1998: {},
		1999: {"tt01"},
		2000: {"tt04", "tt03"},
	}, map[int][]string{
		1998: ids(got[1998]),
		1999: ids(got[1999]),
		2000: ids(got[2000]),
	})
	assert.Len(t, got, 3)
	assert.NotNil(t, got[1998])
}

func TestTopRatedPerYearThreshold(t *testing.T) {
	eng := newEngine(t,
		movie("tt1", "Just Enough", 2000, rated(6.0, 1000)),
		movie("tt2", "Not Enough", 2000, rated(9.0, 999)),
		movie("tt3", "Unrated", 2000),
	)
	got := eng.TopRatedPerYear(5, data.TitleTypeMovie, 2000, 2000)
	assert.Equal(t, []string{"tt1"}, ids(got[2000]))
}

func TestTopRatedPerYearTieBreak(t *testing.T) {
	eng := newEngine(t,
		movie("tt3", "C", 2000, rated(8.0, 5000)),
		movie("tt2", "B", 2000, rated(8.0, 5000)),
		movie("tt1", "A", 2000, rated(8.0, 9000)),
	)
	got := eng.TopRatedPerYear(3, data.TitleTypeMovie, 2000, 2000)
	assert.Equal(t, []string{"tt1", "tt2", "tt3"}, ids(got[2000]))
}

func TestTopRatedPerYearDegenerateArguments(t *testing.T) {
	eng := newEngine(t, fixture()...)

	assert.Empty(t, eng.TopRatedPerYear(3, data.TitleTypeMovie, 2002, 2000))

	got := eng.TopRatedPerYear(0, data.TitleTypeMovie, 2000, 2001)
	assert.Len(t, got, 2)
	assert.Empty(t, got[2000])
	assert.Empty(t, got[2001])
}

func TestTopRatedPerYearAtEndOfIntRange(t *testing.T) {
	eng := newEngine(t, fixture()...)

	got := eng.TopRatedPerYear(3, data.TitleTypeMovie, math.MaxInt, math.MaxInt)
	assert.Len(t, got, 1)
	assert.Empty(t, got[math.MaxInt])

	got = eng.TopRatedPerYear(3, data.TitleTypeMovie, math.MaxInt-1, math.MaxInt)
	assert.Len(t, got, 2)

	got = eng.TopRatedPerYear(3, data.TitleTypeMovie, math.MinInt, math.MinInt)
	assert.Len(t, got, 1)
}

func TestCheckYearSpan(t *testing.T) {
	assert.NoError(t, query.CheckYearSpan(2000, 2000))
	assert.NoError(t, query.CheckYearSpan(2002, 2000))
	assert.NoError(t, query.CheckYearSpan(0, query.MaxYearSpan-1))
	assert.NoError(t, query.CheckYearSpan(math.MaxInt, math.MaxInt))

	assert.ErrorIs(t, query.CheckYearSpan(0, query.MaxYearSpan), query.ErrYearSpan)
	assert.ErrorIs(t, query.CheckYearSpan(0, 30_000_000), query.ErrYearSpan)
	assert.ErrorIs(t, query.CheckYearSpan(math.MinInt, math.MaxInt), query.ErrYearSpan)
	assert.ErrorIs(t, query.CheckYearSpan(-1, math.MaxInt), query.ErrYearSpan)
}
