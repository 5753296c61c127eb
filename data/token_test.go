package data_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/amonks/movies/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTitleType(t *testing.T) {
	tt, err := data.ParseTitleType("TV_SERIES")
	require.NoError(t, err)
	assert.Equal(t, data.TitleTypeTvSeries, tt)
	assert.Equal(t, "TV_SERIES", tt.String())

	for _, tt := range data.TitleTypes() {
		parsed, err := data.ParseTitleType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, parsed)
	}
}

func TestParseTitleTypeInvalid(t *testing.T) {
	for _, token := range []string{"", "movie", "FILM", " MOVIE"} {
		_, err := data.ParseTitleType(token)
		assert.ErrorIs(t, err, data.ErrInvalidToken, token)

		var invalid *data.InvalidTokenError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "title type", invalid.Kind)
		assert.Equal(t, token, invalid.Token)
	}
}

func TestParseGenre(t *testing.T) {
	g, err := data.ParseGenre("Sci-Fi")
	require.NoError(t, err)
	assert.Equal(t, data.GenreSciFi, g)

	_, err = data.ParseGenre("crime")
	assert.ErrorIs(t, err, data.ErrInvalidToken)
	assert.EqualError(t, err, "invalid genre token 'crime'")

	assert.Len(t, data.Genres(), 28)
}

func TestZeroValuesAreInvalid(t *testing.T) {
	var tt data.TitleType
	assert.False(t, tt.Valid())
	assert.Equal(t, "title type(0)", tt.String())
	_, err := tt.Value()
	assert.ErrorIs(t, err, data.ErrInvalidToken)

	var g data.Genre
	assert.False(t, g.Valid())
	_, err = json.Marshal(g)
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	var tt data.TitleType
	require.NoError(t, tt.Scan([]byte("SHORT")))
	assert.Equal(t, data.TitleTypeShort, tt)

	var g data.Genre
	require.NoError(t, g.Scan("Film-Noir"))
	assert.Equal(t, data.GenreFilmNoir, g)

	assert.Error(t, g.Scan(int64(3)))
}

func TestMovieJSON(t *testing.T) {
	runtime := 142
	movie := data.Movie{
		ID:             "tt0111161",
		Title:          "The Shawshank Redemption",
		TitleType:      data.TitleTypeMovie,
		Year:           1994,
		RuntimeMinutes: &runtime,
		Genres:         []data.Genre{data.GenreDrama},
		Rating:         &data.Rating{MovieID: "tt0111161", Average: 9.3, Votes: 2_800_000},
	}
	bs, err := json.Marshal(movie)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "tt0111161",
		"title": "The Shawshank Redemption",
		"titleType": "MOVIE",
		"year": 1994,
		"runtimeMinutes": 142,
		"genres": ["Drama"],
		"rating": {"movieId": "tt0111161", "average": 9.3, "votes": 2800000}
	}`, string(bs))

	var decoded data.Movie
	require.NoError(t, json.Unmarshal(bs, &decoded))
	assert.Equal(t, movie, decoded)

	err = json.Unmarshal([]byte(`{"titleType": "FILM"}`), &decoded)
	assert.ErrorIs(t, err, data.ErrInvalidToken)
}
