// Package query answers read-only questions about a loaded movie dataset.
//
// An Engine never modifies the movies it is given, so it can be shared
// between goroutines without locking.
package query

import (
	"errors"
	"fmt"

	"github.com/amonks/movies/data"
)

// MinVotesForTopRanked is the number of votes a movie needs before it can
// appear in TopRatedPerYear.
const MinVotesForTopRanked = 1000

// MaxYearSpan is the most years CheckYearSpan allows in one
// TopRatedPerYear range.
const MaxYearSpan = 1000

var (
	ErrIndexMismatch = errors.New("index does not match movies")
	ErrYearSpan      = fmt.Errorf("year range spans more than %d years", MaxYearSpan)
)

// Config holds the dataset an Engine queries. Both fields are built once by
// a loader (see db.Load) and must not change afterwards.
type Config struct {
	Movies []*data.Movie

	// Index maps each movie's ID to the movie. If nil, New builds it.
	Index map[string]*data.Movie
}

type Engine struct {
	movies []*data.Movie
	index  map[string]*data.Movie
}

// New returns an Engine over the given dataset. If an index is supplied, it
// must contain exactly the given movies, keyed by their IDs.
func New(cfg Config) (*Engine, error) {
	if cfg.Index == nil {
		ds, err := data.NewDataset(cfg.Movies)
		if err != nil {
			return nil, err
		}
		return &Engine{movies: ds.Movies, index: ds.Index}, nil
	}

	if len(cfg.Index) != len(cfg.Movies) {
		return nil, fmt.Errorf("%d indexed movies for %d movies: %w",
			len(cfg.Index), len(cfg.Movies), ErrIndexMismatch)
	}
	for _, movie := range cfg.Movies {
		if cfg.Index[movie.ID] != movie {
			return nil, fmt.Errorf("movie '%s' is not indexed: %w", movie.ID, ErrIndexMismatch)
		}
	}
	return &Engine{movies: cfg.Movies, index: cfg.Index}, nil
}

// Len is the number of movies in the dataset.
func (eng *Engine) Len() int { return len(eng.movies) }

// FindByID looks a movie up by its ID. The bool is false if there is no such
// movie.
func (eng *Engine) FindByID(id string) (*data.Movie, bool) {
	movie, ok := eng.index[id]
	return movie, ok
}

// filter returns the movies of the given type for which keep returns true,
// in dataset order.
func (eng *Engine) filter(titleType data.TitleType, keep func(*data.Movie) bool) []*data.Movie {
	out := []*data.Movie{}
	for _, movie := range eng.movies {
		if movie.TitleType != titleType {
			continue
		}
		if keep != nil && !keep(movie) {
			continue
		}
		out = append(out, movie)
	}
	return out
}
