package data

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID    = errors.New("duplicate movie id")
	ErrRatingMismatch = errors.New("rating refers to a different movie")
)

// A Dataset is the full, immutable set of movies along with an index from ID
// to movie. Nothing may modify a Dataset once it has been built.
type Dataset struct {
	// in load order
	Movies []*Movie
	Index  map[string]*Movie
}

// NewDataset indexes the given movies by ID, checking that IDs are unique and
// that each rating belongs to the movie that carries it.
func NewDataset(movies []*Movie) (*Dataset, error) {
	index := make(map[string]*Movie, len(movies))
	for _, movie := range movies {
		if _, dup := index[movie.ID]; dup {
			return nil, fmt.Errorf("error indexing movie '%s': %w", movie.ID, ErrDuplicateID)
		}
		if movie.Rating != nil && movie.Rating.MovieID != movie.ID {
			return nil, fmt.Errorf("error indexing movie '%s' with rating for '%s': %w",
				movie.ID, movie.Rating.MovieID, ErrRatingMismatch)
		}
		index[movie.ID] = movie
	}
	return &Dataset{Movies: movies, Index: index}, nil
}
