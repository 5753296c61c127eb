package db

import (
	"context"
	"fmt"
	"time"

	"github.com/amonks/movies/data"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Load reads every movie, genre, and rating in the database and assembles
// them into a Dataset. Movies are in the order they were inserted.
func (db *DB) Load(ctx context.Context, logger *zap.Logger) (*data.Dataset, error) {
	start := time.Now()

	var (
		movies  []*data.Movie
		genres  []data.MovieGenre
		ratings []*data.Rating
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := db.WithContext(gctx).
			Table("movies").
			Order("rowid").
			Find(&movies).
			Error; err != nil {
			return fmt.Errorf("error loading movies: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := db.WithContext(gctx).
			Table("movie_genres").
			Order("rowid").
			Find(&genres).
			Error; err != nil {
			return fmt.Errorf("error loading movie genres: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := db.WithContext(gctx).
			Table("ratings").
			Find(&ratings).
			Error; err != nil {
			return fmt.Errorf("error loading ratings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("canceled: %w", err)
	}

	byID := make(map[string]*data.Movie, len(movies))
	for _, movie := range movies {
		byID[movie.ID] = movie
	}
	for _, genre := range genres {
		movie, ok := byID[genre.MovieID]
		if !ok {
			return nil, fmt.Errorf("genre '%s' refers to unknown movie '%s'", genre.Genre, genre.MovieID)
		}
		movie.Genres = append(movie.Genres, genre.Genre)
	}
	for _, rating := range ratings {
		movie, ok := byID[rating.MovieID]
		if !ok {
			return nil, fmt.Errorf("rating refers to unknown movie '%s'", rating.MovieID)
		}
		movie.Rating = rating
	}

	ds, err := data.NewDataset(movies)
	if err != nil {
		return nil, fmt.Errorf("error building dataset: %w", err)
	}

	logger.Info("loaded dataset",
		zap.Int("movies", len(movies)),
		zap.Int("genres", len(genres)),
		zap.Int("ratings", len(ratings)),
		zap.Duration("took", time.Since(start)))

	return ds, nil
}
