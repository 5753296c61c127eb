package db

import (
	"context"
	"fmt"

	"github.com/amonks/movies/data"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertMovie, given a Movie, inserts it into the movies table along with its
// genres and rating, doing nothing for rows that already exist.
func (db *DB) InsertMovie(ctx context.Context, movie *data.Movie) error {
	if movie.ID == "" {
		return fmt.Errorf("no movie id")
	}
	if !movie.TitleType.Valid() {
		return fmt.Errorf("movie '%s' has no title type", movie.ID)
	}
	if movie.Rating != nil && movie.Rating.MovieID != movie.ID {
		return fmt.Errorf("error inserting movie '%s' with rating for '%s': %w",
			movie.ID, movie.Rating.MovieID, data.ErrRatingMismatch)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(movie).
			Error; err != nil {
			return fmt.Errorf("error inserting movie '%s': %w", movie.ID, err)
		}

		for _, genre := range movie.Genres {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("canceled: %w", err)
			}

			if err := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&data.MovieGenre{MovieID: movie.ID, Genre: genre}).
				Error; err != nil {
				return fmt.Errorf("error inserting movie_genre for movie '%s' and genre '%s': %w", movie.ID, genre, err)
			}
		}

		if movie.Rating == nil {
			return nil
		}
		if err := tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(movie.Rating).
			Error; err != nil {
			return fmt.Errorf("error inserting rating for movie '%s': %w", movie.ID, err)
		}

		return nil
	})
}
