package db

import (
	"context"
	"fmt"

	"github.com/amonks/movies/data"
)

func (db *DB) CountMovies(ctx context.Context) (int, error) {
	var count int64
	if err := db.WithContext(ctx).
		Table("movies").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting movies: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountRatings(ctx context.Context) (int, error) {
	var count int64
	if err := db.WithContext(ctx).
		Table("ratings").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting ratings: %w", err)
	}
	return int(count), nil
}

// CountTopRanked counts the ratings with enough votes to be ranked.
func (db *DB) CountTopRanked(ctx context.Context, minVotes int) (int, error) {
	var count int64
	if err := db.WithContext(ctx).
		Table("ratings").
		Where("votes >= ?", minVotes).
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting ratings with at least %d votes: %w", minVotes, err)
	}
	return int(count), nil
}

// CountByTitleType counts the movies of each title type. Title types with no
// movies are left out.
func (db *DB) CountByTitleType(ctx context.Context) (map[data.TitleType]int, error) {
	var rows []struct {
		TitleType data.TitleType
		Count     int64
	}
	if err := db.WithContext(ctx).
		Table("movies").
		Select("title_type, count(*) as count").
		Group("title_type").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error counting movies by title type: %w", err)
	}

	counts := make(map[data.TitleType]int, len(rows))
	for _, row := range rows {
		counts[row.TitleType] = int(row.Count)
	}
	return counts, nil
}
