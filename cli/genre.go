package main

import (
	"context"
	"fmt"

	"github.com/amonks/movies/data"
	"github.com/amonks/movies/subcmd"
)

func genre(ctx context.Context, a *app, args []string) error {
	subcmd := subcmd.New("genre", "list the titles released in a year with a genre, by title")
	titleType := titleTypeFlag(subcmd)
	var (
		year  = subcmd.Int("year", 0, "release year (required)")
		genre = subcmd.String("genre", "", "genre, like Crime or Sci-Fi (required)")
	)
	out := addOutputFlags(subcmd)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	tt, err := titleType()
	if err != nil {
		return err
	}
	if !subcmd.IsSet("year") {
		return fmt.Errorf("must set -year")
	}
	g, err := data.ParseGenre(*genre)
	if err != nil {
		return fmt.Errorf("bad -genre: %w", err)
	}

	eng, err := a.engine(ctx)
	if err != nil {
		return err
	}

	return out.movies(a.out, eng.FilterByYearAndGenre(tt, *year, g))
}
