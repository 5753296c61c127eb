package main

import (
	"context"
	"fmt"

	"github.com/amonks/movies/subcmd"
)

func votes(ctx context.Context, a *app, args []string) error {
	subcmd := subcmd.New("votes", "list the titles with the most votes")
	titleType := titleTypeFlag(subcmd)
	count := subcmd.Int("count", 10, "number of titles to list")
	out := addOutputFlags(subcmd)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	tt, err := titleType()
	if err != nil {
		return err
	}

	eng, err := a.engine(ctx)
	if err != nil {
		return err
	}

	return out.movies(a.out, eng.TopByVotes(*count, tt))
}
