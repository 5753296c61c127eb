package main

import (
	"context"
	"fmt"

	"github.com/amonks/movies/subcmd"
)

func find(ctx context.Context, a *app, args []string) error {
	subcmd := subcmd.New("find", "look up a single title by its id")
	subcmd.RequireArg("id", "string", "IMDb id, like tt0111161")
	out := addOutputFlags(subcmd)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	eng, err := a.engine(ctx)
	if err != nil {
		return err
	}

	id := subcmd.Arg(0)
	movie, ok := eng.FindByID(id)
	if !ok {
		fmt.Fprintf(a.out, "no title with id '%s'\n", id)
		return nil
	}
	return out.movie(a.out, movie)
}
