package main

import (
	"context"
	"fmt"
	"math"

	"github.com/amonks/movies/subcmd"
)

func runtime(ctx context.Context, a *app, args []string) error {
	subcmd := subcmd.New("runtime", "list the titles whose runtime is in a range, longest first")
	titleType := titleTypeFlag(subcmd)
	var (
		minMinutes = subcmd.Int("min", 0, "minimum runtime in minutes, inclusive")
		maxMinutes = subcmd.Int("max", math.MaxInt32, "maximum runtime in minutes, inclusive")
	)
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

	return out.movies(a.out, eng.FilterByRuntimeRange(tt, *minMinutes, *maxMinutes))
}
