package main

import (
	"context"
	"fmt"

	"github.com/amonks/movies/query"
	"github.com/amonks/movies/subcmd"
)

func toprated(ctx context.Context, a *app, args []string) error {
	subcmd := subcmd.New("toprated",
		fmt.Sprintf("list the best-rated titles of each year, among titles with at least %d votes", query.MinVotesForTopRanked))
	titleType := titleTypeFlag(subcmd)
	var (
		count = subcmd.Int("count", 3, "number of titles per year")
		start = subcmd.Int("start", 0, "first year, inclusive (required)")
		end   = subcmd.Int("end", 0, "last year, inclusive (defaults to -start)")
	)
	out := addOutputFlags(subcmd)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	tt, err := titleType()
	if err != nil {
		return err
	}
	if !subcmd.IsSet("start") {
		return fmt.Errorf("must set -start")
	}
	if !subcmd.IsSet("end") {
		*end = *start
	}
	if err := query.CheckYearSpan(*start, *end); err != nil {
		return fmt.Errorf("bad -start/-end: %w", err)
	}

	eng, err := a.engine(ctx)
	if err != nil {
		return err
	}

	return out.byYear(a.out, eng.TopRatedPerYear(*count, tt, *start, *end))
}
