package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/amonks/movies/subcmd"
)

func search(ctx context.Context, a *app, args []string) error {
	subcmd := subcmd.New("search", "list the titles whose names contain some words, in load order")
	subcmd.SetArg("words", "string", "case-sensitive substring to look for; empty matches every title")
	titleType := titleTypeFlag(subcmd)
	out := addOutputFlags(subcmd)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	tt, err := titleType()
	if err != nil {
		return err
	}
	words := strings.Join(subcmd.Args(), " ")

	eng, err := a.engine(ctx)
	if err != nil {
		return err
	}

	return out.movies(a.out, eng.SearchTitlesContaining(tt, words))
}
