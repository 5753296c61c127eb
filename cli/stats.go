package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/amonks/movies/data"
	"github.com/amonks/movies/query"
	"github.com/amonks/movies/subcmd"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func stats(ctx context.Context, a *app, args []string) error {
	subcmd := subcmd.New("stats", "report how many titles and ratings the database holds")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	store, err := a.store()
	if err != nil {
		return err
	}
	movies, err := store.CountMovies(ctx)
	if err != nil {
		return err
	}
	ratings, err := store.CountRatings(ctx)
	if err != nil {
		return err
	}
	ranked, err := store.CountTopRanked(ctx, query.MinVotesForTopRanked)
	if err != nil {
		return err
	}
	byType, err := store.CountByTitleType(ctx)
	if err != nil {
		return err
	}

	typeCounts := make([]count, 0, len(byType))
	for _, tt := range data.TitleTypes() {
		if n := byType[tt]; n > 0 {
			typeCounts = append(typeCounts, count{tt.String(), n})
		}
	}
	printSection(a.out, "titles", movies, typeCounts)
	printSection(a.out, "ratings", ratings, []count{
		{humanPrinter.Sprintf("with at least %d votes", query.MinVotesForTopRanked), ranked},
	})

	return nil
}

type count struct {
	name string
	n    int
}

var humanPrinter = message.NewPrinter(language.English)

func printSection(w io.Writer, name string, total int, counts []count) {
	humanPrinter.Fprintf(w, "%s\n", strings.ToUpper(name))
	humanPrinter.Fprintf(w, "  %d\ttotal\n", total)
	for _, c := range counts {
		if total > 0 {
			humanPrinter.Fprintf(w, "  %d\t%s (%.2f%%)\n", c.n, c.name, 100.0*float64(c.n)/float64(total))
		} else {
			humanPrinter.Fprintf(w, "  %d\t%s\n", c.n, c.name)
		}
	}
	humanPrinter.Fprintf(w, "\n")
}
