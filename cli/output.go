package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/amonks/movies/data"
	"github.com/amonks/movies/setflag"
	"github.com/amonks/movies/subcmd"
)

var columns = []string{"id", "title", "type", "year", "genres", "runtime", "rating", "votes"}

type output struct {
	columns *setflag.SetFlag
	json    *bool
}

// addOutputFlags registers -columns and -json on a subcommand.
func addOutputFlags(sc *subcmd.Subcommand) *output {
	o := &output{
		columns: setflag.New(columns...).Default("id", "title", "year", "genres", "runtime", "rating", "votes"),
	}
	sc.Var(o.columns, "columns", "comma-separated columns to print, from "+strings.Join(columns, ","))
	o.json = sc.Bool("json", false, "print json instead of a table")
	return o
}

func (o *output) movies(w io.Writer, movies []*data.Movie) error {
	if *o.json {
		return writeJSON(w, movies)
	}
	return o.table(w, "", movies)
}

func (o *output) movie(w io.Writer, movie *data.Movie) error {
	if *o.json {
		return writeJSON(w, movie)
	}
	return o.table(w, "", []*data.Movie{movie})
}

// byYear prints one section per year, oldest first.
func (o *output) byYear(w io.Writer, byYear map[int][]*data.Movie) error {
	if *o.json {
		return writeJSON(w, byYear)
	}
	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	slices.Sort(years)
	for _, year := range years {
		fmt.Fprintf(w, "%d\n", year)
		if len(byYear[year]) == 0 {
			fmt.Fprintf(w, "  no titles\n")
			continue
		}
		if err := o.table(w, "  ", byYear[year]); err != nil {
			return err
		}
	}
	return nil
}

func (o *output) table(w io.Writer, indent string, movies []*data.Movie) error {
	cols := o.columns.List()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = strings.ToUpper(col)
	}
	fmt.Fprint(tw, indent+strings.Join(header, "\t")+"\n")

	row := make([]string, len(cols))
	for _, movie := range movies {
		for i, col := range cols {
			row[i] = cell(movie, col)
		}
		fmt.Fprint(tw, indent+strings.Join(row, "\t")+"\n")
	}
	return tw.Flush()
}

func cell(movie *data.Movie, col string) string {
	switch col {
	case "id":
		return movie.ID
	case "title":
		return movie.Title
	case "type":
		return movie.TitleType.String()
	case "year":
		return strconv.Itoa(movie.Year)
	case "genres":
		genres := make([]string, len(movie.Genres))
		for i, genre := range movie.Genres {
			genres[i] = genre.String()
		}
		return strings.Join(genres, ",")
	case "runtime":
		if runtime, ok := movie.Runtime(); ok {
			return strconv.Itoa(runtime)
		}
		return "-"
	case "rating":
		if movie.Rating == nil {
			return "-"
		}
		return strconv.FormatFloat(movie.Rating.Average, 'f', 1, 64)
	case "votes":
		if movie.Rating == nil {
			return "-"
		}
		return strconv.Itoa(movie.Rating.Votes)
	}
	return ""
}

func writeJSON(w io.Writer, v any) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bs))
	return err
}

// titleTypeFlag registers -type on a subcommand.
func titleTypeFlag(sc *subcmd.Subcommand) func() (data.TitleType, error) {
	tokens := make([]string, 0, len(data.TitleTypes()))
	for _, tt := range data.TitleTypes() {
		tokens = append(tokens, tt.String())
	}
	token := sc.String("type", data.TitleTypeMovie.String(), "title type, one of "+strings.Join(tokens, ", "))
	return func() (data.TitleType, error) {
		tt, err := data.ParseTitleType(*token)
		if err != nil {
			return 0, fmt.Errorf("bad -type: %w", err)
		}
		return tt, nil
	}
}
