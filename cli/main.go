// movies answers questions about a database of IMDb titles: substring
// search, lookup by id, filtering by year and genre or by runtime, and
// rankings by votes or by rating.
//
// The database is a sqlite3 file; see db/schema.sql for its layout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/movies/config"
	"github.com/amonks/movies/db"
	"github.com/amonks/movies/query"
	"github.com/amonks/movies/sigctx"
	"go.uber.org/zap"
)

func main() {
	err := run(sigctx.New(), os.Args[1:], os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: movies [-config file] $cmd
valid $cmd are 'search', 'find', 'genre', 'runtime', 'votes', 'toprated', 'stats', 'serve'
for help: movies $cmd -help
`)

// app is what every subcommand gets to work with.
type app struct {
	cfg    *config.Config
	db     *db.DB
	logger *zap.Logger
	out    io.Writer
}

// store opens the configured database on first use. Subcommands call it only
// after their flags parse, and it refuses to create a missing file.
func (a *app) store() (*db.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := db.OpenExisting(a.cfg.DB)
	if err != nil {
		return nil, err
	}
	a.db = db
	return db, nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// engine loads the whole database into memory for querying.
func (a *app) engine(ctx context.Context) (*query.Engine, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	ds, err := store.Load(ctx, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error loading '%s': %w", a.cfg.DB, err)
	}
	return query.New(query.Config{Movies: ds.Movies, Index: ds.Index})
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("movies", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a yaml, json, or toml config file; MOVIES_* env vars override it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New(usage)
	}
	cmd, args := fs.Arg(0), fs.Args()[1:]

	cfg, err := config.Load("MOVIES_", *configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	a := &app{cfg: cfg, logger: logger, out: out}
	defer a.close()

	switch cmd {
	case "search":
		return search(ctx, a, args)

	case "find":
		return find(ctx, a, args)

	case "genre":
		return genre(ctx, a, args)

	case "runtime":
		return runtime(ctx, a, args)

	case "votes":
		return votes(ctx, a, args)

	case "toprated":
		return toprated(ctx, a, args)

	case "stats":
		return stats(ctx, a, args)

	case "serve":
		return serve(ctx, a, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
