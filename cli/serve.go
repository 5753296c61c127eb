package main

import (
	"context"
	"fmt"

	"github.com/amonks/movies/server"
	"github.com/amonks/movies/subcmd"
)

func serve(ctx context.Context, a *app, args []string) error {
	subcmd := subcmd.New("serve", "serve queries over http as json")
	addr := subcmd.String("addr", a.cfg.Addr, "http listen address")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	eng, err := a.engine(ctx)
	if err != nil {
		return err
	}

	return server.Run(ctx, eng, *addr, a.logger)
}
