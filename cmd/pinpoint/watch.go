package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/odvcencio/pinpoint/pkg/watch"
)

func runWatchCommand(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	opts := addGenFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	log := openLogger(cfg)
	defer log.Close()

	out := newTerminalWriter()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	regenerate := func() error {
		return generateAll(cfg, log, out)
	}

	// First pass before watching; a broken manifest is reported but
	// keeps the watcher alive so a fix regenerates.
	if err := regenerate(); err != nil {
		out.Error("%v", err)
	}

	out.Info("watching %s (ctrl-c to stop)", cfg.Manifest)
	return watch.Run(ctx, cfg.Manifest, cfg.Watch.Debounce.Std(), log, func() error {
		if err := regenerate(); err != nil {
			out.Error("%v", err)
			return err
		}
		return nil
	})
}
