package main

import (
	"flag"

	"github.com/odvcencio/pinpoint/pkg/errors"
	"github.com/odvcencio/pinpoint/pkg/generate"
)

func runCheckCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
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

	entries, err := loadEntries(cfg, log)
	if err != nil {
		return err
	}

	out := newTerminalWriter()
	stale := false

	src, err := generate.GoFile(entries, cfg.Output.GoPackage)
	if err != nil {
		return err
	}
	diff, err := generate.Diff(cfg.Output.GoFile, src)
	if err != nil {
		return err
	}
	if diff != "" {
		stale = true
		out.Print("%s", diff)
	}

	if cfg.Output.JSONFile != "" {
		data, err := generate.JSONFile(entries)
		if err != nil {
			return err
		}
		diff, err := generate.Diff(cfg.Output.JSONFile, data)
		if err != nil {
			return err
		}
		if diff != "" {
			stale = true
			out.Print("%s", diff)
		}
	}

	if stale {
		return withExitCode(errors.New(errors.ErrCodeCheckStale, "generated files are stale; run 'pinpoint gen'"), 1)
	}
	out.Success("generated files are up to date")
	return nil
}
