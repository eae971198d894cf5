package main

import (
	"flag"
)

func runGenCommand(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
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

	return generateAll(cfg, log, newTerminalWriter())
}
