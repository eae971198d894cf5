package main

import (
	"encoding/json"
	"flag"
	"fmt"
)

func runListCommand(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	opts := addGenFlags(fs)
	asJSON := fs.Bool("json", false, "Print entries as JSON")
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

	if *asJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	out := newTerminalWriter()
	out.Header(fmt.Sprintf("%d locators from %s", len(entries), cfg.Manifest))
	for _, e := range entries {
		out.Println("%-50s %-9s %s", e.Identifier, e.Kind, e.Path)
	}
	return nil
}
