package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/odvcencio/pinpoint/pkg/locator"
)

func runIDCommand(args []string) error {
	in, props, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	if props {
		p, err := locator.BuildProps(in)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	id, err := locator.Build(in)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

// parseIDArgs builds the locator input from flags. flag.Visit
// distinguishes set from unset so --index 0 and an empty --sub are
// both treated as present.
func parseIDArgs(args []string) (locator.Input, bool, error) {
	fs := flag.NewFlagSet("id", flag.ContinueOnError)
	base := fs.String("base", "", "Base segment (required)")
	parent := fs.String("parent", "", "Parent identifier")
	index := fs.Int("index", 0, "Collection index (0 is a valid first index)")
	sub := fs.String("sub", "", "Sub-element segment")
	props := fs.Bool("props", false, "Print testID/accessibilityLabel props as JSON")
	if err := fs.Parse(args); err != nil {
		return locator.Input{}, false, err
	}

	in := locator.Input{Parent: *parent, Base: *base}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "index":
			in.Index = index
		case "sub":
			in.Sub = *sub
		}
	})
	return in, *props, nil
}
