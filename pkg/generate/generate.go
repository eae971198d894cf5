// Package generate turns registry entries into build artifacts: a Go
// source file of identifier constants and a JSON listing for non-Go
// test stacks.
package generate

import (
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/odvcencio/pinpoint/pkg/errors"
	"github.com/odvcencio/pinpoint/pkg/registry"
)

// DefaultPackage is the package name used when none is configured.
const DefaultPackage = "locators"

const generatedHeader = "// Code generated by pinpoint. DO NOT EDIT."

// GoFile renders entries as a gofmt-formatted constants file.
func GoFile(entries []registry.Entry, pkg string) ([]byte, error) {
	if strings.TrimSpace(pkg) == "" {
		pkg = DefaultPackage
	}

	names := make(map[string]string, len(entries))

	var b strings.Builder
	b.WriteString(generatedHeader + "\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("// Locator identifiers derived from the component manifest.\n")
	b.WriteString("const (\n")
	for _, e := range entries {
		name := ConstName(e.Identifier)
		if prev, ok := names[name]; ok {
			return nil, errors.New(errors.ErrCodeGenerateFailed, "two identifiers map to the same constant name").
				WithContext("name", name).
				WithContext("first", prev).
				WithContext("second", e.Identifier)
		}
		names[name] = e.Identifier

		fmt.Fprintf(&b, "\t// %s (%s)\n", e.Path, e.Kind)
		fmt.Fprintf(&b, "\t%s = %q\n", name, e.Identifier)
	}
	b.WriteString(")\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeGenerateFailed, "formatting generated source")
	}
	return src, nil
}

// JSONFile renders entries as an indented JSON listing.
func JSONFile(entries []registry.Entry) ([]byte, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeGenerateFailed, "marshaling entries")
	}
	return append(data, '\n'), nil
}

// ConstName converts an identifier to its exported constant name:
// "trader-home-screen" becomes "LocatorTraderHomeScreen". The fixed
// prefix keeps names valid when an identifier starts with a digit.
func ConstName(identifier string) string {
	var b strings.Builder
	b.WriteString("Locator")
	upper := true
	for _, r := range identifier {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Diff compares want against the file at path and returns a unified
// diff, or "" when the file is up to date. A missing file diffs
// against empty content.
func Diff(path string, want []byte) (string, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", errors.Wrap(err, errors.ErrCodeGenerateFailed, "reading existing output").
			WithContext("path", path)
	}
	if string(existing) == string(want) {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(want)),
		FromFile: path,
		ToFile:   path + " (regenerated)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGenerateFailed, "computing diff")
	}
	return text, nil
}

// WriteFile writes data to path atomically where the platform allows.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, errors.ErrCodeGenerateFailed, "creating output directory").
			WithContext("path", path)
	}

	tmpPath := path + ".pinpoint.tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrCodeGenerateFailed, "writing output").
			WithContext("path", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		// Windows cannot replace an existing file with os.Rename. Fall
		// back to a non-atomic write and clean up the temporary file.
		writeErr := os.WriteFile(path, data, 0o644)
		_ = os.Remove(tmpPath)
		if writeErr != nil {
			return errors.Wrap(writeErr, errors.ErrCodeGenerateFailed, "writing output").
				WithContext("path", path)
		}
	}
	return nil
}
