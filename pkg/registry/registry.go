// Package registry enumerates every locator identifier a manifest's
// component tree can produce, with duplicate detection across the
// whole tree.
package registry

import (
	"sort"

	"github.com/odvcencio/pinpoint/pkg/errors"
	"github.com/odvcencio/pinpoint/pkg/locator"
	"github.com/odvcencio/pinpoint/pkg/manifest"
)

// Kind classifies a registry entry.
type Kind string

const (
	// KindComponent is a component's own identifier.
	KindComponent Kind = "component"
	// KindInstance is the index-0 sample of a collection component.
	// Runtime instances substitute their actual sibling index.
	KindInstance Kind = "instance"
	// KindElement is a sub-element within a component.
	KindElement Kind = "element"
)

// Entry is one derivable locator.
type Entry struct {
	Identifier string        `json:"identifier"`
	Path       string        `json:"path"`
	Kind       Kind          `json:"kind"`
	Props      locator.Props `json:"props"`
}

// Enumerate walks m and returns every derivable locator entry,
// sorted by identifier. Parent chains thread downward: a child's
// parent segment is its parent component's full identifier, so the
// output is deterministic for a given manifest. Two distinct tree
// positions producing the same identifier is a conflict.
func Enumerate(m *manifest.Manifest) ([]Entry, error) {
	w := &walker{seen: make(map[string]string)}

	root := locator.Kebab(m.App)
	if err := w.walk(m.Components, root, ""); err != nil {
		return nil, err
	}

	sort.Slice(w.entries, func(i, j int) bool {
		return w.entries[i].Identifier < w.entries[j].Identifier
	})
	return w.entries, nil
}

type walker struct {
	entries []Entry
	seen    map[string]string
}

func (w *walker) walk(components []manifest.Component, parent, parentPath string) error {
	for _, c := range components {
		path := c.Name
		if parentPath != "" {
			path = parentPath + "/" + c.Name
		}

		id, err := locator.Build(locator.Input{Parent: parent, Base: c.Name})
		if err != nil {
			return err
		}
		if err := w.add(id, path, KindComponent); err != nil {
			return err
		}

		if c.Collection {
			sample, err := locator.Build(locator.Input{Parent: parent, Base: c.Name, Index: locator.Idx(0)})
			if err != nil {
				return err
			}
			if err := w.add(sample, path, KindInstance); err != nil {
				return err
			}
		}

		for _, el := range c.Elements {
			elID, err := locator.Build(locator.Input{Parent: parent, Base: c.Name, Sub: el})
			if err != nil {
				return err
			}
			if err := w.add(elID, path+"#"+el, KindElement); err != nil {
				return err
			}
		}

		// Children chain through the unindexed component identifier;
		// runtime index insertion happens inside one instance, so it
		// cannot collide statically.
		if err := w.walk(c.Children, id, path); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) add(id, path string, kind Kind) error {
	if prev, ok := w.seen[id]; ok {
		return errors.New(errors.ErrCodeRegistryConflict, "two tree positions produce the same identifier").
			WithContext("identifier", id).
			WithContext("first", prev).
			WithContext("second", path)
	}
	w.seen[id] = path
	w.entries = append(w.entries, Entry{
		Identifier: id,
		Path:       path,
		Kind:       kind,
		Props:      locator.Props{TestID: id, AccessibilityLabel: id},
	})
	return nil
}
