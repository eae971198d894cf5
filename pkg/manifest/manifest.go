// Package manifest loads and validates the YAML description of an
// app's locatable component tree. The manifest is the input to
// registry enumeration and code generation; it never describes
// rendering, only naming structure.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/pinpoint/pkg/errors"
	"github.com/odvcencio/pinpoint/pkg/locator"
)

// Manifest is the root of a component-tree description.
type Manifest struct {
	// App names the application; it becomes the outermost parent
	// segment when set.
	App        string      `yaml:"app"`
	Components []Component `yaml:"components"`
}

// Component describes one locatable component type.
type Component struct {
	// Name is the component's base segment. Required.
	Name string `yaml:"name"`
	// Collection marks components rendered as homogeneous sibling
	// lists; their instances take a numeric index.
	Collection bool `yaml:"collection"`
	// Elements are locatable sub-elements within the component,
	// disambiguated with a sub segment.
	Elements []string    `yaml:"elements"`
	Children []Component `yaml:"children"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestLoad, "reading manifest").
			WithContext("path", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Parse parses and validates manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestParse, "parsing manifest YAML")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks structural rules: every component has a name that
// survives normalization, sibling names do not collide after
// normalization, and elements are non-empty and unique per component.
func (m *Manifest) Validate() error {
	if len(m.Components) == 0 {
		return errors.New(errors.ErrCodeManifestInvalid, "manifest has no components")
	}
	return validateSiblings(m.Components, "")
}

func validateSiblings(components []Component, parentPath string) error {
	seen := make(map[string]string, len(components))
	for _, c := range components {
		path := joinPath(parentPath, c.Name)

		normalized := locator.Kebab(c.Name)
		if normalized == "" {
			return errors.New(errors.ErrCodeManifestInvalid, "component name is empty after normalization").
				WithContext("path", path)
		}
		if prev, ok := seen[normalized]; ok {
			return errors.New(errors.ErrCodeManifestInvalid, "sibling components normalize to the same name").
				WithContext("name", normalized).
				WithContext("first", joinPath(parentPath, prev)).
				WithContext("second", path)
		}
		seen[normalized] = c.Name

		if err := validateElements(c, path); err != nil {
			return err
		}
		if err := validateSiblings(c.Children, path); err != nil {
			return err
		}
	}
	return nil
}

func validateElements(c Component, path string) error {
	seen := make(map[string]bool, len(c.Elements))
	for _, el := range c.Elements {
		normalized := locator.Kebab(el)
		if normalized == "" {
			return errors.New(errors.ErrCodeManifestInvalid, "element name is empty after normalization").
				WithContext("path", path).
				WithContext("element", el)
		}
		if seen[normalized] {
			return errors.New(errors.ErrCodeManifestInvalid, "duplicate element in component").
				WithContext("path", path).
				WithContext("element", normalized)
		}
		seen[normalized] = true
	}
	return nil
}

func joinPath(parent, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "(unnamed)"
	}
	if parent == "" {
		return name
	}
	return fmt.Sprintf("%s/%s", parent, name)
}
