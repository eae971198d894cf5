package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/pinpoint/pkg/errors"
)

const sampleManifest = `
app: trader
components:
  - name: Home Screen
    elements: [header]
    children:
      - name: Stock Item
        collection: true
        elements: [title, price]
  - name: Market Screen
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "trader", m.App)
	require.Len(t, m.Components, 2)

	home := m.Components[0]
	assert.Equal(t, "Home Screen", home.Name)
	assert.Equal(t, []string{"header"}, home.Elements)
	require.Len(t, home.Children, 1)

	item := home.Children[0]
	assert.Equal(t, "Stock Item", item.Name)
	assert.True(t, item.Collection)
	assert.Equal(t, []string{"title", "price"}, item.Elements)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("components: [unterminated"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeManifestParse), "code = %v", errors.GetCode(err))
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no components",
			yaml: "app: trader",
		},
		{
			name: "empty component name",
			yaml: "components:\n  - name: \"\"",
		},
		{
			name: "name normalizes to nothing",
			yaml: "components:\n  - name: \"---\"",
		},
		{
			name: "sibling collision after normalization",
			yaml: "components:\n  - name: Home Screen\n  - name: home-screen",
		},
		{
			name: "nested sibling collision",
			yaml: "components:\n  - name: root\n    children:\n      - name: Row\n      - name: row",
		},
		{
			name: "empty element",
			yaml: "components:\n  - name: root\n    elements: [\"  \"]",
		},
		{
			name: "duplicate element",
			yaml: "components:\n  - name: root\n    elements: [Title, title]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeManifestInvalid), "code = %v", errors.GetCode(err))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pinpoint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "trader", m.App)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeManifestLoad), "code = %v", errors.GetCode(err))
}
