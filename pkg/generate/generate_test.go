package generate

import (
	"encoding/json"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/pinpoint/pkg/manifest"
	"github.com/odvcencio/pinpoint/pkg/registry"
)

func sampleEntries(t *testing.T) []registry.Entry {
	t.Helper()
	entries, err := registry.Enumerate(&manifest.Manifest{
		App: "trader",
		Components: []manifest.Component{
			{
				Name:     "Home Screen",
				Elements: []string{"header"},
			},
			{Name: "Market Screen"},
		},
	})
	require.NoError(t, err)
	return entries
}

func TestGoFile(t *testing.T) {
	src, err := GoFile(sampleEntries(t), "locators")
	require.NoError(t, err)

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by pinpoint. DO NOT EDIT."))
	assert.Contains(t, text, "package locators")
	// gofmt may column-align the const block, so match names and
	// values separately.
	assert.Contains(t, text, "LocatorTraderHomeScreen")
	assert.Contains(t, text, `"trader-home-screen"`)
	assert.Contains(t, text, "LocatorTraderHomeScreenHeader")
	assert.Contains(t, text, `"trader-home-screen-header"`)
	assert.Contains(t, text, "LocatorTraderMarketScreen")
	assert.Contains(t, text, `"trader-market-screen"`)

	// Output must already be gofmt-clean.
	formatted, err := format.Source(src)
	require.NoError(t, err)
	assert.Equal(t, src, formatted)
}

func TestGoFileDefaultPackage(t *testing.T) {
	src, err := GoFile(sampleEntries(t), "  ")
	require.NoError(t, err)
	assert.Contains(t, string(src), "package locators")
}

func TestJSONFile(t *testing.T) {
	data, err := JSONFile(sampleEntries(t))
	require.NoError(t, err)

	var decoded []registry.Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "trader-home-screen", decoded[0].Identifier)
	assert.Equal(t, "trader-home-screen", decoded[0].Props.TestID)
	assert.Equal(t, decoded[0].Props.TestID, decoded[0].Props.AccessibilityLabel)
}

func TestConstName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"trader-home-screen", "LocatorTraderHomeScreen"},
		{"base", "LocatorBase"},
		{"stock-item-0", "LocatorStockItem0"},
		{"2fa-code", "Locator2faCode"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ConstName(tc.input); got != tc.expected {
				t.Errorf("ConstName(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locators.go")
	content := []byte("package locators\n")

	// Missing file diffs against empty content.
	diff, err := Diff(path, content)
	require.NoError(t, err)
	assert.Contains(t, diff, "+package locators")

	require.NoError(t, os.WriteFile(path, content, 0o644))

	diff, err = Diff(path, content)
	require.NoError(t, err)
	assert.Empty(t, diff)

	diff, err = Diff(path, []byte("package renamed\n"))
	require.NoError(t, err)
	assert.Contains(t, diff, "-package locators")
	assert.Contains(t, diff, "+package renamed")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "locators.go")

	require.NoError(t, WriteFile(path, []byte("one\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(data))

	// Overwrite works and leaves no temp file behind.
	require.NoError(t, WriteFile(path, []byte("two\n")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(data))

	matches, err := filepath.Glob(filepath.Join(dir, "nested", "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
