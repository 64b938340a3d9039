package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTree writes a small lint source tree and returns its path.
func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "ptr.rs"), `
declare_clippy_lint! {
    pub PTR_ARG,
    style,
    "ptr arg lint"
}
declare_clippy_lint! {
    pub INTERNAL_ONLY,
    internal_style,
    "hidden"
}
`)
	writeFixture(t, filepath.Join(root, "misc.rs"), `
declare_deprecated_lint! {
    pub SHOULD_ASSERT_EQ,
    "use assert instead"
}
`)
	return root
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// runListInto drives the list command against root and returns stdout.
func runListInto(t *testing.T, root string, all bool, format string) string {
	t.Helper()

	prevRoot, prevAll, prevFormat, prevQuiet := rootFlag, allFlag, formatFlag, quietFlag
	t.Cleanup(func() {
		rootFlag, allFlag, formatFlag, quietFlag = prevRoot, prevAll, prevFormat, prevQuiet
	})
	rootFlag, allFlag, formatFlag, quietFlag = root, all, format, true

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runList(cmd, nil))
	return buf.String()
}

func TestListFiltersDeprecatedAndInternal(t *testing.T) {
	root := fixtureTree(t)

	out := runListInto(t, root, false, "json")

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "ptr_arg", records[0]["name"])
}

func TestListAllIncludesEverything(t *testing.T) {
	root := fixtureTree(t)

	out := runListInto(t, root, true, "json")

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)
}

func TestListUnknownFormat(t *testing.T) {
	root := fixtureTree(t)

	prevRoot, prevFormat, prevQuiet := rootFlag, formatFlag, quietFlag
	t.Cleanup(func() {
		rootFlag, formatFlag, quietFlag = prevRoot, prevFormat, prevQuiet
	})
	rootFlag, formatFlag, quietFlag = root, "yaml", true

	err := runList(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestListMissingRoot(t *testing.T) {
	prevRoot, prevQuiet := rootFlag, quietFlag
	t.Cleanup(func() {
		rootFlag, quietFlag = prevRoot, prevQuiet
	})
	rootFlag, quietFlag = filepath.Join(t.TempDir(), "missing"), true

	err := runList(&cobra.Command{}, nil)
	require.Error(t, err)
}
