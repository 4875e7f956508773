package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

func TestWriteJSONAtomicIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, WriteJSONAtomic(path, sample{Name: "café & co", Tags: []string{"a"}}, "    "))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "\n    \"name\": \"café & co\"")

	var got sample
	require.NoError(t, ReadJSON(path, &got))
	require.Equal(t, "café & co", got.Name)
	require.Equal(t, []string{"a"}, got.Tags)
}

func TestWriteJSONAtomicCompact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteJSONAtomic(path, sample{Name: "x", Tags: []string{}}, ""))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"name":"x","tags":[]}`, strings.TrimSpace(string(b)))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestReadJSONErrors(t *testing.T) {
	dir := t.TempDir()
	var v sample
	require.Error(t, ReadJSON(filepath.Join(dir, "missing.json"), &v))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	require.Error(t, ReadJSON(bad, &v))
}
