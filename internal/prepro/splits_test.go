package prepro

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paraprep/internal/util"
)

func TestSplitLookup(t *testing.T) {
	idx := NewSplitIndex()
	idx.Add("train", []int64{1, 2})
	idx.Add("val", []int64{3})
	idx.Add("test", []int64{4, 2})

	got, err := idx.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, "val", got)

	got, err = idx.Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, "train", got, "first matching split wins")

	_, err = idx.Lookup(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrSplitNotFound))

	assert.Equal(t, []int64{2}, idx.Ambiguous())
}

func TestLoadSplits(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "train.json"), []int64{10, 11})
	writeJSON(t, filepath.Join(dir, "test.json"), []int64{12})

	idx, err := LoadSplits([]SplitFile{
		{Name: "train", Path: filepath.Join(dir, "train.json")},
		{Name: "test", Path: filepath.Join(dir, "test.json")},
	})
	require.NoError(t, err)
	got, err := idx.Lookup(12)
	require.NoError(t, err)
	assert.Equal(t, "test", got)
	assert.Empty(t, idx.Ambiguous())

	_, err = LoadSplits([]SplitFile{{Name: "val", Path: filepath.Join(dir, "missing.json")}})
	require.ErrorContains(t, err, "load val split")
}
