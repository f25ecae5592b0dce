package docstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func TestWriteThenRead(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	in := []testDoc{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}}
	require.NoError(t, store.Write("projects", in))

	var out []testDoc
	require.NoError(t, store.Read("projects", &out))
	assert.Equal(t, in, out)
}

func TestReadMissingCollection(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var out []testDoc
	err = store.Read("nope", &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteReplacesExisting(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write("projects", []testDoc{{ID: 1, Title: "old"}}))
	require.NoError(t, store.Write("projects", []testDoc{{ID: 2, Title: "new"}}))

	var out []testDoc
	require.NoError(t, store.Read("projects", &out))
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write("projects", []testDoc{{ID: 1}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "projects.json", filepath.Base(entries[0].Name()))
}
