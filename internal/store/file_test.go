package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fileEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tags []string
}

func newTestFileStore(t *testing.T) (Store, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	return st, dir
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestFileStore(t)

	in := []fileEntry{
		{ID: "a", Name: "first", Tags: []string{"x", "y"}},
		{ID: "b", Name: "second"},
	}
	require.NoError(t, st.Save(ctx, KeyUsers, in))

	var out []fileEntry
	require.NoError(t, st.Load(ctx, KeyUsers, &out))
	assert.Equal(t, in, out)
}

func TestFileStore_MissingKeyIsEmpty(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestFileStore(t)

	var out []fileEntry
	require.NoError(t, st.Load(ctx, KeyPrograms, &out))
	assert.Empty(t, out)
}

func TestFileStore_CorruptEntryIsEmpty(t *testing.T) {
	ctx := context.Background()
	st, dir := newTestFileStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyUsers+".json"), []byte("{not json!"), 0o644))

	var out []fileEntry
	require.NoError(t, st.Load(ctx, KeyUsers, &out))
	assert.Empty(t, out)
}

func TestFileStore_TypeMismatchIsEmpty(t *testing.T) {
	ctx := context.Background()
	st, dir := newTestFileStore(t)

	// Well-formed JSON with a wrong field type must not leave a half-decoded
	// collection behind; the whole document counts as corrupt.
	raw := `[{"id":"a","name":123},{"id":"b","name":"second"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyUsers+".json"), []byte(raw), 0o644))

	var out []fileEntry
	require.NoError(t, st.Load(ctx, KeyUsers, &out))
	assert.Empty(t, out, "no partially decoded entries may survive")
}

func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	st, dir := newTestFileStore(t)

	require.NoError(t, st.Save(ctx, KeyUsers, []fileEntry{{ID: "a"}}))
	require.NoError(t, st.Delete(ctx, KeyUsers))

	_, err := os.Stat(filepath.Join(dir, KeyUsers+".json"))
	assert.True(t, os.IsNotExist(err))

	// Deleting an absent key is a no-op.
	require.NoError(t, st.Delete(ctx, KeyUsers))
}

func TestFileStore_SaveOverwritesAtomically(t *testing.T) {
	ctx := context.Background()
	st, dir := newTestFileStore(t)

	require.NoError(t, st.Save(ctx, KeyUsers, []fileEntry{{ID: "a"}}))
	require.NoError(t, st.Save(ctx, KeyUsers, []fileEntry{{ID: "b"}, {ID: "c"}}))

	var out []fileEntry
	require.NoError(t, st.Load(ctx, KeyUsers, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)

	// No temp file left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}
