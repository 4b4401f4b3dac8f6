package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRawThenReadRawKeepsBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	fdb := NewFileDatabase(path)
	ctx := context.Background()
	content := []byte("[\n  {\n    \"id\": 1,\n    \"price\": 19.99\n  }\n]")

	require.NoError(t, fdb.WriteRaw(ctx, content))

	got, err := fdb.ReadRaw(ctx)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestReadMissingFileReturnsNotExist(t *testing.T) {
	fdb := NewFileDatabase(filepath.Join(t.TempDir(), "missing.json"))

	_, err := fdb.ReadRaw(context.Background())
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteRawLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fdb := NewFileDatabase(filepath.Join(dir, "products.json"))

	require.NoError(t, fdb.WriteRaw(context.Background(), []byte("[]")))
	require.NoError(t, fdb.WriteRaw(context.Background(), []byte("[{}]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "products.json", entries[0].Name())
}
