package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		mime string
		want bool
	}{
		{"application/pdf", true},
		{"image/jpeg", true},
		{"image/png", true},
		{"text/plain", false},
		{"application/octet-stream", false},
		{"image/gif", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Allowed(c.mime), c.mime)
	}
}

func TestLocalFileStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalFileStore(dir)

	data := []byte("%PDF-1.4 fake content")
	name, err := store.Save(context.Background(), data, "application/pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".pdf"), "got %q", name)

	written, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, data, written)
}

func TestLocalFileStore_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewLocalFileStore(dir)

	name, err := store.Save(context.Background(), []byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestLocalFileStore_RejectsUnsupportedType(t *testing.T) {
	store := NewLocalFileStore(t.TempDir())

	_, err := store.Save(context.Background(), []byte("hello"), "text/plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported mime type")
}

func TestLocalFileStore_UniqueNames(t *testing.T) {
	store := NewLocalFileStore(t.TempDir())

	a, err := store.Save(context.Background(), []byte("a"), "image/jpeg")
	require.NoError(t, err)
	b, err := store.Save(context.Background(), []byte("b"), "image/jpeg")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
