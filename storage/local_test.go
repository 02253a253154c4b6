package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSaveAndDelete(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	key := "uploads/recipe/abc.png"

	err = l.Save(context.Background(), key, bytes.NewReader([]byte("img")), 3, "image/png")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(l.Root, "uploads", "recipe", "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))

	assert.Equal(t, "/media/uploads/recipe/abc.png", l.URL(key))

	require.NoError(t, l.Delete(context.Background(), key))

	_, err = os.Stat(filepath.Join(l.Root, "uploads", "recipe", "abc.png"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is fine
	assert.NoError(t, l.Delete(context.Background(), key))
}

func TestLocalRejectsEscapingKeys(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	err = l.Save(context.Background(), "../outside.png", bytes.NewReader(nil), 0, "")
	assert.Error(t, err)

	err = l.Save(context.Background(), "/etc/passwd", bytes.NewReader(nil), 0, "")
	assert.Error(t, err)
}
