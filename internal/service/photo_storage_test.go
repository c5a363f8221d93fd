package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPhotoStorage_Save(t *testing.T) {
	storage := NewPhotoStorage(t.TempDir(), zap.NewNop())

	path, err := storage.Save(pngUpload("face.png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "images/"))

	data, err := os.ReadFile(filepath.Join(storage.Dir(), strings.TrimPrefix(path, "images/")))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data, "sniffed bytes are written back")

	require.NoError(t, storage.Remove(path))
	require.NoError(t, storage.Remove(path), "removing twice is fine")
	require.NoError(t, storage.Remove(""))
}

func TestPhotoStorage_Rejects(t *testing.T) {
	storage := NewPhotoStorage(t.TempDir(), zap.NewNop())

	tests := []struct {
		name    string
		file    string
		content []byte
	}{
		{"extension", "face.bmp", pngHeader},
		{"no extension", "face", pngHeader},
		{"content", "face.jpg", []byte("just some text")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storage.Save(&PhotoUpload{Filename: tt.file, Content: bytes.NewReader(tt.content)})
			assert.ErrorIs(t, err, ErrInvalidPhoto)
		})
	}

	entries, err := os.ReadDir(storage.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPhotoStorage_RemoveStaysInDir(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	storage := NewPhotoStorage(filepath.Join(dir, "uploads"), zap.NewNop())
	require.NoError(t, storage.Remove("images/../keep.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
