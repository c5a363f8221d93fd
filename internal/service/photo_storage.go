package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	photoPathPrefix = "images/"
	sniffLen        = 3072
)

var allowedPhotoExt = []string{".png", ".jpg", ".jpeg", ".gif"}

// PhotoUpload is a profile photo received with a registration form.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// PhotoStorage keeps student photos on local disk.
type PhotoStorage struct {
	dir    string
	logger *zap.Logger
}

func NewPhotoStorage(dir string, logger *zap.Logger) *PhotoStorage {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.String("dir", dir), zap.Error(err))
	}
	return &PhotoStorage{dir: dir, logger: logger}
}

func (s *PhotoStorage) Dir() string {
	return s.dir
}

// Save checks the extension and sniffed content type of p and writes it
// under a fresh name. It returns the stored path, e.g. "images/<uuid>.png".
func (s *PhotoStorage) Save(p *PhotoUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(p.Filename))
	if !lo.Contains(allowedPhotoExt, ext) {
		return "", ErrInvalidPhoto
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(p.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}
	head = head[:n]

	if mtype := mimetype.Detect(head); !strings.HasPrefix(mtype.String(), "image/") {
		s.logger.Warn("Rejected photo upload", zap.String("filename", p.Filename), zap.String("detected", mtype.String()))
		return "", ErrInvalidPhoto
	}

	name := uuid.New().String() + ext
	fullPath := filepath.Join(s.dir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.MultiReader(bytes.NewReader(head), p.Content)); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return photoPathPrefix + name, nil
}

// Remove deletes a photo previously returned by Save. A missing file is
// not an error.
func (s *PhotoStorage) Remove(path string) error {
	if path == "" {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(path, photoPathPrefix))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
