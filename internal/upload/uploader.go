package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

var ErrInvalidFile = errors.New("invalid file")

// Uploader stores client logos on local disk under a random name and hands
// back the public URL path.
type Uploader struct {
	dir     string
	maxSize int64
}

func New(dir string, maxSize int64) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Uploader{dir: dir, maxSize: maxSize}, nil
}

func (u *Uploader) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > u.maxSize {
		return "", fmt.Errorf("%w: file too large, maximum %d bytes", ErrInvalidFile, u.maxSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, u.maxSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(content)) > u.maxSize {
		return "", fmt.Errorf("%w: file too large, maximum %d bytes", ErrInvalidFile, u.maxSize)
	}

	ext, err := imageExtension(content)
	if err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(u.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

// imageExtension sniffs the content and returns the extension for the
// accepted logo formats: PNG, JPEG, WebP, or SVG.
func imageExtension(content []byte) (string, error) {
	kind, _ := filetype.Match(content)
	switch kind {
	case matchers.TypePng:
		return ".png", nil
	case matchers.TypeJpeg:
		return ".jpg", nil
	case matchers.TypeWebp:
		return ".webp", nil
	}

	// SVG is text, invisible to magic-number matching.
	if bytes.Contains(content[:min(len(content), 1024)], []byte("<svg")) {
		return ".svg", nil
	}
	return "", fmt.Errorf("%w: use PNG, JPG, WebP, or SVG", ErrInvalidFile)
}
