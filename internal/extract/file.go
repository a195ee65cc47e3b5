package extract

import (
	"context"
	"fmt"
	"os"
)

// FileExtractor reads plain-text files from the local filesystem.
type FileExtractor struct {
	maxFileSize int64
}

func NewFileExtractor(maxFileSize int64) *FileExtractor {
	return &FileExtractor{maxFileSize: maxFileSize}
}

func (e *FileExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a file", path)
	}
	if e.maxFileSize > 0 && info.Size() > e.maxFileSize {
		return "", fmt.Errorf("file size %d exceeds limit %d", info.Size(), e.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(data), nil
}
