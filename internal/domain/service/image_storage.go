package service

import (
	"context"
	"io"
)

// ImageStorage stores uploaded listing images and returns their public URL.
type ImageStorage interface {
	Upload(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}
