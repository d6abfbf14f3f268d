package repository

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded profile media.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (url string, err error)
	Remove(ctx context.Context, key string) error
}
