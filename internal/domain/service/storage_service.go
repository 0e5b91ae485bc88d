package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned by Open when no object exists under the key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage keeps uploaded PDFs.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (written int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
