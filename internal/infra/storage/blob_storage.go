// Package storage keeps uploaded files in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"studyhub/config"
	"studyhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by the storage.bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (service.ObjectStorage, error) {
	bucketURL := "mem://"
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Upload bucket opened", slog.String("bucket_url", bucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket) service.ObjectStorage {
	return &blobStorage{bucket: bucket}
}

// Put streams body to key. A failed copy aborts the write so no partial object is left behind.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, body io.Reader) (int64, error) {
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create writer for %s", key)
	}

	written, copyErr := io.Copy(w, body)
	if copyErr != nil {
		cancel()
		_ = w.Close()

		return written, errors.Wrapf(copyErr, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return written, errors.Wrapf(err, "failed to commit %s", key)
	}

	return written, nil
}

// Open returns a reader over the object. The caller closes it.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to open %s", key)
	}

	return r, nil
}

// Delete removes the object; a missing key is ignored.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
