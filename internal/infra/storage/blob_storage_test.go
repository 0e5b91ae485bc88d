package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"studyhub/config"
	"studyhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func newMemStorage(t *testing.T) service.ObjectStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket)
}

func TestBlobStorage_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	s := newMemStorage(t)

	written, err := s.Put(ctx, "notes/CS101/a.pdf", "application/pdf", strings.NewReader("%PDF-1.7 body"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("%PDF-1.7 body")), written)

	rc, err := s.Open(ctx, "notes/CS101/a.pdf")
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 body", string(content))

	require.NoError(t, s.Delete(ctx, "notes/CS101/a.pdf"))

	_, err = s.Open(ctx, "notes/CS101/a.pdf")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestBlobStorage_DeleteMissingIsNoop(t *testing.T) {
	assert.NoError(t, newMemStorage(t).Delete(context.Background(), "missing.pdf"))
}

func TestBlobStorage_FailedCopyLeavesNoObject(t *testing.T) {
	ctx := context.Background()
	s := newMemStorage(t)

	_, err := s.Put(ctx, "pyqs/CS101/b.pdf", "application/pdf", failingReader{})
	require.ErrorContains(t, err, "client went away")

	_, err = s.Open(ctx, "pyqs/CS101/b.pdf")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestNew_OpensConfiguredBucket(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Storage: &config.StorageConfig{BucketURL: "file://" + t.TempDir()}}

	s, err := New(Params{Lifecycle: lc, Ctx: context.Background(), Config: cfg, Logger: slog.Default()})
	require.NoError(t, err)

	lc.RequireStart()
	_, err = s.Put(context.Background(), "syllabi/x.pdf", "application/pdf", strings.NewReader("%PDF"))
	assert.NoError(t, err)
	lc.RequireStop()
}

func TestNew_RejectsUnknownScheme(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{BucketURL: "bogus://bucket"}}

	_, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Ctx: context.Background(), Config: cfg, Logger: slog.Default()})

	assert.Error(t, err)
}
