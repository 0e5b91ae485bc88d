package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"studyhub/config"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	mockRepo "studyhub/internal/mocks/repository"
	mockSvc "studyhub/internal/mocks/service"
	"studyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

type uploadServiceFixtures struct {
	service usecase.UploadUsecase
	repo    *mockRepo.MockUploadRepository
	storage *mockSvc.MockObjectStorage
}

func createTestUploadService(t *testing.T, maxBytes int64) uploadServiceFixtures {
	repo := mockRepo.NewMockUploadRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)

	service := NewUploadService(UploadServiceParams{
		Repo:    repo,
		Storage: storage,
		Config:  &config.Config{Storage: &config.StorageConfig{KeyPrefix: "uploads/", MaxUploadBytes: maxBytes}},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return uploadServiceFixtures{service: service, repo: repo, storage: storage}
}

// drain consumes the body like a real bucket writer would.
func drain(_ context.Context, _ string, _ string, body io.Reader) (int64, error) {
	return io.Copy(io.Discard, body)
}

func TestUploadService_Upload_StoresPDF(t *testing.T) {
	fx := createTestUploadService(t, 1<<20)
	ctx := context.Background()
	adminID := uuid.New()

	fx.storage.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/notes/CS101/") && strings.HasSuffix(key, ".pdf")
		}), "application/pdf", mock.Anything).
		RunAndReturn(drain)
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Upload")).Return(nil)

	upload, err := fx.service.Upload(ctx, usecase.UploadInput{
		Kind:       entity.KindNote,
		CourseCode: "CS101",
		FileName:   "unit-1",
		Size:       int64(len(samplePDF)),
		Body:       bytes.NewReader(samplePDF),
		UploadedBy: adminID,
	})
	require.NoError(t, err)
	assert.Equal(t, "unit-1.pdf", upload.FileName)
	assert.Equal(t, int64(len(samplePDF)), upload.Size)
	assert.Equal(t, adminID, upload.UploadedBy)
	assert.Equal(t, "application/pdf", upload.ContentType)
}

func TestUploadService_Upload_RejectsNonPDF(t *testing.T) {
	fx := createTestUploadService(t, 1<<20)

	_, err := fx.service.Upload(context.Background(), usecase.UploadInput{
		Kind:       entity.KindSyllabus,
		CourseCode: "CS101",
		FileName:   "evil.pdf",
		Body:       strings.NewReader("#!/bin/sh\necho hi\n"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadRejected)
	fx.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_Upload_DeclaredSizeTooLarge(t *testing.T) {
	fx := createTestUploadService(t, 10)

	_, err := fx.service.Upload(context.Background(), usecase.UploadInput{
		Kind:       entity.KindSyllabus,
		CourseCode: "CS101",
		Size:       11,
		Body:       bytes.NewReader(samplePDF),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)
}

func TestUploadService_Upload_ActualSizeTooLargeIsDiscarded(t *testing.T) {
	fx := createTestUploadService(t, 16)
	ctx := context.Background()

	fx.storage.EXPECT().Put(ctx, mock.Anything, "application/pdf", mock.Anything).RunAndReturn(drain)
	fx.storage.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.Upload(ctx, usecase.UploadInput{
		Kind:       entity.KindSyllabus,
		CourseCode: "CS101",
		Size:       4, // lies about the size
		Body:       bytes.NewReader(samplePDF),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)
}

func TestUploadService_Upload_MetadataFailureRemovesBlob(t *testing.T) {
	fx := createTestUploadService(t, 1<<20)
	ctx, cancel := context.WithCancel(context.Background())

	fx.storage.EXPECT().Put(ctx, mock.Anything, "application/pdf", mock.Anything).RunAndReturn(drain)
	// The client goes away while the row is being written.
	fx.repo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(context.Context, *entity.Upload) error {
		cancel()

		return context.Canceled
	})

	var cleanupErr error
	fx.storage.EXPECT().Delete(mock.Anything, mock.Anything).RunAndReturn(func(cleanupCtx context.Context, _ string) error {
		cleanupErr = cleanupCtx.Err()
		_, hasDeadline := cleanupCtx.Deadline()
		assert.True(t, hasDeadline)

		return nil
	})

	_, err := fx.service.Upload(ctx, usecase.UploadInput{
		Kind:       entity.KindPastQuestion,
		CourseCode: "MA201",
		Body:       bytes.NewReader(samplePDF),
	})
	require.Error(t, err)
	assert.NoError(t, cleanupErr)
}

func TestUploadService_Upload_InvalidInput(t *testing.T) {
	fx := createTestUploadService(t, 1<<20)
	ctx := context.Background()

	_, err := fx.service.Upload(ctx, usecase.UploadInput{Kind: "video", CourseCode: "CS101", Body: bytes.NewReader(samplePDF)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.Upload(ctx, usecase.UploadInput{Kind: entity.KindNote, Body: bytes.NewReader(samplePDF)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestUploadService_Delete(t *testing.T) {
	fx := createTestUploadService(t, 1<<20)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(&entity.Upload{ID: id, ObjectKey: "uploads/notes/CS101/x.pdf"}, nil)
	fx.storage.EXPECT().Delete(ctx, "uploads/notes/CS101/x.pdf").Return(nil)
	fx.repo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, id))
}

func TestUploadService_Open_NotFound(t *testing.T) {
	fx := createTestUploadService(t, 1<<20)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUploadNotFound)

	_, _, err := fx.service.Open(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUploadService_List_RejectsUnknownKind(t *testing.T) {
	fx := createTestUploadService(t, 1<<20)

	_, err := fx.service.List(context.Background(), "video")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "report.pdf", sanitizeFileName("../../etc/report.pdf"))
	assert.Equal(t, "scan.PDF", sanitizeFileName(`C:\Users\me\scan.PDF`))
	assert.Equal(t, "notes.pdf", sanitizeFileName("notes"))
	assert.Equal(t, "document.pdf", sanitizeFileName(""))
}
