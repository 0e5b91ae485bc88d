package impl

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"studyhub/config"
	deliverycontext "studyhub/internal/delivery/context"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	"studyhub/internal/domain/service"
	"studyhub/internal/usecase"
	"studyhub/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	pdfContentType = "application/pdf"
	sniffLen       = 3072
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	repo      repository.UploadRepository
	storage   service.ObjectStorage
	keyPrefix string
	maxBytes  int64
	logger    *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Repo    repository.UploadRepository
	Storage service.ObjectStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	srv := &uploadService{
		repo:     params.Repo,
		storage:  params.Storage,
		maxBytes: 20 << 20,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Storage != nil {
		srv.keyPrefix = params.Config.Storage.KeyPrefix
		if params.Config.Storage.MaxUploadBytes > 0 {
			srv.maxBytes = params.Config.Storage.MaxUploadBytes
		}
	}

	return srv
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload checks the file is a PDF within the size limit, stores it and records its metadata.
func (srv *uploadService) Upload(ctx context.Context, input usecase.UploadInput) (*entity.Upload, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown resource kind")
	}
	courseCode := strings.TrimSpace(input.CourseCode)
	if courseCode == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("course code is required")
	}
	if input.Body == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("file is required")
	}
	if input.Size > srv.maxBytes {
		return nil, srv.tooLarge()
	}

	body := bufio.NewReaderSize(input.Body, sniffLen)
	head, err := body.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, domainerrors.ErrUploadRejected.WrapMessage(err.Error())
	}
	if !mimetype.Detect(head).Is(pdfContentType) {
		return nil, domainerrors.ErrUploadRejected
	}

	upload := &entity.Upload{
		ID:          uuid.New(),
		Kind:        input.Kind,
		CourseCode:  courseCode,
		FileName:    sanitizeFileName(input.FileName),
		ContentType: pdfContentType,
		UploadedBy:  input.UploadedBy,
		CreatedAt:   time.Now().UTC(),
	}
	upload.ObjectKey = srv.objectKey(upload)

	// One byte past the limit is enough to prove the declared size was wrong.
	written, err := srv.storage.Put(ctx, upload.ObjectKey, pdfContentType, io.LimitReader(body, srv.maxBytes+1))
	if err != nil {
		srv.log(ctx).Error("Failed to store upload", slog.String("key", upload.ObjectKey), slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}
	if written > srv.maxBytes {
		srv.discard(ctx, upload.ObjectKey)

		return nil, srv.tooLarge()
	}
	upload.Size = written

	if err := srv.repo.Create(ctx, upload); err != nil {
		srv.discard(ctx, upload.ObjectKey)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to record upload")
	}

	srv.log(ctx).Info("Stored upload",
		slog.String("upload_id", upload.ID.String()),
		slog.String("kind", upload.Kind.String()),
		slog.String("course_code", upload.CourseCode),
		slog.String("size", util.FormatBytes(upload.Size)),
	)

	return upload, nil
}

// List returns uploads newest first, optionally restricted to one kind.
func (srv *uploadService) List(ctx context.Context, kind entity.Kind) ([]*entity.Upload, error) {
	if kind != "" && !kind.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown resource kind")
	}

	uploads, err := srv.repo.List(ctx, kind)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list uploads")
	}

	return uploads, nil
}

// Open returns the upload metadata and a reader over its content. The caller closes the reader.
func (srv *uploadService) Open(ctx context.Context, id uuid.UUID) (*entity.Upload, io.ReadCloser, error) {
	upload, err := srv.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := srv.storage.Open(ctx, upload.ObjectKey)
	if errors.Is(err, service.ErrObjectNotFound) {
		srv.log(ctx).Warn("Upload row has no stored object", slog.String("key", upload.ObjectKey))

		return nil, nil, domainerrors.ErrNotFound.WithDetails("upload content missing")
	}
	if err != nil {
		return nil, nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return upload, rc, nil
}

// Delete removes the stored object and its metadata row.
func (srv *uploadService) Delete(ctx context.Context, id uuid.UUID) error {
	upload, err := srv.find(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.storage.Delete(ctx, upload.ObjectKey); err != nil {
		return domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}
	if err := srv.repo.Delete(ctx, id); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete upload")
	}

	srv.log(ctx).Info("Deleted upload", slog.String("upload_id", id.String()))

	return nil
}

func (srv *uploadService) find(ctx context.Context, id uuid.UUID) (*entity.Upload, error) {
	upload, err := srv.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUploadNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("upload not found")
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load upload")
	}

	return upload, nil
}

// discardTimeout bounds orphan cleanup, which outlives the request that caused it.
const discardTimeout = 10 * time.Second

func (srv *uploadService) discard(ctx context.Context, key string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), discardTimeout)
	defer cancel()

	if err := srv.storage.Delete(cleanupCtx, key); err != nil {
		srv.log(ctx).Warn("Failed to remove orphaned upload", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *uploadService) objectKey(upload *entity.Upload) string {
	course := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(upload.CourseCode)

	return srv.keyPrefix + path.Join(upload.Kind.Collection(), course, upload.ID.String()+".pdf")
}

// sanitizeFileName keeps the base name and forces a .pdf extension.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "document"
	}
	if !strings.EqualFold(path.Ext(name), ".pdf") {
		name += ".pdf"
	}

	return name
}

func (srv *uploadService) tooLarge() error {
	return domainerrors.ErrUploadTooLarge.WithDetails("limit is " + util.FormatBytes(srv.maxBytes))
}
