package impl

import (
	"context"
	"log/slog"
	"strings"

	"studyhub/config"
	deliverycontext "studyhub/internal/delivery/context"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/service"
	"studyhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pyqFileName = "pyq.zip"

// fileService implements the FileUsecase interface.
type fileService struct {
	tokens       service.AccessTokenProvider
	lister       service.FileLister
	rootFolderID string
	logger       *slog.Logger
}

// FileServiceParams holds dependencies for FileService, injected by Fx.
type FileServiceParams struct {
	fx.In

	Tokens service.AccessTokenProvider
	Lister service.FileLister
	Config *config.Config
	Logger *slog.Logger
}

// NewFileService is the constructor for fileService.
func NewFileService(params FileServiceParams) usecase.FileUsecase {
	var root string
	if params.Config != nil && params.Config.Drive != nil {
		root = params.Config.Drive.RootFolderID
	}

	return &fileService{
		tokens:       params.Tokens,
		lister:       params.Lister,
		rootFolderID: root,
		logger:       params.Logger,
	}
}

func (srv *fileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveNotesLink returns the view link of "{uploaderName}.zip" in the course folder.
func (srv *fileService) ResolveNotesLink(ctx context.Context, courseCode, uploaderName string) (string, error) {
	courseCode = strings.TrimSpace(courseCode)
	uploaderName = strings.TrimSpace(uploaderName)
	if courseCode == "" || uploaderName == "" {
		return "", domainerrors.ErrInvalidInput.WithDetails("course code and uploader name are required")
	}

	link, err := srv.resolve(ctx, courseCode, uploaderName+".zip")
	srv.record("notes", err)

	return link, withMissingDetails(err, "No notes found for this uploader.")
}

// ResolvePyqLink returns the view link of "pyq.zip" in the course folder.
func (srv *fileService) ResolvePyqLink(ctx context.Context, courseCode string) (string, error) {
	courseCode = strings.TrimSpace(courseCode)
	if courseCode == "" {
		return "", domainerrors.ErrInvalidInput.WithDetails("course code is required")
	}

	link, err := srv.resolve(ctx, courseCode, pyqFileName)
	srv.record("pyq", err)

	return link, withMissingDetails(err, "No pyq.zip found for this course.")
}

// withMissingDetails keeps the not-found code, folder or file, and sets the
// details the caller shows for either.
func withMissingDetails(err error, details string) error {
	switch {
	case errors.Is(err, domainerrors.ErrCourseFolderNotFound):
		return domainerrors.ErrCourseFolderNotFound.WithDetails(details)
	case errors.Is(err, domainerrors.ErrFileNotFound):
		return domainerrors.ErrFileNotFound.WithDetails(details)
	default:
		return err
	}
}

// resolve runs the folder-then-file lookup under the root folder.
func (srv *fileService) resolve(ctx context.Context, courseCode, fileName string) (string, error) {
	if _, err := srv.tokens.AccessToken(ctx); err != nil {
		srv.log(ctx).Error("Failed to obtain file host access token", slog.Any("error", err))

		return "", err
	}

	folders, err := srv.lister.FindFolders(ctx, srv.rootFolderID, courseCode)
	if err != nil {
		srv.log(ctx).Error("Course folder lookup failed",
			slog.String("course_code", courseCode),
			slog.Any("error", err),
		)

		return "", err
	}
	if len(folders) == 0 {
		return "", domainerrors.ErrCourseFolderNotFound
	}
	if len(folders) > 1 {
		srv.log(ctx).Warn("Several course folders share a name, using the first",
			slog.String("course_code", courseCode),
			slog.Int("count", len(folders)),
		)
	}

	files, err := srv.lister.FindFiles(ctx, folders[0].ID, fileName)
	if err != nil {
		srv.log(ctx).Error("Course file lookup failed",
			slog.String("course_code", courseCode),
			slog.String("file_name", fileName),
			slog.Any("error", err),
		)

		return "", err
	}
	if len(files) == 0 {
		return "", domainerrors.ErrFileNotFound
	}

	srv.log(ctx).Debug("Resolved course file",
		slog.String("course_code", courseCode),
		slog.String("file_name", fileName),
		slog.String("file_id", files[0].ID),
	)

	return files[0].WebViewLink, nil
}

func (srv *fileService) record(file string, err error) {
	switch {
	case err == nil:
		resolutionTotal.WithLabelValues(file, outcomeOK).Inc()
	case errors.Is(err, domainerrors.ErrCourseFolderNotFound), errors.Is(err, domainerrors.ErrFileNotFound):
		resolutionTotal.WithLabelValues(file, outcomeNotFound).Inc()
	default:
		resolutionTotal.WithLabelValues(file, outcomeFailed).Inc()
	}
}
