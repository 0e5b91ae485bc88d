package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"studyhub/config"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	mockSvc "studyhub/internal/mocks/service"
	"studyhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testRootFolder = "root-folder"

type fileServiceFixtures struct {
	service usecase.FileUsecase
	tokens  *mockSvc.MockAccessTokenProvider
	lister  *mockSvc.MockFileLister
}

func createTestFileService(t *testing.T) fileServiceFixtures {
	tokens := mockSvc.NewMockAccessTokenProvider(t)
	lister := mockSvc.NewMockFileLister(t)

	service := NewFileService(FileServiceParams{
		Tokens: tokens,
		Lister: lister,
		Config: &config.Config{Drive: &config.DriveConfig{RootFolderID: testRootFolder}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fileServiceFixtures{service: service, tokens: tokens, lister: lister}
}

func TestFileService_ResolveNotesLink_Success(t *testing.T) {
	fx := createTestFileService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().AccessToken(ctx).Return("token", nil)
	fx.lister.EXPECT().FindFolders(ctx, testRootFolder, "CS101").
		Return([]entity.DriveFile{{ID: "folder-1", Name: "CS101"}}, nil)
	fx.lister.EXPECT().FindFiles(ctx, "folder-1", "asha.zip").
		Return([]entity.DriveFile{{ID: "file-1", Name: "asha.zip", WebViewLink: "https://drive.example/file-1"}}, nil)

	link, err := fx.service.ResolveNotesLink(ctx, "CS101", "asha")
	require.NoError(t, err)
	assert.Equal(t, "https://drive.example/file-1", link)
}

func TestFileService_ResolveNotesLink_UsesFirstOfSeveralFolders(t *testing.T) {
	fx := createTestFileService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().AccessToken(ctx).Return("token", nil)
	fx.lister.EXPECT().FindFolders(ctx, testRootFolder, "CS101").
		Return([]entity.DriveFile{{ID: "first"}, {ID: "second"}}, nil)
	fx.lister.EXPECT().FindFiles(ctx, "first", "asha.zip").
		Return([]entity.DriveFile{{ID: "file-1", WebViewLink: "https://drive.example/first"}}, nil)

	link, err := fx.service.ResolveNotesLink(ctx, "CS101", "asha")
	require.NoError(t, err)
	assert.Equal(t, "https://drive.example/first", link)
}

func TestFileService_ResolveNotesLink_InvalidInputMakesNoCalls(t *testing.T) {
	fx := createTestFileService(t)
	ctx := context.Background()

	_, err := fx.service.ResolveNotesLink(ctx, "", "asha")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.ResolveNotesLink(ctx, "CS101", "  ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	fx.tokens.AssertNotCalled(t, "AccessToken", mock.Anything)
}

func TestFileService_ResolveNotesLink_FolderVersusFileNotFound(t *testing.T) {
	t.Run("no course folder", func(t *testing.T) {
		fx := createTestFileService(t)
		ctx := context.Background()

		fx.tokens.EXPECT().AccessToken(ctx).Return("token", nil)
		fx.lister.EXPECT().FindFolders(ctx, testRootFolder, "CS999").Return(nil, nil)

		_, err := fx.service.ResolveNotesLink(ctx, "CS999", "asha")
		assert.ErrorIs(t, err, domainerrors.ErrCourseFolderNotFound)
		assert.NotErrorIs(t, err, domainerrors.ErrFileNotFound)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "No notes found for this uploader.", appErr.Details())
	})

	t.Run("no uploader archive", func(t *testing.T) {
		fx := createTestFileService(t)
		ctx := context.Background()

		fx.tokens.EXPECT().AccessToken(ctx).Return("token", nil)
		fx.lister.EXPECT().FindFolders(ctx, testRootFolder, "CS101").
			Return([]entity.DriveFile{{ID: "folder-1"}}, nil)
		fx.lister.EXPECT().FindFiles(ctx, "folder-1", "ghost.zip").Return([]entity.DriveFile{}, nil)

		_, err := fx.service.ResolveNotesLink(ctx, "CS101", "ghost")
		assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
		assert.NotErrorIs(t, err, domainerrors.ErrCourseFolderNotFound)
	})
}

func TestFileService_ResolvePyqLink_MissingArchiveMessage(t *testing.T) {
	fx := createTestFileService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().AccessToken(ctx).Return("token", nil)
	fx.lister.EXPECT().FindFolders(ctx, testRootFolder, "MA201").
		Return([]entity.DriveFile{{ID: "folder-2"}}, nil)
	fx.lister.EXPECT().FindFiles(ctx, "folder-2", "pyq.zip").Return(nil, nil)

	_, err := fx.service.ResolvePyqLink(ctx, "MA201")
	require.ErrorIs(t, err, domainerrors.ErrFileNotFound)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "No pyq.zip found for this course.", appErr.Details())
}

func TestFileService_ResolvePyqLink_MissingFolderMessage(t *testing.T) {
	fx := createTestFileService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().AccessToken(ctx).Return("token", nil)
	fx.lister.EXPECT().FindFolders(ctx, testRootFolder, "CSE2001").Return(nil, nil)

	_, err := fx.service.ResolvePyqLink(ctx, "CSE2001")
	require.ErrorIs(t, err, domainerrors.ErrCourseFolderNotFound)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "COURSE_FOLDER_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "No pyq.zip found for this course.", appErr.Details())
	fx.lister.AssertNotCalled(t, "FindFiles", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileService_ResolvePyqLink_AuthFailureStopsLookup(t *testing.T) {
	fx := createTestFileService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().AccessToken(ctx).Return("", domainerrors.ErrAuthFailed)

	_, err := fx.service.ResolvePyqLink(ctx, "MA201")
	assert.ErrorIs(t, err, domainerrors.ErrAuthFailed)
	fx.lister.AssertNotCalled(t, "FindFolders", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileService_ResolvePyqLink_TransportFailure(t *testing.T) {
	fx := createTestFileService(t)
	ctx := context.Background()

	transportErr := domainerrors.NewResolutionError(errors.New("503"), "Backend Error")
	fx.tokens.EXPECT().AccessToken(ctx).Return("token", nil)
	fx.lister.EXPECT().FindFolders(ctx, testRootFolder, "MA201").Return(nil, transportErr)

	_, err := fx.service.ResolvePyqLink(ctx, "MA201")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RESOLUTION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "Backend Error", appErr.Message())
}
