package usecase

import "context"

// FileUsecase resolves course codes to direct-open links on the file host.
type FileUsecase interface {
	// ResolveNotesLink finds "{uploaderName}.zip" inside the course folder.
	ResolveNotesLink(ctx context.Context, courseCode, uploaderName string) (string, error)

	// ResolvePyqLink finds "pyq.zip" inside the course folder.
	ResolvePyqLink(ctx context.Context, courseCode string) (string, error)
}
