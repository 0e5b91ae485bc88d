package service

import (
	"context"

	"studyhub/internal/domain/entity"
)

// AccessTokenProvider hands out the bearer token for the file host.
type AccessTokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// FileLister looks up children of a folder on the file host by exact name.
type FileLister interface {
	// FindFolders returns child folders of parentID named exactly name, in provider order.
	FindFolders(ctx context.Context, parentID, name string) ([]entity.DriveFile, error)

	// FindFiles returns child files (not folders) of parentID named exactly name, in provider order.
	FindFiles(ctx context.Context, parentID, name string) ([]entity.DriveFile, error)
}
