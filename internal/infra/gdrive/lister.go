package gdrive

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"

	"github.com/pkg/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	listFields     = "files(id,name,webViewLink)"
	listPageSize   = 10
)

// Lister finds children of a Drive folder by exact name.
type Lister struct {
	files   *drive.FilesService
	limiter *RateLimiter
	tokens  *TokenCache
	logger  *slog.Logger
}

// NewLister wraps a Drive service. tokens may be nil; when set, a 401 drops the cached token.
func NewLister(svc *drive.Service, limiter *RateLimiter, tokens *TokenCache, logger *slog.Logger) *Lister {
	return &Lister{
		files:   svc.Files,
		limiter: limiter,
		tokens:  tokens,
		logger:  logger,
	}
}

// FindFolders returns the folders named name directly under parentID.
func (l *Lister) FindFolders(ctx context.Context, parentID, name string) ([]entity.DriveFile, error) {
	q := childQuery(parentID, name) + " and mimeType = '" + folderMimeType + "'"

	return l.list(ctx, "folder", q)
}

// FindFiles returns the non-folder files named name directly under parentID.
func (l *Lister) FindFiles(ctx context.Context, parentID, name string) ([]entity.DriveFile, error) {
	q := childQuery(parentID, name) + " and mimeType != '" + folderMimeType + "'"

	return l.list(ctx, "file", q)
}

func (l *Lister) list(ctx context.Context, lookup, q string) ([]entity.DriveFile, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, domainerrors.NewResolutionError(errors.Wrap(err, "rate limiter"), "")
	}

	res, err := l.files.List().
		Q(q).
		Fields(listFields).
		PageSize(listPageSize).
		Spaces("drive").
		Context(ctx).
		Do()
	if err != nil {
		return nil, l.translate(lookup, err)
	}
	driveRequestsTotal.WithLabelValues(lookup, "2xx").Inc()

	out := make([]entity.DriveFile, 0, len(res.Files))
	for _, f := range res.Files {
		out = append(out, entity.DriveFile{
			ID:          f.Id,
			Name:        f.Name,
			WebViewLink: f.WebViewLink,
		})
	}

	return out, nil
}

// translate maps Drive client failures to domain errors.
func (l *Lister) translate(lookup string, err error) error {
	if errors.Is(err, domainerrors.ErrAuthFailed) {
		driveRequestsTotal.WithLabelValues(lookup, "auth").Inc()

		return err
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		driveRequestsTotal.WithLabelValues(lookup, "transport").Inc()

		return domainerrors.NewResolutionError(err, "")
	}

	driveRequestsTotal.WithLabelValues(lookup, strconv.Itoa(gerr.Code/100)+"xx").Inc()
	switch gerr.Code {
	case http.StatusUnauthorized:
		if l.tokens != nil {
			l.tokens.Invalidate()
		}
	case http.StatusTooManyRequests:
		l.limiter.Backoff(retryAfter(gerr.Header))
	}

	l.logger.Warn("Drive request failed",
		slog.String("lookup", lookup),
		slog.Int("status", gerr.Code),
		slog.String("message", gerr.Message),
	)

	return domainerrors.NewResolutionError(err, gerr.Message)
}

// childQuery builds the files.list q expression for an exact-name child lookup.
func childQuery(parentID, name string) string {
	return "'" + escapeQuery(parentID) + "' in parents and name = '" + escapeQuery(name) + "' and trashed = false"
}

// escapeQuery escapes a value for use inside single quotes in a Drive query.
func escapeQuery(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}

	return time.Duration(secs) * time.Second
}
