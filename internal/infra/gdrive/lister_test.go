package gdrive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "studyhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func newTestLister(t *testing.T, handler http.HandlerFunc) *Lister {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := drive.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return NewLister(svc, NewRateLimiter(100, 100), nil, discardLogger())
}

func TestLister_FindFolders_BuildsExactNameQuery(t *testing.T) {
	var gotQuery, gotFields string
	lister := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotFields = r.URL.Query().Get("fields")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"files": []map[string]string{
				{"id": "f1", "name": "CS101", "webViewLink": "https://drive.example/f1"},
				{"id": "f2", "name": "CS101", "webViewLink": "https://drive.example/f2"},
			},
		})
	})

	folders, err := lister.FindFolders(context.Background(), "root", "CS101")
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "f1", folders[0].ID)
	assert.Equal(t, "https://drive.example/f1", folders[0].WebViewLink)

	assert.Equal(t,
		"'root' in parents and name = 'CS101' and trashed = false and mimeType = 'application/vnd.google-apps.folder'",
		gotQuery)
	assert.Equal(t, "files(id,name,webViewLink)", gotFields)
}

func TestLister_FindFiles_ExcludesFoldersAndEscapesName(t *testing.T) {
	var gotQuery string
	lister := newTestLister(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files":[]}`))
	})

	files, err := lister.FindFiles(context.Background(), "folder-1", "o'brien.zip")
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t,
		`'folder-1' in parents and name = 'o\'brien.zip' and trashed = false and mimeType != 'application/vnd.google-apps.folder'`,
		gotQuery)
}

func TestLister_ProviderErrorCarriesMessage(t *testing.T) {
	lister := newTestLister(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The user does not have sufficient permissions for this file.","errors":[{"reason":"insufficientFilePermissions"}]}}`))
	})

	_, err := lister.FindFolders(context.Background(), "root", "CS101")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RESOLUTION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "The user does not have sufficient permissions for this file.", appErr.Message())
}

func TestLister_UnauthorizedInvalidatesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":401,"message":"Invalid Credentials"}}`))
	}))
	defer srv.Close()

	svc, err := drive.NewService(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	cache := NewTokenCache(&fakeExchanger{tokens: []*oauth2.Token{{AccessToken: "stale"}}}, time.Minute, discardLogger())
	_, err = cache.AccessToken(context.Background())
	require.NoError(t, err)

	lister := NewLister(svc, NewRateLimiter(100, 100), cache, discardLogger())
	_, err = lister.FindFolders(context.Background(), "root", "CS101")
	require.Error(t, err)
	assert.True(t, cache.ObtainedAt().IsZero())
}

func TestRateLimiter_BackoffDelaysWait(t *testing.T) {
	limiter := NewRateLimiter(1000, 10)
	limiter.Backoff(50 * time.Millisecond)

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	limiter := NewRateLimiter(1000, 10)
	limiter.Backoff(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, limiter.Wait(ctx), context.DeadlineExceeded)
}

func TestEscapeQuery(t *testing.T) {
	assert.Equal(t, `a\\b`, escapeQuery(`a\b`))
	assert.Equal(t, `it\'s`, escapeQuery(`it's`))
	assert.Equal(t, "plain", escapeQuery("plain"))
}

func TestRetryAfter(t *testing.T) {
	h := http.Header{}
	assert.Zero(t, retryAfter(nil))
	assert.Zero(t, retryAfter(h))

	h.Set("Retry-After", "12")
	assert.Equal(t, 12*time.Second, retryAfter(h))
}
