package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"studyhub/config"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/domain/repository"
	mockRepo "studyhub/internal/mocks/repository"
	mockSvc "studyhub/internal/mocks/service"
	"studyhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// resourceServiceFixtures holds all test dependencies for resource service tests.
type resourceServiceFixtures struct {
	service usecase.ResourceUsecase
	repo    *mockRepo.MockResourceRepository
	cache   *mockSvc.MockResultCache
}

func createTestResourceService(t *testing.T) resourceServiceFixtures {
	repo := mockRepo.NewMockResourceRepository(t)
	cache := mockSvc.NewMockResultCache(t)

	service := NewResourceService(ResourceServiceParams{
		Repo:   repo,
		Cache:  cache,
		Config: &config.Config{Search: &config.SearchConfig{IdleVisible: 6, SearchVisible: 10}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return resourceServiceFixtures{
		service: service,
		repo:    repo,
		cache:   cache,
	}
}

func note(id string) entity.Resource {
	return &entity.Note{
		ResourceBase: entity.ResourceBase{
			ID:           id,
			Title:        "Notes " + id,
			DepartmentID: "1",
			CourseCode:   "CS101",
			CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		UploaderName: "asha",
	}
}

func ids(records []entity.Resource) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ResourceID())
	}

	return out
}

func TestPromoteShared(t *testing.T) {
	records := []entity.Resource{note("a"), note("b"), note("c")}

	tests := []struct {
		name     string
		sharedID string
		want     []string
	}{
		{name: "moves shared record to front", sharedID: "b", want: []string{"b", "a", "c"}},
		{name: "already first", sharedID: "a", want: []string{"a", "b", "c"}},
		{name: "last record", sharedID: "c", want: []string{"c", "a", "b"}},
		{name: "absent id is identity", sharedID: "z", want: []string{"a", "b", "c"}},
		{name: "empty id is identity", sharedID: "", want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromoteShared(records, tt.sharedID)
			assert.Equal(t, tt.want, ids(got))
			assert.Len(t, got, len(records))
		})
	}

	// The input slice is never reordered in place.
	assert.Equal(t, []string{"a", "b", "c"}, ids(records))
}

func TestPromoteShared_EmptyList(t *testing.T) {
	assert.Empty(t, PromoteShared(nil, "a"))
}

func TestResourceService_VisibleCount(t *testing.T) {
	fx := createTestResourceService(t)

	assert.Equal(t, 6, fx.service.VisibleCount(""))
	assert.Equal(t, 6, fx.service.VisibleCount("   "))
	assert.Equal(t, 10, fx.service.VisibleCount("data"))
}

func TestResourceService_Search_PromotesSharedRecord(t *testing.T) {
	fx := createTestResourceService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(mock.Anything).Return(nil, false)
	fx.repo.EXPECT().
		Search(mock.Anything, repository.ResourceFilter{Kind: entity.KindNote, DepartmentID: "1", Term: "data"}).
		Return([]entity.Resource{note("a"), note("b"), note("c")}, nil)
	fx.cache.EXPECT().Set(mock.Anything, mock.Anything).Return()

	result, err := fx.service.Search(ctx, usecase.SearchQuery{
		Kind:         entity.KindNote,
		DepartmentID: "1",
		Term:         "  data ",
		SharedID:     "b",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids(result.Records))
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Visible)
	assert.Empty(t, result.Notices)
}

func TestResourceService_Search_CacheHitSkipsStore(t *testing.T) {
	fx := createTestResourceService(t)
	ctx := context.Background()

	cached := []entity.Resource{note("a"), note("b")}
	fx.cache.EXPECT().Get(resultCacheKey(entity.KindNote, "1", "")).Return(cached, true)

	result, err := fx.service.Search(ctx, usecase.SearchQuery{Kind: entity.KindNote, DepartmentID: "1", SharedID: "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(result.Records))
	// Promotion must not leak into the cached list.
	assert.Equal(t, []string{"a", "b"}, ids(cached))
	fx.repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestResourceService_Search_VisibleWindow(t *testing.T) {
	fx := createTestResourceService(t)
	ctx := context.Background()

	many := make([]entity.Resource, 0, 12)
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"} {
		many = append(many, note(id))
	}
	fx.cache.EXPECT().Get(mock.Anything).Return(many, true)

	idle, err := fx.service.Search(ctx, usecase.SearchQuery{Kind: entity.KindNote, DepartmentID: "1"})
	require.NoError(t, err)
	assert.Equal(t, 6, idle.Visible)

	searching, err := fx.service.Search(ctx, usecase.SearchQuery{Kind: entity.KindNote, DepartmentID: "1", Term: "data"})
	require.NoError(t, err)
	assert.Equal(t, 10, searching.Visible)
	assert.Equal(t, 12, searching.Total)
}

func TestResourceService_Search_FailureBecomesNotice(t *testing.T) {
	fx := createTestResourceService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(mock.Anything).Return(nil, false)
	fx.repo.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	result, err := fx.service.Search(ctx, usecase.SearchQuery{Kind: entity.KindSyllabus, DepartmentID: "2"})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	require.Len(t, result.Notices, 1)
	assert.Equal(t, entity.NoticeQueryFailed, result.Notices[0].Code)
	assert.Equal(t, entity.NoticeError, result.Notices[0].Level)
	assert.Equal(t, "Failed to fetch", result.Notices[0].Message)
	fx.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestResourceService_Search_EmptyResultNotice(t *testing.T) {
	fx := createTestResourceService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(mock.Anything).Return(nil, false)
	fx.repo.EXPECT().Search(mock.Anything, mock.Anything).Return([]entity.Resource{}, nil)
	fx.cache.EXPECT().Set(mock.Anything, []entity.Resource{}).Return()

	result, err := fx.service.Search(ctx, usecase.SearchQuery{Kind: entity.KindPastQuestion, DepartmentID: "3", Term: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	require.Len(t, result.Notices, 1)
	assert.Equal(t, entity.NoticeNoResults, result.Notices[0].Code)
}

func TestResourceService_Search_InvalidInput(t *testing.T) {
	fx := createTestResourceService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query usecase.SearchQuery
	}{
		{name: "missing department", query: usecase.SearchQuery{Kind: entity.KindNote}},
		{name: "blank department", query: usecase.SearchQuery{Kind: entity.KindNote, DepartmentID: "  "}},
		{name: "unknown department", query: usecase.SearchQuery{Kind: entity.KindNote, DepartmentID: "99"}},
		{name: "unknown kind", query: usecase.SearchQuery{Kind: "video", DepartmentID: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := fx.service.Search(ctx, tt.query)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}

	fx.repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

// gatedResourceRepo blocks every read until released or until the read's own context ends.
type gatedResourceRepo struct {
	started     chan struct{}
	release     chan struct{}
	once        sync.Once
	mu          sync.Mutex
	cancelledBy error
}

func (r *gatedResourceRepo) Search(ctx context.Context, _ repository.ResourceFilter) ([]entity.Resource, error) {
	r.once.Do(func() { close(r.started) })

	select {
	case <-r.release:
		return []entity.Resource{note("a")}, nil
	case <-ctx.Done():
		r.mu.Lock()
		r.cancelledBy = ctx.Err()
		r.mu.Unlock()

		return nil, ctx.Err()
	}
}

func TestResourceService_Search_CancelledCallerDoesNotFailOthers(t *testing.T) {
	repo := &gatedResourceRepo{started: make(chan struct{}), release: make(chan struct{})}
	cache := mockSvc.NewMockResultCache(t)
	cache.EXPECT().Get(mock.Anything).Return(nil, false)
	cache.EXPECT().Set(mock.Anything, mock.Anything).Return().Maybe()

	service := NewResourceService(ResourceServiceParams{
		Repo:   repo,
		Cache:  cache,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	query := usecase.SearchQuery{Kind: entity.KindNote, DepartmentID: "1", Term: "graphs"}

	ctxA, cancelA := context.WithCancel(context.Background())
	resultA := make(chan *usecase.OrderedResultSet, 1)
	go func() {
		res, _ := service.Search(ctxA, query)
		resultA <- res
	}()
	<-repo.started

	resultB := make(chan *usecase.OrderedResultSet, 1)
	go func() {
		res, _ := service.Search(context.Background(), query)
		resultB <- res
	}()

	cancelA()
	a := <-resultA
	require.Len(t, a.Notices, 1)
	assert.Equal(t, entity.NoticeQueryFailed, a.Notices[0].Code)

	close(repo.release)
	b := <-resultB
	assert.Equal(t, []string{"a"}, ids(b.Records))
	assert.Empty(t, b.Notices)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.NoError(t, repo.cancelledBy)
}
