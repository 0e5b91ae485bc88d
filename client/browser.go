package client

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"studyhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSuperseded is returned for a search whose response arrived after a newer one was issued.
var ErrSuperseded = errors.New("search superseded by a newer query")

// Searcher runs one search; *Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
}

// Browser holds the state of one browsing view and only ever applies the newest response.
type Browser struct {
	searcher Searcher
	kind     entity.Kind
	logger   *slog.Logger
	onNotice func(entity.Notice)

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	department string
	term       string
	shared     string
	current    *SearchResult
	stale      int
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithNoticeHandler receives the notices of every applied response.
func WithNoticeHandler(fn func(entity.Notice)) BrowserOption {
	return func(b *Browser) { b.onNotice = fn }
}

// WithBrowserLogger sets the logger for discarded responses.
func WithBrowserLogger(logger *slog.Logger) BrowserOption {
	return func(b *Browser) { b.logger = logger }
}

// NewBrowser creates the view state for one resource kind.
func NewBrowser(searcher Searcher, kind entity.Kind, opts ...BrowserOption) *Browser {
	b := &Browser{
		searcher: searcher,
		kind:     kind,
		logger:   slog.Default(),
		onNotice: func(entity.Notice) {},
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// SetDepartment switches department and refreshes. The term is kept.
func (b *Browser) SetDepartment(ctx context.Context, departmentID string) error {
	b.mu.Lock()
	b.department = departmentID
	b.mu.Unlock()

	return b.refresh(ctx)
}

// SetTerm changes the search term and refreshes.
func (b *Browser) SetTerm(ctx context.Context, term string) error {
	b.mu.Lock()
	b.term = strings.TrimSpace(term)
	b.mu.Unlock()

	return b.refresh(ctx)
}

// SetShared marks the record a deep link pointed at and refreshes.
func (b *Browser) SetShared(ctx context.Context, resourceID string) error {
	b.mu.Lock()
	b.shared = resourceID
	b.mu.Unlock()

	return b.refresh(ctx)
}

// Current returns the records of the last applied response.
func (b *Browser) Current() []entity.Resource {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil
	}

	return slices.Clone(b.current.Records)
}

// Visible returns the records the view renders, a prefix of Current.
func (b *Browser) Visible() []entity.Resource {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil
	}

	n := min(b.current.Visible, len(b.current.Records))

	return slices.Clone(b.current.Records[:n])
}

// StaleResponses counts responses dropped because a newer search had started.
func (b *Browser) StaleResponses() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.stale
}

func (b *Browser) refresh(parent context.Context) error {
	b.mu.Lock()
	if b.department == "" {
		b.mu.Unlock()

		return nil
	}
	if b.cancel != nil {
		b.cancel()
	}
	b.generation++
	gen := b.generation
	ctx, cancel := context.WithCancel(parent)
	b.cancel = cancel
	params := SearchParams{
		Kind:         b.kind,
		DepartmentID: b.department,
		Term:         b.term,
		SharedID:     b.shared,
	}
	b.mu.Unlock()

	result, err := b.searcher.Search(ctx, params)

	b.mu.Lock()
	if gen != b.generation {
		b.stale++
		b.mu.Unlock()
		cancel()
		b.logger.DebugContext(parent, "Discarded superseded search",
			slog.String("kind", b.kind.String()),
			slog.Uint64("generation", gen),
		)

		return ErrSuperseded
	}
	b.cancel = nil
	if err == nil {
		b.current = result
	}
	b.mu.Unlock()
	cancel()

	if err != nil {
		return err
	}

	for _, n := range result.Notices {
		b.onNotice(n)
	}

	return nil
}
