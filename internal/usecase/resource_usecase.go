// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"studyhub/internal/domain/entity"
)

// --- Input DTOs ---

// SearchQuery is one search invocation issued by a browsing view.
type SearchQuery struct {
	Kind         entity.Kind
	DepartmentID string
	Term         string
	// SharedID comes from the "shared" query parameter of a deep link.
	SharedID string
}

// --- Output DTOs ---

// OrderedResultSet is the ordered result set handed back to the view.
// An empty Records with an error notice means the read failed; callers can only
// tell "empty" and "failed" apart through Notices.
type OrderedResultSet struct {
	Records []entity.Resource `json:"records"`
	Total   int               `json:"total"`
	Visible int               `json:"visible"`
	Notices []entity.Notice   `json:"notices"`
}

// ResourceUsecase is the resource discovery contract.
type ResourceUsecase interface {
	// Search returns the department- and term-filtered, shared-first record list.
	// Only invalid input is returned as an error; read failures become notices.
	Search(ctx context.Context, query SearchQuery) (*OrderedResultSet, error)

	// VisibleCount is how many records from the front of the list should render.
	VisibleCount(term string) int
}
