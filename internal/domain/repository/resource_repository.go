// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"studyhub/internal/domain/entity"
)

// ResourceFilter selects resource records of one kind within one department.
type ResourceFilter struct {
	Kind         entity.Kind
	DepartmentID string
	// Term is matched case-insensitively as a substring of the variant's text columns.
	// Empty means no text filter.
	Term string
}

// ResourceRepository reads resource records. The store is authoritative; nothing here writes.
type ResourceRepository interface {
	// Search returns matching records ordered newest first.
	Search(ctx context.Context, filter ResourceFilter) ([]entity.Resource, error)
}
