// Package service defines ports to infrastructure the use cases depend on.
package service

import (
	"context"

	"studyhub/internal/domain/entity"
)

// IdentityVerifier checks a token issued by the hosted identity provider.
type IdentityVerifier interface {
	// Verify validates the token and returns the identity it asserts.
	Verify(ctx context.Context, idToken string) (*entity.Identity, error)

	// Provider names the identity provider, e.g. "google".
	Provider() string
}
