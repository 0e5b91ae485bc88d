package service

import (
	"time"

	"github.com/google/uuid"
)

// AccessClaims are the claims carried by a service access token.
type AccessClaims struct {
	UserID    uuid.UUID
	Roles     []string
	ExpiresAt time.Time
}

// TokenService issues and validates the service's own access tokens.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, roles []string) (token string, expiresAt time.Time, err error)
	ValidateToken(token string) (*AccessClaims, error)
}
