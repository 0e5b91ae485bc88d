package usecase

import (
	"context"
	"time"

	"studyhub/internal/domain/entity"
)

// SignInInput carries the token issued by the hosted identity provider.
type SignInInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// SignInOutput is returned after a successful sign-in.
type SignInOutput struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *entity.User `json:"user"`
	Roles       []string     `json:"roles"`
}

// AuthUsecase exchanges identity provider tokens for service access tokens.
type AuthUsecase interface {
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
}
