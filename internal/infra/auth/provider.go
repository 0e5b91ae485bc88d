package auth

import (
	"context"
	"log/slog"

	"studyhub/config"
	"studyhub/internal/domain/constants"
	"studyhub/internal/domain/service"
	"studyhub/internal/infra/auth/firebase"
	"studyhub/internal/infra/auth/google"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams defines the dependencies for the identity verifier.
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityVerifier selects the verifier named by identity.provider; google is the default.
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	provider := constants.IdentityProviderGoogle
	if params.Config.Identity != nil && params.Config.Identity.Provider != "" {
		provider = params.Config.Identity.Provider
	}

	params.Logger.Info("Initializing identity verifier", slog.String("provider", provider))

	switch provider {
	case constants.IdentityProviderGoogle:
		return google.NewVerifier(params.Ctx, params.Config, params.Logger)
	case constants.IdentityProviderFirebase:
		return firebase.NewVerifier(params.Ctx, params.Config, params.Logger)
	default:
		return nil, errors.Errorf("unknown identity provider: %s", provider)
	}
}
