// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"
	"strings"

	"studyhub/config"
	"studyhub/internal/domain/constants"
	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// validateFunc matches idtoken.Validator.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type verifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewVerifier builds a verifier that checks signature, expiry and audience against Google's certificates.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...option.ClientOption) (service.IdentityVerifier, error) {
	if cfg.Identity == nil || cfg.Identity.ClientID == "" {
		return nil, errors.New("identity.clientId must be set for the google provider")
	}

	validator, err := idtoken.NewValidator(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ID token validator")
	}

	return newVerifier(cfg.Identity.ClientID, validator.Validate, logger), nil
}

func newVerifier(clientID string, validate validateFunc, logger *slog.Logger) *verifier {
	return &verifier{
		clientID: clientID,
		validate: validate,
		logger:   logger,
	}
}

// Verify validates the ID token and maps its claims to an identity.
func (v *verifier) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "token verification failed")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	identity := payloadToIdentity(payload)
	if identity.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	v.logger.DebugContext(ctx, "Google ID token verified", slog.String("subject", identity.Subject))

	return identity, nil
}

// Provider returns the identity provider name.
func (v *verifier) Provider() string {
	return constants.IdentityProviderGoogle
}

func payloadToIdentity(payload *idtoken.Payload) *entity.Identity {
	identity := &entity.Identity{
		Provider: constants.IdentityProviderGoogle,
		Subject:  payload.Subject,
	}

	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = strings.TrimSpace(email)
	}
	identity.EmailVerified = claimBool(payload.Claims["email_verified"])
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		identity.AvatarURL = picture
	}

	return identity
}

// claimBool accepts both true and "true"; older tokens carried the string form.
func claimBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	default:
		return false
	}
}
