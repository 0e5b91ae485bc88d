// Package firebase verifies ID tokens issued by Firebase Authentication.
package firebase

import (
	"context"
	"log/slog"
	"strings"

	"studyhub/config"
	"studyhub/internal/domain/constants"
	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/service"

	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// tokenVerifier is the subset of the Firebase auth client the verifier uses.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type verifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewVerifier initializes a Firebase app from the configured project and credentials.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Identity == nil {
		return nil, errors.New("identity config is required for the firebase provider")
	}

	var opts []option.ClientOption
	if cfg.Identity.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Identity.CredentialsPath))
	}

	var appCfg *fb.Config
	if cfg.Identity.ProjectID != "" {
		appCfg = &fb.Config{ProjectID: cfg.Identity.ProjectID}
	}

	app, err := fb.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &verifier{client: client, logger: logger}, nil
}

// Verify validates the ID token and maps its claims to an identity.
func (v *verifier) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "token verification failed")
	}

	identity := tokenToIdentity(token)
	v.logger.DebugContext(ctx, "Firebase ID token verified", slog.String("uid", identity.Subject))

	return identity, nil
}

// Provider returns the identity provider name.
func (v *verifier) Provider() string {
	return constants.IdentityProviderFirebase
}

func tokenToIdentity(token *fbauth.Token) *entity.Identity {
	identity := &entity.Identity{
		Provider: constants.IdentityProviderFirebase,
		Subject:  token.UID,
	}

	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = strings.TrimSpace(email)
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.AvatarURL = picture
	}

	return identity
}
