package gdrive

import (
	"context"
	"log/slog"

	"studyhub/config"
	"studyhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the Drive clients
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenCacheFromConfig builds the process-wide token cache from the drive section.
func NewTokenCacheFromConfig(params Params) *TokenCache {
	cfg := params.Config.Drive
	exchanger := NewRefreshExchanger(cfg.ClientID, cfg.ClientSecret, cfg.TokenURL, cfg.RefreshToken, nil)

	return NewTokenCache(exchanger, cfg.RefreshLeeway, params.Logger)
}

// NewAccessTokenProvider exposes the cache through the domain port.
func NewAccessTokenProvider(cache *TokenCache) service.AccessTokenProvider {
	return cache
}

// ListerParams holds dependencies for the Drive file lister, injected by Fx.
type ListerParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Tokens *TokenCache
	Logger *slog.Logger
}

// NewFileLister creates a rate-limited Drive v3 client authorised by the token cache.
func NewFileLister(params ListerParams) (service.FileLister, error) {
	cfg := params.Config.Drive
	if cfg.RootFolderID == "" {
		params.Logger.Warn("Drive root folder is not configured; file links will not resolve")
	}

	opts := []option.ClientOption{option.WithTokenSource(params.Tokens.TokenSource(params.Ctx))}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := drive.NewService(params.Ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Drive service")
	}

	limiter := NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst)

	return NewLister(svc, limiter, params.Tokens, params.Logger), nil
}
