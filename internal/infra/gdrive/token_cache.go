// Package gdrive resolves course archives on Google Drive.
package gdrive

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Exchanger obtains a fresh access token from the OAuth provider.
type Exchanger interface {
	Exchange(ctx context.Context) (*oauth2.Token, error)
}

// RefreshExchanger runs the refresh-token grant against a token endpoint.
type RefreshExchanger struct {
	config       *oauth2.Config
	refreshToken string
	httpClient   *http.Client
}

// NewRefreshExchanger creates an exchanger for a long-lived refresh token.
// A nil httpClient uses http.DefaultClient.
func NewRefreshExchanger(clientID, clientSecret, tokenURL, refreshToken string, httpClient *http.Client) *RefreshExchanger {
	return &RefreshExchanger{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		refreshToken: refreshToken,
		httpClient:   httpClient,
	}
}

// Exchange posts grant_type=refresh_token and returns the issued access token.
func (e *RefreshExchanger) Exchange(ctx context.Context) (*oauth2.Token, error) {
	if e.refreshToken == "" {
		return nil, errors.New("refresh token is not configured")
	}
	if e.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)
	}

	token, err := e.config.TokenSource(ctx, &oauth2.Token{RefreshToken: e.refreshToken}).Token()
	if err != nil {
		return nil, errors.Wrap(err, "refresh token exchange")
	}

	return token, nil
}

// TokenCache holds the Drive access token for the whole process.
// The first call exchanges the refresh token; later calls reuse the cached token
// until it is within leeway of the expiry the provider reported.
type TokenCache struct {
	mu         sync.Mutex
	exchanger  Exchanger
	leeway     time.Duration
	now        func() time.Time
	token      *oauth2.Token
	obtainedAt time.Time
	logger     *slog.Logger
}

// NewTokenCache creates an empty cache.
func NewTokenCache(exchanger Exchanger, leeway time.Duration, logger *slog.Logger) *TokenCache {
	return &TokenCache{
		exchanger: exchanger,
		leeway:    leeway,
		now:       time.Now,
		logger:    logger,
	}
}

// AccessToken returns the cached token, exchanging first when none is usable.
// Exchange failures are returned as ErrAuthFailed and are not retried.
func (c *TokenCache) AccessToken(ctx context.Context) (string, error) {
	token, err := c.current(ctx)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

func (c *TokenCache) current(ctx context.Context) (*oauth2.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.usable() {
		return c.token, nil
	}

	token, err := c.exchanger.Exchange(ctx)
	if err != nil {
		tokenExchangesTotal.WithLabelValues("failed").Inc()
		c.logger.Error("Drive token exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrAuthFailed.WrapMessage(err.Error())
	}
	if token == nil || token.AccessToken == "" {
		tokenExchangesTotal.WithLabelValues("failed").Inc()

		return nil, domainerrors.ErrAuthFailed.WithDetails("token endpoint returned no access token")
	}

	tokenExchangesTotal.WithLabelValues("ok").Inc()
	c.token = token
	c.obtainedAt = c.now()
	if token.Expiry.IsZero() {
		c.logger.Debug("Obtained Drive access token without expiry")
	} else {
		c.logger.Debug("Obtained Drive access token",
			slog.Time("expiry", token.Expiry),
			slog.String("valid_for", util.FormatDuration(token.Expiry.Sub(c.now()))),
		)
	}

	return token, nil
}

// ObtainedAt reports when the cached token was exchanged. Zero when empty.
func (c *TokenCache) ObtainedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.obtainedAt
}

// Invalidate drops the cached token so the next call exchanges again.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = nil
	c.obtainedAt = time.Time{}
}

// usable must be called with mu held.
func (c *TokenCache) usable() bool {
	if c.token == nil || c.token.AccessToken == "" {
		return false
	}
	if c.token.Expiry.IsZero() {
		return true
	}

	return c.now().Add(c.leeway).Before(c.token.Expiry)
}

// TokenSource adapts the cache to oauth2.TokenSource for Google API clients.
func (c *TokenCache) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSourceAdapter{cache: c, ctx: ctx}
}

type tokenSourceAdapter struct {
	cache *TokenCache
	ctx   context.Context
}

// Token implements oauth2.TokenSource. The expiry is pulled forward by the
// leeway so wrapping token caches hand control back before the cache refreshes.
func (t *tokenSourceAdapter) Token() (*oauth2.Token, error) {
	token, err := t.cache.current(t.ctx)
	if err != nil {
		return nil, err
	}

	out := &oauth2.Token{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
	}
	if !token.Expiry.IsZero() {
		out.Expiry = token.Expiry.Add(-t.cache.leeway)
	}

	return out, nil
}
