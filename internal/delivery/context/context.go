// Package context carries request-scoped values between delivery and use cases.
// Values live on the echo.Context for handlers and on context.Context for
// everything below them.
package context

import (
	"context"
	"log/slog"

	"studyhub/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from clients and echoed on every response.
const HeaderXRequestID = "X-Request-Id"

const echoKeyRequestID = "request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// SetRequestID stores the request ID on the echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestID returns the ID set by the request ID middleware, falling back
// to the request context. It is empty outside that middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger when there is one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetPrincipal stores the authenticated user on the echo.Context.
func SetPrincipal(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyRoles, roles)
}

// GetUserID returns the user set by the auth middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return id, ok
}

// GetRoles returns nil for unauthenticated requests.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(constants.ContextKeyRoles).([]string)

	return roles
}
