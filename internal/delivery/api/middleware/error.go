package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"studyhub/internal/delivery/api/response"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware turns errors returned by handlers into the error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Unknown errors become
// a generic 500 so driver and network messages stay in the logs.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, "Request failed", err, slog.String("code", appErr.ErrorCode()))
		}
		_ = response.AppError(c, appErr)
	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	default:
		m.logFailure(c, "Unhandled error", err)
		_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
	}
}

func (m *ErrorMiddleware) logFailure(c echo.Context, msg string, err error, attrs ...any) {
	req := c.Request()
	attrs = append(attrs,
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
	if trace := errors.StackTrace(err); len(trace) > 0 {
		frame := trace[0]
		attrs = append(attrs, slog.String("origin", fmt.Sprintf("%n %s:%d", frame, frame, frame)))
	}
	m.logger.ErrorContext(req.Context(), msg, attrs...)
}
