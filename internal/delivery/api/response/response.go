// Package response writes the JSON envelope shared by every endpoint:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "studyhub/internal/delivery/context"
	domainerrors "studyhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Meta is attached to every response.
type Meta struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse is the body of a 2xx response.
type SuccessResponse struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

// ErrorBody describes a failure. Details never leave the server for 5xx, 401 and 403.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse is the body of a non-2xx response.
type ErrorResponse struct {
	Error *ErrorBody `json:"error"`
	Meta  Meta       `json:"meta"`
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

func redacted(status int) bool {
	return status >= http.StatusInternalServerError ||
		status == http.StatusUnauthorized ||
		status == http.StatusForbidden
}

// Success writes data inside the success envelope.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes the error envelope.
func Error(c echo.Context, status int, code, message string, details any) error {
	if redacted(status) {
		details = nil
	}

	return c.JSON(status, ErrorResponse{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BadRequest writes a 400. Pass nil details when there is nothing to add.
func BadRequest(c echo.Context, code, message string, details any) error {
	return Error(c, http.StatusBadRequest, code, message, details)
}

func Unauthorized(c echo.Context, code, message string) error {
	return Error(c, http.StatusUnauthorized, code, message, nil)
}

func Forbidden(c echo.Context, code, message string) error {
	return Error(c, http.StatusForbidden, code, message, nil)
}

// AppError writes the status, code and message carried by appErr.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError answers with err when it is an AppError and otherwise returns it
// for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
