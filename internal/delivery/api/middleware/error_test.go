package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyhub/internal/delivery/api/response"
	domainerrors "studyhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/files/pyq", nil), rec)

	NewErrorMiddleware(slog.Default()).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppErrorWithDetails(t *testing.T) {
	rec, body := handle(t, domainerrors.ErrFileNotFound.WithDetails("No pyq.zip found for this course."))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FILE_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "No pyq.zip found for this course.", body.Error.Details)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	rec, body := handle(t, domainerrors.ErrAuthFailed.WrapMessage("token exchange failed"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "AUTH_FAILED", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	rec, body := handle(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestHandleHTTPError_UnknownErrorIsHidden(t *testing.T) {
	rec, body := handle(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleHTTPError_LogsOrigin(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/files/notes", nil), httptest.NewRecorder())

	NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil))).HandleHTTPError(errors.New("drive down"), c)

	assert.Contains(t, buf.String(), `"msg":"Unhandled error"`)
	assert.Contains(t, buf.String(), "TestHandleHTTPError_LogsOrigin")
}
