package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext(ctx context.Context) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	assert.Empty(t, GetRequestID(newEchoContext(context.Background())))

	c := newEchoContext(WithRequestID(context.Background(), "from-ctx"))
	assert.Equal(t, "from-ctx", GetRequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With("request_id", "r")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestPrincipal(t *testing.T) {
	c := newEchoContext(context.Background())
	_, ok := GetUserID(c)
	assert.False(t, ok)
	assert.Nil(t, GetRoles(c))

	id := uuid.New()
	SetPrincipal(c, id, []string{"admin"})

	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, []string{"admin"}, GetRoles(c))
}
