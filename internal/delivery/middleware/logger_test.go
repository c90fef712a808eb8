package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func serveThroughLogger(t *testing.T, debug bool, handler echo.HandlerFunc) map[string]any {
	t.Helper()

	logger, buf := newCapturingLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/products/7?force=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id")

	_ = NewLoggerMiddleware(logger, cfg).Handle(handler)(c)

	if buf.Len() == 0 {
		return nil
	}

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	return line
}

func TestLoggerMiddleware_LogsIdentityAndRoute(t *testing.T) {
	line := serveThroughLogger(t, true, func(c echo.Context) error {
		deliverycontext.SetIdentity(c, entity.Seller{Principal: entity.Principal{UserID: 5, Username: "acme"}, BrandID: 2})

		return c.NoContent(http.StatusNoContent)
	})

	require.NotNil(t, line)
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "/products/:id", line["route"])
	assert.Equal(t, "/products/7", line["uri"])
	assert.Equal(t, "force=1", line["query"])
	assert.Equal(t, "seller", line["role"])
	assert.EqualValues(t, 5, line["user_id"])
	assert.EqualValues(t, http.StatusNoContent, line["status"])
}

func TestLoggerMiddleware_UsesErrorStatusBeforeCommit(t *testing.T) {
	line := serveThroughLogger(t, true, func(echo.Context) error {
		return errors.Wrap(domainerrors.ErrOwnership, "delete product")
	})

	require.NotNil(t, line)
	assert.Equal(t, "WARN", line["level"])
	assert.EqualValues(t, http.StatusForbidden, line["status"])
	assert.NotContains(t, line, "user_id")
}

func TestLoggerMiddleware_UnknownErrorIsServerError(t *testing.T) {
	line := serveThroughLogger(t, true, func(echo.Context) error {
		return errors.New("boom")
	})

	require.NotNil(t, line)
	assert.Equal(t, "ERROR", line["level"])
	assert.EqualValues(t, http.StatusInternalServerError, line["status"])
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	line := serveThroughLogger(t, false, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Nil(t, line)
}
