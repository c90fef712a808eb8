package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (echo.Context, string) {
	t.Helper()

	logger, _ := newCapturingLogger()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var seen string
	err := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)
	require.NoError(t, err)

	return c, seen
}

func TestRequestIDMiddleware_KeepsCallerID(t *testing.T) {
	c, seen := runRequestID(t, "checkout-42")

	assert.Equal(t, "checkout-42", seen)
	assert.Equal(t, "checkout-42", deliverycontext.GetRequestID(c))
	assert.Equal(t, "checkout-42", c.Response().Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesUnusableID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"too long", strings.Repeat("a", maxRequestIDLength+1)},
		{"whitespace", "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, seen := runRequestID(t, tt.header)

			assert.NotEmpty(t, seen)
			assert.NotEqual(t, tt.header, seen)
			assert.Equal(t, seen, c.Response().Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}
