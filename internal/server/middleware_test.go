package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalhostOnly(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		allowed    bool
	}{
		{name: "ipv4 loopback", remoteAddr: "127.0.0.1:51234", allowed: true},
		{name: "ipv4 loopback range", remoteAddr: "127.0.0.2:443", allowed: true},
		{name: "ipv6 loopback", remoteAddr: "[::1]:51234", allowed: true},
		{name: "private ipv4", remoteAddr: "10.1.2.3:51234", allowed: false},
		{name: "public ipv4", remoteAddr: "203.0.113.9:80", allowed: false},
		{name: "public ipv6", remoteAddr: "[2001:db8::1]:443", allowed: false},
		{name: "missing address fails closed", remoteAddr: "", allowed: false},
		{name: "garbage address fails closed", remoteAddr: "not-an-address", allowed: false},
		{name: "hostname fails closed", remoteAddr: "localhost:8080", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/api/invoices/1", nil)
			req.RemoteAddr = tt.remoteAddr
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusNoContent)
			}

			err := LocalhostOnly()(next)(c)

			if tt.allowed {
				require.NoError(t, err)
				assert.True(t, called, "handler should run for loopback callers")
				return
			}

			require.Error(t, err)
			assert.False(t, called, "handler must not run for non-loopback callers")
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusForbidden, httpErr.Code)
			assert.Equal(t, ForbiddenMessage, httpErr.Message)
		})
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()

	t.Run("generates an id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequestID()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	})

	t.Run("reuses the incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequestID()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})
}
