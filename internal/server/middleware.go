package server

import (
	"net"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adriankd/maintenance-plus/internal/common"
)

// ForbiddenMessage is the fixed denial body for non-loopback callers.
const ForbiddenMessage = "This endpoint is only accessible from localhost"

// RequestIDHeader is the HTTP header carrying the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// LocalhostOnly restricts an endpoint to loopback callers. The decision is
// made on the connection's remote address, never on forwarding headers, and
// fails closed when the address is missing or unparseable.
func LocalhostOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !isLoopback(c.Request().RemoteAddr) {
				return echo.NewHTTPError(http.StatusForbidden, ForbiddenMessage)
			}
			return next(c)
		}
	}
}

func isLoopback(remoteAddr string) bool {
	if remoteAddr == "" {
		return false
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		// some test transports hand over a bare IP without a port
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.Equal(net.IPv4(127, 0, 0, 1)) || ip.Equal(net.IPv6loopback) || ip.IsLoopback()
}

// RequestID ensures each request carries a correlation ID: reuse the incoming
// header when present, otherwise generate one. The ID is echoed back on the
// response and stored in the request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			c.Response().Header().Set(RequestIDHeader, id)
			ctx := common.WithRequestID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
