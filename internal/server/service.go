// Package server hosts the HTTP API for the invoice store. Mutating and
// schema-management endpoints are internal-only: they sit behind the
// LocalhostOnly middleware and never run for remote callers.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriankd/maintenance-plus/constants"
	"github.com/adriankd/maintenance-plus/internal/common"
	"github.com/adriankd/maintenance-plus/internal/export"
	"github.com/adriankd/maintenance-plus/internal/repository"
)

// PingFunc reports storage reachability for the health endpoint.
type PingFunc func(ctx context.Context) error

type Server struct {
	echo     *echo.Echo
	logger   *slog.Logger
	invoices repository.InvoiceRepository
	export   *export.Service
	ping     PingFunc
}

func NewServer(invoices repository.InvoiceRepository, exportSvc *export.Service, ping PingFunc, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:     e,
		logger:   logger,
		invoices: invoices,
		export:   exportSvc,
		ping:     ping,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.Use(RequestID())

	s.echo.GET("/healthz", s.handleHealthz)

	api := s.echo.Group("/api")
	api.GET("/invoices", s.handleListInvoices)
	api.GET("/invoices/export", s.handleExportInvoices)
	api.GET("/invoices/number/:invoiceNumber", s.handleGetInvoiceByNumber)
	api.GET("/invoices/:id", s.handleGetInvoice)
	api.GET("/invoices/:id/lines", s.handleListInvoiceLines)
	api.GET("/categories", s.handleListCategories)

	// invoice rows are produced by processing jobs on this host; writes
	// never come in from the outside
	api.POST("/invoices", s.handleCreateInvoice, LocalhostOnly())
	api.DELETE("/invoices/:id", s.handleDeleteInvoice, LocalhostOnly())

	internal := s.echo.Group("/internal", LocalhostOnly())
	internal.POST("/schema/migrate", s.handleMigrateSchema)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealthz(c echo.Context) error {
	if s.ping != nil {
		if err := s.ping(c.Request().Context()); err != nil {
			s.logger.Error("health check failed", "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unreachable")
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"categories": constants.AsStringSlice()})
}

func (s *Server) handleMigrateSchema(c echo.Context) error {
	if err := s.invoices.Migrate(c.Request().Context()); err != nil {
		s.logger.Error("migration failed", "error", err)
		return common.InternalError("schema migration failed")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "migrated"})
}
