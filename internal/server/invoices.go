package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adriankd/maintenance-plus/internal/common"
	"github.com/adriankd/maintenance-plus/internal/repository"
	"github.com/adriankd/maintenance-plus/internal/utils"
)

func (s *Server) handleListInvoices(c echo.Context) error {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		return err
	}

	invoices, err := s.invoices.List(c.Request().Context(), filter)
	if err != nil {
		s.logger.Error("failed to list invoices", "error", err)
		return common.InternalError("list invoices failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"invoices": invoices, "count": len(invoices)})
}

func (s *Server) handleGetInvoice(c echo.Context) error {
	id, err := invoiceIDParam(c)
	if err != nil {
		return err
	}

	invoice, err := s.invoices.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NotFoundError("invoice not found")
		}
		s.logger.Error("failed to get invoice", "invoice_id", id, "error", err)
		return common.InternalError("get invoice failed")
	}
	return c.JSON(http.StatusOK, invoice)
}

func (s *Server) handleGetInvoiceByNumber(c echo.Context) error {
	number := strings.TrimSpace(c.Param("invoiceNumber"))
	if number == "" {
		return common.BadRequestError("invoice number is required")
	}

	invoice, err := s.invoices.GetByNumber(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NotFoundError("invoice not found")
		}
		s.logger.Error("failed to get invoice by number", "invoice_number", number, "error", err)
		return common.InternalError("get invoice failed")
	}
	return c.JSON(http.StatusOK, invoice)
}

func (s *Server) handleListInvoiceLines(c echo.Context) error {
	id, err := invoiceIDParam(c)
	if err != nil {
		return err
	}

	lines, err := s.invoices.ListLines(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NotFoundError("invoice not found")
		}
		s.logger.Error("failed to list invoice lines", "invoice_id", id, "error", err)
		return common.InternalError("list lines failed")
	}
	return c.JSON(http.StatusOK, map[string]any{"lines": lines, "count": len(lines)})
}

func (s *Server) handleCreateInvoice(c echo.Context) error {
	req, err := decodeCreateInvoice(c)
	if err != nil {
		return err
	}

	invoice, err := s.invoices.Create(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrConstraint) {
			// duplicate invoice number, duplicate line number, or a check
			// the mirrored validation did not catch
			return common.ConflictError(err.Error())
		}
		s.logger.Error("failed to create invoice",
			"invoice_number", req.InvoiceNumber,
			"request_id", common.RequestIDFromContext(c.Request().Context()),
			"error", err)
		return common.InternalError("create invoice failed")
	}
	return c.JSON(http.StatusCreated, invoice)
}

func (s *Server) handleDeleteInvoice(c echo.Context) error {
	id, err := invoiceIDParam(c)
	if err != nil {
		return err
	}

	if err := s.invoices.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NotFoundError("invoice not found")
		}
		s.logger.Error("failed to delete invoice", "invoice_id", id, "error", err)
		return common.InternalError("delete invoice failed")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleExportInvoices(c echo.Context) error {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		return err
	}

	data, err := s.export.ExportInvoicesXLSX(c.Request().Context(), filter)
	if err != nil {
		s.logger.Error("failed to export invoices", "error", err)
		return common.InternalError("export failed")
	}

	filename := fmt.Sprintf("invoices-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func invoiceIDParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, common.BadRequestError("invoice id must be a positive integer")
	}
	return id, nil
}

func listFilterFromQuery(c echo.Context) (repository.ListInvoicesFilter, error) {
	var filter repository.ListInvoicesFilter

	if v := strings.TrimSpace(c.QueryParam("vehicle_id")); v != "" {
		vehicleID, err := strconv.Atoi(v)
		if err != nil || vehicleID <= 0 {
			return filter, common.BadRequestError("vehicle_id must be a positive integer")
		}
		filter.VehicleID = &vehicleID
	}
	if v := strings.TrimSpace(c.QueryParam("from_date")); v != "" {
		from, err := utils.ParseYMD(v)
		if err != nil {
			return filter, common.BadRequestErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.FromDate = &from
	}
	if v := strings.TrimSpace(c.QueryParam("to_date")); v != "" {
		to, err := utils.ParseYMD(v)
		if err != nil {
			return filter, common.BadRequestErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.ToDate = &to
	}
	return filter, nil
}
