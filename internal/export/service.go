package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adriankd/maintenance-plus/internal/repository"
)

// Service is a tiny façade over the invoice repository that produces XLSX bytes for exports.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) of invoice headers
// matching the filter. If only FromDate is set the window runs from..today.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, filter repository.ListInvoicesFilter) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	if filter.FromDate != nil {
		f := time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC)
		filter.FromDate = &f
	}
	if filter.ToDate != nil {
		t := time.Date(filter.ToDate.Year(), filter.ToDate.Month(), filter.ToDate.Day(), 0, 0, 0, 0, time.UTC)
		filter.ToDate = &t
	}
	if filter.FromDate != nil && filter.ToDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		filter.ToDate = &t
	}

	invoices, err := s.invoices.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Invoice Number",
		"Vehicle ID",
		"Invoice Date",
		"Total Cost",
		"Parts Cost",
		"Labor Cost",
		"Odometer",
		"Confidence",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, inv.InvoiceNumber)
		write(2, inv.VehicleID)
		if !inv.InvoiceDate.IsZero() {
			write(3, inv.InvoiceDate.Format("2006-01-02"))
		} else {
			write(3, "")
		}
		write(4, fmt.Sprintf("%.2f", inv.TotalCost))
		write(5, fmt.Sprintf("%.2f", inv.TotalPartsCost))
		write(6, fmt.Sprintf("%.2f", inv.TotalLaborCost))
		if inv.Odometer != nil {
			write(7, *inv.Odometer)
		} else {
			write(7, "")
		}
		if inv.ConfidenceScore != nil {
			write(8, fmt.Sprintf("%.2f", *inv.ConfidenceScore))
		} else {
			write(8, "")
		}
		write(9, inv.CreatedAt.UTC().Format(time.RFC3339))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 20) // invoice number
	_ = f.SetColWidth(sheet, "B", "B", 12) // vehicle
	_ = f.SetColWidth(sheet, "C", "C", 14) // date
	_ = f.SetColWidth(sheet, "D", "F", 14) // amounts
	_ = f.SetColWidth(sheet, "G", "H", 12) // odometer / confidence
	_ = f.SetColWidth(sheet, "I", "I", 24) // created

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
