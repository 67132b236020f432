package utils

import (
	"time"

	"github.com/adriankd/maintenance-plus/gen/ent"
	"github.com/adriankd/maintenance-plus/internal/entity"
)

func ToInvoiceHeader(e *ent.InvoiceHeader) *entity.InvoiceHeader {
	return &entity.InvoiceHeader{
		ID:              e.ID,
		VehicleID:       e.VehicleID,
		InvoiceDate:     e.InvoiceDate,
		InvoiceNumber:   e.InvoiceNumber,
		TotalCost:       e.TotalCost,
		TotalPartsCost:  e.TotalPartsCost,
		TotalLaborCost:  e.TotalLaborCost,
		Odometer:        e.Odometer,
		ConfidenceScore: e.ConfidenceScore,
		CreatedAt:       e.CreatedAt,
	}
}

// ToInvoiceHeaderWithLines expects the lines edge to be loaded.
func ToInvoiceHeaderWithLines(e *ent.InvoiceHeader) *entity.InvoiceHeader {
	header := ToInvoiceHeader(e)
	header.Lines = make([]*entity.InvoiceLine, len(e.Edges.Lines))
	for i, ln := range e.Edges.Lines {
		header.Lines[i] = ToInvoiceLine(ln)
	}
	return header
}

func ToInvoiceLine(e *ent.InvoiceLine) *entity.InvoiceLine {
	return &entity.InvoiceLine{
		ID:              e.ID,
		InvoiceID:       e.InvoiceID,
		LineNumber:      e.LineNumber,
		Category:        e.Category,
		PartNumber:      e.PartNumber,
		UnitCost:        e.UnitCost,
		Quantity:        e.Quantity,
		TotalLineCost:   e.TotalLineCost,
		ConfidenceScore: e.ConfidenceScore,
		CreatedAt:       e.CreatedAt,
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
