package entity

import (
	"time"
)

// InvoiceHeader represents a maintenance invoice for data transfer between layers.
type InvoiceHeader struct {
	ID              int            `json:"invoice_id"`
	VehicleID       int            `json:"vehicle_id"`
	InvoiceDate     time.Time      `json:"invoice_date"`
	InvoiceNumber   string         `json:"invoice_number"`
	TotalCost       float64        `json:"total_cost"`
	TotalPartsCost  float64        `json:"total_parts_cost"`
	TotalLaborCost  float64        `json:"total_labor_cost"`
	Odometer        *int           `json:"odometer,omitempty"`
	ConfidenceScore *float64       `json:"confidence_score,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	Lines           []*InvoiceLine `json:"lines,omitempty"`
}

// InvoiceLine is a single parts/labor line item belonging to an InvoiceHeader.
type InvoiceLine struct {
	ID              int       `json:"line_id"`
	InvoiceID       int       `json:"invoice_id"`
	LineNumber      int       `json:"line_number"`
	Category        string    `json:"category"`
	PartNumber      *string   `json:"part_number,omitempty"`
	UnitCost        float64   `json:"unit_cost"`
	Quantity        float64   `json:"quantity"`
	TotalLineCost   float64   `json:"total_line_cost"`
	ConfidenceScore *float64  `json:"confidence_score,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
