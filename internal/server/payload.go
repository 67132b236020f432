package server

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/adriankd/maintenance-plus/constants"
	"github.com/adriankd/maintenance-plus/internal/common"
	"github.com/adriankd/maintenance-plus/internal/repository"
	"github.com/adriankd/maintenance-plus/internal/utils"
)

const maxInvoiceBodyBytes = 1 << 20

// createInvoicePayload is the JSON body accepted by POST /api/invoices.
type createInvoicePayload struct {
	VehicleID       int                 `json:"vehicle_id"`
	InvoiceDate     string              `json:"invoice_date"`
	InvoiceNumber   string              `json:"invoice_number"`
	TotalCost       float64             `json:"total_cost"`
	TotalPartsCost  float64             `json:"total_parts_cost"`
	TotalLaborCost  float64             `json:"total_labor_cost"`
	Odometer        *int                `json:"odometer,omitempty"`
	ConfidenceScore *float64            `json:"confidence_score,omitempty"`
	Lines           []createLinePayload `json:"lines"`
}

type createLinePayload struct {
	LineNumber      int      `json:"line_number"`
	Category        string   `json:"category"`
	PartNumber      *string  `json:"part_number,omitempty"`
	UnitCost        float64  `json:"unit_cost"`
	Quantity        float64  `json:"quantity"`
	TotalLineCost   float64  `json:"total_line_cost"`
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
}

// createInvoiceSchema rejects malformed bodies before any field-level
// validation runs. The numeric bounds mirror the storage check constraints.
var createInvoiceSchema = map[string]any{
	"type":     "object",
	"required": []any{"vehicle_id", "invoice_date", "invoice_number", "total_cost", "total_parts_cost", "total_labor_cost", "lines"},
	"properties": map[string]any{
		"vehicle_id":       map[string]any{"type": "integer", "minimum": 1},
		"invoice_date":     map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"invoice_number":   map[string]any{"type": "string", "minLength": 1},
		"total_cost":       map[string]any{"type": "number", "minimum": 0},
		"total_parts_cost": map[string]any{"type": "number", "minimum": 0},
		"total_labor_cost": map[string]any{"type": "number", "minimum": 0},
		"odometer":         map[string]any{"type": "integer", "minimum": 0},
		"confidence_score": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		"lines": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"line_number", "category", "unit_cost", "quantity", "total_line_cost"},
				"properties": map[string]any{
					"line_number":      map[string]any{"type": "integer", "minimum": 1},
					"category":         map[string]any{"type": "string", "minLength": 1},
					"part_number":      map[string]any{"type": "string"},
					"unit_cost":        map[string]any{"type": "number", "minimum": 0},
					"quantity":         map[string]any{"type": "number", "exclusiveMinimum": 0},
					"total_line_cost":  map[string]any{"type": "number", "minimum": 0},
					"confidence_score": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				},
			},
		},
	},
}

func decodeCreateInvoice(c echo.Context) (*repository.CreateInvoiceRequest, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxInvoiceBodyBytes))
	if err != nil {
		return nil, common.BadRequestError("unable to read request body")
	}

	if err := common.ValidateJSONAgainstSchema(createInvoiceSchema, body); err != nil {
		return nil, common.BadRequestErrorf("invalid invoice payload: %v", err)
	}

	var payload createInvoicePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, common.BadRequestErrorf("invalid invoice payload: %v", err)
	}

	if err := validateInvoicePayload(&payload); err != nil {
		return nil, err
	}

	invoiceDate, err := utils.ParseYMD(payload.InvoiceDate)
	if err != nil {
		return nil, common.BadRequestErrorf("invoice_date invalid (YYYY-MM-DD): %v", err)
	}

	req := &repository.CreateInvoiceRequest{
		VehicleID:       payload.VehicleID,
		InvoiceDate:     invoiceDate,
		InvoiceNumber:   payload.InvoiceNumber,
		TotalCost:       payload.TotalCost,
		TotalPartsCost:  payload.TotalPartsCost,
		TotalLaborCost:  payload.TotalLaborCost,
		Odometer:        payload.Odometer,
		ConfidenceScore: payload.ConfidenceScore,
		Lines:           make([]repository.CreateLineRequest, len(payload.Lines)),
	}
	for i, ln := range payload.Lines {
		// known category spellings are canonicalized; anything unrecognized
		// is stored as submitted
		category := ln.Category
		if canonical, matched := constants.Canonicalize(ln.Category); matched {
			category = string(canonical)
		}
		req.Lines[i] = repository.CreateLineRequest{
			LineNumber:      ln.LineNumber,
			Category:        category,
			PartNumber:      ln.PartNumber,
			UnitCost:        ln.UnitCost,
			Quantity:        ln.Quantity,
			TotalLineCost:   ln.TotalLineCost,
			ConfidenceScore: ln.ConfidenceScore,
		}
	}
	return req, nil
}

// validateInvoicePayload mirrors the storage check constraints so bad data is
// rejected before a transaction is opened.
func validateInvoicePayload(p *createInvoicePayload) error {
	v := common.NewValidator()
	v.Field("vehicle_id", p.VehicleID, common.PositiveInt)
	v.Field("invoice_number", p.InvoiceNumber, common.Required)
	v.Field("total_cost", p.TotalCost, common.NonNegativeAmount)
	v.Field("total_parts_cost", p.TotalPartsCost, common.NonNegativeAmount)
	v.Field("total_labor_cost", p.TotalLaborCost, common.NonNegativeAmount)
	v.Field("confidence_score", p.ConfidenceScore, common.ConfidenceScore)
	if p.Odometer != nil && *p.Odometer < 0 {
		return common.BadRequestError("odometer must not be negative")
	}

	seen := make(map[int]struct{}, len(p.Lines))
	for i, ln := range p.Lines {
		prefix := fmt.Sprintf("lines[%d].", i)
		v.Field(prefix+"line_number", ln.LineNumber, common.PositiveInt)
		v.Field(prefix+"category", ln.Category, common.Required)
		v.Field(prefix+"unit_cost", ln.UnitCost, common.NonNegativeAmount)
		v.Field(prefix+"quantity", ln.Quantity, common.PositiveQuantity)
		v.Field(prefix+"total_line_cost", ln.TotalLineCost, common.NonNegativeAmount)
		v.Field(prefix+"confidence_score", ln.ConfidenceScore, common.ConfidenceScore)
		if _, dup := seen[ln.LineNumber]; dup {
			return common.BadRequestErrorf("duplicate line_number %d", ln.LineNumber)
		}
		seen[ln.LineNumber] = struct{}{}
	}

	return common.ValidateAndReturnError(v)
}
