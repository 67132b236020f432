// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adriankd/maintenance-plus/db/ent/schema"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceline"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceheaderFields := schema.InvoiceHeader{}.Fields()
	_ = invoiceheaderFields
	// invoiceheaderDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceheaderDescInvoiceNumber := invoiceheaderFields[3].Descriptor()
	// invoiceheader.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoiceheader.InvoiceNumberValidator = invoiceheaderDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceheaderDescTotalCost is the schema descriptor for total_cost field.
	invoiceheaderDescTotalCost := invoiceheaderFields[4].Descriptor()
	// invoiceheader.TotalCostValidator is a validator for the "total_cost" field. It is called by the builders before save.
	invoiceheader.TotalCostValidator = invoiceheaderDescTotalCost.Validators[0].(func(float64) error)
	// invoiceheaderDescTotalPartsCost is the schema descriptor for total_parts_cost field.
	invoiceheaderDescTotalPartsCost := invoiceheaderFields[5].Descriptor()
	// invoiceheader.TotalPartsCostValidator is a validator for the "total_parts_cost" field. It is called by the builders before save.
	invoiceheader.TotalPartsCostValidator = invoiceheaderDescTotalPartsCost.Validators[0].(func(float64) error)
	// invoiceheaderDescTotalLaborCost is the schema descriptor for total_labor_cost field.
	invoiceheaderDescTotalLaborCost := invoiceheaderFields[6].Descriptor()
	// invoiceheader.TotalLaborCostValidator is a validator for the "total_labor_cost" field. It is called by the builders before save.
	invoiceheader.TotalLaborCostValidator = invoiceheaderDescTotalLaborCost.Validators[0].(func(float64) error)
	// invoiceheaderDescOdometer is the schema descriptor for odometer field.
	invoiceheaderDescOdometer := invoiceheaderFields[7].Descriptor()
	// invoiceheader.OdometerValidator is a validator for the "odometer" field. It is called by the builders before save.
	invoiceheader.OdometerValidator = invoiceheaderDescOdometer.Validators[0].(func(int) error)
	// invoiceheaderDescConfidenceScore is the schema descriptor for confidence_score field.
	invoiceheaderDescConfidenceScore := invoiceheaderFields[8].Descriptor()
	// invoiceheader.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	invoiceheader.ConfidenceScoreValidator = invoiceheaderDescConfidenceScore.Validators[0].(func(float64) error)
	// invoiceheaderDescCreatedAt is the schema descriptor for created_at field.
	invoiceheaderDescCreatedAt := invoiceheaderFields[9].Descriptor()
	// invoiceheader.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoiceheader.DefaultCreatedAt = invoiceheaderDescCreatedAt.Default.(func() time.Time)
	invoicelineFields := schema.InvoiceLine{}.Fields()
	_ = invoicelineFields
	// invoicelineDescLineNumber is the schema descriptor for line_number field.
	invoicelineDescLineNumber := invoicelineFields[2].Descriptor()
	// invoiceline.LineNumberValidator is a validator for the "line_number" field. It is called by the builders before save.
	invoiceline.LineNumberValidator = invoicelineDescLineNumber.Validators[0].(func(int) error)
	// invoicelineDescCategory is the schema descriptor for category field.
	invoicelineDescCategory := invoicelineFields[3].Descriptor()
	// invoiceline.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	invoiceline.CategoryValidator = invoicelineDescCategory.Validators[0].(func(string) error)
	// invoicelineDescUnitCost is the schema descriptor for unit_cost field.
	invoicelineDescUnitCost := invoicelineFields[5].Descriptor()
	// invoiceline.UnitCostValidator is a validator for the "unit_cost" field. It is called by the builders before save.
	invoiceline.UnitCostValidator = invoicelineDescUnitCost.Validators[0].(func(float64) error)
	// invoicelineDescQuantity is the schema descriptor for quantity field.
	invoicelineDescQuantity := invoicelineFields[6].Descriptor()
	// invoiceline.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	invoiceline.QuantityValidator = invoicelineDescQuantity.Validators[0].(func(float64) error)
	// invoicelineDescTotalLineCost is the schema descriptor for total_line_cost field.
	invoicelineDescTotalLineCost := invoicelineFields[7].Descriptor()
	// invoiceline.TotalLineCostValidator is a validator for the "total_line_cost" field. It is called by the builders before save.
	invoiceline.TotalLineCostValidator = invoicelineDescTotalLineCost.Validators[0].(func(float64) error)
	// invoicelineDescConfidenceScore is the schema descriptor for confidence_score field.
	invoicelineDescConfidenceScore := invoicelineFields[8].Descriptor()
	// invoiceline.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	invoiceline.ConfidenceScoreValidator = invoicelineDescConfidenceScore.Validators[0].(func(float64) error)
	// invoicelineDescCreatedAt is the schema descriptor for created_at field.
	invoicelineDescCreatedAt := invoicelineFields[9].Descriptor()
	// invoiceline.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoiceline.DefaultCreatedAt = invoicelineDescCreatedAt.Default.(func() time.Time)
}
