// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoiceHeaderColumns holds the columns for the "InvoiceHeader" table.
	InvoiceHeaderColumns = []*schema.Column{
		{Name: "InvoiceID", Type: field.TypeInt, Increment: true},
		{Name: "VehicleID", Type: field.TypeInt},
		{Name: "InvoiceDate", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "InvoiceNumber", Type: field.TypeString, Unique: true},
		{Name: "TotalCost", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "TotalPartsCost", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "TotalLaborCost", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "Odometer", Type: field.TypeInt, Nullable: true},
		{Name: "ConfidenceScore", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "CreatedAt", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// InvoiceHeaderTable holds the schema information for the "InvoiceHeader" table.
	InvoiceHeaderTable = &schema.Table{
		Name:       "InvoiceHeader",
		Columns:    InvoiceHeaderColumns,
		PrimaryKey: []*schema.Column{InvoiceHeaderColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceheader_VehicleID",
				Unique:  false,
				Columns: []*schema.Column{InvoiceHeaderColumns[1]},
			},
			{
				Name:    "invoiceheader_InvoiceDate",
				Unique:  false,
				Columns: []*schema.Column{InvoiceHeaderColumns[2]},
			},
			{
				Name:    "invoiceheader_CreatedAt",
				Unique:  false,
				Columns: []*schema.Column{InvoiceHeaderColumns[9]},
			},
		},
	}
	// InvoiceLinesColumns holds the columns for the "InvoiceLines" table.
	InvoiceLinesColumns = []*schema.Column{
		{Name: "LineID", Type: field.TypeInt, Increment: true},
		{Name: "LineNumber", Type: field.TypeInt},
		{Name: "Category", Type: field.TypeString},
		{Name: "PartNumber", Type: field.TypeString, Nullable: true},
		{Name: "UnitCost", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "Quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "TotalLineCost", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "ConfidenceScore", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "CreatedAt", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "InvoiceID", Type: field.TypeInt},
	}
	// InvoiceLinesTable holds the schema information for the "InvoiceLines" table.
	InvoiceLinesTable = &schema.Table{
		Name:       "InvoiceLines",
		Columns:    InvoiceLinesColumns,
		PrimaryKey: []*schema.Column{InvoiceLinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "InvoiceLines_InvoiceHeader_lines",
				Columns:    []*schema.Column{InvoiceLinesColumns[9]},
				RefColumns: []*schema.Column{InvoiceHeaderColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceline_InvoiceID",
				Unique:  false,
				Columns: []*schema.Column{InvoiceLinesColumns[9]},
			},
			{
				Name:    "invoiceline_InvoiceID_LineNumber",
				Unique:  true,
				Columns: []*schema.Column{InvoiceLinesColumns[9], InvoiceLinesColumns[1]},
			},
			{
				Name:    "invoiceline_Category",
				Unique:  false,
				Columns: []*schema.Column{InvoiceLinesColumns[2]},
			},
			{
				Name:    "invoiceline_PartNumber",
				Unique:  false,
				Columns: []*schema.Column{InvoiceLinesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoiceHeaderTable,
		InvoiceLinesTable,
	}
)

func init() {
	InvoiceHeaderTable.Annotation = &entsql.Annotation{
		Table: "InvoiceHeader",
	}
	InvoiceHeaderTable.Annotation.Checks = map[string]string{
		"chk_invoiceheader_confidence":     "\"ConfidenceScore\" IS NULL OR (\"ConfidenceScore\" >= 0 AND \"ConfidenceScore\" <= 100)",
		"chk_invoiceheader_odometer":       "\"Odometer\" IS NULL OR \"Odometer\" >= 0",
		"chk_invoiceheader_totalcost":      "\"TotalCost\" >= 0",
		"chk_invoiceheader_totallaborcost": "\"TotalLaborCost\" >= 0",
		"chk_invoiceheader_totalpartscost": "\"TotalPartsCost\" >= 0",
	}
	InvoiceLinesTable.ForeignKeys[0].RefTable = InvoiceHeaderTable
	InvoiceLinesTable.Annotation = &entsql.Annotation{
		Table: "InvoiceLines",
	}
	InvoiceLinesTable.Annotation.Checks = map[string]string{
		"chk_invoicelines_confidence":    "\"ConfidenceScore\" IS NULL OR (\"ConfidenceScore\" >= 0 AND \"ConfidenceScore\" <= 100)",
		"chk_invoicelines_linenumber":    "\"LineNumber\" > 0",
		"chk_invoicelines_quantity":      "\"Quantity\" > 0",
		"chk_invoicelines_totallinecost": "\"TotalLineCost\" >= 0",
		"chk_invoicelines_unitcost":      "\"UnitCost\" >= 0",
	}
}
