package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type InvoiceHeader struct{ ent.Schema }

func (InvoiceHeader) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "InvoiceHeader",
			Checks: map[string]string{
				"chk_invoiceheader_totalcost":      `"TotalCost" >= 0`,
				"chk_invoiceheader_totalpartscost": `"TotalPartsCost" >= 0`,
				"chk_invoiceheader_totallaborcost": `"TotalLaborCost" >= 0`,
				"chk_invoiceheader_odometer":       `"Odometer" IS NULL OR "Odometer" >= 0`,
				"chk_invoiceheader_confidence":     `"ConfidenceScore" IS NULL OR ("ConfidenceScore" >= 0 AND "ConfidenceScore" <= 100)`,
			},
		},
	}
}

func (InvoiceHeader) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("InvoiceID"),
		field.Int("vehicle_id").
			StorageKey("VehicleID"),
		field.Time("invoice_date").
			StorageKey("InvoiceDate").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("invoice_number").NotEmpty().Unique().
			StorageKey("InvoiceNumber"),
		field.Float("total_cost").Min(0).
			StorageKey("TotalCost").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("total_parts_cost").Min(0).
			StorageKey("TotalPartsCost").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("total_labor_cost").Min(0).
			StorageKey("TotalLaborCost").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Int("odometer").
			Optional().Nillable().
			NonNegative().
			StorageKey("Odometer"),
		field.Float("confidence_score").
			Optional().Nillable().
			Range(0, 100).
			StorageKey("ConfidenceScore").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Time("created_at").Default(time.Now).Immutable().
			StorageKey("CreatedAt").
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

func (InvoiceHeader) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE header -> MANY lines; removing the header removes its lines.
		edge.To("lines", InvoiceLine.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (InvoiceHeader) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vehicle_id"),
		index.Fields("invoice_date"),
		index.Fields("created_at"),
	}
}
