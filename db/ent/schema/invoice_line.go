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

type InvoiceLine struct{ ent.Schema }

func (InvoiceLine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "InvoiceLines",
			Checks: map[string]string{
				"chk_invoicelines_linenumber":    `"LineNumber" > 0`,
				"chk_invoicelines_unitcost":      `"UnitCost" >= 0`,
				"chk_invoicelines_quantity":      `"Quantity" > 0`,
				"chk_invoicelines_totallinecost": `"TotalLineCost" >= 0`,
				"chk_invoicelines_confidence":    `"ConfidenceScore" IS NULL OR ("ConfidenceScore" >= 0 AND "ConfidenceScore" <= 100)`,
			},
		},
	}
}

func (InvoiceLine) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("LineID"),
		// explicit FK so the composite unique index can reference it
		field.Int("invoice_id").
			StorageKey("InvoiceID"),
		field.Int("line_number").Positive().
			StorageKey("LineNumber"),
		field.String("category").NotEmpty().
			StorageKey("Category"),
		field.String("part_number").
			Optional().Nillable().
			StorageKey("PartNumber"),
		field.Float("unit_cost").Min(0).
			StorageKey("UnitCost").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("quantity").Positive().
			StorageKey("Quantity").
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,2)"}),
		// derived from unit_cost * quantity upstream; stored as-is, not re-checked
		field.Float("total_line_cost").Min(0).
			StorageKey("TotalLineCost").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
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

func (InvoiceLine) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY lines -> ONE header (FK: InvoiceLines.InvoiceID)
		edge.From("header", InvoiceHeader.Type).
			Ref("lines").
			Field("invoice_id").
			Required().
			Unique(),
	}
}

func (InvoiceLine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
		index.Fields("invoice_id", "line_number").Unique(),
		index.Fields("category"),
		index.Fields("part_number"),
	}
}
