// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InvoiceHeader is the predicate function for invoiceheader builders.
type InvoiceHeader func(*sql.Selector)

// InvoiceLine is the predicate function for invoiceline builders.
type InvoiceLine func(*sql.Selector)
