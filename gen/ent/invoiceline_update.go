// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceline"
	"github.com/adriankd/maintenance-plus/gen/ent/predicate"
)

// InvoiceLineUpdate is the builder for updating InvoiceLine entities.
type InvoiceLineUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceLineMutation
}

// Where appends a list predicates to the InvoiceLineUpdate builder.
func (_u *InvoiceLineUpdate) Where(ps ...predicate.InvoiceLine) *InvoiceLineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceLineUpdate) SetInvoiceID(v int) *InvoiceLineUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableInvoiceID(v *int) *InvoiceLineUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetLineNumber sets the "line_number" field.
func (_u *InvoiceLineUpdate) SetLineNumber(v int) *InvoiceLineUpdate {
	_u.mutation.ResetLineNumber()
	_u.mutation.SetLineNumber(v)
	return _u
}

// SetNillableLineNumber sets the "line_number" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableLineNumber(v *int) *InvoiceLineUpdate {
	if v != nil {
		_u.SetLineNumber(*v)
	}
	return _u
}

// AddLineNumber adds value to the "line_number" field.
func (_u *InvoiceLineUpdate) AddLineNumber(v int) *InvoiceLineUpdate {
	_u.mutation.AddLineNumber(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *InvoiceLineUpdate) SetCategory(v string) *InvoiceLineUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableCategory(v *string) *InvoiceLineUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPartNumber sets the "part_number" field.
func (_u *InvoiceLineUpdate) SetPartNumber(v string) *InvoiceLineUpdate {
	_u.mutation.SetPartNumber(v)
	return _u
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillablePartNumber(v *string) *InvoiceLineUpdate {
	if v != nil {
		_u.SetPartNumber(*v)
	}
	return _u
}

// ClearPartNumber clears the value of the "part_number" field.
func (_u *InvoiceLineUpdate) ClearPartNumber() *InvoiceLineUpdate {
	_u.mutation.ClearPartNumber()
	return _u
}

// SetUnitCost sets the "unit_cost" field.
func (_u *InvoiceLineUpdate) SetUnitCost(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetUnitCost()
	_u.mutation.SetUnitCost(v)
	return _u
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableUnitCost(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetUnitCost(*v)
	}
	return _u
}

// AddUnitCost adds value to the "unit_cost" field.
func (_u *InvoiceLineUpdate) AddUnitCost(v float64) *InvoiceLineUpdate {
	_u.mutation.AddUnitCost(v)
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceLineUpdate) SetQuantity(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableQuantity(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceLineUpdate) AddQuantity(v float64) *InvoiceLineUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetTotalLineCost sets the "total_line_cost" field.
func (_u *InvoiceLineUpdate) SetTotalLineCost(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetTotalLineCost()
	_u.mutation.SetTotalLineCost(v)
	return _u
}

// SetNillableTotalLineCost sets the "total_line_cost" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableTotalLineCost(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetTotalLineCost(*v)
	}
	return _u
}

// AddTotalLineCost adds value to the "total_line_cost" field.
func (_u *InvoiceLineUpdate) AddTotalLineCost(v float64) *InvoiceLineUpdate {
	_u.mutation.AddTotalLineCost(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InvoiceLineUpdate) SetConfidenceScore(v float64) *InvoiceLineUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InvoiceLineUpdate) SetNillableConfidenceScore(v *float64) *InvoiceLineUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InvoiceLineUpdate) AddConfidenceScore(v float64) *InvoiceLineUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *InvoiceLineUpdate) ClearConfidenceScore() *InvoiceLineUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetHeaderID sets the "header" edge to the InvoiceHeader entity by ID.
func (_u *InvoiceLineUpdate) SetHeaderID(id int) *InvoiceLineUpdate {
	_u.mutation.SetHeaderID(id)
	return _u
}

// SetHeader sets the "header" edge to the InvoiceHeader entity.
func (_u *InvoiceLineUpdate) SetHeader(v *InvoiceHeader) *InvoiceLineUpdate {
	return _u.SetHeaderID(v.ID)
}

// Mutation returns the InvoiceLineMutation object of the builder.
func (_u *InvoiceLineUpdate) Mutation() *InvoiceLineMutation {
	return _u.mutation
}

// ClearHeader clears the "header" edge to the InvoiceHeader entity.
func (_u *InvoiceLineUpdate) ClearHeader() *InvoiceLineUpdate {
	_u.mutation.ClearHeader()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceLineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceLineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceLineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceLineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceLineUpdate) check() error {
	if v, ok := _u.mutation.LineNumber(); ok {
		if err := invoiceline.LineNumberValidator(v); err != nil {
			return &ValidationError{Name: "line_number", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.line_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := invoiceline.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitCost(); ok {
		if err := invoiceline.UnitCostValidator(v); err != nil {
			return &ValidationError{Name: "unit_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.unit_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := invoiceline.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLineCost(); ok {
		if err := invoiceline.TotalLineCostValidator(v); err != nil {
			return &ValidationError{Name: "total_line_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.total_line_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := invoiceline.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.HeaderCleared() && len(_u.mutation.HeaderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLine.header"`)
	}
	return nil
}

func (_u *InvoiceLineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceline.Table, invoiceline.Columns, sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LineNumber(); ok {
		_spec.SetField(invoiceline.FieldLineNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineNumber(); ok {
		_spec.AddField(invoiceline.FieldLineNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(invoiceline.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartNumber(); ok {
		_spec.SetField(invoiceline.FieldPartNumber, field.TypeString, value)
	}
	if _u.mutation.PartNumberCleared() {
		_spec.ClearField(invoiceline.FieldPartNumber, field.TypeString)
	}
	if value, ok := _u.mutation.UnitCost(); ok {
		_spec.SetField(invoiceline.FieldUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitCost(); ok {
		_spec.AddField(invoiceline.FieldUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoiceline.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoiceline.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalLineCost(); ok {
		_spec.SetField(invoiceline.FieldTotalLineCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalLineCost(); ok {
		_spec.AddField(invoiceline.FieldTotalLineCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoiceline.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(invoiceline.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(invoiceline.FieldConfidenceScore, field.TypeFloat64)
	}
	if _u.mutation.HeaderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceline.HeaderTable,
			Columns: []string{invoiceline.HeaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceheader.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HeaderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceline.HeaderTable,
			Columns: []string{invoiceline.HeaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceheader.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceLineUpdateOne is the builder for updating a single InvoiceLine entity.
type InvoiceLineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceLineMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceLineUpdateOne) SetInvoiceID(v int) *InvoiceLineUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableInvoiceID(v *int) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetLineNumber sets the "line_number" field.
func (_u *InvoiceLineUpdateOne) SetLineNumber(v int) *InvoiceLineUpdateOne {
	_u.mutation.ResetLineNumber()
	_u.mutation.SetLineNumber(v)
	return _u
}

// SetNillableLineNumber sets the "line_number" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableLineNumber(v *int) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetLineNumber(*v)
	}
	return _u
}

// AddLineNumber adds value to the "line_number" field.
func (_u *InvoiceLineUpdateOne) AddLineNumber(v int) *InvoiceLineUpdateOne {
	_u.mutation.AddLineNumber(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *InvoiceLineUpdateOne) SetCategory(v string) *InvoiceLineUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableCategory(v *string) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPartNumber sets the "part_number" field.
func (_u *InvoiceLineUpdateOne) SetPartNumber(v string) *InvoiceLineUpdateOne {
	_u.mutation.SetPartNumber(v)
	return _u
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillablePartNumber(v *string) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetPartNumber(*v)
	}
	return _u
}

// ClearPartNumber clears the value of the "part_number" field.
func (_u *InvoiceLineUpdateOne) ClearPartNumber() *InvoiceLineUpdateOne {
	_u.mutation.ClearPartNumber()
	return _u
}

// SetUnitCost sets the "unit_cost" field.
func (_u *InvoiceLineUpdateOne) SetUnitCost(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetUnitCost()
	_u.mutation.SetUnitCost(v)
	return _u
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableUnitCost(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetUnitCost(*v)
	}
	return _u
}

// AddUnitCost adds value to the "unit_cost" field.
func (_u *InvoiceLineUpdateOne) AddUnitCost(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddUnitCost(v)
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InvoiceLineUpdateOne) SetQuantity(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableQuantity(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InvoiceLineUpdateOne) AddQuantity(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetTotalLineCost sets the "total_line_cost" field.
func (_u *InvoiceLineUpdateOne) SetTotalLineCost(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetTotalLineCost()
	_u.mutation.SetTotalLineCost(v)
	return _u
}

// SetNillableTotalLineCost sets the "total_line_cost" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableTotalLineCost(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetTotalLineCost(*v)
	}
	return _u
}

// AddTotalLineCost adds value to the "total_line_cost" field.
func (_u *InvoiceLineUpdateOne) AddTotalLineCost(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddTotalLineCost(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InvoiceLineUpdateOne) SetConfidenceScore(v float64) *InvoiceLineUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InvoiceLineUpdateOne) SetNillableConfidenceScore(v *float64) *InvoiceLineUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InvoiceLineUpdateOne) AddConfidenceScore(v float64) *InvoiceLineUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *InvoiceLineUpdateOne) ClearConfidenceScore() *InvoiceLineUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetHeaderID sets the "header" edge to the InvoiceHeader entity by ID.
func (_u *InvoiceLineUpdateOne) SetHeaderID(id int) *InvoiceLineUpdateOne {
	_u.mutation.SetHeaderID(id)
	return _u
}

// SetHeader sets the "header" edge to the InvoiceHeader entity.
func (_u *InvoiceLineUpdateOne) SetHeader(v *InvoiceHeader) *InvoiceLineUpdateOne {
	return _u.SetHeaderID(v.ID)
}

// Mutation returns the InvoiceLineMutation object of the builder.
func (_u *InvoiceLineUpdateOne) Mutation() *InvoiceLineMutation {
	return _u.mutation
}

// ClearHeader clears the "header" edge to the InvoiceHeader entity.
func (_u *InvoiceLineUpdateOne) ClearHeader() *InvoiceLineUpdateOne {
	_u.mutation.ClearHeader()
	return _u
}

// Where appends a list predicates to the InvoiceLineUpdate builder.
func (_u *InvoiceLineUpdateOne) Where(ps ...predicate.InvoiceLine) *InvoiceLineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceLineUpdateOne) Select(field string, fields ...string) *InvoiceLineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceLine entity.
func (_u *InvoiceLineUpdateOne) Save(ctx context.Context) (*InvoiceLine, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceLineUpdateOne) SaveX(ctx context.Context) *InvoiceLine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceLineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceLineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceLineUpdateOne) check() error {
	if v, ok := _u.mutation.LineNumber(); ok {
		if err := invoiceline.LineNumberValidator(v); err != nil {
			return &ValidationError{Name: "line_number", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.line_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := invoiceline.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitCost(); ok {
		if err := invoiceline.UnitCostValidator(v); err != nil {
			return &ValidationError{Name: "unit_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.unit_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := invoiceline.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLineCost(); ok {
		if err := invoiceline.TotalLineCostValidator(v); err != nil {
			return &ValidationError{Name: "total_line_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.total_line_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := invoiceline.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.HeaderCleared() && len(_u.mutation.HeaderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLine.header"`)
	}
	return nil
}

func (_u *InvoiceLineUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceLine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceline.Table, invoiceline.Columns, sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceLine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceline.FieldID)
		for _, f := range fields {
			if !invoiceline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoiceline.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LineNumber(); ok {
		_spec.SetField(invoiceline.FieldLineNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineNumber(); ok {
		_spec.AddField(invoiceline.FieldLineNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(invoiceline.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartNumber(); ok {
		_spec.SetField(invoiceline.FieldPartNumber, field.TypeString, value)
	}
	if _u.mutation.PartNumberCleared() {
		_spec.ClearField(invoiceline.FieldPartNumber, field.TypeString)
	}
	if value, ok := _u.mutation.UnitCost(); ok {
		_spec.SetField(invoiceline.FieldUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitCost(); ok {
		_spec.AddField(invoiceline.FieldUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(invoiceline.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(invoiceline.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalLineCost(); ok {
		_spec.SetField(invoiceline.FieldTotalLineCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalLineCost(); ok {
		_spec.AddField(invoiceline.FieldTotalLineCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoiceline.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(invoiceline.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(invoiceline.FieldConfidenceScore, field.TypeFloat64)
	}
	if _u.mutation.HeaderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceline.HeaderTable,
			Columns: []string{invoiceline.HeaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceheader.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HeaderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceline.HeaderTable,
			Columns: []string{invoiceline.HeaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceheader.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceLine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
