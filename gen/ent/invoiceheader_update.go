// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceline"
	"github.com/adriankd/maintenance-plus/gen/ent/predicate"
)

// InvoiceHeaderUpdate is the builder for updating InvoiceHeader entities.
type InvoiceHeaderUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceHeaderMutation
}

// Where appends a list predicates to the InvoiceHeaderUpdate builder.
func (_u *InvoiceHeaderUpdate) Where(ps ...predicate.InvoiceHeader) *InvoiceHeaderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *InvoiceHeaderUpdate) SetVehicleID(v int) *InvoiceHeaderUpdate {
	_u.mutation.ResetVehicleID()
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *InvoiceHeaderUpdate) SetNillableVehicleID(v *int) *InvoiceHeaderUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// AddVehicleID adds value to the "vehicle_id" field.
func (_u *InvoiceHeaderUpdate) AddVehicleID(v int) *InvoiceHeaderUpdate {
	_u.mutation.AddVehicleID(v)
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceHeaderUpdate) SetInvoiceDate(v time.Time) *InvoiceHeaderUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceHeaderUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceHeaderUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceHeaderUpdate) SetInvoiceNumber(v string) *InvoiceHeaderUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceHeaderUpdate) SetNillableInvoiceNumber(v *string) *InvoiceHeaderUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *InvoiceHeaderUpdate) SetTotalCost(v float64) *InvoiceHeaderUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *InvoiceHeaderUpdate) SetNillableTotalCost(v *float64) *InvoiceHeaderUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *InvoiceHeaderUpdate) AddTotalCost(v float64) *InvoiceHeaderUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetTotalPartsCost sets the "total_parts_cost" field.
func (_u *InvoiceHeaderUpdate) SetTotalPartsCost(v float64) *InvoiceHeaderUpdate {
	_u.mutation.ResetTotalPartsCost()
	_u.mutation.SetTotalPartsCost(v)
	return _u
}

// SetNillableTotalPartsCost sets the "total_parts_cost" field if the given value is not nil.
func (_u *InvoiceHeaderUpdate) SetNillableTotalPartsCost(v *float64) *InvoiceHeaderUpdate {
	if v != nil {
		_u.SetTotalPartsCost(*v)
	}
	return _u
}

// AddTotalPartsCost adds value to the "total_parts_cost" field.
func (_u *InvoiceHeaderUpdate) AddTotalPartsCost(v float64) *InvoiceHeaderUpdate {
	_u.mutation.AddTotalPartsCost(v)
	return _u
}

// SetTotalLaborCost sets the "total_labor_cost" field.
func (_u *InvoiceHeaderUpdate) SetTotalLaborCost(v float64) *InvoiceHeaderUpdate {
	_u.mutation.ResetTotalLaborCost()
	_u.mutation.SetTotalLaborCost(v)
	return _u
}

// SetNillableTotalLaborCost sets the "total_labor_cost" field if the given value is not nil.
func (_u *InvoiceHeaderUpdate) SetNillableTotalLaborCost(v *float64) *InvoiceHeaderUpdate {
	if v != nil {
		_u.SetTotalLaborCost(*v)
	}
	return _u
}

// AddTotalLaborCost adds value to the "total_labor_cost" field.
func (_u *InvoiceHeaderUpdate) AddTotalLaborCost(v float64) *InvoiceHeaderUpdate {
	_u.mutation.AddTotalLaborCost(v)
	return _u
}

// SetOdometer sets the "odometer" field.
func (_u *InvoiceHeaderUpdate) SetOdometer(v int) *InvoiceHeaderUpdate {
	_u.mutation.ResetOdometer()
	_u.mutation.SetOdometer(v)
	return _u
}

// SetNillableOdometer sets the "odometer" field if the given value is not nil.
func (_u *InvoiceHeaderUpdate) SetNillableOdometer(v *int) *InvoiceHeaderUpdate {
	if v != nil {
		_u.SetOdometer(*v)
	}
	return _u
}

// AddOdometer adds value to the "odometer" field.
func (_u *InvoiceHeaderUpdate) AddOdometer(v int) *InvoiceHeaderUpdate {
	_u.mutation.AddOdometer(v)
	return _u
}

// ClearOdometer clears the value of the "odometer" field.
func (_u *InvoiceHeaderUpdate) ClearOdometer() *InvoiceHeaderUpdate {
	_u.mutation.ClearOdometer()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InvoiceHeaderUpdate) SetConfidenceScore(v float64) *InvoiceHeaderUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InvoiceHeaderUpdate) SetNillableConfidenceScore(v *float64) *InvoiceHeaderUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InvoiceHeaderUpdate) AddConfidenceScore(v float64) *InvoiceHeaderUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *InvoiceHeaderUpdate) ClearConfidenceScore() *InvoiceHeaderUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_u *InvoiceHeaderUpdate) AddLineIDs(ids ...int) *InvoiceHeaderUpdate {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_u *InvoiceHeaderUpdate) AddLines(v ...*InvoiceLine) *InvoiceHeaderUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the InvoiceHeaderMutation object of the builder.
func (_u *InvoiceHeaderUpdate) Mutation() *InvoiceHeaderMutation {
	return _u.mutation
}

// ClearLines clears all "lines" edges to the InvoiceLine entity.
func (_u *InvoiceHeaderUpdate) ClearLines() *InvoiceHeaderUpdate {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to InvoiceLine entities by IDs.
func (_u *InvoiceHeaderUpdate) RemoveLineIDs(ids ...int) *InvoiceHeaderUpdate {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to InvoiceLine entities.
func (_u *InvoiceHeaderUpdate) RemoveLines(v ...*InvoiceLine) *InvoiceHeaderUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceHeaderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceHeaderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceHeaderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceHeaderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceHeaderUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoiceheader.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCost(); ok {
		if err := invoiceheader.TotalCostValidator(v); err != nil {
			return &ValidationError{Name: "total_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.total_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPartsCost(); ok {
		if err := invoiceheader.TotalPartsCostValidator(v); err != nil {
			return &ValidationError{Name: "total_parts_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.total_parts_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLaborCost(); ok {
		if err := invoiceheader.TotalLaborCostValidator(v); err != nil {
			return &ValidationError{Name: "total_labor_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.total_labor_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Odometer(); ok {
		if err := invoiceheader.OdometerValidator(v); err != nil {
			return &ValidationError{Name: "odometer", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.odometer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := invoiceheader.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.confidence_score": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceHeaderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceheader.Table, invoiceheader.Columns, sqlgraph.NewFieldSpec(invoiceheader.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(invoiceheader.FieldVehicleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVehicleID(); ok {
		_spec.AddField(invoiceheader.FieldVehicleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoiceheader.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoiceheader.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(invoiceheader.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(invoiceheader.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPartsCost(); ok {
		_spec.SetField(invoiceheader.FieldTotalPartsCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPartsCost(); ok {
		_spec.AddField(invoiceheader.FieldTotalPartsCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalLaborCost(); ok {
		_spec.SetField(invoiceheader.FieldTotalLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalLaborCost(); ok {
		_spec.AddField(invoiceheader.FieldTotalLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Odometer(); ok {
		_spec.SetField(invoiceheader.FieldOdometer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdometer(); ok {
		_spec.AddField(invoiceheader.FieldOdometer, field.TypeInt, value)
	}
	if _u.mutation.OdometerCleared() {
		_spec.ClearField(invoiceheader.FieldOdometer, field.TypeInt)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoiceheader.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(invoiceheader.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(invoiceheader.FieldConfidenceScore, field.TypeFloat64)
	}
	if _u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoiceheader.LinesTable,
			Columns: []string{invoiceheader.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoiceheader.LinesTable,
			Columns: []string{invoiceheader.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoiceheader.LinesTable,
			Columns: []string{invoiceheader.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceheader.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceHeaderUpdateOne is the builder for updating a single InvoiceHeader entity.
type InvoiceHeaderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceHeaderMutation
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *InvoiceHeaderUpdateOne) SetVehicleID(v int) *InvoiceHeaderUpdateOne {
	_u.mutation.ResetVehicleID()
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *InvoiceHeaderUpdateOne) SetNillableVehicleID(v *int) *InvoiceHeaderUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// AddVehicleID adds value to the "vehicle_id" field.
func (_u *InvoiceHeaderUpdateOne) AddVehicleID(v int) *InvoiceHeaderUpdateOne {
	_u.mutation.AddVehicleID(v)
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceHeaderUpdateOne) SetInvoiceDate(v time.Time) *InvoiceHeaderUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceHeaderUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceHeaderUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceHeaderUpdateOne) SetInvoiceNumber(v string) *InvoiceHeaderUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceHeaderUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceHeaderUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *InvoiceHeaderUpdateOne) SetTotalCost(v float64) *InvoiceHeaderUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *InvoiceHeaderUpdateOne) SetNillableTotalCost(v *float64) *InvoiceHeaderUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *InvoiceHeaderUpdateOne) AddTotalCost(v float64) *InvoiceHeaderUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetTotalPartsCost sets the "total_parts_cost" field.
func (_u *InvoiceHeaderUpdateOne) SetTotalPartsCost(v float64) *InvoiceHeaderUpdateOne {
	_u.mutation.ResetTotalPartsCost()
	_u.mutation.SetTotalPartsCost(v)
	return _u
}

// SetNillableTotalPartsCost sets the "total_parts_cost" field if the given value is not nil.
func (_u *InvoiceHeaderUpdateOne) SetNillableTotalPartsCost(v *float64) *InvoiceHeaderUpdateOne {
	if v != nil {
		_u.SetTotalPartsCost(*v)
	}
	return _u
}

// AddTotalPartsCost adds value to the "total_parts_cost" field.
func (_u *InvoiceHeaderUpdateOne) AddTotalPartsCost(v float64) *InvoiceHeaderUpdateOne {
	_u.mutation.AddTotalPartsCost(v)
	return _u
}

// SetTotalLaborCost sets the "total_labor_cost" field.
func (_u *InvoiceHeaderUpdateOne) SetTotalLaborCost(v float64) *InvoiceHeaderUpdateOne {
	_u.mutation.ResetTotalLaborCost()
	_u.mutation.SetTotalLaborCost(v)
	return _u
}

// SetNillableTotalLaborCost sets the "total_labor_cost" field if the given value is not nil.
func (_u *InvoiceHeaderUpdateOne) SetNillableTotalLaborCost(v *float64) *InvoiceHeaderUpdateOne {
	if v != nil {
		_u.SetTotalLaborCost(*v)
	}
	return _u
}

// AddTotalLaborCost adds value to the "total_labor_cost" field.
func (_u *InvoiceHeaderUpdateOne) AddTotalLaborCost(v float64) *InvoiceHeaderUpdateOne {
	_u.mutation.AddTotalLaborCost(v)
	return _u
}

// SetOdometer sets the "odometer" field.
func (_u *InvoiceHeaderUpdateOne) SetOdometer(v int) *InvoiceHeaderUpdateOne {
	_u.mutation.ResetOdometer()
	_u.mutation.SetOdometer(v)
	return _u
}

// SetNillableOdometer sets the "odometer" field if the given value is not nil.
func (_u *InvoiceHeaderUpdateOne) SetNillableOdometer(v *int) *InvoiceHeaderUpdateOne {
	if v != nil {
		_u.SetOdometer(*v)
	}
	return _u
}

// AddOdometer adds value to the "odometer" field.
func (_u *InvoiceHeaderUpdateOne) AddOdometer(v int) *InvoiceHeaderUpdateOne {
	_u.mutation.AddOdometer(v)
	return _u
}

// ClearOdometer clears the value of the "odometer" field.
func (_u *InvoiceHeaderUpdateOne) ClearOdometer() *InvoiceHeaderUpdateOne {
	_u.mutation.ClearOdometer()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InvoiceHeaderUpdateOne) SetConfidenceScore(v float64) *InvoiceHeaderUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InvoiceHeaderUpdateOne) SetNillableConfidenceScore(v *float64) *InvoiceHeaderUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InvoiceHeaderUpdateOne) AddConfidenceScore(v float64) *InvoiceHeaderUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *InvoiceHeaderUpdateOne) ClearConfidenceScore() *InvoiceHeaderUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_u *InvoiceHeaderUpdateOne) AddLineIDs(ids ...int) *InvoiceHeaderUpdateOne {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_u *InvoiceHeaderUpdateOne) AddLines(v ...*InvoiceLine) *InvoiceHeaderUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the InvoiceHeaderMutation object of the builder.
func (_u *InvoiceHeaderUpdateOne) Mutation() *InvoiceHeaderMutation {
	return _u.mutation
}

// ClearLines clears all "lines" edges to the InvoiceLine entity.
func (_u *InvoiceHeaderUpdateOne) ClearLines() *InvoiceHeaderUpdateOne {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to InvoiceLine entities by IDs.
func (_u *InvoiceHeaderUpdateOne) RemoveLineIDs(ids ...int) *InvoiceHeaderUpdateOne {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to InvoiceLine entities.
func (_u *InvoiceHeaderUpdateOne) RemoveLines(v ...*InvoiceLine) *InvoiceHeaderUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Where appends a list predicates to the InvoiceHeaderUpdate builder.
func (_u *InvoiceHeaderUpdateOne) Where(ps ...predicate.InvoiceHeader) *InvoiceHeaderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceHeaderUpdateOne) Select(field string, fields ...string) *InvoiceHeaderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceHeader entity.
func (_u *InvoiceHeaderUpdateOne) Save(ctx context.Context) (*InvoiceHeader, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceHeaderUpdateOne) SaveX(ctx context.Context) *InvoiceHeader {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceHeaderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceHeaderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceHeaderUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoiceheader.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCost(); ok {
		if err := invoiceheader.TotalCostValidator(v); err != nil {
			return &ValidationError{Name: "total_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.total_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPartsCost(); ok {
		if err := invoiceheader.TotalPartsCostValidator(v); err != nil {
			return &ValidationError{Name: "total_parts_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.total_parts_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLaborCost(); ok {
		if err := invoiceheader.TotalLaborCostValidator(v); err != nil {
			return &ValidationError{Name: "total_labor_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.total_labor_cost": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Odometer(); ok {
		if err := invoiceheader.OdometerValidator(v); err != nil {
			return &ValidationError{Name: "odometer", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.odometer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := invoiceheader.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.confidence_score": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceHeaderUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceHeader, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceheader.Table, invoiceheader.Columns, sqlgraph.NewFieldSpec(invoiceheader.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceHeader.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceheader.FieldID)
		for _, f := range fields {
			if !invoiceheader.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoiceheader.FieldID {
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
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(invoiceheader.FieldVehicleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVehicleID(); ok {
		_spec.AddField(invoiceheader.FieldVehicleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoiceheader.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoiceheader.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(invoiceheader.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(invoiceheader.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPartsCost(); ok {
		_spec.SetField(invoiceheader.FieldTotalPartsCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPartsCost(); ok {
		_spec.AddField(invoiceheader.FieldTotalPartsCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalLaborCost(); ok {
		_spec.SetField(invoiceheader.FieldTotalLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalLaborCost(); ok {
		_spec.AddField(invoiceheader.FieldTotalLaborCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Odometer(); ok {
		_spec.SetField(invoiceheader.FieldOdometer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdometer(); ok {
		_spec.AddField(invoiceheader.FieldOdometer, field.TypeInt, value)
	}
	if _u.mutation.OdometerCleared() {
		_spec.ClearField(invoiceheader.FieldOdometer, field.TypeInt)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoiceheader.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(invoiceheader.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(invoiceheader.FieldConfidenceScore, field.TypeFloat64)
	}
	if _u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoiceheader.LinesTable,
			Columns: []string{invoiceheader.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoiceheader.LinesTable,
			Columns: []string{invoiceheader.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoiceheader.LinesTable,
			Columns: []string{invoiceheader.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceHeader{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceheader.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
