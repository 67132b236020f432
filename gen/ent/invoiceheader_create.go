// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceline"
)

// InvoiceHeaderCreate is the builder for creating a InvoiceHeader entity.
type InvoiceHeaderCreate struct {
	config
	mutation *InvoiceHeaderMutation
	hooks    []Hook
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *InvoiceHeaderCreate) SetVehicleID(v int) *InvoiceHeaderCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceHeaderCreate) SetInvoiceDate(v time.Time) *InvoiceHeaderCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceHeaderCreate) SetInvoiceNumber(v string) *InvoiceHeaderCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *InvoiceHeaderCreate) SetTotalCost(v float64) *InvoiceHeaderCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetTotalPartsCost sets the "total_parts_cost" field.
func (_c *InvoiceHeaderCreate) SetTotalPartsCost(v float64) *InvoiceHeaderCreate {
	_c.mutation.SetTotalPartsCost(v)
	return _c
}

// SetTotalLaborCost sets the "total_labor_cost" field.
func (_c *InvoiceHeaderCreate) SetTotalLaborCost(v float64) *InvoiceHeaderCreate {
	_c.mutation.SetTotalLaborCost(v)
	return _c
}

// SetOdometer sets the "odometer" field.
func (_c *InvoiceHeaderCreate) SetOdometer(v int) *InvoiceHeaderCreate {
	_c.mutation.SetOdometer(v)
	return _c
}

// SetNillableOdometer sets the "odometer" field if the given value is not nil.
func (_c *InvoiceHeaderCreate) SetNillableOdometer(v *int) *InvoiceHeaderCreate {
	if v != nil {
		_c.SetOdometer(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *InvoiceHeaderCreate) SetConfidenceScore(v float64) *InvoiceHeaderCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *InvoiceHeaderCreate) SetNillableConfidenceScore(v *float64) *InvoiceHeaderCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceHeaderCreate) SetCreatedAt(v time.Time) *InvoiceHeaderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceHeaderCreate) SetNillableCreatedAt(v *time.Time) *InvoiceHeaderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceHeaderCreate) SetID(v int) *InvoiceHeaderCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_c *InvoiceHeaderCreate) AddLineIDs(ids ...int) *InvoiceHeaderCreate {
	_c.mutation.AddLineIDs(ids...)
	return _c
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_c *InvoiceHeaderCreate) AddLines(v ...*InvoiceLine) *InvoiceHeaderCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineIDs(ids...)
}

// Mutation returns the InvoiceHeaderMutation object of the builder.
func (_c *InvoiceHeaderCreate) Mutation() *InvoiceHeaderMutation {
	return _c.mutation
}

// Save creates the InvoiceHeader in the database.
func (_c *InvoiceHeaderCreate) Save(ctx context.Context) (*InvoiceHeader, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceHeaderCreate) SaveX(ctx context.Context) *InvoiceHeader {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceHeaderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceHeaderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceHeaderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoiceheader.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceHeaderCreate) check() error {
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "InvoiceHeader.vehicle_id"`)}
	}
	if _, ok := _c.mutation.InvoiceDate(); !ok {
		return &ValidationError{Name: "invoice_date", err: errors.New(`ent: missing required field "InvoiceHeader.invoice_date"`)}
	}
	if _, ok := _c.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "InvoiceHeader.invoice_number"`)}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := invoiceheader.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.invoice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "InvoiceHeader.total_cost"`)}
	}
	if v, ok := _c.mutation.TotalCost(); ok {
		if err := invoiceheader.TotalCostValidator(v); err != nil {
			return &ValidationError{Name: "total_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.total_cost": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPartsCost(); !ok {
		return &ValidationError{Name: "total_parts_cost", err: errors.New(`ent: missing required field "InvoiceHeader.total_parts_cost"`)}
	}
	if v, ok := _c.mutation.TotalPartsCost(); ok {
		if err := invoiceheader.TotalPartsCostValidator(v); err != nil {
			return &ValidationError{Name: "total_parts_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.total_parts_cost": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalLaborCost(); !ok {
		return &ValidationError{Name: "total_labor_cost", err: errors.New(`ent: missing required field "InvoiceHeader.total_labor_cost"`)}
	}
	if v, ok := _c.mutation.TotalLaborCost(); ok {
		if err := invoiceheader.TotalLaborCostValidator(v); err != nil {
			return &ValidationError{Name: "total_labor_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.total_labor_cost": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Odometer(); ok {
		if err := invoiceheader.OdometerValidator(v); err != nil {
			return &ValidationError{Name: "odometer", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.odometer": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := invoiceheader.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "InvoiceHeader.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InvoiceHeader.created_at"`)}
	}
	return nil
}

func (_c *InvoiceHeaderCreate) sqlSave(ctx context.Context) (*InvoiceHeader, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceHeaderCreate) createSpec() (*InvoiceHeader, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceHeader{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoiceheader.Table, sqlgraph.NewFieldSpec(invoiceheader.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(invoiceheader.FieldVehicleID, field.TypeInt, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoiceheader.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoiceheader.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(invoiceheader.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.TotalPartsCost(); ok {
		_spec.SetField(invoiceheader.FieldTotalPartsCost, field.TypeFloat64, value)
		_node.TotalPartsCost = value
	}
	if value, ok := _c.mutation.TotalLaborCost(); ok {
		_spec.SetField(invoiceheader.FieldTotalLaborCost, field.TypeFloat64, value)
		_node.TotalLaborCost = value
	}
	if value, ok := _c.mutation.Odometer(); ok {
		_spec.SetField(invoiceheader.FieldOdometer, field.TypeInt, value)
		_node.Odometer = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoiceheader.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceheader.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LinesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceHeaderCreateBulk is the builder for creating many InvoiceHeader entities in bulk.
type InvoiceHeaderCreateBulk struct {
	config
	err      error
	builders []*InvoiceHeaderCreate
}

// Save creates the InvoiceHeader entities in the database.
func (_c *InvoiceHeaderCreateBulk) Save(ctx context.Context) ([]*InvoiceHeader, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceHeader, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceHeaderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceHeaderCreateBulk) SaveX(ctx context.Context) []*InvoiceHeader {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceHeaderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceHeaderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
