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

// InvoiceLineCreate is the builder for creating a InvoiceLine entity.
type InvoiceLineCreate struct {
	config
	mutation *InvoiceLineMutation
	hooks    []Hook
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *InvoiceLineCreate) SetInvoiceID(v int) *InvoiceLineCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetLineNumber sets the "line_number" field.
func (_c *InvoiceLineCreate) SetLineNumber(v int) *InvoiceLineCreate {
	_c.mutation.SetLineNumber(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *InvoiceLineCreate) SetCategory(v string) *InvoiceLineCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetPartNumber sets the "part_number" field.
func (_c *InvoiceLineCreate) SetPartNumber(v string) *InvoiceLineCreate {
	_c.mutation.SetPartNumber(v)
	return _c
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_c *InvoiceLineCreate) SetNillablePartNumber(v *string) *InvoiceLineCreate {
	if v != nil {
		_c.SetPartNumber(*v)
	}
	return _c
}

// SetUnitCost sets the "unit_cost" field.
func (_c *InvoiceLineCreate) SetUnitCost(v float64) *InvoiceLineCreate {
	_c.mutation.SetUnitCost(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *InvoiceLineCreate) SetQuantity(v float64) *InvoiceLineCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetTotalLineCost sets the "total_line_cost" field.
func (_c *InvoiceLineCreate) SetTotalLineCost(v float64) *InvoiceLineCreate {
	_c.mutation.SetTotalLineCost(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *InvoiceLineCreate) SetConfidenceScore(v float64) *InvoiceLineCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *InvoiceLineCreate) SetNillableConfidenceScore(v *float64) *InvoiceLineCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceLineCreate) SetCreatedAt(v time.Time) *InvoiceLineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceLineCreate) SetNillableCreatedAt(v *time.Time) *InvoiceLineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceLineCreate) SetID(v int) *InvoiceLineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetHeaderID sets the "header" edge to the InvoiceHeader entity by ID.
func (_c *InvoiceLineCreate) SetHeaderID(id int) *InvoiceLineCreate {
	_c.mutation.SetHeaderID(id)
	return _c
}

// SetHeader sets the "header" edge to the InvoiceHeader entity.
func (_c *InvoiceLineCreate) SetHeader(v *InvoiceHeader) *InvoiceLineCreate {
	return _c.SetHeaderID(v.ID)
}

// Mutation returns the InvoiceLineMutation object of the builder.
func (_c *InvoiceLineCreate) Mutation() *InvoiceLineMutation {
	return _c.mutation
}

// Save creates the InvoiceLine in the database.
func (_c *InvoiceLineCreate) Save(ctx context.Context) (*InvoiceLine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceLineCreate) SaveX(ctx context.Context) *InvoiceLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceLineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceLineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceLineCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoiceline.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceLineCreate) check() error {
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`ent: missing required field "InvoiceLine.invoice_id"`)}
	}
	if _, ok := _c.mutation.LineNumber(); !ok {
		return &ValidationError{Name: "line_number", err: errors.New(`ent: missing required field "InvoiceLine.line_number"`)}
	}
	if v, ok := _c.mutation.LineNumber(); ok {
		if err := invoiceline.LineNumberValidator(v); err != nil {
			return &ValidationError{Name: "line_number", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.line_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "InvoiceLine.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := invoiceline.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitCost(); !ok {
		return &ValidationError{Name: "unit_cost", err: errors.New(`ent: missing required field "InvoiceLine.unit_cost"`)}
	}
	if v, ok := _c.mutation.UnitCost(); ok {
		if err := invoiceline.UnitCostValidator(v); err != nil {
			return &ValidationError{Name: "unit_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.unit_cost": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "InvoiceLine.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := invoiceline.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalLineCost(); !ok {
		return &ValidationError{Name: "total_line_cost", err: errors.New(`ent: missing required field "InvoiceLine.total_line_cost"`)}
	}
	if v, ok := _c.mutation.TotalLineCost(); ok {
		if err := invoiceline.TotalLineCostValidator(v); err != nil {
			return &ValidationError{Name: "total_line_cost", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.total_line_cost": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := invoiceline.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "InvoiceLine.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InvoiceLine.created_at"`)}
	}
	if len(_c.mutation.HeaderIDs()) == 0 {
		return &ValidationError{Name: "header", err: errors.New(`ent: missing required edge "InvoiceLine.header"`)}
	}
	return nil
}

func (_c *InvoiceLineCreate) sqlSave(ctx context.Context) (*InvoiceLine, error) {
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

func (_c *InvoiceLineCreate) createSpec() (*InvoiceLine, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceLine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoiceline.Table, sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LineNumber(); ok {
		_spec.SetField(invoiceline.FieldLineNumber, field.TypeInt, value)
		_node.LineNumber = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(invoiceline.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.PartNumber(); ok {
		_spec.SetField(invoiceline.FieldPartNumber, field.TypeString, value)
		_node.PartNumber = &value
	}
	if value, ok := _c.mutation.UnitCost(); ok {
		_spec.SetField(invoiceline.FieldUnitCost, field.TypeFloat64, value)
		_node.UnitCost = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(invoiceline.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.TotalLineCost(); ok {
		_spec.SetField(invoiceline.FieldTotalLineCost, field.TypeFloat64, value)
		_node.TotalLineCost = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoiceline.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceline.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.HeaderIDs(); len(nodes) > 0 {
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
		_node.InvoiceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceLineCreateBulk is the builder for creating many InvoiceLine entities in bulk.
type InvoiceLineCreateBulk struct {
	config
	err      error
	builders []*InvoiceLineCreate
}

// Save creates the InvoiceLine entities in the database.
func (_c *InvoiceLineCreateBulk) Save(ctx context.Context) ([]*InvoiceLine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceLine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceLineMutation)
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
func (_c *InvoiceLineCreateBulk) SaveX(ctx context.Context) []*InvoiceLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceLineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceLineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
