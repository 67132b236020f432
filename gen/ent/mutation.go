// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceline"
	"github.com/adriankd/maintenance-plus/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInvoiceHeader = "InvoiceHeader"
	TypeInvoiceLine   = "InvoiceLine"
)

// InvoiceHeaderMutation represents an operation that mutates the InvoiceHeader nodes in the graph.
type InvoiceHeaderMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	vehicle_id          *int
	addvehicle_id       *int
	invoice_date        *time.Time
	invoice_number      *string
	total_cost          *float64
	addtotal_cost       *float64
	total_parts_cost    *float64
	addtotal_parts_cost *float64
	total_labor_cost    *float64
	addtotal_labor_cost *float64
	odometer            *int
	addodometer         *int
	confidence_score    *float64
	addconfidence_score *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	lines               map[int]struct{}
	removedlines        map[int]struct{}
	clearedlines        bool
	done                bool
	oldValue            func(context.Context) (*InvoiceHeader, error)
	predicates          []predicate.InvoiceHeader
}

var _ ent.Mutation = (*InvoiceHeaderMutation)(nil)

// invoiceheaderOption allows management of the mutation configuration using functional options.
type invoiceheaderOption func(*InvoiceHeaderMutation)

// newInvoiceHeaderMutation creates new mutation for the InvoiceHeader entity.
func newInvoiceHeaderMutation(c config, op Op, opts ...invoiceheaderOption) *InvoiceHeaderMutation {
	m := &InvoiceHeaderMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceHeader,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceHeaderID sets the ID field of the mutation.
func withInvoiceHeaderID(id int) invoiceheaderOption {
	return func(m *InvoiceHeaderMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceHeader
		)
		m.oldValue = func(ctx context.Context) (*InvoiceHeader, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceHeader.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceHeader sets the old InvoiceHeader of the mutation.
func withInvoiceHeader(node *InvoiceHeader) invoiceheaderOption {
	return func(m *InvoiceHeaderMutation) {
		m.oldValue = func(context.Context) (*InvoiceHeader, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceHeaderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceHeaderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceHeader entities.
func (m *InvoiceHeaderMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceHeaderMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceHeaderMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceHeader.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVehicleID sets the "vehicle_id" field.
func (m *InvoiceHeaderMutation) SetVehicleID(i int) {
	m.vehicle_id = &i
	m.addvehicle_id = nil
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *InvoiceHeaderMutation) VehicleID() (r int, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the InvoiceHeader entity.
// If the InvoiceHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceHeaderMutation) OldVehicleID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// AddVehicleID adds i to the "vehicle_id" field.
func (m *InvoiceHeaderMutation) AddVehicleID(i int) {
	if m.addvehicle_id != nil {
		*m.addvehicle_id += i
	} else {
		m.addvehicle_id = &i
	}
}

// AddedVehicleID returns the value that was added to the "vehicle_id" field in this mutation.
func (m *InvoiceHeaderMutation) AddedVehicleID() (r int, exists bool) {
	v := m.addvehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *InvoiceHeaderMutation) ResetVehicleID() {
	m.vehicle_id = nil
	m.addvehicle_id = nil
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *InvoiceHeaderMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *InvoiceHeaderMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the InvoiceHeader entity.
// If the InvoiceHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceHeaderMutation) OldInvoiceDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *InvoiceHeaderMutation) ResetInvoiceDate() {
	m.invoice_date = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceHeaderMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceHeaderMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the InvoiceHeader entity.
// If the InvoiceHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceHeaderMutation) OldInvoiceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceHeaderMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *InvoiceHeaderMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *InvoiceHeaderMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the InvoiceHeader entity.
// If the InvoiceHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceHeaderMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *InvoiceHeaderMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *InvoiceHeaderMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *InvoiceHeaderMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetTotalPartsCost sets the "total_parts_cost" field.
func (m *InvoiceHeaderMutation) SetTotalPartsCost(f float64) {
	m.total_parts_cost = &f
	m.addtotal_parts_cost = nil
}

// TotalPartsCost returns the value of the "total_parts_cost" field in the mutation.
func (m *InvoiceHeaderMutation) TotalPartsCost() (r float64, exists bool) {
	v := m.total_parts_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPartsCost returns the old "total_parts_cost" field's value of the InvoiceHeader entity.
// If the InvoiceHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceHeaderMutation) OldTotalPartsCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPartsCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPartsCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPartsCost: %w", err)
	}
	return oldValue.TotalPartsCost, nil
}

// AddTotalPartsCost adds f to the "total_parts_cost" field.
func (m *InvoiceHeaderMutation) AddTotalPartsCost(f float64) {
	if m.addtotal_parts_cost != nil {
		*m.addtotal_parts_cost += f
	} else {
		m.addtotal_parts_cost = &f
	}
}

// AddedTotalPartsCost returns the value that was added to the "total_parts_cost" field in this mutation.
func (m *InvoiceHeaderMutation) AddedTotalPartsCost() (r float64, exists bool) {
	v := m.addtotal_parts_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPartsCost resets all changes to the "total_parts_cost" field.
func (m *InvoiceHeaderMutation) ResetTotalPartsCost() {
	m.total_parts_cost = nil
	m.addtotal_parts_cost = nil
}

// SetTotalLaborCost sets the "total_labor_cost" field.
func (m *InvoiceHeaderMutation) SetTotalLaborCost(f float64) {
	m.total_labor_cost = &f
	m.addtotal_labor_cost = nil
}

// TotalLaborCost returns the value of the "total_labor_cost" field in the mutation.
func (m *InvoiceHeaderMutation) TotalLaborCost() (r float64, exists bool) {
	v := m.total_labor_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLaborCost returns the old "total_labor_cost" field's value of the InvoiceHeader entity.
// If the InvoiceHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceHeaderMutation) OldTotalLaborCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLaborCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLaborCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLaborCost: %w", err)
	}
	return oldValue.TotalLaborCost, nil
}

// AddTotalLaborCost adds f to the "total_labor_cost" field.
func (m *InvoiceHeaderMutation) AddTotalLaborCost(f float64) {
	if m.addtotal_labor_cost != nil {
		*m.addtotal_labor_cost += f
	} else {
		m.addtotal_labor_cost = &f
	}
}

// AddedTotalLaborCost returns the value that was added to the "total_labor_cost" field in this mutation.
func (m *InvoiceHeaderMutation) AddedTotalLaborCost() (r float64, exists bool) {
	v := m.addtotal_labor_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLaborCost resets all changes to the "total_labor_cost" field.
func (m *InvoiceHeaderMutation) ResetTotalLaborCost() {
	m.total_labor_cost = nil
	m.addtotal_labor_cost = nil
}

// SetOdometer sets the "odometer" field.
func (m *InvoiceHeaderMutation) SetOdometer(i int) {
	m.odometer = &i
	m.addodometer = nil
}

// Odometer returns the value of the "odometer" field in the mutation.
func (m *InvoiceHeaderMutation) Odometer() (r int, exists bool) {
	v := m.odometer
	if v == nil {
		return
	}
	return *v, true
}

// OldOdometer returns the old "odometer" field's value of the InvoiceHeader entity.
// If the InvoiceHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceHeaderMutation) OldOdometer(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOdometer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOdometer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOdometer: %w", err)
	}
	return oldValue.Odometer, nil
}

// AddOdometer adds i to the "odometer" field.
func (m *InvoiceHeaderMutation) AddOdometer(i int) {
	if m.addodometer != nil {
		*m.addodometer += i
	} else {
		m.addodometer = &i
	}
}

// AddedOdometer returns the value that was added to the "odometer" field in this mutation.
func (m *InvoiceHeaderMutation) AddedOdometer() (r int, exists bool) {
	v := m.addodometer
	if v == nil {
		return
	}
	return *v, true
}

// ClearOdometer clears the value of the "odometer" field.
func (m *InvoiceHeaderMutation) ClearOdometer() {
	m.odometer = nil
	m.addodometer = nil
	m.clearedFields[invoiceheader.FieldOdometer] = struct{}{}
}

// OdometerCleared returns if the "odometer" field was cleared in this mutation.
func (m *InvoiceHeaderMutation) OdometerCleared() bool {
	_, ok := m.clearedFields[invoiceheader.FieldOdometer]
	return ok
}

// ResetOdometer resets all changes to the "odometer" field.
func (m *InvoiceHeaderMutation) ResetOdometer() {
	m.odometer = nil
	m.addodometer = nil
	delete(m.clearedFields, invoiceheader.FieldOdometer)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *InvoiceHeaderMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *InvoiceHeaderMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the InvoiceHeader entity.
// If the InvoiceHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceHeaderMutation) OldConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *InvoiceHeaderMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *InvoiceHeaderMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *InvoiceHeaderMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[invoiceheader.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *InvoiceHeaderMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[invoiceheader.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *InvoiceHeaderMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, invoiceheader.FieldConfidenceScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceHeaderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceHeaderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InvoiceHeader entity.
// If the InvoiceHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceHeaderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceHeaderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by ids.
func (m *InvoiceHeaderMutation) AddLineIDs(ids ...int) {
	if m.lines == nil {
		m.lines = make(map[int]struct{})
	}
	for i := range ids {
		m.lines[ids[i]] = struct{}{}
	}
}

// ClearLines clears the "lines" edge to the InvoiceLine entity.
func (m *InvoiceHeaderMutation) ClearLines() {
	m.clearedlines = true
}

// LinesCleared reports if the "lines" edge to the InvoiceLine entity was cleared.
func (m *InvoiceHeaderMutation) LinesCleared() bool {
	return m.clearedlines
}

// RemoveLineIDs removes the "lines" edge to the InvoiceLine entity by IDs.
func (m *InvoiceHeaderMutation) RemoveLineIDs(ids ...int) {
	if m.removedlines == nil {
		m.removedlines = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lines, ids[i])
		m.removedlines[ids[i]] = struct{}{}
	}
}

// RemovedLines returns the removed IDs of the "lines" edge to the InvoiceLine entity.
func (m *InvoiceHeaderMutation) RemovedLinesIDs() (ids []int) {
	for id := range m.removedlines {
		ids = append(ids, id)
	}
	return
}

// LinesIDs returns the "lines" edge IDs in the mutation.
func (m *InvoiceHeaderMutation) LinesIDs() (ids []int) {
	for id := range m.lines {
		ids = append(ids, id)
	}
	return
}

// ResetLines resets all changes to the "lines" edge.
func (m *InvoiceHeaderMutation) ResetLines() {
	m.lines = nil
	m.clearedlines = false
	m.removedlines = nil
}

// Where appends a list predicates to the InvoiceHeaderMutation builder.
func (m *InvoiceHeaderMutation) Where(ps ...predicate.InvoiceHeader) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceHeaderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceHeaderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceHeader, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceHeaderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceHeaderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceHeader).
func (m *InvoiceHeaderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceHeaderMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.vehicle_id != nil {
		fields = append(fields, invoiceheader.FieldVehicleID)
	}
	if m.invoice_date != nil {
		fields = append(fields, invoiceheader.FieldInvoiceDate)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoiceheader.FieldInvoiceNumber)
	}
	if m.total_cost != nil {
		fields = append(fields, invoiceheader.FieldTotalCost)
	}
	if m.total_parts_cost != nil {
		fields = append(fields, invoiceheader.FieldTotalPartsCost)
	}
	if m.total_labor_cost != nil {
		fields = append(fields, invoiceheader.FieldTotalLaborCost)
	}
	if m.odometer != nil {
		fields = append(fields, invoiceheader.FieldOdometer)
	}
	if m.confidence_score != nil {
		fields = append(fields, invoiceheader.FieldConfidenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, invoiceheader.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceHeaderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoiceheader.FieldVehicleID:
		return m.VehicleID()
	case invoiceheader.FieldInvoiceDate:
		return m.InvoiceDate()
	case invoiceheader.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoiceheader.FieldTotalCost:
		return m.TotalCost()
	case invoiceheader.FieldTotalPartsCost:
		return m.TotalPartsCost()
	case invoiceheader.FieldTotalLaborCost:
		return m.TotalLaborCost()
	case invoiceheader.FieldOdometer:
		return m.Odometer()
	case invoiceheader.FieldConfidenceScore:
		return m.ConfidenceScore()
	case invoiceheader.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceHeaderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoiceheader.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case invoiceheader.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case invoiceheader.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoiceheader.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case invoiceheader.FieldTotalPartsCost:
		return m.OldTotalPartsCost(ctx)
	case invoiceheader.FieldTotalLaborCost:
		return m.OldTotalLaborCost(ctx)
	case invoiceheader.FieldOdometer:
		return m.OldOdometer(ctx)
	case invoiceheader.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case invoiceheader.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceHeader field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceHeaderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoiceheader.FieldVehicleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case invoiceheader.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case invoiceheader.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoiceheader.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case invoiceheader.FieldTotalPartsCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPartsCost(v)
		return nil
	case invoiceheader.FieldTotalLaborCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLaborCost(v)
		return nil
	case invoiceheader.FieldOdometer:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOdometer(v)
		return nil
	case invoiceheader.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case invoiceheader.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceHeader field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceHeaderMutation) AddedFields() []string {
	var fields []string
	if m.addvehicle_id != nil {
		fields = append(fields, invoiceheader.FieldVehicleID)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, invoiceheader.FieldTotalCost)
	}
	if m.addtotal_parts_cost != nil {
		fields = append(fields, invoiceheader.FieldTotalPartsCost)
	}
	if m.addtotal_labor_cost != nil {
		fields = append(fields, invoiceheader.FieldTotalLaborCost)
	}
	if m.addodometer != nil {
		fields = append(fields, invoiceheader.FieldOdometer)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, invoiceheader.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceHeaderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoiceheader.FieldVehicleID:
		return m.AddedVehicleID()
	case invoiceheader.FieldTotalCost:
		return m.AddedTotalCost()
	case invoiceheader.FieldTotalPartsCost:
		return m.AddedTotalPartsCost()
	case invoiceheader.FieldTotalLaborCost:
		return m.AddedTotalLaborCost()
	case invoiceheader.FieldOdometer:
		return m.AddedOdometer()
	case invoiceheader.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceHeaderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoiceheader.FieldVehicleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVehicleID(v)
		return nil
	case invoiceheader.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	case invoiceheader.FieldTotalPartsCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPartsCost(v)
		return nil
	case invoiceheader.FieldTotalLaborCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLaborCost(v)
		return nil
	case invoiceheader.FieldOdometer:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOdometer(v)
		return nil
	case invoiceheader.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceHeader numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceHeaderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoiceheader.FieldOdometer) {
		fields = append(fields, invoiceheader.FieldOdometer)
	}
	if m.FieldCleared(invoiceheader.FieldConfidenceScore) {
		fields = append(fields, invoiceheader.FieldConfidenceScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceHeaderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceHeaderMutation) ClearField(name string) error {
	switch name {
	case invoiceheader.FieldOdometer:
		m.ClearOdometer()
		return nil
	case invoiceheader.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	}
	return fmt.Errorf("unknown InvoiceHeader nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceHeaderMutation) ResetField(name string) error {
	switch name {
	case invoiceheader.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case invoiceheader.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case invoiceheader.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoiceheader.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case invoiceheader.FieldTotalPartsCost:
		m.ResetTotalPartsCost()
		return nil
	case invoiceheader.FieldTotalLaborCost:
		m.ResetTotalLaborCost()
		return nil
	case invoiceheader.FieldOdometer:
		m.ResetOdometer()
		return nil
	case invoiceheader.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case invoiceheader.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InvoiceHeader field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceHeaderMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lines != nil {
		edges = append(edges, invoiceheader.EdgeLines)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceHeaderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoiceheader.EdgeLines:
		ids := make([]ent.Value, 0, len(m.lines))
		for id := range m.lines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceHeaderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedlines != nil {
		edges = append(edges, invoiceheader.EdgeLines)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceHeaderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoiceheader.EdgeLines:
		ids := make([]ent.Value, 0, len(m.removedlines))
		for id := range m.removedlines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceHeaderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlines {
		edges = append(edges, invoiceheader.EdgeLines)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceHeaderMutation) EdgeCleared(name string) bool {
	switch name {
	case invoiceheader.EdgeLines:
		return m.clearedlines
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceHeaderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown InvoiceHeader unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceHeaderMutation) ResetEdge(name string) error {
	switch name {
	case invoiceheader.EdgeLines:
		m.ResetLines()
		return nil
	}
	return fmt.Errorf("unknown InvoiceHeader edge %s", name)
}

// InvoiceLineMutation represents an operation that mutates the InvoiceLine nodes in the graph.
type InvoiceLineMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	line_number         *int
	addline_number      *int
	category            *string
	part_number         *string
	unit_cost           *float64
	addunit_cost        *float64
	quantity            *float64
	addquantity         *float64
	total_line_cost     *float64
	addtotal_line_cost  *float64
	confidence_score    *float64
	addconfidence_score *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	header              *int
	clearedheader       bool
	done                bool
	oldValue            func(context.Context) (*InvoiceLine, error)
	predicates          []predicate.InvoiceLine
}

var _ ent.Mutation = (*InvoiceLineMutation)(nil)

// invoicelineOption allows management of the mutation configuration using functional options.
type invoicelineOption func(*InvoiceLineMutation)

// newInvoiceLineMutation creates new mutation for the InvoiceLine entity.
func newInvoiceLineMutation(c config, op Op, opts ...invoicelineOption) *InvoiceLineMutation {
	m := &InvoiceLineMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceLine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceLineID sets the ID field of the mutation.
func withInvoiceLineID(id int) invoicelineOption {
	return func(m *InvoiceLineMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceLine
		)
		m.oldValue = func(ctx context.Context) (*InvoiceLine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceLine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceLine sets the old InvoiceLine of the mutation.
func withInvoiceLine(node *InvoiceLine) invoicelineOption {
	return func(m *InvoiceLineMutation) {
		m.oldValue = func(context.Context) (*InvoiceLine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceLineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceLineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceLine entities.
func (m *InvoiceLineMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceLineMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceLineMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceLine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceID sets the "invoice_id" field.
func (m *InvoiceLineMutation) SetInvoiceID(i int) {
	m.header = &i
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *InvoiceLineMutation) InvoiceID() (r int, exists bool) {
	v := m.header
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldInvoiceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *InvoiceLineMutation) ResetInvoiceID() {
	m.header = nil
}

// SetLineNumber sets the "line_number" field.
func (m *InvoiceLineMutation) SetLineNumber(i int) {
	m.line_number = &i
	m.addline_number = nil
}

// LineNumber returns the value of the "line_number" field in the mutation.
func (m *InvoiceLineMutation) LineNumber() (r int, exists bool) {
	v := m.line_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLineNumber returns the old "line_number" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldLineNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineNumber: %w", err)
	}
	return oldValue.LineNumber, nil
}

// AddLineNumber adds i to the "line_number" field.
func (m *InvoiceLineMutation) AddLineNumber(i int) {
	if m.addline_number != nil {
		*m.addline_number += i
	} else {
		m.addline_number = &i
	}
}

// AddedLineNumber returns the value that was added to the "line_number" field in this mutation.
func (m *InvoiceLineMutation) AddedLineNumber() (r int, exists bool) {
	v := m.addline_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineNumber resets all changes to the "line_number" field.
func (m *InvoiceLineMutation) ResetLineNumber() {
	m.line_number = nil
	m.addline_number = nil
}

// SetCategory sets the "category" field.
func (m *InvoiceLineMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InvoiceLineMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *InvoiceLineMutation) ResetCategory() {
	m.category = nil
}

// SetPartNumber sets the "part_number" field.
func (m *InvoiceLineMutation) SetPartNumber(s string) {
	m.part_number = &s
}

// PartNumber returns the value of the "part_number" field in the mutation.
func (m *InvoiceLineMutation) PartNumber() (r string, exists bool) {
	v := m.part_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPartNumber returns the old "part_number" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldPartNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartNumber: %w", err)
	}
	return oldValue.PartNumber, nil
}

// ClearPartNumber clears the value of the "part_number" field.
func (m *InvoiceLineMutation) ClearPartNumber() {
	m.part_number = nil
	m.clearedFields[invoiceline.FieldPartNumber] = struct{}{}
}

// PartNumberCleared returns if the "part_number" field was cleared in this mutation.
func (m *InvoiceLineMutation) PartNumberCleared() bool {
	_, ok := m.clearedFields[invoiceline.FieldPartNumber]
	return ok
}

// ResetPartNumber resets all changes to the "part_number" field.
func (m *InvoiceLineMutation) ResetPartNumber() {
	m.part_number = nil
	delete(m.clearedFields, invoiceline.FieldPartNumber)
}

// SetUnitCost sets the "unit_cost" field.
func (m *InvoiceLineMutation) SetUnitCost(f float64) {
	m.unit_cost = &f
	m.addunit_cost = nil
}

// UnitCost returns the value of the "unit_cost" field in the mutation.
func (m *InvoiceLineMutation) UnitCost() (r float64, exists bool) {
	v := m.unit_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitCost returns the old "unit_cost" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldUnitCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitCost: %w", err)
	}
	return oldValue.UnitCost, nil
}

// AddUnitCost adds f to the "unit_cost" field.
func (m *InvoiceLineMutation) AddUnitCost(f float64) {
	if m.addunit_cost != nil {
		*m.addunit_cost += f
	} else {
		m.addunit_cost = &f
	}
}

// AddedUnitCost returns the value that was added to the "unit_cost" field in this mutation.
func (m *InvoiceLineMutation) AddedUnitCost() (r float64, exists bool) {
	v := m.addunit_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitCost resets all changes to the "unit_cost" field.
func (m *InvoiceLineMutation) ResetUnitCost() {
	m.unit_cost = nil
	m.addunit_cost = nil
}

// SetQuantity sets the "quantity" field.
func (m *InvoiceLineMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *InvoiceLineMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *InvoiceLineMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *InvoiceLineMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *InvoiceLineMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetTotalLineCost sets the "total_line_cost" field.
func (m *InvoiceLineMutation) SetTotalLineCost(f float64) {
	m.total_line_cost = &f
	m.addtotal_line_cost = nil
}

// TotalLineCost returns the value of the "total_line_cost" field in the mutation.
func (m *InvoiceLineMutation) TotalLineCost() (r float64, exists bool) {
	v := m.total_line_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLineCost returns the old "total_line_cost" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldTotalLineCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLineCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLineCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLineCost: %w", err)
	}
	return oldValue.TotalLineCost, nil
}

// AddTotalLineCost adds f to the "total_line_cost" field.
func (m *InvoiceLineMutation) AddTotalLineCost(f float64) {
	if m.addtotal_line_cost != nil {
		*m.addtotal_line_cost += f
	} else {
		m.addtotal_line_cost = &f
	}
}

// AddedTotalLineCost returns the value that was added to the "total_line_cost" field in this mutation.
func (m *InvoiceLineMutation) AddedTotalLineCost() (r float64, exists bool) {
	v := m.addtotal_line_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLineCost resets all changes to the "total_line_cost" field.
func (m *InvoiceLineMutation) ResetTotalLineCost() {
	m.total_line_cost = nil
	m.addtotal_line_cost = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *InvoiceLineMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *InvoiceLineMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *InvoiceLineMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *InvoiceLineMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *InvoiceLineMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[invoiceline.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *InvoiceLineMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[invoiceline.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *InvoiceLineMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, invoiceline.FieldConfidenceScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceLineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceLineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceLineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetHeaderID sets the "header" edge to the InvoiceHeader entity by id.
func (m *InvoiceLineMutation) SetHeaderID(id int) {
	m.header = &id
}

// ClearHeader clears the "header" edge to the InvoiceHeader entity.
func (m *InvoiceLineMutation) ClearHeader() {
	m.clearedheader = true
	m.clearedFields[invoiceline.FieldInvoiceID] = struct{}{}
}

// HeaderCleared reports if the "header" edge to the InvoiceHeader entity was cleared.
func (m *InvoiceLineMutation) HeaderCleared() bool {
	return m.clearedheader
}

// HeaderID returns the "header" edge ID in the mutation.
func (m *InvoiceLineMutation) HeaderID() (id int, exists bool) {
	if m.header != nil {
		return *m.header, true
	}
	return
}

// HeaderIDs returns the "header" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HeaderID instead. It exists only for internal usage by the builders.
func (m *InvoiceLineMutation) HeaderIDs() (ids []int) {
	if id := m.header; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHeader resets all changes to the "header" edge.
func (m *InvoiceLineMutation) ResetHeader() {
	m.header = nil
	m.clearedheader = false
}

// Where appends a list predicates to the InvoiceLineMutation builder.
func (m *InvoiceLineMutation) Where(ps ...predicate.InvoiceLine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceLineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceLineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceLine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceLineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceLineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceLine).
func (m *InvoiceLineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceLineMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.header != nil {
		fields = append(fields, invoiceline.FieldInvoiceID)
	}
	if m.line_number != nil {
		fields = append(fields, invoiceline.FieldLineNumber)
	}
	if m.category != nil {
		fields = append(fields, invoiceline.FieldCategory)
	}
	if m.part_number != nil {
		fields = append(fields, invoiceline.FieldPartNumber)
	}
	if m.unit_cost != nil {
		fields = append(fields, invoiceline.FieldUnitCost)
	}
	if m.quantity != nil {
		fields = append(fields, invoiceline.FieldQuantity)
	}
	if m.total_line_cost != nil {
		fields = append(fields, invoiceline.FieldTotalLineCost)
	}
	if m.confidence_score != nil {
		fields = append(fields, invoiceline.FieldConfidenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, invoiceline.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceLineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoiceline.FieldInvoiceID:
		return m.InvoiceID()
	case invoiceline.FieldLineNumber:
		return m.LineNumber()
	case invoiceline.FieldCategory:
		return m.Category()
	case invoiceline.FieldPartNumber:
		return m.PartNumber()
	case invoiceline.FieldUnitCost:
		return m.UnitCost()
	case invoiceline.FieldQuantity:
		return m.Quantity()
	case invoiceline.FieldTotalLineCost:
		return m.TotalLineCost()
	case invoiceline.FieldConfidenceScore:
		return m.ConfidenceScore()
	case invoiceline.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceLineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoiceline.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case invoiceline.FieldLineNumber:
		return m.OldLineNumber(ctx)
	case invoiceline.FieldCategory:
		return m.OldCategory(ctx)
	case invoiceline.FieldPartNumber:
		return m.OldPartNumber(ctx)
	case invoiceline.FieldUnitCost:
		return m.OldUnitCost(ctx)
	case invoiceline.FieldQuantity:
		return m.OldQuantity(ctx)
	case invoiceline.FieldTotalLineCost:
		return m.OldTotalLineCost(ctx)
	case invoiceline.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case invoiceline.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceLine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceLineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoiceline.FieldInvoiceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case invoiceline.FieldLineNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineNumber(v)
		return nil
	case invoiceline.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case invoiceline.FieldPartNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartNumber(v)
		return nil
	case invoiceline.FieldUnitCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitCost(v)
		return nil
	case invoiceline.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case invoiceline.FieldTotalLineCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLineCost(v)
		return nil
	case invoiceline.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case invoiceline.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceLineMutation) AddedFields() []string {
	var fields []string
	if m.addline_number != nil {
		fields = append(fields, invoiceline.FieldLineNumber)
	}
	if m.addunit_cost != nil {
		fields = append(fields, invoiceline.FieldUnitCost)
	}
	if m.addquantity != nil {
		fields = append(fields, invoiceline.FieldQuantity)
	}
	if m.addtotal_line_cost != nil {
		fields = append(fields, invoiceline.FieldTotalLineCost)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, invoiceline.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceLineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoiceline.FieldLineNumber:
		return m.AddedLineNumber()
	case invoiceline.FieldUnitCost:
		return m.AddedUnitCost()
	case invoiceline.FieldQuantity:
		return m.AddedQuantity()
	case invoiceline.FieldTotalLineCost:
		return m.AddedTotalLineCost()
	case invoiceline.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceLineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoiceline.FieldLineNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineNumber(v)
		return nil
	case invoiceline.FieldUnitCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitCost(v)
		return nil
	case invoiceline.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case invoiceline.FieldTotalLineCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLineCost(v)
		return nil
	case invoiceline.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceLineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoiceline.FieldPartNumber) {
		fields = append(fields, invoiceline.FieldPartNumber)
	}
	if m.FieldCleared(invoiceline.FieldConfidenceScore) {
		fields = append(fields, invoiceline.FieldConfidenceScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceLineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceLineMutation) ClearField(name string) error {
	switch name {
	case invoiceline.FieldPartNumber:
		m.ClearPartNumber()
		return nil
	case invoiceline.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceLineMutation) ResetField(name string) error {
	switch name {
	case invoiceline.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case invoiceline.FieldLineNumber:
		m.ResetLineNumber()
		return nil
	case invoiceline.FieldCategory:
		m.ResetCategory()
		return nil
	case invoiceline.FieldPartNumber:
		m.ResetPartNumber()
		return nil
	case invoiceline.FieldUnitCost:
		m.ResetUnitCost()
		return nil
	case invoiceline.FieldQuantity:
		m.ResetQuantity()
		return nil
	case invoiceline.FieldTotalLineCost:
		m.ResetTotalLineCost()
		return nil
	case invoiceline.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case invoiceline.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceLineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.header != nil {
		edges = append(edges, invoiceline.EdgeHeader)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceLineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoiceline.EdgeHeader:
		if id := m.header; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceLineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceLineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceLineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedheader {
		edges = append(edges, invoiceline.EdgeHeader)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceLineMutation) EdgeCleared(name string) bool {
	switch name {
	case invoiceline.EdgeHeader:
		return m.clearedheader
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceLineMutation) ClearEdge(name string) error {
	switch name {
	case invoiceline.EdgeHeader:
		m.ClearHeader()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceLineMutation) ResetEdge(name string) error {
	switch name {
	case invoiceline.EdgeHeader:
		m.ResetHeader()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine edge %s", name)
}
