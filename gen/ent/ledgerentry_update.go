// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Qyuzet/onecarbon/gen/ent/company"
	"github.com/Qyuzet/onecarbon/gen/ent/ledgerentry"
	"github.com/Qyuzet/onecarbon/gen/ent/predicate"
	"github.com/google/uuid"
)

// LedgerEntryUpdate is the builder for updating LedgerEntry entities.
type LedgerEntryUpdate struct {
	config
	hooks    []Hook
	mutation *LedgerEntryMutation
}

// Where appends a list predicates to the LedgerEntryUpdate builder.
func (_u *LedgerEntryUpdate) Where(ps ...predicate.LedgerEntry) *LedgerEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *LedgerEntryUpdate) SetCompanyID(v uuid.UUID) *LedgerEntryUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableCompanyID(v *uuid.UUID) *LedgerEntryUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetDeposits sets the "deposits" field.
func (_u *LedgerEntryUpdate) SetDeposits(v []int64) *LedgerEntryUpdate {
	_u.mutation.SetDeposits(v)
	return _u
}

// AppendDeposits appends value to the "deposits" field.
func (_u *LedgerEntryUpdate) AppendDeposits(v []int64) *LedgerEntryUpdate {
	_u.mutation.AppendDeposits(v)
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *LedgerEntryUpdate) SetTransactionID(v string) *LedgerEntryUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableTransactionID(v *string) *LedgerEntryUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *LedgerEntryUpdate) SetRecordedAt(v time.Time) *LedgerEntryUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *LedgerEntryUpdate) SetNillableRecordedAt(v *time.Time) *LedgerEntryUpdate {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *LedgerEntryUpdate) SetCompany(v *Company) *LedgerEntryUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_u *LedgerEntryUpdate) Mutation() *LedgerEntryMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *LedgerEntryUpdate) ClearCompany() *LedgerEntryUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LedgerEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LedgerEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEntryUpdate) check() error {
	if v, ok := _u.mutation.TransactionID(); ok {
		if err := ledgerentry.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.transaction_id": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.company"`)
	}
	return nil
}

func (_u *LedgerEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerentry.Table, ledgerentry.Columns, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Deposits(); ok {
		_spec.SetField(ledgerentry.FieldDeposits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeposits(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ledgerentry.FieldDeposits, value)
		})
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(ledgerentry.FieldTransactionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(ledgerentry.FieldRecordedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.CompanyTable,
			Columns: []string{ledgerentry.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.CompanyTable,
			Columns: []string{ledgerentry.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LedgerEntryUpdateOne is the builder for updating a single LedgerEntry entity.
type LedgerEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LedgerEntryMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *LedgerEntryUpdateOne) SetCompanyID(v uuid.UUID) *LedgerEntryUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableCompanyID(v *uuid.UUID) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetDeposits sets the "deposits" field.
func (_u *LedgerEntryUpdateOne) SetDeposits(v []int64) *LedgerEntryUpdateOne {
	_u.mutation.SetDeposits(v)
	return _u
}

// AppendDeposits appends value to the "deposits" field.
func (_u *LedgerEntryUpdateOne) AppendDeposits(v []int64) *LedgerEntryUpdateOne {
	_u.mutation.AppendDeposits(v)
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *LedgerEntryUpdateOne) SetTransactionID(v string) *LedgerEntryUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableTransactionID(v *string) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *LedgerEntryUpdateOne) SetRecordedAt(v time.Time) *LedgerEntryUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *LedgerEntryUpdateOne) SetNillableRecordedAt(v *time.Time) *LedgerEntryUpdateOne {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *LedgerEntryUpdateOne) SetCompany(v *Company) *LedgerEntryUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_u *LedgerEntryUpdateOne) Mutation() *LedgerEntryMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *LedgerEntryUpdateOne) ClearCompany() *LedgerEntryUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the LedgerEntryUpdate builder.
func (_u *LedgerEntryUpdateOne) Where(ps ...predicate.LedgerEntry) *LedgerEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LedgerEntryUpdateOne) Select(field string, fields ...string) *LedgerEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LedgerEntry entity.
func (_u *LedgerEntryUpdateOne) Save(ctx context.Context) (*LedgerEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LedgerEntryUpdateOne) SaveX(ctx context.Context) *LedgerEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LedgerEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LedgerEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LedgerEntryUpdateOne) check() error {
	if v, ok := _u.mutation.TransactionID(); ok {
		if err := ledgerentry.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.transaction_id": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LedgerEntry.company"`)
	}
	return nil
}

func (_u *LedgerEntryUpdateOne) sqlSave(ctx context.Context) (_node *LedgerEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ledgerentry.Table, ledgerentry.Columns, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LedgerEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ledgerentry.FieldID)
		for _, f := range fields {
			if !ledgerentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ledgerentry.FieldID {
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
	if value, ok := _u.mutation.Deposits(); ok {
		_spec.SetField(ledgerentry.FieldDeposits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeposits(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ledgerentry.FieldDeposits, value)
		})
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(ledgerentry.FieldTransactionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(ledgerentry.FieldRecordedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.CompanyTable,
			Columns: []string{ledgerentry.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ledgerentry.CompanyTable,
			Columns: []string{ledgerentry.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LedgerEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
