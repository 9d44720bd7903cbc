// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Qyuzet/onecarbon/gen/ent/company"
	"github.com/Qyuzet/onecarbon/gen/ent/ledgerentry"
	"github.com/google/uuid"
)

// LedgerEntryCreate is the builder for creating a LedgerEntry entity.
type LedgerEntryCreate struct {
	config
	mutation *LedgerEntryMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *LedgerEntryCreate) SetCompanyID(v uuid.UUID) *LedgerEntryCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetDeposits sets the "deposits" field.
func (_c *LedgerEntryCreate) SetDeposits(v []int64) *LedgerEntryCreate {
	_c.mutation.SetDeposits(v)
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *LedgerEntryCreate) SetTransactionID(v string) *LedgerEntryCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *LedgerEntryCreate) SetRecordedAt(v time.Time) *LedgerEntryCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *LedgerEntryCreate) SetNillableRecordedAt(v *time.Time) *LedgerEntryCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LedgerEntryCreate) SetID(v uuid.UUID) *LedgerEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LedgerEntryCreate) SetNillableID(v *uuid.UUID) *LedgerEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *LedgerEntryCreate) SetCompany(v *Company) *LedgerEntryCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the LedgerEntryMutation object of the builder.
func (_c *LedgerEntryCreate) Mutation() *LedgerEntryMutation {
	return _c.mutation
}

// Save creates the LedgerEntry in the database.
func (_c *LedgerEntryCreate) Save(ctx context.Context) (*LedgerEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LedgerEntryCreate) SaveX(ctx context.Context) *LedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LedgerEntryCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := ledgerentry.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ledgerentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LedgerEntryCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "LedgerEntry.company_id"`)}
	}
	if _, ok := _c.mutation.Deposits(); !ok {
		return &ValidationError{Name: "deposits", err: errors.New(`ent: missing required field "LedgerEntry.deposits"`)}
	}
	if _, ok := _c.mutation.TransactionID(); !ok {
		return &ValidationError{Name: "transaction_id", err: errors.New(`ent: missing required field "LedgerEntry.transaction_id"`)}
	}
	if v, ok := _c.mutation.TransactionID(); ok {
		if err := ledgerentry.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "LedgerEntry.transaction_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "LedgerEntry.recorded_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "LedgerEntry.company"`)}
	}
	return nil
}

func (_c *LedgerEntryCreate) sqlSave(ctx context.Context) (*LedgerEntry, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LedgerEntryCreate) createSpec() (*LedgerEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &LedgerEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ledgerentry.Table, sqlgraph.NewFieldSpec(ledgerentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Deposits(); ok {
		_spec.SetField(ledgerentry.FieldDeposits, field.TypeJSON, value)
		_node.Deposits = value
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(ledgerentry.FieldTransactionID, field.TypeString, value)
		_node.TransactionID = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(ledgerentry.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LedgerEntryCreateBulk is the builder for creating many LedgerEntry entities in bulk.
type LedgerEntryCreateBulk struct {
	config
	err      error
	builders []*LedgerEntryCreate
}

// Save creates the LedgerEntry entities in the database.
func (_c *LedgerEntryCreateBulk) Save(ctx context.Context) ([]*LedgerEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LedgerEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LedgerEntryMutation)
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
func (_c *LedgerEntryCreateBulk) SaveX(ctx context.Context) []*LedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
