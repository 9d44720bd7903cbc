// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Qyuzet/onecarbon/gen/ent/document"
	"github.com/Qyuzet/onecarbon/gen/ent/submission"
	"github.com/google/uuid"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetArchiveName sets the "archive_name" field.
func (_c *SubmissionCreate) SetArchiveName(v string) *SubmissionCreate {
	_c.mutation.SetArchiveName(v)
	return _c
}

// SetArchiveSize sets the "archive_size" field.
func (_c *SubmissionCreate) SetArchiveSize(v int) *SubmissionCreate {
	_c.mutation.SetArchiveSize(v)
	return _c
}

// SetTotalFootprint sets the "total_footprint" field.
func (_c *SubmissionCreate) SetTotalFootprint(v float64) *SubmissionCreate {
	_c.mutation.SetTotalFootprint(v)
	return _c
}

// SetDocumentCount sets the "document_count" field.
func (_c *SubmissionCreate) SetDocumentCount(v int) *SubmissionCreate {
	_c.mutation.SetDocumentCount(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v string) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStatus(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *SubmissionCreate) SetSubmittedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableSubmittedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableID(v *uuid.UUID) *SubmissionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *SubmissionCreate) AddDocumentIDs(ids ...uuid.UUID) *SubmissionCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *SubmissionCreate) AddDocuments(v ...*Document) *SubmissionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := submission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := submission.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := submission.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.ArchiveName(); !ok {
		return &ValidationError{Name: "archive_name", err: errors.New(`ent: missing required field "Submission.archive_name"`)}
	}
	if v, ok := _c.mutation.ArchiveName(); ok {
		if err := submission.ArchiveNameValidator(v); err != nil {
			return &ValidationError{Name: "archive_name", err: fmt.Errorf(`ent: validator failed for field "Submission.archive_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArchiveSize(); !ok {
		return &ValidationError{Name: "archive_size", err: errors.New(`ent: missing required field "Submission.archive_size"`)}
	}
	if v, ok := _c.mutation.ArchiveSize(); ok {
		if err := submission.ArchiveSizeValidator(v); err != nil {
			return &ValidationError{Name: "archive_size", err: fmt.Errorf(`ent: validator failed for field "Submission.archive_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalFootprint(); !ok {
		return &ValidationError{Name: "total_footprint", err: errors.New(`ent: missing required field "Submission.total_footprint"`)}
	}
	if v, ok := _c.mutation.TotalFootprint(); ok {
		if err := submission.TotalFootprintValidator(v); err != nil {
			return &ValidationError{Name: "total_footprint", err: fmt.Errorf(`ent: validator failed for field "Submission.total_footprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentCount(); !ok {
		return &ValidationError{Name: "document_count", err: errors.New(`ent: missing required field "Submission.document_count"`)}
	}
	if v, ok := _c.mutation.DocumentCount(); ok {
		if err := submission.DocumentCountValidator(v); err != nil {
			return &ValidationError{Name: "document_count", err: fmt.Errorf(`ent: validator failed for field "Submission.document_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Submission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "Submission.submitted_at"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ArchiveName(); ok {
		_spec.SetField(submission.FieldArchiveName, field.TypeString, value)
		_node.ArchiveName = value
	}
	if value, ok := _c.mutation.ArchiveSize(); ok {
		_spec.SetField(submission.FieldArchiveSize, field.TypeInt, value)
		_node.ArchiveSize = value
	}
	if value, ok := _c.mutation.TotalFootprint(); ok {
		_spec.SetField(submission.FieldTotalFootprint, field.TypeFloat64, value)
		_node.TotalFootprint = value
	}
	if value, ok := _c.mutation.DocumentCount(); ok {
		_spec.SetField(submission.FieldDocumentCount, field.TypeInt, value)
		_node.DocumentCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.DocumentsTable,
			Columns: []string{submission.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
