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
	"github.com/Qyuzet/onecarbon/gen/ent/document"
	"github.com/Qyuzet/onecarbon/gen/ent/predicate"
	"github.com/Qyuzet/onecarbon/gen/ent/submission"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *DocumentUpdate) SetSubmissionID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSubmissionID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentUpdate) SetName(v string) *DocumentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *DocumentUpdate) SetSizeBytes(v int) *DocumentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSizeBytes(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *DocumentUpdate) AddSizeBytes(v int) *DocumentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetContentLength sets the "content_length" field.
func (_u *DocumentUpdate) SetContentLength(v int) *DocumentUpdate {
	_u.mutation.ResetContentLength()
	_u.mutation.SetContentLength(v)
	return _u
}

// SetNillableContentLength sets the "content_length" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentLength(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetContentLength(*v)
	}
	return _u
}

// AddContentLength adds value to the "content_length" field.
func (_u *DocumentUpdate) AddContentLength(v int) *DocumentUpdate {
	_u.mutation.AddContentLength(v)
	return _u
}

// SetFootprint sets the "footprint" field.
func (_u *DocumentUpdate) SetFootprint(v float64) *DocumentUpdate {
	_u.mutation.ResetFootprint()
	_u.mutation.SetFootprint(v)
	return _u
}

// SetNillableFootprint sets the "footprint" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFootprint(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetFootprint(*v)
	}
	return _u
}

// AddFootprint adds value to the "footprint" field.
func (_u *DocumentUpdate) AddFootprint(v float64) *DocumentUpdate {
	_u.mutation.AddFootprint(v)
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *DocumentUpdate) SetAnalyzedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAnalyzedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *DocumentUpdate) SetSubmission(v *Submission) *DocumentUpdate {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *DocumentUpdate) ClearSubmission() *DocumentUpdate {
	_u.mutation.ClearSubmission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := document.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Document.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := document.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "Document.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentLength(); ok {
		if err := document.ContentLengthValidator(v); err != nil {
			return &ValidationError{Name: "content_length", err: fmt.Errorf(`ent: validator failed for field "Document.content_length": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Footprint(); ok {
		if err := document.FootprintValidator(v); err != nil {
			return &ValidationError{Name: "footprint", err: fmt.Errorf(`ent: validator failed for field "Document.footprint": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.submission"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(document.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(document.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(document.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentLength(); ok {
		_spec.SetField(document.FieldContentLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentLength(); ok {
		_spec.AddField(document.FieldContentLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Footprint(); ok {
		_spec.SetField(document.FieldFootprint, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFootprint(); ok {
		_spec.AddField(document.FieldFootprint, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(document.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SubmissionTable,
			Columns: []string{document.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SubmissionTable,
			Columns: []string{document.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetSubmissionID sets the "submission_id" field.
func (_u *DocumentUpdateOne) SetSubmissionID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSubmissionID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentUpdateOne) SetName(v string) *DocumentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *DocumentUpdateOne) SetSizeBytes(v int) *DocumentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSizeBytes(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *DocumentUpdateOne) AddSizeBytes(v int) *DocumentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetContentLength sets the "content_length" field.
func (_u *DocumentUpdateOne) SetContentLength(v int) *DocumentUpdateOne {
	_u.mutation.ResetContentLength()
	_u.mutation.SetContentLength(v)
	return _u
}

// SetNillableContentLength sets the "content_length" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentLength(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentLength(*v)
	}
	return _u
}

// AddContentLength adds value to the "content_length" field.
func (_u *DocumentUpdateOne) AddContentLength(v int) *DocumentUpdateOne {
	_u.mutation.AddContentLength(v)
	return _u
}

// SetFootprint sets the "footprint" field.
func (_u *DocumentUpdateOne) SetFootprint(v float64) *DocumentUpdateOne {
	_u.mutation.ResetFootprint()
	_u.mutation.SetFootprint(v)
	return _u
}

// SetNillableFootprint sets the "footprint" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFootprint(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetFootprint(*v)
	}
	return _u
}

// AddFootprint adds value to the "footprint" field.
func (_u *DocumentUpdateOne) AddFootprint(v float64) *DocumentUpdateOne {
	_u.mutation.AddFootprint(v)
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *DocumentUpdateOne) SetAnalyzedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAnalyzedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *DocumentUpdateOne) SetSubmission(v *Submission) *DocumentUpdateOne {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *DocumentUpdateOne) ClearSubmission() *DocumentUpdateOne {
	_u.mutation.ClearSubmission()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := document.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Document.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := document.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "Document.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentLength(); ok {
		if err := document.ContentLengthValidator(v); err != nil {
			return &ValidationError{Name: "content_length", err: fmt.Errorf(`ent: validator failed for field "Document.content_length": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Footprint(); ok {
		if err := document.FootprintValidator(v); err != nil {
			return &ValidationError{Name: "footprint", err: fmt.Errorf(`ent: validator failed for field "Document.footprint": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.submission"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(document.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(document.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(document.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentLength(); ok {
		_spec.SetField(document.FieldContentLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentLength(); ok {
		_spec.AddField(document.FieldContentLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Footprint(); ok {
		_spec.SetField(document.FieldFootprint, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFootprint(); ok {
		_spec.AddField(document.FieldFootprint, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(document.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SubmissionTable,
			Columns: []string{document.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SubmissionTable,
			Columns: []string{document.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
