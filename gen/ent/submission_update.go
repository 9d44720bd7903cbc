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

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArchiveName sets the "archive_name" field.
func (_u *SubmissionUpdate) SetArchiveName(v string) *SubmissionUpdate {
	_u.mutation.SetArchiveName(v)
	return _u
}

// SetNillableArchiveName sets the "archive_name" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableArchiveName(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetArchiveName(*v)
	}
	return _u
}

// SetArchiveSize sets the "archive_size" field.
func (_u *SubmissionUpdate) SetArchiveSize(v int) *SubmissionUpdate {
	_u.mutation.ResetArchiveSize()
	_u.mutation.SetArchiveSize(v)
	return _u
}

// SetNillableArchiveSize sets the "archive_size" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableArchiveSize(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetArchiveSize(*v)
	}
	return _u
}

// AddArchiveSize adds value to the "archive_size" field.
func (_u *SubmissionUpdate) AddArchiveSize(v int) *SubmissionUpdate {
	_u.mutation.AddArchiveSize(v)
	return _u
}

// SetTotalFootprint sets the "total_footprint" field.
func (_u *SubmissionUpdate) SetTotalFootprint(v float64) *SubmissionUpdate {
	_u.mutation.ResetTotalFootprint()
	_u.mutation.SetTotalFootprint(v)
	return _u
}

// SetNillableTotalFootprint sets the "total_footprint" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTotalFootprint(v *float64) *SubmissionUpdate {
	if v != nil {
		_u.SetTotalFootprint(*v)
	}
	return _u
}

// AddTotalFootprint adds value to the "total_footprint" field.
func (_u *SubmissionUpdate) AddTotalFootprint(v float64) *SubmissionUpdate {
	_u.mutation.AddTotalFootprint(v)
	return _u
}

// SetDocumentCount sets the "document_count" field.
func (_u *SubmissionUpdate) SetDocumentCount(v int) *SubmissionUpdate {
	_u.mutation.ResetDocumentCount()
	_u.mutation.SetDocumentCount(v)
	return _u
}

// SetNillableDocumentCount sets the "document_count" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableDocumentCount(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetDocumentCount(*v)
	}
	return _u
}

// AddDocumentCount adds value to the "document_count" field.
func (_u *SubmissionUpdate) AddDocumentCount(v int) *SubmissionUpdate {
	_u.mutation.AddDocumentCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v string) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SubmissionUpdate) SetSubmittedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmittedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *SubmissionUpdate) AddDocumentIDs(ids ...uuid.UUID) *SubmissionUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *SubmissionUpdate) AddDocuments(v ...*Document) *SubmissionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *SubmissionUpdate) ClearDocuments() *SubmissionUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *SubmissionUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *SubmissionUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *SubmissionUpdate) RemoveDocuments(v ...*Document) *SubmissionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.ArchiveName(); ok {
		if err := submission.ArchiveNameValidator(v); err != nil {
			return &ValidationError{Name: "archive_name", err: fmt.Errorf(`ent: validator failed for field "Submission.archive_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchiveSize(); ok {
		if err := submission.ArchiveSizeValidator(v); err != nil {
			return &ValidationError{Name: "archive_size", err: fmt.Errorf(`ent: validator failed for field "Submission.archive_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalFootprint(); ok {
		if err := submission.TotalFootprintValidator(v); err != nil {
			return &ValidationError{Name: "total_footprint", err: fmt.Errorf(`ent: validator failed for field "Submission.total_footprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentCount(); ok {
		if err := submission.DocumentCountValidator(v); err != nil {
			return &ValidationError{Name: "document_count", err: fmt.Errorf(`ent: validator failed for field "Submission.document_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArchiveName(); ok {
		_spec.SetField(submission.FieldArchiveName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchiveSize(); ok {
		_spec.SetField(submission.FieldArchiveSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArchiveSize(); ok {
		_spec.AddField(submission.FieldArchiveSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFootprint(); ok {
		_spec.SetField(submission.FieldTotalFootprint, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalFootprint(); ok {
		_spec.AddField(submission.FieldTotalFootprint, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DocumentCount(); ok {
		_spec.SetField(submission.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentCount(); ok {
		_spec.AddField(submission.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetArchiveName sets the "archive_name" field.
func (_u *SubmissionUpdateOne) SetArchiveName(v string) *SubmissionUpdateOne {
	_u.mutation.SetArchiveName(v)
	return _u
}

// SetNillableArchiveName sets the "archive_name" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableArchiveName(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetArchiveName(*v)
	}
	return _u
}

// SetArchiveSize sets the "archive_size" field.
func (_u *SubmissionUpdateOne) SetArchiveSize(v int) *SubmissionUpdateOne {
	_u.mutation.ResetArchiveSize()
	_u.mutation.SetArchiveSize(v)
	return _u
}

// SetNillableArchiveSize sets the "archive_size" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableArchiveSize(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetArchiveSize(*v)
	}
	return _u
}

// AddArchiveSize adds value to the "archive_size" field.
func (_u *SubmissionUpdateOne) AddArchiveSize(v int) *SubmissionUpdateOne {
	_u.mutation.AddArchiveSize(v)
	return _u
}

// SetTotalFootprint sets the "total_footprint" field.
func (_u *SubmissionUpdateOne) SetTotalFootprint(v float64) *SubmissionUpdateOne {
	_u.mutation.ResetTotalFootprint()
	_u.mutation.SetTotalFootprint(v)
	return _u
}

// SetNillableTotalFootprint sets the "total_footprint" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTotalFootprint(v *float64) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTotalFootprint(*v)
	}
	return _u
}

// AddTotalFootprint adds value to the "total_footprint" field.
func (_u *SubmissionUpdateOne) AddTotalFootprint(v float64) *SubmissionUpdateOne {
	_u.mutation.AddTotalFootprint(v)
	return _u
}

// SetDocumentCount sets the "document_count" field.
func (_u *SubmissionUpdateOne) SetDocumentCount(v int) *SubmissionUpdateOne {
	_u.mutation.ResetDocumentCount()
	_u.mutation.SetDocumentCount(v)
	return _u
}

// SetNillableDocumentCount sets the "document_count" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableDocumentCount(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetDocumentCount(*v)
	}
	return _u
}

// AddDocumentCount adds value to the "document_count" field.
func (_u *SubmissionUpdateOne) AddDocumentCount(v int) *SubmissionUpdateOne {
	_u.mutation.AddDocumentCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v string) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SubmissionUpdateOne) SetSubmittedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmittedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *SubmissionUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *SubmissionUpdateOne) AddDocuments(v ...*Document) *SubmissionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *SubmissionUpdateOne) ClearDocuments() *SubmissionUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *SubmissionUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *SubmissionUpdateOne) RemoveDocuments(v ...*Document) *SubmissionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.ArchiveName(); ok {
		if err := submission.ArchiveNameValidator(v); err != nil {
			return &ValidationError{Name: "archive_name", err: fmt.Errorf(`ent: validator failed for field "Submission.archive_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArchiveSize(); ok {
		if err := submission.ArchiveSizeValidator(v); err != nil {
			return &ValidationError{Name: "archive_size", err: fmt.Errorf(`ent: validator failed for field "Submission.archive_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalFootprint(); ok {
		if err := submission.TotalFootprintValidator(v); err != nil {
			return &ValidationError{Name: "total_footprint", err: fmt.Errorf(`ent: validator failed for field "Submission.total_footprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentCount(); ok {
		if err := submission.DocumentCountValidator(v); err != nil {
			return &ValidationError{Name: "document_count", err: fmt.Errorf(`ent: validator failed for field "Submission.document_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.ArchiveName(); ok {
		_spec.SetField(submission.FieldArchiveName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchiveSize(); ok {
		_spec.SetField(submission.FieldArchiveSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArchiveSize(); ok {
		_spec.AddField(submission.FieldArchiveSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFootprint(); ok {
		_spec.SetField(submission.FieldTotalFootprint, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalFootprint(); ok {
		_spec.AddField(submission.FieldTotalFootprint, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DocumentCount(); ok {
		_spec.SetField(submission.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentCount(); ok {
		_spec.AddField(submission.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
