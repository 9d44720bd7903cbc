// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Qyuzet/onecarbon/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSubmissionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldName, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSizeBytes, v))
}

// ContentLength applies equality check predicate on the "content_length" field. It's identical to ContentLengthEQ.
func ContentLength(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentLength, v))
}

// Footprint applies equality check predicate on the "footprint" field. It's identical to FootprintEQ.
func Footprint(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFootprint, v))
}

// AnalyzedAt applies equality check predicate on the "analyzed_at" field. It's identical to AnalyzedAtEQ.
func AnalyzedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAnalyzedAt, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldName, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSizeBytes, v))
}

// ContentLengthEQ applies the EQ predicate on the "content_length" field.
func ContentLengthEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentLength, v))
}

// ContentLengthNEQ applies the NEQ predicate on the "content_length" field.
func ContentLengthNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentLength, v))
}

// ContentLengthIn applies the In predicate on the "content_length" field.
func ContentLengthIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentLength, vs...))
}

// ContentLengthNotIn applies the NotIn predicate on the "content_length" field.
func ContentLengthNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentLength, vs...))
}

// ContentLengthGT applies the GT predicate on the "content_length" field.
func ContentLengthGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentLength, v))
}

// ContentLengthGTE applies the GTE predicate on the "content_length" field.
func ContentLengthGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentLength, v))
}

// ContentLengthLT applies the LT predicate on the "content_length" field.
func ContentLengthLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentLength, v))
}

// ContentLengthLTE applies the LTE predicate on the "content_length" field.
func ContentLengthLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentLength, v))
}

// FootprintEQ applies the EQ predicate on the "footprint" field.
func FootprintEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFootprint, v))
}

// FootprintNEQ applies the NEQ predicate on the "footprint" field.
func FootprintNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFootprint, v))
}

// FootprintIn applies the In predicate on the "footprint" field.
func FootprintIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFootprint, vs...))
}

// FootprintNotIn applies the NotIn predicate on the "footprint" field.
func FootprintNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFootprint, vs...))
}

// FootprintGT applies the GT predicate on the "footprint" field.
func FootprintGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFootprint, v))
}

// FootprintGTE applies the GTE predicate on the "footprint" field.
func FootprintGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFootprint, v))
}

// FootprintLT applies the LT predicate on the "footprint" field.
func FootprintLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFootprint, v))
}

// FootprintLTE applies the LTE predicate on the "footprint" field.
func FootprintLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFootprint, v))
}

// AnalyzedAtEQ applies the EQ predicate on the "analyzed_at" field.
func AnalyzedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtNEQ applies the NEQ predicate on the "analyzed_at" field.
func AnalyzedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtIn applies the In predicate on the "analyzed_at" field.
func AnalyzedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtNotIn applies the NotIn predicate on the "analyzed_at" field.
func AnalyzedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtGT applies the GT predicate on the "analyzed_at" field.
func AnalyzedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldAnalyzedAt, v))
}

// AnalyzedAtGTE applies the GTE predicate on the "analyzed_at" field.
func AnalyzedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldAnalyzedAt, v))
}

// AnalyzedAtLT applies the LT predicate on the "analyzed_at" field.
func AnalyzedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldAnalyzedAt, v))
}

// AnalyzedAtLTE applies the LTE predicate on the "analyzed_at" field.
func AnalyzedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldAnalyzedAt, v))
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.Submission) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
