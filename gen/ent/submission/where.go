// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Qyuzet/onecarbon/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// ArchiveName applies equality check predicate on the "archive_name" field. It's identical to ArchiveNameEQ.
func ArchiveName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldArchiveName, v))
}

// ArchiveSize applies equality check predicate on the "archive_size" field. It's identical to ArchiveSizeEQ.
func ArchiveSize(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldArchiveSize, v))
}

// TotalFootprint applies equality check predicate on the "total_footprint" field. It's identical to TotalFootprintEQ.
func TotalFootprint(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTotalFootprint, v))
}

// DocumentCount applies equality check predicate on the "document_count" field. It's identical to DocumentCountEQ.
func DocumentCount(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDocumentCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedAt, v))
}

// ArchiveNameEQ applies the EQ predicate on the "archive_name" field.
func ArchiveNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldArchiveName, v))
}

// ArchiveNameNEQ applies the NEQ predicate on the "archive_name" field.
func ArchiveNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldArchiveName, v))
}

// ArchiveNameIn applies the In predicate on the "archive_name" field.
func ArchiveNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldArchiveName, vs...))
}

// ArchiveNameNotIn applies the NotIn predicate on the "archive_name" field.
func ArchiveNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldArchiveName, vs...))
}

// ArchiveNameGT applies the GT predicate on the "archive_name" field.
func ArchiveNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldArchiveName, v))
}

// ArchiveNameGTE applies the GTE predicate on the "archive_name" field.
func ArchiveNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldArchiveName, v))
}

// ArchiveNameLT applies the LT predicate on the "archive_name" field.
func ArchiveNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldArchiveName, v))
}

// ArchiveNameLTE applies the LTE predicate on the "archive_name" field.
func ArchiveNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldArchiveName, v))
}

// ArchiveNameContains applies the Contains predicate on the "archive_name" field.
func ArchiveNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldArchiveName, v))
}

// ArchiveNameHasPrefix applies the HasPrefix predicate on the "archive_name" field.
func ArchiveNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldArchiveName, v))
}

// ArchiveNameHasSuffix applies the HasSuffix predicate on the "archive_name" field.
func ArchiveNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldArchiveName, v))
}

// ArchiveNameEqualFold applies the EqualFold predicate on the "archive_name" field.
func ArchiveNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldArchiveName, v))
}

// ArchiveNameContainsFold applies the ContainsFold predicate on the "archive_name" field.
func ArchiveNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldArchiveName, v))
}

// ArchiveSizeEQ applies the EQ predicate on the "archive_size" field.
func ArchiveSizeEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldArchiveSize, v))
}

// ArchiveSizeNEQ applies the NEQ predicate on the "archive_size" field.
func ArchiveSizeNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldArchiveSize, v))
}

// ArchiveSizeIn applies the In predicate on the "archive_size" field.
func ArchiveSizeIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldArchiveSize, vs...))
}

// ArchiveSizeNotIn applies the NotIn predicate on the "archive_size" field.
func ArchiveSizeNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldArchiveSize, vs...))
}

// ArchiveSizeGT applies the GT predicate on the "archive_size" field.
func ArchiveSizeGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldArchiveSize, v))
}

// ArchiveSizeGTE applies the GTE predicate on the "archive_size" field.
func ArchiveSizeGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldArchiveSize, v))
}

// ArchiveSizeLT applies the LT predicate on the "archive_size" field.
func ArchiveSizeLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldArchiveSize, v))
}

// ArchiveSizeLTE applies the LTE predicate on the "archive_size" field.
func ArchiveSizeLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldArchiveSize, v))
}

// TotalFootprintEQ applies the EQ predicate on the "total_footprint" field.
func TotalFootprintEQ(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTotalFootprint, v))
}

// TotalFootprintNEQ applies the NEQ predicate on the "total_footprint" field.
func TotalFootprintNEQ(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTotalFootprint, v))
}

// TotalFootprintIn applies the In predicate on the "total_footprint" field.
func TotalFootprintIn(vs ...float64) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTotalFootprint, vs...))
}

// TotalFootprintNotIn applies the NotIn predicate on the "total_footprint" field.
func TotalFootprintNotIn(vs ...float64) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTotalFootprint, vs...))
}

// TotalFootprintGT applies the GT predicate on the "total_footprint" field.
func TotalFootprintGT(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldTotalFootprint, v))
}

// TotalFootprintGTE applies the GTE predicate on the "total_footprint" field.
func TotalFootprintGTE(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldTotalFootprint, v))
}

// TotalFootprintLT applies the LT predicate on the "total_footprint" field.
func TotalFootprintLT(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldTotalFootprint, v))
}

// TotalFootprintLTE applies the LTE predicate on the "total_footprint" field.
func TotalFootprintLTE(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldTotalFootprint, v))
}

// DocumentCountEQ applies the EQ predicate on the "document_count" field.
func DocumentCountEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDocumentCount, v))
}

// DocumentCountNEQ applies the NEQ predicate on the "document_count" field.
func DocumentCountNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldDocumentCount, v))
}

// DocumentCountIn applies the In predicate on the "document_count" field.
func DocumentCountIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldDocumentCount, vs...))
}

// DocumentCountNotIn applies the NotIn predicate on the "document_count" field.
func DocumentCountNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldDocumentCount, vs...))
}

// DocumentCountGT applies the GT predicate on the "document_count" field.
func DocumentCountGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldDocumentCount, v))
}

// DocumentCountGTE applies the GTE predicate on the "document_count" field.
func DocumentCountGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldDocumentCount, v))
}

// DocumentCountLT applies the LT predicate on the "document_count" field.
func DocumentCountLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldDocumentCount, v))
}

// DocumentCountLTE applies the LTE predicate on the "document_count" field.
func DocumentCountLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldDocumentCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldStatus, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmittedAt, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
