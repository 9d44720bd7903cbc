// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubmissionID holds the string denoting the submission_id field in the database.
	FieldSubmissionID = "submission_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldContentLength holds the string denoting the content_length field in the database.
	FieldContentLength = "content_length"
	// FieldFootprint holds the string denoting the footprint field in the database.
	FieldFootprint = "footprint"
	// FieldAnalyzedAt holds the string denoting the analyzed_at field in the database.
	FieldAnalyzedAt = "analyzed_at"
	// EdgeSubmission holds the string denoting the submission edge name in mutations.
	EdgeSubmission = "submission"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// SubmissionTable is the table that holds the submission relation/edge.
	SubmissionTable = "documents"
	// SubmissionInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionInverseTable = "submissions"
	// SubmissionColumn is the table column denoting the submission relation/edge.
	SubmissionColumn = "submission_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldSubmissionID,
	FieldName,
	FieldSizeBytes,
	FieldContentLength,
	FieldFootprint,
	FieldAnalyzedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	SizeBytesValidator func(int) error
	// ContentLengthValidator is a validator for the "content_length" field. It is called by the builders before save.
	ContentLengthValidator func(int) error
	// FootprintValidator is a validator for the "footprint" field. It is called by the builders before save.
	FootprintValidator func(float64) error
	// DefaultAnalyzedAt holds the default value on creation for the "analyzed_at" field.
	DefaultAnalyzedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubmissionID orders the results by the submission_id field.
func BySubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByContentLength orders the results by the content_length field.
func ByContentLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentLength, opts...).ToFunc()
}

// ByFootprint orders the results by the footprint field.
func ByFootprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFootprint, opts...).ToFunc()
}

// ByAnalyzedAt orders the results by the analyzed_at field.
func ByAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyzedAt, opts...).ToFunc()
}

// BySubmissionField orders the results by submission field.
func BySubmissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionStep(), sql.OrderByField(field, opts...))
	}
}
func newSubmissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
	)
}
