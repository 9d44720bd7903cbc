// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldArchiveName holds the string denoting the archive_name field in the database.
	FieldArchiveName = "archive_name"
	// FieldArchiveSize holds the string denoting the archive_size field in the database.
	FieldArchiveSize = "archive_size"
	// FieldTotalFootprint holds the string denoting the total_footprint field in the database.
	FieldTotalFootprint = "total_footprint"
	// FieldDocumentCount holds the string denoting the document_count field in the database.
	FieldDocumentCount = "document_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "submission_id"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldArchiveName,
	FieldArchiveSize,
	FieldTotalFootprint,
	FieldDocumentCount,
	FieldStatus,
	FieldSubmittedAt,
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
	// ArchiveNameValidator is a validator for the "archive_name" field. It is called by the builders before save.
	ArchiveNameValidator func(string) error
	// ArchiveSizeValidator is a validator for the "archive_size" field. It is called by the builders before save.
	ArchiveSizeValidator func(int) error
	// TotalFootprintValidator is a validator for the "total_footprint" field. It is called by the builders before save.
	TotalFootprintValidator func(float64) error
	// DocumentCountValidator is a validator for the "document_count" field. It is called by the builders before save.
	DocumentCountValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultSubmittedAt holds the default value on creation for the "submitted_at" field.
	DefaultSubmittedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByArchiveName orders the results by the archive_name field.
func ByArchiveName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchiveName, opts...).ToFunc()
}

// ByArchiveSize orders the results by the archive_size field.
func ByArchiveSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchiveSize, opts...).ToFunc()
}

// ByTotalFootprint orders the results by the total_footprint field.
func ByTotalFootprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFootprint, opts...).ToFunc()
}

// ByDocumentCount orders the results by the document_count field.
func ByDocumentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
