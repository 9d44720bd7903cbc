// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "registered_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_name",
				Unique:  true,
				Columns: []*schema.Column{CompaniesColumns[1]},
			},
		},
	}
	// ContactMessagesColumns holds the columns for the "contact_messages" table.
	ContactMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "received_at", Type: field.TypeTime},
	}
	// ContactMessagesTable holds the schema information for the "contact_messages" table.
	ContactMessagesTable = &schema.Table{
		Name:       "contact_messages",
		Columns:    ContactMessagesColumns,
		PrimaryKey: []*schema.Column{ContactMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contactmessage_received_at",
				Unique:  false,
				Columns: []*schema.Column{ContactMessagesColumns[4]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt},
		{Name: "content_length", Type: field.TypeInt},
		{Name: "footprint", Type: field.TypeFloat64},
		{Name: "analyzed_at", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_submissions_documents",
				Columns:    []*schema.Column{DocumentsColumns[6]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_submission_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// LedgerEntriesColumns holds the columns for the "ledger_entries" table.
	LedgerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "deposits", Type: field.TypeJSON},
		{Name: "transaction_id", Type: field.TypeString},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// LedgerEntriesTable holds the schema information for the "ledger_entries" table.
	LedgerEntriesTable = &schema.Table{
		Name:       "ledger_entries",
		Columns:    LedgerEntriesColumns,
		PrimaryKey: []*schema.Column{LedgerEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ledger_entries_companies_ledger_entries",
				Columns:    []*schema.Column{LedgerEntriesColumns[4]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ledgerentry_company_id_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[4], LedgerEntriesColumns[3]},
			},
			{
				Name:    "ledgerentry_transaction_id",
				Unique:  true,
				Columns: []*schema.Column{LedgerEntriesColumns[2]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "archive_name", Type: field.TypeString},
		{Name: "archive_size", Type: field.TypeInt},
		{Name: "total_footprint", Type: field.TypeFloat64},
		{Name: "document_count", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "ANALYZED"},
		{Name: "submitted_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompaniesTable,
		ContactMessagesTable,
		DocumentsTable,
		LedgerEntriesTable,
		SubmissionsTable,
	}
)

func init() {
	CompaniesTable.Annotation = &entsql.Annotation{
		Table: "companies",
	}
	ContactMessagesTable.Annotation = &entsql.Annotation{
		Table: "contact_messages",
	}
	DocumentsTable.ForeignKeys[0].RefTable = SubmissionsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	LedgerEntriesTable.ForeignKeys[0].RefTable = CompaniesTable
	LedgerEntriesTable.Annotation = &entsql.Annotation{
		Table: "ledger_entries",
	}
	SubmissionsTable.Annotation = &entsql.Annotation{
		Table: "submissions",
	}
}
