// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Qyuzet/onecarbon/db/ent/schema"
	"github.com/Qyuzet/onecarbon/gen/ent/company"
	"github.com/Qyuzet/onecarbon/gen/ent/contactmessage"
	"github.com/Qyuzet/onecarbon/gen/ent/document"
	"github.com/Qyuzet/onecarbon/gen/ent/ledgerentry"
	"github.com/Qyuzet/onecarbon/gen/ent/submission"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescRegisteredAt is the schema descriptor for registered_at field.
	companyDescRegisteredAt := companyFields[2].Descriptor()
	// company.DefaultRegisteredAt holds the default value on creation for the registered_at field.
	company.DefaultRegisteredAt = companyDescRegisteredAt.Default.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	contactmessageFields := schema.ContactMessage{}.Fields()
	_ = contactmessageFields
	// contactmessageDescName is the schema descriptor for name field.
	contactmessageDescName := contactmessageFields[1].Descriptor()
	// contactmessage.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contactmessage.NameValidator = contactmessageDescName.Validators[0].(func(string) error)
	// contactmessageDescEmail is the schema descriptor for email field.
	contactmessageDescEmail := contactmessageFields[2].Descriptor()
	// contactmessage.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	contactmessage.EmailValidator = contactmessageDescEmail.Validators[0].(func(string) error)
	// contactmessageDescMessage is the schema descriptor for message field.
	contactmessageDescMessage := contactmessageFields[3].Descriptor()
	// contactmessage.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	contactmessage.MessageValidator = contactmessageDescMessage.Validators[0].(func(string) error)
	// contactmessageDescReceivedAt is the schema descriptor for received_at field.
	contactmessageDescReceivedAt := contactmessageFields[4].Descriptor()
	// contactmessage.DefaultReceivedAt holds the default value on creation for the received_at field.
	contactmessage.DefaultReceivedAt = contactmessageDescReceivedAt.Default.(func() time.Time)
	// contactmessageDescID is the schema descriptor for id field.
	contactmessageDescID := contactmessageFields[0].Descriptor()
	// contactmessage.DefaultID holds the default value on creation for the id field.
	contactmessage.DefaultID = contactmessageDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescName is the schema descriptor for name field.
	documentDescName := documentFields[2].Descriptor()
	// document.NameValidator is a validator for the "name" field. It is called by the builders before save.
	document.NameValidator = documentDescName.Validators[0].(func(string) error)
	// documentDescSizeBytes is the schema descriptor for size_bytes field.
	documentDescSizeBytes := documentFields[3].Descriptor()
	// document.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	document.SizeBytesValidator = documentDescSizeBytes.Validators[0].(func(int) error)
	// documentDescContentLength is the schema descriptor for content_length field.
	documentDescContentLength := documentFields[4].Descriptor()
	// document.ContentLengthValidator is a validator for the "content_length" field. It is called by the builders before save.
	document.ContentLengthValidator = documentDescContentLength.Validators[0].(func(int) error)
	// documentDescFootprint is the schema descriptor for footprint field.
	documentDescFootprint := documentFields[5].Descriptor()
	// document.FootprintValidator is a validator for the "footprint" field. It is called by the builders before save.
	document.FootprintValidator = documentDescFootprint.Validators[0].(func(float64) error)
	// documentDescAnalyzedAt is the schema descriptor for analyzed_at field.
	documentDescAnalyzedAt := documentFields[6].Descriptor()
	// document.DefaultAnalyzedAt holds the default value on creation for the analyzed_at field.
	document.DefaultAnalyzedAt = documentDescAnalyzedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	ledgerentryFields := schema.LedgerEntry{}.Fields()
	_ = ledgerentryFields
	// ledgerentryDescTransactionID is the schema descriptor for transaction_id field.
	ledgerentryDescTransactionID := ledgerentryFields[3].Descriptor()
	// ledgerentry.TransactionIDValidator is a validator for the "transaction_id" field. It is called by the builders before save.
	ledgerentry.TransactionIDValidator = ledgerentryDescTransactionID.Validators[0].(func(string) error)
	// ledgerentryDescRecordedAt is the schema descriptor for recorded_at field.
	ledgerentryDescRecordedAt := ledgerentryFields[4].Descriptor()
	// ledgerentry.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	ledgerentry.DefaultRecordedAt = ledgerentryDescRecordedAt.Default.(func() time.Time)
	// ledgerentryDescID is the schema descriptor for id field.
	ledgerentryDescID := ledgerentryFields[0].Descriptor()
	// ledgerentry.DefaultID holds the default value on creation for the id field.
	ledgerentry.DefaultID = ledgerentryDescID.Default.(func() uuid.UUID)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescArchiveName is the schema descriptor for archive_name field.
	submissionDescArchiveName := submissionFields[1].Descriptor()
	// submission.ArchiveNameValidator is a validator for the "archive_name" field. It is called by the builders before save.
	submission.ArchiveNameValidator = submissionDescArchiveName.Validators[0].(func(string) error)
	// submissionDescArchiveSize is the schema descriptor for archive_size field.
	submissionDescArchiveSize := submissionFields[2].Descriptor()
	// submission.ArchiveSizeValidator is a validator for the "archive_size" field. It is called by the builders before save.
	submission.ArchiveSizeValidator = submissionDescArchiveSize.Validators[0].(func(int) error)
	// submissionDescTotalFootprint is the schema descriptor for total_footprint field.
	submissionDescTotalFootprint := submissionFields[3].Descriptor()
	// submission.TotalFootprintValidator is a validator for the "total_footprint" field. It is called by the builders before save.
	submission.TotalFootprintValidator = submissionDescTotalFootprint.Validators[0].(func(float64) error)
	// submissionDescDocumentCount is the schema descriptor for document_count field.
	submissionDescDocumentCount := submissionFields[4].Descriptor()
	// submission.DocumentCountValidator is a validator for the "document_count" field. It is called by the builders before save.
	submission.DocumentCountValidator = submissionDescDocumentCount.Validators[0].(func(int) error)
	// submissionDescStatus is the schema descriptor for status field.
	submissionDescStatus := submissionFields[5].Descriptor()
	// submission.DefaultStatus holds the default value on creation for the status field.
	submission.DefaultStatus = submissionDescStatus.Default.(string)
	// submission.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	submission.StatusValidator = submissionDescStatus.Validators[0].(func(string) error)
	// submissionDescSubmittedAt is the schema descriptor for submitted_at field.
	submissionDescSubmittedAt := submissionFields[6].Descriptor()
	// submission.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	submission.DefaultSubmittedAt = submissionDescSubmittedAt.Default.(func() time.Time)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionFields[0].Descriptor()
	// submission.DefaultID holds the default value on creation for the id field.
	submission.DefaultID = submissionDescID.Default.(func() uuid.UUID)
}
