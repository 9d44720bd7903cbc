package constants

// SubmissionStatus is the canonical status for rows in submissions.
type SubmissionStatus string

// Stable values (store these exact strings in DB).
const (
	SubmissionAnalyzed SubmissionStatus = "ANALYZED" // aggregate computed
	SubmissionRecorded SubmissionStatus = "RECORDED" // deposits appended to the ledger
	SubmissionFailed   SubmissionStatus = "FAILED"   // terminal failure before an aggregate existed
)

// SubmissionStatuses holds the allowed values for the status field.
var SubmissionStatuses = []string{
	string(SubmissionAnalyzed),
	string(SubmissionRecorded),
	string(SubmissionFailed),
}
