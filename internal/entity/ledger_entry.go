package entity

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is one append of integral deposits for a company.
// Immutable once created; the core only ever appends new entries.
type LedgerEntry struct {
	ID            uuid.UUID `json:"id"`
	CompanyID     uuid.UUID `json:"company_id"`
	Deposits      []int64   `json:"deposits"`
	TransactionID string    `json:"transaction_id"`
	RecordedAt    time.Time `json:"recorded_at"`
}
