package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one analyzed archive upload.
type Submission struct {
	ID             uuid.UUID `json:"id"`
	ArchiveName    string    `json:"archive_name"`
	ArchiveSize    int       `json:"archive_size"`
	TotalFootprint float64   `json:"total_footprint"`
	DocumentCount  int       `json:"document_count"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
