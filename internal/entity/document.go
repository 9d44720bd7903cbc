package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is one analyzed entry inside a submission.
type Document struct {
	ID            uuid.UUID `json:"id"`
	SubmissionID  uuid.UUID `json:"submission_id"`
	Name          string    `json:"name"`
	SizeBytes     int       `json:"size_bytes"`
	ContentLength int       `json:"content_length"`
	Footprint     float64   `json:"footprint"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}
