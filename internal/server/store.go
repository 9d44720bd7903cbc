package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Qyuzet/onecarbon/internal/entity"
	"github.com/Qyuzet/onecarbon/internal/pipeline"
)

// Analyzer runs one archive through the pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, filename string, data []byte) (*pipeline.AggregateResult, error)
}

// SubmissionStore persists analyzed archives. A nil store disables
// persistence without affecting the upload contract.
type SubmissionStore interface {
	CreateWithDocuments(ctx context.Context, archiveName string, archiveSize int, agg *pipeline.AggregateResult) (*entity.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error)
	ListDocuments(ctx context.Context, submissionID uuid.UUID) ([]entity.Document, error)
	MarkRecorded(ctx context.Context, id uuid.UUID) error
}

// ContactStore persists contact-form messages.
type ContactStore interface {
	Create(ctx context.Context, name, email, message string) (*entity.ContactMessage, error)
}

// Exporter builds the XLSX report.
type Exporter interface {
	ExportDocumentsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error)
}
