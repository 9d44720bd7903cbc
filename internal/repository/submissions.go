package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Qyuzet/onecarbon/constants"
	"github.com/Qyuzet/onecarbon/gen/ent"
	entdoc "github.com/Qyuzet/onecarbon/gen/ent/document"
	entsub "github.com/Qyuzet/onecarbon/gen/ent/submission"
	"github.com/Qyuzet/onecarbon/internal/entity"
	"github.com/Qyuzet/onecarbon/internal/pipeline"
)

type SubmissionRepository interface {
	// CreateWithDocuments stores one analyzed archive and its documents
	// in a single transaction, preserving document order.
	CreateWithDocuments(ctx context.Context, archiveName string, archiveSize int, agg *pipeline.AggregateResult) (*entity.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error)
	ListDocuments(ctx context.Context, submissionID uuid.UUID) ([]entity.Document, error)
	ListDocumentsSince(ctx context.Context, from, to *time.Time) ([]entity.Document, error)
	MarkRecorded(ctx context.Context, id uuid.UUID) error
}

type submissionRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSubmissionRepository(entc *ent.Client, logger *slog.Logger) SubmissionRepository {
	return &submissionRepo{ent: entc, logger: logger}
}

func (r *submissionRepo) CreateWithDocuments(ctx context.Context, archiveName string, archiveSize int, agg *pipeline.AggregateResult) (*entity.Submission, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}

	sub, err := tx.Submission.Create().
		SetArchiveName(archiveName).
		SetArchiveSize(archiveSize).
		SetTotalFootprint(agg.TotalFootprint).
		SetDocumentCount(agg.DocumentCount).
		SetStatus(string(constants.SubmissionAnalyzed)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create submission", "archive", archiveName, "error", err)
		return nil, rollback(tx, err)
	}

	for _, d := range agg.Documents {
		if _, err := tx.Document.Create().
			SetSubmissionID(sub.ID).
			SetName(d.Name).
			SetSizeBytes(d.SizeBytes).
			SetContentLength(d.ContentLength).
			SetFootprint(d.Footprint).
			Save(ctx); err != nil {
			r.logger.Error("failed to create document", "submission_id", sub.ID, "name", d.Name, "error", err)
			return nil, rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return toSubmission(sub), nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	row, err := r.ent.Submission.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSubmission(row), nil
}

func (r *submissionRepo) ListDocuments(ctx context.Context, submissionID uuid.UUID) ([]entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.SubmissionID(submissionID)).
		Order(ent.Asc(entdoc.FieldAnalyzedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "submission_id", submissionID, "error", err)
		return nil, err
	}
	out := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDocument(row))
	}
	return out, nil
}

func (r *submissionRepo) ListDocumentsSince(ctx context.Context, from, to *time.Time) ([]entity.Document, error) {
	q := r.ent.Document.Query()
	if from != nil {
		q = q.Where(entdoc.AnalyzedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entdoc.AnalyzedAtLTE(*to))
	}
	rows, err := q.Order(ent.Asc(entdoc.FieldAnalyzedAt)).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDocument(row))
	}
	return out, nil
}

func (r *submissionRepo) MarkRecorded(ctx context.Context, id uuid.UUID) error {
	return r.ent.Submission.Update().
		Where(entsub.ID(id)).
		SetStatus(string(constants.SubmissionRecorded)).
		Exec(ctx)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return rerr
	}
	return err
}

func toSubmission(row *ent.Submission) *entity.Submission {
	return &entity.Submission{
		ID:             row.ID,
		ArchiveName:    row.ArchiveName,
		ArchiveSize:    row.ArchiveSize,
		TotalFootprint: row.TotalFootprint,
		DocumentCount:  row.DocumentCount,
		Status:         row.Status,
		SubmittedAt:    row.SubmittedAt,
	}
}

func toDocument(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:            row.ID,
		SubmissionID:  row.SubmissionID,
		Name:          row.Name,
		SizeBytes:     row.SizeBytes,
		ContentLength: row.ContentLength,
		Footprint:     row.Footprint,
		AnalyzedAt:    row.AnalyzedAt,
	}
}
