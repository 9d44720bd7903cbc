package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Qyuzet/onecarbon/internal/entity"
)

type fakeLister struct {
	docs []entity.Document
	from *time.Time
	to   *time.Time
}

func (f *fakeLister) ListDocumentsSince(ctx context.Context, from, to *time.Time) ([]entity.Document, error) {
	f.from, f.to = from, to
	return f.docs, nil
}

func TestExportDocumentsXLSX(t *testing.T) {
	subID := uuid.New()
	lister := &fakeLister{docs: []entity.Document{
		{ID: uuid.New(), SubmissionID: subID, Name: "a.pdf", SizeBytes: 100, ContentLength: 80, Footprint: 12.5, AnalyzedAt: time.Now()},
		{ID: uuid.New(), SubmissionID: subID, Name: "b.txt", SizeBytes: 50, ContentLength: 50, Footprint: 3.0, AnalyzedAt: time.Now()},
	}}
	svc := NewService(lister, nil)

	out, err := svc.ExportDocumentsXLSX(context.Background(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	name, err := wb.GetCellValue("Documents", "B2")
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", name)

	total, err := wb.GetCellValue("Documents", "E4")
	require.NoError(t, err)
	assert.Equal(t, "15.5", total)
}

func TestExportNormalizesWindow(t *testing.T) {
	lister := &fakeLister{}
	svc := NewService(lister, nil)

	from := time.Date(2026, 1, 15, 13, 45, 0, 0, time.UTC)
	_, err := svc.ExportDocumentsXLSX(context.Background(), &from, nil)
	require.NoError(t, err)

	require.NotNil(t, lister.from)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *lister.from)
	require.NotNil(t, lister.to) // defaulted to today
}
