// Package pipeline drives one submitted archive through enumeration,
// text extraction and footprint estimation, and owns the aggregate for
// the lifetime of that request.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Qyuzet/onecarbon/constants"
	"github.com/Qyuzet/onecarbon/internal/archive"
	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/extract"
	"github.com/Qyuzet/onecarbon/internal/llm"
)

// DocumentResult is one analyzed document. Immutable once created.
type DocumentResult struct {
	Name          string  `json:"name"`
	SizeBytes     int     `json:"size"`
	ContentLength int     `json:"contentLength"`
	Footprint     float64 `json:"footprint"`
}

// AggregateResult is the outcome for one archive. TotalFootprint is the
// sum of Documents[i].Footprint in archive-enumeration order.
type AggregateResult struct {
	TotalFootprint float64          `json:"totalCarbonFootprint"`
	DocumentCount  int              `json:"analyzedFiles"`
	Documents      []DocumentResult `json:"processedFiles"`
}

// TextExtractor is Stage 1: entry -> text.
type TextExtractor interface {
	Extract(ctx context.Context, entry archive.Entry) (extract.Result, error)
}

// Analyzer coordinates extraction then estimation, one entry at a time.
// Per-document failures are absorbed; only archive-level problems abort.
type Analyzer struct {
	logger    *slog.Logger
	extractor TextExtractor
	estimator llm.Estimator
}

func NewAnalyzer(extractor TextExtractor, estimator llm.Estimator, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger, extractor: extractor, estimator: estimator}
}

// Analyze validates and processes one submitted archive.
//
// The filename must end in ".zip" (case-sensitive, checked before any
// bytes are read). Entries are filtered to recognized extensions; zero
// recognized entries is the one case where an empty result is an error.
// Blank extractions are skipped without an estimation call; estimation
// failures count the document at footprint 0.
func (a *Analyzer) Analyze(ctx context.Context, filename string, data []byte) (*AggregateResult, error) {
	if !strings.HasSuffix(filename, constants.ArchiveExt) {
		return nil, common.NewAppError("UNSUPPORTED_FILE_TYPE", "Please upload a ZIP file", common.ErrUnsupportedFileType)
	}

	reader, err := archive.NewReader(data)
	if err != nil {
		return nil, err
	}
	a.logger.Info("archive opened", "filename", filename, "entries", reader.Len())

	agg := &AggregateResult{Documents: []DocumentResult{}}
	qualifying := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !constants.IsProcessableExt(filepath.Ext(entry.Path)) {
			continue
		}
		qualifying++

		res, err := a.extractor.Extract(ctx, entry)
		if err != nil {
			a.logger.Warn("extraction failed, skipping document", "path", entry.Path, "error", err)
			continue
		}
		if llm.IsBlank(res.Text) {
			a.logger.Info("no content extracted, skipping document", "path", entry.Path)
			continue
		}

		footprint, err := a.estimator.Estimate(ctx, llm.EstimateRequest{
			Text:         res.Text,
			FilenameHint: entry.Path,
		})
		if err != nil {
			// A failed estimate still counts the document, at zero.
			a.logger.Warn("estimation failed, recording zero", "path", entry.Path, "error", err)
			footprint = 0
		}

		doc := DocumentResult{
			Name:          entry.Path,
			SizeBytes:     len(entry.Data),
			ContentLength: len(res.Text),
			Footprint:     footprint,
		}
		agg.Documents = append(agg.Documents, doc)
		agg.TotalFootprint += doc.Footprint
		a.logger.Info("document analyzed",
			"path", entry.Path,
			"format", res.Format,
			"content_length", doc.ContentLength,
			"footprint_kg", doc.Footprint,
		)
	}

	if qualifying == 0 {
		return nil, common.NewAppError("NO_PROCESSABLE_CONTENT", "No PDF or text files found in ZIP", common.ErrNoProcessableContent)
	}

	agg.DocumentCount = len(agg.Documents)
	a.logger.Info("archive analyzed",
		"filename", filename,
		"analyzed", agg.DocumentCount,
		"total_kg", agg.TotalFootprint,
	)
	return agg, nil
}
