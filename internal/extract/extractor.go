// Package extract turns archive entries into UTF-8 text. PDF entries go
// through poppler's pdftotext behind a Runner seam; plain text entries
// are decoded directly. Failures are recoverable: the caller gets an
// empty string and an ErrExtractionFailed it can log and move past.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/Qyuzet/onecarbon/constants"
	"github.com/Qyuzet/onecarbon/internal/archive"
	"github.com/Qyuzet/onecarbon/internal/common"
)

type Config struct {
	Pdftotext string        // binary name or absolute path; if empty -> "pdftotext"
	Timeout   time.Duration // per-document cap; 0 disables
}

type Result struct {
	Text     string
	Format   string // constants.PDF | constants.TXT
	Duration time.Duration
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the exec seam; tests use this to stub pdftotext.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Extract picks a strategy based on the entry's extension. Entries with
// unrecognized extensions never reach this point; the analyzer filters
// them out first.
func (e *Extractor) Extract(ctx context.Context, entry archive.Entry) (Result, error) {
	start := time.Now()
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	ext := constants.NormalizeExt(filepath.Ext(entry.Path))
	e.logger.Debug("starting extraction", "path", entry.Path, "ext", ext, "size", len(entry.Data))

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		text, err := e.pdfToText(ctx, entry)
		return Result{Text: text, Format: constants.PDF, Duration: time.Since(start)}, err
	case constants.TXT:
		text, err := decodeText(entry)
		return Result{Text: text, Format: constants.TXT, Duration: time.Since(start)}, err
	default:
		e.logger.Error("unsupported extraction extension", "extension", ext)
		return Result{}, common.NewAppError("EXTRACTION_FAILED", fmt.Sprintf("unsupported extension %q", ext), common.ErrExtractionFailed)
	}
}

// pdfToText writes the entry to a temp file and shells out:
// pdftotext -layout -enc UTF-8 -eol unix <path> -
func (e *Extractor) pdfToText(ctx context.Context, entry archive.Entry) (string, error) {
	tmp, err := os.CreateTemp("", "oc-pdf-*.pdf")
	if err != nil {
		return "", common.NewAppError("EXTRACTION_FAILED", "creating temp file", common.ErrExtractionFailed)
	}
	defer func(path string) {
		if err := os.Remove(path); err != nil {
			e.logger.Warn("failed to remove temp file", "path", path, "error", err)
		}
	}(tmp.Name())

	if _, err := tmp.Write(entry.Data); err != nil {
		_ = tmp.Close()
		return "", common.NewAppError("EXTRACTION_FAILED", "writing temp file", common.ErrExtractionFailed)
	}
	if err := tmp.Close(); err != nil {
		return "", common.NewAppError("EXTRACTION_FAILED", "closing temp file", common.ErrExtractionFailed)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", tmp.Name(), "-")
	if err != nil {
		e.logger.Warn("pdftotext failed",
			"path", entry.Path,
			"error", err,
			"stderr", truncate(string(errb), 2<<10),
		)
		return "", common.NewAppError("EXTRACTION_FAILED", "pdftotext: "+entry.Path, common.ErrExtractionFailed)
	}
	return string(out), nil
}

func decodeText(entry archive.Entry) (string, error) {
	if !utf8.Valid(entry.Data) {
		return "", common.NewAppError("EXTRACTION_FAILED", "invalid UTF-8 in "+entry.Path, common.ErrExtractionFailed)
	}
	return string(entry.Data), nil
}
