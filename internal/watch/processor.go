package watch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/pipeline"
)

// Analyzer runs one archive through the pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, filename string, data []byte) (*pipeline.AggregateResult, error)
}

// Result is the outcome for one discovered archive.
type Result struct {
	Path      string
	Aggregate *pipeline.AggregateResult
	Err       error
}

// Stats aggregates a processing run.
type Stats struct {
	Processed uint32
	Succeeded uint32
	Failed    uint32
}

// Processor consumes discovered paths and analyzes each archive in
// arrival order. Per-archive failures are recorded and do not stop
// the run.
type Processor struct {
	analyzer Analyzer
	logger   *slog.Logger
}

func NewProcessor(analyzer Analyzer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{analyzer: analyzer, logger: logger}
}

// Run drains paths until the channel closes or the context ends,
// invoking onResult for every archive. Returns aggregate stats.
func (p *Processor) Run(ctx context.Context, paths <-chan string, onResult func(Result)) (Stats, error) {
	var stats Stats
	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case path, ok := <-paths:
			if !ok {
				return stats, nil
			}
			stats.Processed++
			res := p.processOne(ctx, path)
			if res.Err != nil {
				stats.Failed++
				p.logger.Warn("archive failed", "path", path, "error", res.Err)
			} else {
				stats.Succeeded++
				p.logger.Info("archive analyzed",
					"path", path,
					"documents", res.Aggregate.DocumentCount,
					"total_footprint", res.Aggregate.TotalFootprint)
			}
			if onResult != nil {
				onResult(res)
			}
		}
	}
}

func (p *Processor) processOne(ctx context.Context, path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: common.WrapError(err, "reading archive")}
	}
	agg, err := p.analyzer.Analyze(ctx, filepath.Base(path), data)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	return Result{Path: path, Aggregate: agg}
}

// RunOnce scans the roots without watching: every existing archive is
// processed exactly once.
func (p *Processor) RunOnce(ctx context.Context, roots []string, onResult func(Result)) (Stats, error) {
	var stats Stats
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() || !isArchive(path) {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			stats.Processed++
			res := p.processOne(ctx, path)
			if res.Err != nil {
				stats.Failed++
			} else {
				stats.Succeeded++
			}
			if onResult != nil {
				onResult(res)
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return stats, err
			}
			return stats, common.WrapError(err, "walking "+root)
		}
	}
	return stats, nil
}
