package watch

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/pipeline"
)

type stubAnalyzer struct {
	perArchive map[string]*pipeline.AggregateResult
	err        error
}

func (s *stubAnalyzer) Analyze(_ context.Context, filename string, _ []byte) (*pipeline.AggregateResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if agg, ok := s.perArchive[filename]; ok {
		return agg, nil
	}
	return &pipeline.AggregateResult{Documents: []pipeline.DocumentResult{}}, nil
}

func writeZip(t *testing.T, dir, name string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	fw, err := zw.Create("doc.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("electricity usage 120 kWh"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestProcessorRunDrainsChannel(t *testing.T) {
	dir := t.TempDir()
	a := writeZip(t, dir, "a.zip")
	b := writeZip(t, dir, "b.zip")

	analyzer := &stubAnalyzer{perArchive: map[string]*pipeline.AggregateResult{
		"a.zip": {TotalFootprint: 10, DocumentCount: 1},
		"b.zip": {TotalFootprint: 20, DocumentCount: 2},
	}}
	p := NewProcessor(analyzer, nil)

	paths := make(chan string, 2)
	paths <- a
	paths <- b
	close(paths)

	var results []Result
	stats, err := p.Run(context.Background(), paths, func(r Result) {
		results = append(results, r)
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Processed)
	assert.EqualValues(t, 2, stats.Succeeded)
	assert.EqualValues(t, 0, stats.Failed)
	require.Len(t, results, 2)
	assert.InDelta(t, 10, results[0].Aggregate.TotalFootprint, 1e-9)
}

func TestProcessorRecordsFailures(t *testing.T) {
	dir := t.TempDir()
	bad := writeZip(t, dir, "bad.zip")

	analyzer := &stubAnalyzer{
		err: common.NewAppError("INVALID_ARCHIVE", "invalid or corrupted ZIP archive", common.ErrInvalidArchive),
	}
	p := NewProcessor(analyzer, nil)

	paths := make(chan string, 2)
	paths <- bad
	paths <- filepath.Join(dir, "missing.zip")
	close(paths)

	stats, err := p.Run(context.Background(), paths, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Processed)
	assert.EqualValues(t, 2, stats.Failed)
}

func TestProcessorRunOnceScansRoot(t *testing.T) {
	dir := t.TempDir()
	writeZip(t, dir, "one.zip")
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeZip(t, sub, "two.zip")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	p := NewProcessor(&stubAnalyzer{}, nil)

	var seen []string
	stats, err := p.RunOnce(context.Background(), []string{dir}, func(r Result) {
		seen = append(seen, filepath.Base(r.Path))
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Processed)
	assert.EqualValues(t, 2, stats.Succeeded)
	for _, name := range seen {
		assert.True(t, strings.HasSuffix(name, ".zip"))
	}
}

func TestProcessorRunStopsOnCancel(t *testing.T) {
	p := NewProcessor(&stubAnalyzer{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths := make(chan string)
	_, err := p.Run(ctx, paths, nil)
	require.ErrorIs(t, err, context.Canceled)
}
