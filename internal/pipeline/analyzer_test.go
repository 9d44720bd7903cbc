package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qyuzet/onecarbon/constants"
	"github.com/Qyuzet/onecarbon/internal/archive"
	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/extract"
	"github.com/Qyuzet/onecarbon/internal/llm"
)

// fakeExtractor decodes txt entries and fails for paths listed in broken.
type fakeExtractor struct {
	broken map[string]bool
}

func (f *fakeExtractor) Extract(ctx context.Context, entry archive.Entry) (extract.Result, error) {
	if f.broken[entry.Path] {
		return extract.Result{}, common.NewAppError("EXTRACTION_FAILED", entry.Path, common.ErrExtractionFailed)
	}
	return extract.Result{Text: string(entry.Data), Format: constants.TXT}, nil
}

// fakeEstimator maps text to a fixed value; unknown text errors.
type fakeEstimator struct {
	byText map[string]float64
	calls  []string
}

func (f *fakeEstimator) Estimate(ctx context.Context, req llm.EstimateRequest) (float64, error) {
	f.calls = append(f.calls, req.FilenameHint)
	if v, ok := f.byText[req.Text]; ok {
		return v, nil
	}
	return 0, common.NewAppError("ESTIMATION_FAILED", "no number", common.ErrEstimationFailed)
}

func zipOf(t *testing.T, entries [][2]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e[0])
		require.NoError(t, err)
		_, err = w.Write([]byte(e[1]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func newAnalyzer(est llm.Estimator) *Analyzer {
	return NewAnalyzer(&fakeExtractor{}, est, nil)
}

func TestAnalyzeValidation(t *testing.T) {
	t.Run("non-zip filename rejected before reading bytes", func(t *testing.T) {
		a := newAnalyzer(&fakeEstimator{})
		_, err := a.Analyze(context.Background(), "report.rar", []byte("whatever, never parsed"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrUnsupportedFileType))
	})

	t.Run("uppercase .ZIP rejected, the check is case-sensitive", func(t *testing.T) {
		a := newAnalyzer(&fakeEstimator{})
		_, err := a.Analyze(context.Background(), "report.ZIP", nil)
		assert.True(t, errors.Is(err, common.ErrUnsupportedFileType))
	})

	t.Run("corrupt archive fails", func(t *testing.T) {
		a := newAnalyzer(&fakeEstimator{})
		_, err := a.Analyze(context.Background(), "x.zip", []byte("not a zip"))
		assert.True(t, errors.Is(err, common.ErrInvalidArchive))
	})

	t.Run("no recognized entries fails", func(t *testing.T) {
		a := newAnalyzer(&fakeEstimator{})
		data := zipOf(t, [][2]string{{"image.png", "png bytes"}, {"data.csv", "a,b"}})
		_, err := a.Analyze(context.Background(), "x.zip", data)
		assert.True(t, errors.Is(err, common.ErrNoProcessableContent))
	})
}

func TestAnalyzeAggregation(t *testing.T) {
	est := &fakeEstimator{byText: map[string]float64{
		"first doc":  1.5,
		"second doc": 2.25,
		"third doc":  4.0,
	}}
	a := newAnalyzer(est)
	data := zipOf(t, [][2]string{
		{"a.txt", "first doc"},
		{"skip.csv", "not processed"},
		{"b.txt", "second doc"},
		{"c.TXT", "third doc"}, // entry extensions are case-insensitive
	})

	agg, err := a.Analyze(context.Background(), "docs.zip", data)
	require.NoError(t, err)

	t.Run("counts and order follow enumeration", func(t *testing.T) {
		assert.Equal(t, 3, agg.DocumentCount)
		require.Len(t, agg.Documents, 3)
		assert.Equal(t, "a.txt", agg.Documents[0].Name)
		assert.Equal(t, "b.txt", agg.Documents[1].Name)
		assert.Equal(t, "c.TXT", agg.Documents[2].Name)
	})

	t.Run("total is the ordered sum of documents", func(t *testing.T) {
		var sum float64
		for _, d := range agg.Documents {
			sum += d.Footprint
		}
		assert.InDelta(t, sum, agg.TotalFootprint, 1e-9)
		assert.InDelta(t, 7.75, agg.TotalFootprint, 1e-9)
	})

	t.Run("size and content length recorded", func(t *testing.T) {
		assert.Equal(t, len("first doc"), agg.Documents[0].SizeBytes)
		assert.Equal(t, len("first doc"), agg.Documents[0].ContentLength)
	})
}

func TestAnalyzeSkipsAndDegrades(t *testing.T) {
	t.Run("blank text skips the estimator entirely", func(t *testing.T) {
		est := &fakeEstimator{byText: map[string]float64{"real": 3}}
		a := newAnalyzer(est)
		data := zipOf(t, [][2]string{
			{"empty.txt", "   \n\t"},
			{"real.txt", "real"},
		})

		agg, err := a.Analyze(context.Background(), "x.zip", data)
		require.NoError(t, err)
		assert.Equal(t, 1, agg.DocumentCount)
		assert.Equal(t, []string{"real.txt"}, est.calls)
	})

	t.Run("extraction failure skips the document and continues", func(t *testing.T) {
		est := &fakeEstimator{byText: map[string]float64{"good": 5}}
		a := NewAnalyzer(&fakeExtractor{broken: map[string]bool{"bad.txt": true}}, est, nil)
		data := zipOf(t, [][2]string{
			{"bad.txt", "unreadable"},
			{"good.txt", "good"},
		})

		agg, err := a.Analyze(context.Background(), "x.zip", data)
		require.NoError(t, err)
		assert.Equal(t, 1, agg.DocumentCount)
		assert.InDelta(t, 5.0, agg.TotalFootprint, 1e-9)
	})

	t.Run("estimation failure records the document at zero", func(t *testing.T) {
		est := &fakeEstimator{byText: map[string]float64{"known": 2}}
		a := newAnalyzer(est)
		data := zipOf(t, [][2]string{
			{"known.txt", "known"},
			{"mystery.txt", "unparseable reply"},
		})

		agg, err := a.Analyze(context.Background(), "x.zip", data)
		require.NoError(t, err)
		assert.Equal(t, 2, agg.DocumentCount)
		assert.Zero(t, agg.Documents[1].Footprint)
		assert.InDelta(t, 2.0, agg.TotalFootprint, 1e-9)
	})

	t.Run("all documents blank still succeeds with an empty aggregate", func(t *testing.T) {
		a := newAnalyzer(&fakeEstimator{})
		data := zipOf(t, [][2]string{{"a.txt", ""}, {"b.txt", " "}})

		agg, err := a.Analyze(context.Background(), "x.zip", data)
		require.NoError(t, err)
		assert.Zero(t, agg.DocumentCount)
		assert.Zero(t, agg.TotalFootprint)
	})
}

func TestAnalyzeIdempotence(t *testing.T) {
	est := &fakeEstimator{byText: map[string]float64{"alpha": 1.1, "beta": 2.2}}
	a := newAnalyzer(est)
	data := zipOf(t, [][2]string{{"a.txt", "alpha"}, {"b.txt", "beta"}})

	first, err := a.Analyze(context.Background(), "x.zip", data)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), "x.zip", data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newAnalyzer(&fakeEstimator{})
	data := zipOf(t, [][2]string{{"a.txt", "alpha"}})
	_, err := a.Analyze(ctx, "x.zip", data)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "context canceled"))
}
