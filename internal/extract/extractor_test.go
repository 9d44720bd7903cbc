package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qyuzet/onecarbon/constants"
	"github.com/Qyuzet/onecarbon/internal/archive"
	"github.com/Qyuzet/onecarbon/internal/common"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error
	calls  int
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls++
	return s.stdout, s.stderr, s.err
}

func TestExtract(t *testing.T) {
	t.Run("pdf delegates to pdftotext", func(t *testing.T) {
		runner := &stubRunner{stdout: []byte("emissions report\f")}
		e := NewExtractor(Config{}, nil).WithRunner(runner)

		res, err := e.Extract(context.Background(), archive.Entry{Path: "q1/report.PDF", Data: []byte("%PDF-1.4")})
		require.NoError(t, err)
		assert.Equal(t, constants.PDF, res.Format)
		assert.Equal(t, "emissions report\f", res.Text)
		assert.Equal(t, 1, runner.calls)
	})

	t.Run("pdftotext failure is recoverable", func(t *testing.T) {
		runner := &stubRunner{err: errors.New("exit status 1"), stderr: []byte("Syntax Error")}
		e := NewExtractor(Config{}, nil).WithRunner(runner)

		res, err := e.Extract(context.Background(), archive.Entry{Path: "broken.pdf", Data: []byte("not a pdf")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrExtractionFailed))
		assert.Empty(t, res.Text)
	})

	t.Run("txt decodes UTF-8 without exec", func(t *testing.T) {
		runner := &stubRunner{}
		e := NewExtractor(Config{}, nil).WithRunner(runner)

		res, err := e.Extract(context.Background(), archive.Entry{Path: "notes.txt", Data: []byte("12 kg CO2")})
		require.NoError(t, err)
		assert.Equal(t, constants.TXT, res.Format)
		assert.Equal(t, "12 kg CO2", res.Text)
		assert.Zero(t, runner.calls)
	})

	t.Run("invalid UTF-8 is recoverable", func(t *testing.T) {
		e := NewExtractor(Config{}, nil).WithRunner(&stubRunner{})

		res, err := e.Extract(context.Background(), archive.Entry{Path: "latin1.txt", Data: []byte{0xff, 0xfe, 0x41}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrExtractionFailed))
		assert.Empty(t, res.Text)
	})
}
