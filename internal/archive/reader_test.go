package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qyuzet/onecarbon/internal/common"
)

func buildZip(t *testing.T, entries map[string]string, dirs ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, d := range dirs {
		_, err := zw.Create(d)
		require.NoError(t, err)
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestNewReader(t *testing.T) {
	t.Run("rejects garbage bytes", func(t *testing.T) {
		_, err := NewReader([]byte("definitely not a zip"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrInvalidArchive))
	})

	t.Run("rejects truncated archive", func(t *testing.T) {
		data := buildZip(t, map[string]string{"a.txt": "hello"})
		_, err := NewReader(data[:len(data)/2])
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrInvalidArchive))
	})

	t.Run("skips directory entries", func(t *testing.T) {
		data := buildZip(t, map[string]string{"docs/a.txt": "hello"}, "docs/")
		r, err := NewReader(data)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Len())
	})
}

func TestReaderNext(t *testing.T) {
	t.Run("yields entries then EOF", func(t *testing.T) {
		data := buildZip(t, map[string]string{
			"report.txt": "carbon footprint: 42",
		})
		r, err := NewReader(data)
		require.NoError(t, err)

		e, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, "report.txt", e.Path)
		assert.Equal(t, []byte("carbon footprint: 42"), e.Data)

		_, err = r.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("empty archive yields EOF immediately", func(t *testing.T) {
		r, err := NewReader(buildZip(t, nil))
		require.NoError(t, err)
		assert.Equal(t, 0, r.Len())
		_, err = r.Next()
		assert.Equal(t, io.EOF, err)
	})
}
