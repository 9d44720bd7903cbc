// Package archive decodes a submitted zip entirely in memory and yields
// its file entries one at a time.
package archive

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/Qyuzet/onecarbon/internal/common"
)

// Entry is one file inside the submitted archive. Path is
// forward-slash separated, relative to the archive root.
type Entry struct {
	Path string
	Data []byte
}

// Reader enumerates the non-directory entries of one archive. It is
// finite and non-restartable: call Next until it returns io.EOF.
type Reader struct {
	files []*zip.File
	pos   int
}

// NewReader validates the byte buffer as a zip archive. Corrupt or
// truncated input fails with ErrInvalidArchive before any entry is read.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, common.NewAppError("INVALID_ARCHIVE", "not a readable zip archive", common.ErrInvalidArchive)
	}
	files := make([]*zip.File, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files = append(files, f)
	}
	return &Reader{files: files}, nil
}

// Len reports how many file entries the archive holds.
func (r *Reader) Len() int {
	return len(r.files)
}

// Next returns the next entry in central-directory order, decompressing
// its content into memory. io.EOF signals the end of the archive. A
// per-entry decompression failure is returned as ErrInvalidArchive
// wrapped with the entry path.
func (r *Reader) Next() (Entry, error) {
	if r.pos >= len(r.files) {
		return Entry{}, io.EOF
	}
	f := r.files[r.pos]
	r.pos++

	rc, err := f.Open()
	if err != nil {
		return Entry{}, common.NewAppError("INVALID_ARCHIVE", "opening entry "+f.Name, common.ErrInvalidArchive)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Entry{}, common.NewAppError("INVALID_ARCHIVE", "reading entry "+f.Name, common.ErrInvalidArchive)
	}
	return Entry{Path: f.Name, Data: data}, nil
}
