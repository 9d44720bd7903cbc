package constants

import "strings"

// Formats for entries inside a submitted archive.
const (
	PDF = "PDF"
	TXT = "TXT"
)

// ArchiveExt is the only accepted upload extension. The check is
// case-sensitive on purpose: it matches what the upload UI sends.
const ArchiveExt = ".zip"

// ProcessableExtensions holds the entry extensions the analyzer will
// attempt to extract text from. Everything else is filtered out before
// extraction.
var ProcessableExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its format, or "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "txt":
		return TXT
	default:
		return ""
	}
}

// IsProcessableExt reports whether the analyzer recognizes the extension.
func IsProcessableExt(ext string) bool {
	_, ok := ProcessableExtensions[NormalizeExt(ext)]
	return ok
}
