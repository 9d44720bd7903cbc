package llm

import (
	"regexp"
	"strconv"
	"strings"
)

// footprintPattern matches the first decimal number, optionally
// fractional, anywhere in a free-form model reply.
var footprintPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseFootprint extracts the footprint value from a model reply.
// Returns (0, false) when the reply holds no number at all.
func ParseFootprint(reply string) (float64, bool) {
	m := footprintPattern.FindString(reply)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TruncateText bounds request cost by taking the prefix of the document
// text, cut at a rune boundary so the payload stays valid UTF-8.
func TruncateText(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	cut := maxChars
	for cut > 0 && !isRuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// IsBlank reports whether extracted text carries no analyzable content.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
