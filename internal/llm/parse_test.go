package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFootprint(t *testing.T) {
	t.Run("extracts first decimal from prose", func(t *testing.T) {
		v, ok := ParseFootprint("The estimated footprint is 12.5 kg CO2.")
		require.True(t, ok)
		assert.Equal(t, 12.5, v)
	})

	t.Run("integer replies work", func(t *testing.T) {
		v, ok := ParseFootprint("42")
		require.True(t, ok)
		assert.Equal(t, 42.0, v)
	})

	t.Run("first of several numbers wins", func(t *testing.T) {
		v, ok := ParseFootprint("Between 3.2 and 7.9 kg")
		require.True(t, ok)
		assert.Equal(t, 3.2, v)
	})

	t.Run("no number means not ok", func(t *testing.T) {
		v, ok := ParseFootprint("I cannot estimate this document.")
		assert.False(t, ok)
		assert.Zero(t, v)
	})
}

func TestTruncateText(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		assert.Equal(t, "abc", TruncateText("abc", 10))
	})

	t.Run("takes the prefix", func(t *testing.T) {
		assert.Equal(t, "abcde", TruncateText("abcdefgh", 5))
	})

	t.Run("zero max disables truncation", func(t *testing.T) {
		assert.Equal(t, "abcdefgh", TruncateText("abcdefgh", 0))
	})

	t.Run("does not split a rune", func(t *testing.T) {
		s := "aé" // é is two bytes
		got := TruncateText(s, 2)
		assert.Equal(t, "a", got)
	})
}

func TestParseStructuredFootprint(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		v, err := ParseStructuredFootprint([]byte(`{"footprint_kg": 18.25}`))
		require.NoError(t, err)
		assert.Equal(t, 18.25, v)
	})

	t.Run("negative value rejected by schema", func(t *testing.T) {
		_, err := ParseStructuredFootprint([]byte(`{"footprint_kg": -2}`))
		assert.Error(t, err)
	})

	t.Run("extra keys rejected", func(t *testing.T) {
		_, err := ParseStructuredFootprint([]byte(`{"footprint_kg": 2, "unit": "kg"}`))
		assert.Error(t, err)
	})
}
