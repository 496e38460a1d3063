package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	combining = "he\u0301llo"                                 // é built from e + U+0301
	family    = "a\U0001F468\u200d\U0001F469\u200d\U0001F467b" // ZWJ sequence between two letters
)

func TestGraphemeCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"combining accent", combining, 5},
		{"zwj family", family, 3},
		{"multibyte", "a\u00f1b", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GraphemeCount(tt.input))
			assert.Len(t, Graphemes(tt.input), tt.want)
		})
	}
}

func TestGraphemeToByteOffset(t *testing.T) {
	assert.Equal(t, 0, GraphemeToByteOffset(combining, 0))
	assert.Equal(t, 1, GraphemeToByteOffset(combining, 1))
	assert.Equal(t, 4, GraphemeToByteOffset(combining, 2)) // e + 2-byte accent
	assert.Equal(t, len(combining), GraphemeToByteOffset(combining, 5))
	assert.Equal(t, len(combining), GraphemeToByteOffset(combining, 99))
	assert.Equal(t, 0, GraphemeToByteOffset(combining, -3))
}

func TestByteOffsetToGraphemeIndex(t *testing.T) {
	t.Run("on boundaries", func(t *testing.T) {
		idx, ok := ByteOffsetToGraphemeIndex(combining, 4)
		assert.True(t, ok)
		assert.Equal(t, 2, idx)

		idx, ok = ByteOffsetToGraphemeIndex(family, len(family)-1)
		assert.True(t, ok)
		assert.Equal(t, 2, idx)
	})

	t.Run("end of string", func(t *testing.T) {
		idx, ok := ByteOffsetToGraphemeIndex(combining, len(combining))
		assert.True(t, ok)
		assert.Equal(t, 5, idx)
	})

	t.Run("inside a cluster", func(t *testing.T) {
		_, ok := ByteOffsetToGraphemeIndex(combining, 2)
		assert.False(t, ok)
	})

	t.Run("out of range", func(t *testing.T) {
		_, ok := ByteOffsetToGraphemeIndex("abc", 4)
		assert.False(t, ok)
		_, ok = ByteOffsetToGraphemeIndex("abc", -1)
		assert.False(t, ok)
	})
}

func TestGraphemeToRuneIndex(t *testing.T) {
	assert.Equal(t, 0, GraphemeToRuneIndex(combining, 0))
	assert.Equal(t, 1, GraphemeToRuneIndex(combining, 1))
	assert.Equal(t, 3, GraphemeToRuneIndex(combining, 2)) // skips the accent rune
	assert.Equal(t, 6, GraphemeToRuneIndex(combining, 5))
	assert.Equal(t, 1, GraphemeToRuneIndex(family, 1))
	assert.Equal(t, 6, GraphemeToRuneIndex(family, 2))
}

func TestByteOffsetToRuneIndex(t *testing.T) {
	s := "a\u00f1b\u20ac" // 1, 2, 1 and 3 bytes
	tests := []struct {
		offset int
		want   int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{2, 1}, // inside ñ
		{3, 2},
		{4, 3},
		{5, 3}, // inside €
		{6, 3},
		{7, 4},
		{10, 4},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, ByteOffsetToRuneIndex(s, tt.offset), "offset %d", tt.offset)
	}
}

func TestIsSeparator(t *testing.T) {
	for _, r := range " \t\r\n(){}[];:,._-+*/\"'`~" {
		assert.Truef(t, IsSeparator(r), "%q should be a separator", r)
	}
	for _, r := range "aZ09\u00f1\u20ac\u00a0" {
		assert.Falsef(t, IsSeparator(r), "%q should not be a separator", r)
	}
}
