// Package utils holds the conversions between the three units a row's text
// is addressed in: byte offsets (substring search), rune indices (the
// highlighting scanner) and grapheme cluster indices (cursor and editing).
package utils

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into its grapheme clusters.
func Graphemes(s string) []string {
	clusters := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// GraphemeToByteOffset returns the byte offset at which grapheme index
// graphemeIndex starts. Indices at or past the end map to len(s).
func GraphemeToByteOffset(s string, graphemeIndex int) int {
	if graphemeIndex <= 0 {
		return 0
	}
	current := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if current == graphemeIndex {
			from, _ := gr.Positions()
			return from
		}
		current++
	}
	return len(s)
}

// ByteOffsetToGraphemeIndex maps a byte offset back to a grapheme index.
// The boolean is false when byteOffset falls inside a cluster (or outside s);
// an offset equal to len(s) maps to the grapheme count.
func ByteOffsetToGraphemeIndex(s string, byteOffset int) (int, bool) {
	if byteOffset < 0 || byteOffset > len(s) {
		return 0, false
	}
	index := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		from, to := gr.Positions()
		if from == byteOffset {
			return index, true
		}
		if byteOffset < to {
			return index, false
		}
		index++
	}
	return index, byteOffset == len(s)
}

// GraphemeToRuneIndex returns the rune index of the first rune of grapheme
// graphemeIndex. Indices at or past the end map to the rune count of s.
func GraphemeToRuneIndex(s string, graphemeIndex int) int {
	if graphemeIndex <= 0 {
		return 0
	}
	runeIndex := 0
	current := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if current == graphemeIndex {
			return runeIndex
		}
		runeIndex += len(gr.Runes())
		current++
	}
	return runeIndex
}

// ByteOffsetToRuneIndex returns the number of runes of s before byteOffset.
// A cut inside a rune counts only the runes before that rune.
func ByteOffsetToRuneIndex(s string, byteOffset int) int {
	byteOffset = min(max(byteOffset, 0), len(s))
	for i := 0; i < utf8.UTFMax-1 && byteOffset > 0 && byteOffset < len(s) && !utf8.RuneStart(s[byteOffset]); i++ {
		byteOffset--
	}
	return utf8.RuneCountInString(s[:byteOffset])
}

// asciiPunctuation lists every printable ASCII character that is neither a
// letter, a digit nor a space.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsSeparator reports whether r delimits tokens for the highlighter:
// ASCII punctuation or ASCII whitespace.
func IsSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	if r >= utf8.RuneSelf {
		return false
	}
	for i := 0; i < len(asciiPunctuation); i++ {
		if rune(asciiPunctuation[i]) == r {
			return true
		}
	}
	return false
}

// IsASCIIDigit reports whether r is one of '0'..'9'.
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
