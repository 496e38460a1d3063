package row

import (
	"strings"

	"github.com/bethropolis/tidal/internal/highlight"
	"github.com/rivo/uniseg"
)

// Render returns graphemes [start, end) colored with the built-in palette.
func (r *Row) Render(start, end int) string {
	return r.RenderWith(highlight.DefaultPalette, start, end)
}

// RenderWith returns graphemes [start, end) with a color marker before every
// run of equally tagged characters and a reset marker at the end. Both bounds
// are clamped to the row. Tabs become a single space and only the first rune
// of each grapheme is written.
func (r *Row) RenderWith(p highlight.Palette, start, end int) string {
	end = min(max(end, 0), r.length)
	start = min(max(start, 0), end)

	var b strings.Builder
	current := highlight.None
	index, runeIndex := 0, 0
	gr := uniseg.NewGraphemes(r.content)
	for gr.Next() && index < end {
		runes := gr.Runes()
		if index >= start {
			tag := r.tagAt(runeIndex)
			if tag != current {
				current = tag
				b.WriteString(p.Marker(tag))
			}
			if c := runes[0]; c == '\t' {
				b.WriteByte(' ')
			} else {
				b.WriteRune(c)
			}
		}
		index++
		runeIndex += len(runes)
	}
	b.WriteString(p.Reset())
	return b.String()
}

// tagAt returns the tag of the rune at runeIndex, or None when the highlight
// array does not cover it.
func (r *Row) tagAt(runeIndex int) highlight.Type {
	if runeIndex < len(r.highlighting) {
		return r.highlighting[runeIndex]
	}
	return highlight.None
}
