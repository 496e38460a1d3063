// Package row holds a single line of document text together with its
// per-character highlight tags.
//
// Every position argument is a grapheme cluster index. Highlight tags are
// stored per rune, since the highlighting scanner works on runes; the
// conversions between the two live in internal/utils.
package row

import (
	"strings"

	"github.com/bethropolis/tidal/internal/highlight"
	"github.com/bethropolis/tidal/internal/utils"
)

// Row is one line of text. It never contains a newline.
type Row struct {
	content      string
	highlighting []highlight.Type
	length       int // cached grapheme count
}

// New creates an unhighlighted row from a line of text.
func New(line string) *Row {
	return &Row{
		content: line,
		length:  utils.GraphemeCount(line),
	}
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int {
	return r.length
}

// IsEmpty reports whether the row has no content.
func (r *Row) IsEmpty() bool {
	return r.length == 0
}

// String returns the raw content.
func (r *Row) String() string {
	return r.content
}

// Bytes returns the raw content as UTF-8 bytes.
func (r *Row) Bytes() []byte {
	return []byte(r.content)
}

// Highlighting returns a copy of the tags from the last Highlight call, one
// per rune of content.
func (r *Row) Highlighting() []highlight.Type {
	out := make([]highlight.Type, len(r.highlighting))
	copy(out, r.highlighting)
	return out
}

// Insert puts ch before the grapheme at index at, or appends it when at is
// past the end.
func (r *Row) Insert(at int, ch rune) {
	if at < 0 {
		at = 0
	}
	if at >= r.length {
		r.content += string(ch)
	} else {
		var b strings.Builder
		b.Grow(len(r.content) + 4)
		for i, g := range utils.Graphemes(r.content) {
			if i == at {
				b.WriteRune(ch)
			}
			b.WriteString(g)
		}
		r.content = b.String()
	}
	// A combining rune joins its neighbour instead of adding a cluster.
	r.length = utils.GraphemeCount(r.content)
}

// Delete removes the grapheme at index at. Out of range indices are ignored.
func (r *Row) Delete(at int) {
	if at < 0 || at >= r.length {
		return
	}
	var b strings.Builder
	b.Grow(len(r.content))
	for i, g := range utils.Graphemes(r.content) {
		if i == at {
			continue
		}
		b.WriteString(g)
	}
	r.content = b.String()
	r.length = utils.GraphemeCount(r.content)
}

// Split truncates the row to graphemes [0, at) and returns a new row holding
// [at, Len()). The returned row has not been highlighted.
func (r *Row) Split(at int) *Row {
	if at < 0 {
		at = 0
	}
	offset := utils.GraphemeToByteOffset(r.content, at)
	keep := utils.ByteOffsetToRuneIndex(r.content, offset)
	tail := New(r.content[offset:])

	r.content = r.content[:offset]
	r.length = utils.GraphemeCount(r.content)
	if len(r.highlighting) > keep {
		r.highlighting = r.highlighting[:keep]
	}
	return tail
}

// Append concatenates other's content onto r. It does not re-highlight.
func (r *Row) Append(other *Row) {
	r.content += other.content
	r.length = utils.GraphemeCount(r.content)
}
