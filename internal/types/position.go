// internal/types/position.go
package types

// Position addresses a character in a document.
// Y is the 0-based row index.
// X is the 0-based grapheme cluster index within that row, not a byte or
// rune offset. A Position is only valid for the document snapshot it was
// computed against; edits that shift rows or columns invalidate it.
type Position struct {
	X int
	Y int
}
