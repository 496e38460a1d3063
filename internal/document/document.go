// Package document holds an ordered sequence of rows and translates
// document positions into row operations.
package document

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/bethropolis/tidal/internal/event"
	"github.com/bethropolis/tidal/internal/filetype"
	"github.com/bethropolis/tidal/internal/logger"
	"github.com/bethropolis/tidal/internal/row"
	"github.com/bethropolis/tidal/internal/types"
)

const logTag = "document"

// maxLineSize bounds a single line read by Open.
const maxLineSize = 64 * 1024 * 1024

// Document is a file's content as rows. It is not safe for concurrent use.
type Document struct {
	rows     []*row.Row
	filename string
	dirty    bool
	fileType filetype.FileType
	events   *event.Manager
}

// New creates an empty document with no file associated.
func New() *Document {
	return &Document{fileType: filetype.Default()}
}

// Open reads filename into a highlighted document. Failures are *FileError
// values classified by cause; content that is not valid UTF-8 is rejected
// with KindIO and ErrInvalidUTF8.
func Open(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, newFileError("open", filename, err)
	}
	defer file.Close()

	doc := &Document{
		filename: filename,
		fileType: filetype.FromFilename(filename),
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if !utf8.ValidString(text) {
			return nil, newFileError("open", filename, fmt.Errorf("line %d: %w", line, ErrInvalidUTF8))
		}
		r := row.New(text)
		r.Highlight(doc.fileType.HighlightingOptions(), "")
		doc.rows = append(doc.rows, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, newFileError("open", filename, err)
	}

	if doc.fileType.IsDefault() {
		logger.DebugTagf(logTag, "No profile matches %s, highlighting disabled", filename)
	}
	logger.DebugTagf(logTag, "Opened %s: %d rows, file type %s", filename, len(doc.rows), doc.fileType.Name)
	return doc, nil
}

// Save writes every row followed by a newline to the associated file, then
// re-derives the file type from the file name and re-highlights every row.
// Without a file name it does nothing. The dirty flag is cleared only on
// success; a failed write can leave a partial file behind.
func (d *Document) Save() error {
	if d.filename == "" {
		return nil
	}

	file, err := os.Create(d.filename)
	if err != nil {
		return newFileError("save", d.filename, err)
	}

	w := bufio.NewWriter(file)
	for _, r := range d.rows {
		if _, err := w.WriteString(r.String()); err != nil {
			file.Close()
			return newFileError("save", d.filename, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			file.Close()
			return newFileError("save", d.filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return newFileError("save", d.filename, err)
	}
	if err := file.Close(); err != nil {
		return newFileError("save", d.filename, err)
	}

	previous := d.fileType.Name
	d.fileType = filetype.FromFilename(d.filename)
	d.Highlight("")
	d.dirty = false
	logger.DebugTagf(logTag, "Saved %s: %d rows, file type %s", d.filename, len(d.rows), d.fileType.Name)

	d.events.Dispatch(event.TypeDocumentSaved, event.DocumentSavedData{FilePath: d.filename, Rows: len(d.rows)})
	if previous != d.fileType.Name {
		d.events.Dispatch(event.TypeFileTypeChanged, event.FileTypeChangedData{Old: previous, New: d.fileType.Name})
	}
	return nil
}

// SaveAs associates filename with the document and saves it there.
func (d *Document) SaveAs(filename string) error {
	d.filename = filename
	return d.Save()
}

// Filename returns the associated path, or "" if there is none.
func (d *Document) Filename() string {
	return d.filename
}

// SetEvents routes change notifications to m. A nil m disables them.
func (d *Document) SetEvents(m *event.Manager) {
	d.events = m
}

// SetFilename associates a path without saving.
func (d *Document) SetFilename(filename string) {
	d.filename = filename
}

// Highlight re-highlights every row, marking occurrences of word.
func (d *Document) Highlight(word string) {
	opts := d.fileType.HighlightingOptions()
	for _, r := range d.rows {
		r.Highlight(opts, word)
	}
}

// Insert puts ch at the given position. A newline splits the row.
func (d *Document) Insert(at types.Position, ch rune) {
	if at.Y < 0 {
		return
	}
	d.dirty = true
	if ch == '\n' {
		d.insertNewline(at)
		return
	}

	opts := d.fileType.HighlightingOptions()
	if at.Y >= len(d.rows) {
		r := row.New("")
		r.Insert(0, ch)
		r.Highlight(opts, "")
		d.rows = append(d.rows, r)
		d.rowsChanged(len(d.rows)-1, len(d.rows))
		return
	}
	r := d.rows[at.Y]
	r.Insert(at.X, ch)
	r.Highlight(opts, "")
	d.rowsChanged(at.Y, at.Y+1)
}

// insertNewline splits row at.Y at at.X, or appends an empty row when at.Y
// is one past the last row.
func (d *Document) insertNewline(at types.Position) {
	switch {
	case at.Y > len(d.rows):
		return
	case at.Y == len(d.rows):
		d.rows = append(d.rows, row.New(""))
		d.rowsChanged(at.Y, len(d.rows))
		return
	}

	opts := d.fileType.HighlightingOptions()
	current := d.rows[at.Y]
	next := current.Split(at.X)
	current.Highlight(opts, "")
	next.Highlight(opts, "")

	d.rows = append(d.rows, nil)
	copy(d.rows[at.Y+2:], d.rows[at.Y+1:])
	d.rows[at.Y+1] = next
	d.rowsChanged(at.Y, len(d.rows))
}

// Delete removes the character at the given position. At the end of a row
// that has a successor, the successor is joined onto it instead.
func (d *Document) Delete(at types.Position) {
	if at.Y < 0 || at.Y >= len(d.rows) {
		return
	}
	d.dirty = true

	opts := d.fileType.HighlightingOptions()
	r := d.rows[at.Y]
	to := at.Y + 1
	if at.X == r.Len() && at.Y+1 < len(d.rows) {
		to = len(d.rows)
		r.Append(d.rows[at.Y+1])
		d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
	} else {
		r.Delete(at.X)
	}
	r.Highlight(opts, "")
	d.rowsChanged(at.Y, to)
}

func (d *Document) rowsChanged(from, to int) {
	d.events.Dispatch(event.TypeRowsChanged, event.RowsChangedData{From: from, To: to})
}

// Find searches for query starting at the given position. It does not wrap
// past the first or last row.
func (d *Document) Find(query string, at types.Position, direction types.SearchDirection) (types.Position, bool) {
	if at.Y < 0 || at.Y >= len(d.rows) {
		return types.Position{}, false
	}

	if direction == types.Backward {
		x := at.X
		for y := at.Y; y >= 0; y-- {
			if y != at.Y {
				x = d.rows[y].Len()
			}
			if hit, ok := d.rows[y].Find(query, x, direction); ok {
				return types.Position{X: hit, Y: y}, true
			}
		}
		return types.Position{}, false
	}

	x := at.X
	for y := at.Y; y < len(d.rows); y++ {
		if y != at.Y {
			x = 0
		}
		if hit, ok := d.rows[y].Find(query, x, direction); ok {
			return types.Position{X: hit, Y: y}, true
		}
	}
	return types.Position{}, false
}

// Row returns the row at index, if it exists.
func (d *Document) Row(index int) (*row.Row, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	return d.rows[index], true
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.rows)
}

// IsEmpty reports whether the document has no rows.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// IsDirty reports whether there are unsaved changes.
func (d *Document) IsDirty() bool {
	return d.dirty
}

// FileType returns the active language profile.
func (d *Document) FileType() filetype.FileType {
	return d.fileType
}

// FileTypeName returns the display name of the active language profile.
func (d *Document) FileTypeName() string {
	return d.fileType.Name
}
