package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/tidal/internal/event"
	"github.com/bethropolis/tidal/internal/filetype"
	"github.com/bethropolis/tidal/internal/highlight"
	"github.com/bethropolis/tidal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(x, y int) types.Position {
	return types.Position{X: x, Y: y}
}

func rowStrings(t *testing.T, d *Document) []string {
	t.Helper()
	out := make([]string, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		r, ok := d.Row(i)
		require.True(t, ok)
		out = append(out, r.String())
	}
	return out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNew(t *testing.T) {
	d := New()
	assert.True(t, d.IsEmpty())
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.IsDirty())
	assert.Equal(t, "", d.Filename())
	assert.Equal(t, filetype.DefaultName, d.FileTypeName())

	_, ok := d.Row(0)
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	path := writeFile(t, "main.rs", "fn main() {\n    let x = 42;\n}\n")

	d, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fn main() {", "    let x = 42;", "}"}, rowStrings(t, d))
	assert.Equal(t, "Rust", d.FileTypeName())
	assert.Equal(t, []string{".rs"}, d.FileType().Extensions)
	assert.Equal(t, path, d.Filename())
	assert.False(t, d.IsDirty())

	r, _ := d.Row(1)
	tags := r.Highlighting()
	require.Len(t, tags, len("    let x = 42;"))
	assert.Equal(t, highlight.PrimaryKeyword, tags[4])
	assert.Equal(t, highlight.Number, tags[12])
}

func TestOpenWithoutTrailingNewline(t *testing.T) {
	d, err := Open(writeFile(t, "notes.txt", "a\nb"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rowStrings(t, d))
	assert.Equal(t, filetype.DefaultName, d.FileTypeName())
}

func TestOpenErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.rs")
		_, err := Open(path)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.False(t, IsPermission(err))

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "open", fe.Op)
		assert.Equal(t, path, fe.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unreadable file", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced for root")
		}
		path := writeFile(t, "secret.rs", "x")
		require.NoError(t, os.Chmod(path, 0))
		_, err := Open(path)
		assert.True(t, IsPermission(err))
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		path := writeFile(t, "latin1.txt", "ok\ncaf\xe9\n")
		doc, err := Open(path)
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrInvalidUTF8)
		assert.ErrorContains(t, err, "line 2")

		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, KindIO, kind)
		assert.False(t, IsNotFound(err))
	})

	t.Run("split multi-byte rune", func(t *testing.T) {
		path := writeFile(t, "cut.txt", "\xe2\x82")
		_, err := Open(path)
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	d := New()
	d.SetFilename(path)
	d.Insert(pos(0, 0), 'a')
	d.Insert(pos(1, 0), '\n')
	d.Insert(pos(0, 1), '\n')
	d.Insert(pos(0, 2), 'b')
	require.Equal(t, []string{"a", "", "b"}, rowStrings(t, d))
	require.True(t, d.IsDirty())

	require.NoError(t, d.Save())
	assert.False(t, d.IsDirty())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\n", string(data))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, rowStrings(t, d), rowStrings(t, reopened))
	assert.False(t, reopened.IsDirty())
}

func TestSaveWithoutFilename(t *testing.T) {
	d := New()
	d.Insert(pos(0, 0), 'x')
	assert.NoError(t, d.Save())
	assert.True(t, d.IsDirty(), "nothing was written")
}

func TestSaveErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		d := New()
		d.Insert(pos(0, 0), 'x')
		path := filepath.Join(t.TempDir(), "nope", "out.txt")
		err := d.SaveAs(path)
		require.Error(t, err)

		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, KindNotFound, kind)
		assert.True(t, d.IsDirty())
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("read-only directory", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced for root")
		}
		dir := t.TempDir()
		require.NoError(t, os.Chmod(dir, 0500))
		t.Cleanup(func() { os.Chmod(dir, 0700) })

		d := New()
		d.Insert(pos(0, 0), 'x')
		err := d.SaveAs(filepath.Join(dir, "out.txt"))
		assert.True(t, IsPermission(err))
		assert.True(t, d.IsDirty())
	})
}

func TestSaveAsRederivesFileType(t *testing.T) {
	d, err := Open(writeFile(t, "snippet.txt", "let x = 1;\n"))
	require.NoError(t, err)
	assert.Equal(t, filetype.DefaultName, d.FileTypeName())

	r, _ := d.Row(0)
	assert.Equal(t, highlight.None, r.Highlighting()[0])

	require.NoError(t, d.SaveAs(filepath.Join(t.TempDir(), "snippet.rs")))
	assert.Equal(t, "Rust", d.FileTypeName())
	r, _ = d.Row(0)
	assert.Equal(t, highlight.PrimaryKeyword, r.Highlighting()[0])
}

func TestInsert(t *testing.T) {
	t.Run("into empty document", func(t *testing.T) {
		d := New()
		d.Insert(pos(5, 0), 'x')
		assert.Equal(t, []string{"x"}, rowStrings(t, d))
		assert.True(t, d.IsDirty())
	})

	t.Run("past last row appends", func(t *testing.T) {
		d := New()
		d.Insert(pos(0, 0), 'a')
		d.Insert(pos(0, 4), 'b')
		assert.Equal(t, []string{"a", "b"}, rowStrings(t, d))
	})

	t.Run("newline splits row", func(t *testing.T) {
		d := New()
		for i, ch := range "hello" {
			d.Insert(pos(i, 0), ch)
		}
		d.Insert(pos(2, 0), '\n')
		assert.Equal(t, []string{"he", "llo"}, rowStrings(t, d))

		d.Insert(pos(0, 0), '\n')
		assert.Equal(t, []string{"", "he", "llo"}, rowStrings(t, d))
	})

	t.Run("newline one past last row appends empty row", func(t *testing.T) {
		d := New()
		d.Insert(pos(0, 0), 'a')
		d.Insert(pos(0, 1), '\n')
		assert.Equal(t, []string{"a", ""}, rowStrings(t, d))
	})

	t.Run("newline far past last row is ignored", func(t *testing.T) {
		d := New()
		d.Insert(pos(0, 0), 'a')
		d.Insert(pos(0, 3), '\n')
		assert.Equal(t, []string{"a"}, rowStrings(t, d))
	})

	t.Run("split rows are highlighted", func(t *testing.T) {
		d, err := Open(writeFile(t, "a.rs", "let x = 10;\n"))
		require.NoError(t, err)
		d.Insert(pos(8, 0), '\n')

		tail, _ := d.Row(1)
		assert.Equal(t, "10;", tail.String())
		assert.Equal(t, highlight.Number, tail.Highlighting()[0])
	})
}

func TestDelete(t *testing.T) {
	newDoc := func(t *testing.T) *Document {
		d, err := Open(writeFile(t, "f.txt", "foo\nbar\n"))
		require.NoError(t, err)
		return d
	}

	t.Run("merges next row at end of line", func(t *testing.T) {
		d := newDoc(t)
		d.Delete(pos(3, 0))
		assert.Equal(t, []string{"foobar"}, rowStrings(t, d))
		assert.True(t, d.IsDirty())
	})

	t.Run("removes a character", func(t *testing.T) {
		d := newDoc(t)
		d.Delete(pos(0, 1))
		assert.Equal(t, []string{"foo", "ar"}, rowStrings(t, d))
	})

	t.Run("end of last row is a no-op", func(t *testing.T) {
		d := newDoc(t)
		d.Delete(pos(3, 1))
		assert.Equal(t, []string{"foo", "bar"}, rowStrings(t, d))
	})

	t.Run("out of range rows are ignored", func(t *testing.T) {
		d := newDoc(t)
		d.Delete(pos(0, 2))
		d.Delete(pos(0, -1))
		assert.Equal(t, []string{"foo", "bar"}, rowStrings(t, d))
		assert.False(t, d.IsDirty())
	})
}

func TestFind(t *testing.T) {
	d, err := Open(writeFile(t, "f.txt", "one two\nthree\ntwo one\n"))
	require.NoError(t, err)

	t.Run("forward within row", func(t *testing.T) {
		at, ok := d.Find("two", pos(0, 0), types.Forward)
		require.True(t, ok)
		assert.Equal(t, pos(4, 0), at)
	})

	t.Run("forward crosses rows from column zero", func(t *testing.T) {
		at, ok := d.Find("two", pos(5, 0), types.Forward)
		require.True(t, ok)
		assert.Equal(t, pos(0, 2), at)
	})

	t.Run("backward crosses rows from row end", func(t *testing.T) {
		at, ok := d.Find("one", pos(3, 2), types.Backward)
		require.True(t, ok)
		assert.Equal(t, pos(0, 0), at)
	})

	t.Run("backward within row", func(t *testing.T) {
		at, ok := d.Find("one", pos(7, 2), types.Backward)
		require.True(t, ok)
		assert.Equal(t, pos(4, 2), at)
	})

	t.Run("does not wrap", func(t *testing.T) {
		_, ok := d.Find("three", pos(0, 2), types.Forward)
		assert.False(t, ok)
		_, ok = d.Find("three", pos(0, 0), types.Backward)
		assert.False(t, ok)
	})

	t.Run("row past end finds nothing", func(t *testing.T) {
		_, ok := d.Find("one", pos(0, 3), types.Forward)
		assert.False(t, ok)
	})
}

func TestHighlightMarksMatches(t *testing.T) {
	d, err := Open(writeFile(t, "f.txt", "abc\nxabc\n"))
	require.NoError(t, err)
	d.Highlight("abc")

	r, _ := d.Row(1)
	tags := r.Highlighting()
	assert.Equal(t, highlight.None, tags[0])
	assert.Equal(t, []highlight.Type{highlight.Match, highlight.Match, highlight.Match}, tags[1:])

	d.Highlight("")
	r, _ = d.Row(0)
	assert.Equal(t, highlight.None, r.Highlighting()[0])
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "permission denied", KindPermission.String())
	assert.Equal(t, "i/o error", KindIO.String())
}

func TestEvents(t *testing.T) {
	bus := event.NewManager()
	var changed []event.RowsChangedData
	var saved []string
	var retyped []event.FileTypeChangedData
	bus.Subscribe(event.TypeRowsChanged, func(e event.Event) bool {
		changed = append(changed, e.Data.(event.RowsChangedData))
		return false
	})
	bus.Subscribe(event.TypeDocumentSaved, func(e event.Event) bool {
		saved = append(saved, e.Data.(event.DocumentSavedData).FilePath)
		return false
	})
	bus.Subscribe(event.TypeFileTypeChanged, func(e event.Event) bool {
		retyped = append(retyped, e.Data.(event.FileTypeChangedData))
		return false
	})

	d := New()
	d.SetEvents(bus)
	d.Insert(pos(0, 0), 'a')
	d.Insert(pos(1, 0), 'b')
	d.Insert(pos(1, 0), '\n')
	d.Delete(pos(1, 0))
	d.Delete(pos(0, 5))

	assert.Equal(t, []event.RowsChangedData{
		{From: 0, To: 1},
		{From: 0, To: 1},
		{From: 0, To: 2},
		{From: 0, To: 2},
	}, changed)

	path := filepath.Join(t.TempDir(), "x.go")
	require.NoError(t, d.SaveAs(path))
	assert.Equal(t, []string{path}, saved)
	assert.Equal(t, []event.FileTypeChangedData{{Old: filetype.DefaultName, New: "Go"}}, retyped)

	require.NoError(t, d.Save())
	assert.Len(t, retyped, 1, "unchanged file type is not reported again")
}
