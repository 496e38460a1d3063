package row

import (
	"testing"

	"github.com/bethropolis/tidal/internal/highlight"
	"github.com/stretchr/testify/assert"
)

// tagPalette renders markers as readable tag names.
type tagPalette struct{}

func (tagPalette) Marker(t highlight.Type) string { return "<" + t.String() + ">" }
func (tagPalette) Reset() string                  { return "</>" }

func TestRenderTransitionsOnly(t *testing.T) {
	r := New("fn 12 x")
	r.Highlight(allKinds, "")

	got := r.RenderWith(tagPalette{}, 0, r.Len())
	assert.Equal(t, "<primary keyword>fn<none> <number>12<none> x</>", got)
}

func TestRenderLeadingNoneHasNoMarker(t *testing.T) {
	r := New("x 1")
	r.Highlight(allKinds, "")
	assert.Equal(t, "x <number>1</>", r.RenderWith(tagPalette{}, 0, 3))
}

func TestRenderWindow(t *testing.T) {
	r := New("fn x")
	r.Highlight(allKinds, "")

	assert.Equal(t, "<primary keyword>n<none> x</>", r.RenderWith(tagPalette{}, 1, 4))
	assert.Equal(t, "<primary keyword>fn<none> x</>", r.RenderWith(tagPalette{}, -5, 99))
	assert.Equal(t, "</>", r.RenderWith(tagPalette{}, 3, 1))
	assert.Equal(t, "</>", r.RenderWith(tagPalette{}, 4, 4))
}

func TestRenderTabsAndClusters(t *testing.T) {
	r := New("a\tb")
	assert.Equal(t, "a b</>", r.RenderWith(tagPalette{}, 0, 3))

	r = New(accented + "x")
	r.Highlight(allKinds, "")
	// only the base rune of each cluster is written
	assert.Equal(t, "cafe!x</>", r.RenderWith(tagPalette{}, 0, r.Len()))
}

func TestRenderUsesRuneTags(t *testing.T) {
	r := New(accented + " fn")
	r.Highlight(allKinds, "")
	assert.Equal(t, "cafe! <primary keyword>fn</>", r.RenderWith(tagPalette{}, 0, r.Len()))
}

func TestRenderDefaultPalette(t *testing.T) {
	r := New("1")
	r.Highlight(allKinds, "")
	want := highlight.DefaultPalette.Marker(highlight.Number) + "1" + highlight.DefaultPalette.Reset()
	assert.Equal(t, want, r.Render(0, 1))

	unhighlighted := New("ab")
	assert.Equal(t, "ab"+highlight.ResetMarker(), unhighlighted.Render(0, 2))
}
