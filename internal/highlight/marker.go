package highlight

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// foregroundResetSeq is SGR 39, "default foreground color".
const foregroundResetSeq = "39"

// Palette turns highlight tags into terminal color-switch markers.
type Palette interface {
	Marker(t Type) string
	Reset() string
}

// DefaultPalette colors tags with Type.Color.
var DefaultPalette Palette = defaultPalette{}

type defaultPalette struct{}

func (defaultPalette) Marker(t Type) string { return ForegroundMarker(t.Color()) }
func (defaultPalette) Reset() string        { return ResetMarker() }

// ForegroundMarker returns the escape sequence that switches the foreground
// to c. RGB colors use true color, palette colors their ANSI index, and
// reset/default colors the default foreground.
func ForegroundMarker(c tcell.Color) string {
	color := TermColor(c)
	if color == nil {
		return ResetMarker()
	}
	return termenv.CSI + color.Sequence(false) + "m"
}

// TermColor converts a tcell color to its termenv equivalent, or nil for
// the reset and default colors.
func TermColor(c tcell.Color) termenv.Color {
	if !c.Valid() {
		return nil
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return rgbColor{r, g, b}
	}
	index := int(c - tcell.ColorValid)
	if index < 16 {
		return termenv.ANSIColor(index)
	}
	return termenv.ANSI256Color(index)
}

// rgbColor is a 24-bit color carried as exact channel values. termenv's own
// RGBColor goes through a float round-trip that can lower a channel by one.
type rgbColor struct{ r, g, b int32 }

func (c rgbColor) Sequence(bg bool) string {
	prefix := termenv.Foreground
	if bg {
		prefix = termenv.Background
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", prefix, c.r, c.g, c.b)
}

// ResetMarker returns the escape sequence restoring the default foreground.
func ResetMarker() string {
	return termenv.CSI + foregroundResetSeq + "m"
}
