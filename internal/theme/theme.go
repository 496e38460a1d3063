// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tidal/internal/highlight"
	"github.com/bethropolis/tidal/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a style by name.
func (t *Theme) GetStyle(name string) tcell.Style {
	// 1. Try exact name
	if style, ok := t.Styles[name]; ok {
		return style
	}

	// 2. Try base name (part before first dot)
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	// 3. Return "Default" style
	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	// 4. Absolute fallback
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Marker returns the foreground switch for a highlight tag, making a Theme
// usable as a highlight.Palette.
func (t *Theme) Marker(typ highlight.Type) string {
	fg, _, _ := t.GetStyle(typ.StyleName()).Decompose()
	return highlight.ForegroundMarker(fg)
}

// Reset returns the foreground reset marker.
func (t *Theme) Reset() string {
	return highlight.ResetMarker()
}

var _ highlight.Palette = (*Theme)(nil)

// Classic uses the highlighter's built-in tag colors.
func Classic() *Theme {
	styles := make(map[string]tcell.Style, int(highlight.Match)+1)
	for typ := highlight.None; typ <= highlight.Match; typ++ {
		styles[typ.StyleName()] = tcell.StyleDefault.Foreground(typ.Color())
	}
	return &Theme{Name: "Classic", IsDark: true, Styles: styles}
}

// DevComfortDark is a muted dark palette.
func DevComfortDark() *Theme {
	dcForeground := tcell.NewHexColor(0xc5cdd9) // Soft off-white (Default Text)
	dcComment := tcell.NewHexColor(0x5c6370)    // Muted Grey
	dcOrange := tcell.NewHexColor(0xd19a66)     // Numbers
	dcYellow := tcell.NewHexColor(0xe5c07b)     // Secondary keywords (types)
	dcGreen := tcell.NewHexColor(0x98c379)      // Strings
	dcCyan := tcell.NewHexColor(0x56b6c2)       // Search matches
	dcBlue := tcell.NewHexColor(0x61afef)       // Keywords
	dcMagenta := tcell.NewHexColor(0xc678dd)    // Character literals

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)

	return &Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":           baseStyle,
			"number":            baseStyle.Foreground(dcOrange),
			"string":            baseStyle.Foreground(dcGreen),
			"character":         baseStyle.Foreground(dcMagenta),
			"comment":           baseStyle.Foreground(dcComment).Italic(true),
			"keyword":           baseStyle.Foreground(dcBlue).Bold(true),
			"keyword.secondary": baseStyle.Foreground(dcYellow),
			"match":             baseStyle.Foreground(dcCyan).Underline(true),
		},
	}
}
