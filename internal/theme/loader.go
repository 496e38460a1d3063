package theme

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidal/internal/highlight"
	"github.com/bethropolis/tidal/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// themeFile is the TOML layout of a theme:
//
//	name = "Sunset"
//	is_dark = true
//
//	[styles.Default]
//	fg = "#c0c0c0"
//
//	[styles."keyword.secondary"]
//	fg = "olive"
//	bold = true
type themeFile struct {
	Name   string               `toml:"name"`
	IsDark bool                 `toml:"is_dark"`
	Styles map[string]styleSpec `toml:"styles"`
}

// styleSpec is one [styles.<name>] table. Unset keys inherit from Default.
type styleSpec struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// lookupNames holds every key GetStyle is asked for by a highlight tag,
// either directly or as the base of a dotted name.
var lookupNames = func() map[string]bool {
	names := map[string]bool{"Default": true}
	for t := highlight.None; t <= highlight.Match; t++ {
		name := t.StyleName()
		names[name] = true
		if base, _, dotted := strings.Cut(name, "."); dotted {
			names[base] = true
		}
	}
	return names
}()

// LoadThemeFromFile reads a TOML theme. A missing name falls back to the
// file name. Styles with invalid colors are dropped, and style keys no
// highlight tag looks up are reported; both only warn.
func LoadThemeFromFile(path string) (*Theme, error) {
	var file themeFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme file '%s': %w", path, err)
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme '%s': ignoring unknown keys %v in '%s'", file.Name, undecoded, path)
	}
	if unused := unusedStyles(file.Styles); len(unused) > 0 {
		logger.Warnf("Theme '%s': styles %v do not color any highlight type", file.Name, unused)
	}

	theme := &Theme{
		Name:   file.Name,
		IsDark: file.IsDark,
		Styles: make(map[string]tcell.Style, len(file.Styles)+1),
	}

	base := tcell.StyleDefault
	if spec, ok := file.Styles["Default"]; ok {
		if style, err := spec.apply(base); err != nil {
			logger.Warnf("Theme '%s': Default style: %v", file.Name, err)
		} else {
			base = style
		}
	}
	theme.Styles["Default"] = base

	for name, spec := range file.Styles {
		if name == "Default" {
			continue
		}
		style, err := spec.apply(base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", file.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.Debugf("Loaded theme '%s' (%d styles) from %s", theme.Name, len(theme.Styles), path)
	return theme, nil
}

// unusedStyles returns the sorted style keys that no highlight tag resolves
// to, such as misspellings or names for token kinds tidal does not tag.
func unusedStyles(styles map[string]styleSpec) []string {
	var unused []string
	for name := range styles {
		if !lookupNames[name] {
			unused = append(unused, name)
		}
	}
	slices.Sort(unused)
	return unused
}

// apply layers the spec over base.
func (s styleSpec) apply(base tcell.Style) (tcell.Style, error) {
	style := base
	if s.Fg != nil {
		c, err := parseColor(*s.Fg)
		if err != nil {
			return base, fmt.Errorf("fg: %w", err)
		}
		style = style.Foreground(c)
	}
	if s.Bg != nil {
		c, err := parseColor(*s.Bg)
		if err != nil {
			return base, fmt.Errorf("bg: %w", err)
		}
		style = style.Background(c)
	}
	if s.Bold != nil {
		style = style.Bold(*s.Bold)
	}
	if s.Italic != nil {
		style = style.Italic(*s.Italic)
	}
	if s.Underline != nil {
		style = style.Underline(*s.Underline)
	}
	if s.Reverse != nil {
		style = style.Reverse(*s.Reverse)
	}
	return style, nil
}

// parseColor accepts #rrggbb, a tcell color name, "reset" or "default".
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	if c := tcell.GetColor(s); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color '%s', want #rrggbb or a color name", s)
}
