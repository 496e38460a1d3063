// Package filetype selects a language profile (which token kinds are
// highlighted and which keyword lists apply) from a file name.
package filetype

import (
	"github.com/bethropolis/tidal/internal/highlight"
)

// DefaultName is reported for files without a recognized extension.
const DefaultName = "No filetype"

// FileType is a named language profile.
type FileType struct {
	// Name is the display name of the language.
	Name string

	// Extensions lists the file extensions (with leading dot) mapped to this
	// profile.
	Extensions []string

	// Options are the highlighting rules applied to every row.
	Options highlight.Options
}

// Default returns the profile with no highlighting enabled.
func Default() FileType {
	return FileType{Name: DefaultName}
}

// IsDefault reports whether ft is the no-highlighting profile.
func (ft FileType) IsDefault() bool {
	return ft.Name == DefaultName
}

// HighlightingOptions returns the rule set for the highlighter.
func (ft *FileType) HighlightingOptions() *highlight.Options {
	return &ft.Options
}
