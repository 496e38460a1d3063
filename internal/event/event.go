// Package event is a small synchronous publish/subscribe bus for document
// and theme notifications.
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeRowsChanged     // rows were edited, inserted or removed
	TypeDocumentLoaded  // a document was read from disk
	TypeDocumentSaved   // a document was written to disk
	TypeFileTypeChanged // a save re-derived a different language profile
	TypeThemeChanged    // the active theme was switched
)

func (t Type) String() string {
	switch t {
	case TypeRowsChanged:
		return "rows-changed"
	case TypeDocumentLoaded:
		return "document-loaded"
	case TypeDocumentSaved:
		return "document-saved"
	case TypeFileTypeChanged:
		return "filetype-changed"
	case TypeThemeChanged:
		return "theme-changed"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the bus.
type Event struct {
	Type Type
	Data interface{}
}

// RowsChangedData covers the row range [From, To) whose content or index
// changed. To is the row count after the edit when rows shifted.
type RowsChangedData struct {
	From int
	To   int
}

type DocumentLoadedData struct {
	FilePath string
	Rows     int
}

type DocumentSavedData struct {
	FilePath string
	Rows     int
}

type FileTypeChangedData struct {
	Old string
	New string
}

type ThemeChangedData struct {
	Name string
}
