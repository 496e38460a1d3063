package document

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInvalidUTF8 is wrapped by the KindIO FileError Open returns for a file
// that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ErrorKind classifies file-system failures from Open and Save.
type ErrorKind int

const (
	KindIO ErrorKind = iota
	KindNotFound
	KindPermission
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	default:
		return "i/o error"
	}
}

// FileError reports a failed load or save.
type FileError struct {
	Op   string // "open" or "save"
	Path string
	Kind ErrorKind
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s '%s': %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// newFileError wraps err, deriving its kind from the underlying cause.
func newFileError(op, path string, err error) *FileError {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return &FileError{Op: op, Path: path, Kind: kind, Err: err}
}

// KindOf returns the kind of a *FileError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return KindIO, false
}

// IsNotFound reports whether err is a FileError for a missing file.
func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotFound
}

// IsPermission reports whether err is a FileError for denied access.
func IsPermission(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindPermission
}
