// Package statusbar composes the one-line document summary shown under the
// text: file name, cursor position, modified flag and language profile.
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/tidal/internal/event"
	"github.com/bethropolis/tidal/internal/highlight"
	"github.com/bethropolis/tidal/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
)

// maxNameWidth bounds the file name shown on the left.
const maxNameWidth = 20

// Config defines the appearance and behavior of the status bar.
type Config struct {
	Style          tcell.Style // foreground and background of the whole line
	MessageTimeout time.Duration
}

// DefaultConfig provides dark text on a light grey bar.
func DefaultConfig() Config {
	return Config{
		Style: tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(63, 63, 63)).
			Background(tcell.NewRGBColor(239, 239, 239)),
		MessageTimeout: 5 * time.Second,
	}
}

// StatusBar holds the state shown on the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	filePath   string
	fileType   string
	cursorPos  types.Position
	isModified bool

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetFileInfo updates the file details shown on the left and right.
func (sb *StatusBar) SetFileInfo(path, fileType string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.fileType = fileType
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetTemporaryMessage shows a message until the configured timeout passes.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// Message returns the temporary message if it has not expired.
func (sb *StatusBar) Message() (string, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.tempMessage == "" || sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		return "", false
	}
	return sb.tempMessage, true
}

// Observe keeps the bar in sync with the documents publishing on m.
func (sb *StatusBar) Observe(m *event.Manager) {
	m.Subscribe(event.TypeDocumentLoaded, func(e event.Event) bool {
		sb.mu.Lock()
		sb.filePath = e.Data.(event.DocumentLoadedData).FilePath
		sb.cursorPos = types.Position{}
		sb.isModified = false
		sb.mu.Unlock()
		return false
	})
	m.Subscribe(event.TypeDocumentSaved, func(e event.Event) bool {
		data := e.Data.(event.DocumentSavedData)
		sb.mu.Lock()
		sb.filePath = data.FilePath
		sb.isModified = false
		sb.mu.Unlock()
		sb.SetTemporaryMessage("Successfully saved file")
		return false
	})
	m.Subscribe(event.TypeFileTypeChanged, func(e event.Event) bool {
		sb.mu.Lock()
		sb.fileType = e.Data.(event.FileTypeChangedData).New
		sb.mu.Unlock()
		return false
	})
	m.Subscribe(event.TypeRowsChanged, func(event.Event) bool {
		sb.mu.Lock()
		sb.isModified = true
		sb.mu.Unlock()
		return false
	})
}

// Text lays out the status line to exactly width cells, or returns it
// unpadded when width is 0 or less.
func (sb *StatusBar) Text(width int) string {
	sb.mu.RLock()
	name := sb.filePath
	if name == "" {
		name = "[unnamed]"
	}
	name = truncate(name, maxNameWidth)
	left := fmt.Sprintf("%s:%d:%d", name, sb.cursorPos.Y+1, sb.cursorPos.X+1)
	if sb.isModified {
		left += " [modified]"
	}
	right := sb.fileType
	sb.mu.RUnlock()

	if width <= 0 {
		return left + " | " + right
	}
	gap := width - uniseg.StringWidth(left) - uniseg.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return pad(truncate(line, width), width)
}

// Render returns Text(width) colored with the configured style.
func (sb *StatusBar) Render(width int) string {
	fg, bg, _ := sb.config.Style.Decompose()
	style := termenv.TrueColor.String(sb.Text(width))
	if c := highlight.TermColor(fg); c != nil {
		style = style.Foreground(c)
	}
	if c := highlight.TermColor(bg); c != nil {
		style = style.Background(c)
	}
	return style.String()
}

// truncate cuts s to at most width cells on a grapheme boundary.
func truncate(s string, width int) string {
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if used+w > width {
			break
		}
		b.WriteString(gr.Str())
		used += w
	}
	return b.String()
}

func pad(s string, width int) string {
	if w := uniseg.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
