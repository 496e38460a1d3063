// Package app wires configuration, logging, language profiles and themes
// together and implements the tidal command-line tool on top of them.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"runtime"

	"github.com/bethropolis/tidal/internal/config"
	"github.com/bethropolis/tidal/internal/document"
	"github.com/bethropolis/tidal/internal/event"
	"github.com/bethropolis/tidal/internal/filetype"
	"github.com/bethropolis/tidal/internal/logger"
	"github.com/bethropolis/tidal/internal/statusbar"
	"github.com/bethropolis/tidal/internal/theme"
	"github.com/bethropolis/tidal/internal/types"
	"golang.org/x/sync/errgroup"
)

// App holds the components shared by every command.
type App struct {
	cfg      *config.Config
	themes   *theme.Manager
	events   *event.Manager
	status   *statusbar.StatusBar
	logClose io.Closer
}

// New installs the logger from cfg, registers extra language profiles and
// loads themes. The active theme must exist.
func New(cfg *config.Config) (*App, error) {
	closer, err := logger.Setup(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("logger initialization failed: %w", err)
	}

	a := &App{
		cfg:      cfg,
		themes:   theme.NewManager(),
		events:   event.NewManager(),
		status:   statusbar.New(statusbar.DefaultConfig()),
		logClose: closer,
	}
	a.subscribe()
	a.status.Observe(a.events)

	if err := a.loadProfiles(); err != nil {
		a.Close()
		return nil, err
	}
	a.loadThemes()
	if err := a.SetTheme(cfg.Editor.Theme); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// Close releases the log file, if any.
func (a *App) Close() error {
	return a.logClose.Close()
}

func (a *App) subscribe() {
	a.events.Subscribe(event.TypeDocumentLoaded, func(e event.Event) bool {
		data := e.Data.(event.DocumentLoadedData)
		logger.DebugTagf("app", "Loaded %s (%d rows)", data.FilePath, data.Rows)
		return false
	})
	a.events.Subscribe(event.TypeThemeChanged, func(e event.Event) bool {
		logger.DebugTagf("app", "Theme is now %s", e.Data.(event.ThemeChangedData).Name)
		return false
	})
}

// loadProfiles registers the profiles file from the config. A missing file
// is not an error.
func (a *App) loadProfiles() error {
	path := a.cfg.Editor.ProfilesFile
	if path == "" {
		return nil
	}
	profiles, err := filetype.LoadProfiles(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("No profiles file at %s", path)
		return nil
	}
	if err != nil {
		return err
	}
	for _, ft := range profiles {
		filetype.Register(ft)
	}
	logger.Infof("Registered %d profile(s) from %s", len(profiles), path)
	return nil
}

func (a *App) loadThemes() {
	dir := a.cfg.Editor.ThemesDir
	if dir == "" {
		return
	}
	n, err := a.themes.LoadThemesFromDir(dir)
	if err != nil {
		logger.Warnf("Failed to load themes from %s: %v", dir, err)
		return
	}
	logger.Debugf("Loaded %d theme(s) from %s", n, dir)
}

// Themes returns the theme manager.
func (a *App) Themes() *theme.Manager {
	return a.themes
}

// Theme returns the active theme.
func (a *App) Theme() *theme.Theme {
	return a.themes.Current()
}

// SetTheme switches the active theme by name.
func (a *App) SetTheme(name string) error {
	if err := a.themes.SetTheme(name); err != nil {
		return err
	}
	a.events.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: a.Theme().Name})
	return nil
}

// Open loads every path concurrently. Results keep the order of paths; the
// first failure cancels the remaining loads.
func (a *App) Open(ctx context.Context, paths []string) ([]*document.Document, error) {
	docs := make([]*document.Document, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(runtime.GOMAXPROCS(0), len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := document.Open(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, doc := range docs {
		doc.SetEvents(a.events)
		a.events.Dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{FilePath: doc.Filename(), Rows: doc.Len()})
	}
	return docs, nil
}

// Render writes every row of doc in the active theme, one per line, cut to
// width graphemes. A width of 0 or less renders whole rows. A non-empty
// match is highlighted as search matches.
func (a *App) Render(w io.Writer, doc *document.Document, width int, match string) error {
	if match != "" {
		doc.Highlight(match)
	}
	palette := a.Theme()

	bw := bufio.NewWriter(w)
	for i := 0; i < doc.Len(); i++ {
		r, _ := doc.Row(i)
		end := r.Len()
		if width > 0 {
			end = width
		}
		if _, err := bw.WriteString(r.RenderWith(palette, 0, end)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// StatusLine returns the status bar for doc with the cursor at cursor, laid
// out to width cells. Between calls the bar follows the event bus.
func (a *App) StatusLine(doc *document.Document, cursor types.Position, width int) string {
	a.status.SetFileInfo(doc.Filename(), doc.FileTypeName(), doc.IsDirty())
	a.status.SetCursorInfo(cursor)
	return a.status.Render(width)
}

// FindAll returns every occurrence of query in doc in scan order. Forward
// scans from the start, Backward from the end of the last row.
func FindAll(doc *document.Document, query string, direction types.SearchDirection) []types.Position {
	var hits []types.Position
	if doc.IsEmpty() {
		return hits
	}

	at := types.Position{}
	if direction == types.Backward {
		last, _ := doc.Row(doc.Len() - 1)
		at = types.Position{X: last.Len(), Y: doc.Len() - 1}
	}
	for {
		hit, ok := doc.Find(query, at, direction)
		if !ok {
			return hits
		}
		hits = append(hits, hit)
		at = hit
		if direction == types.Forward {
			at.X++
		}
	}
}
