package filetype

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/tidal/internal/logger"
)

var (
	// Global profile registry
	registry struct {
		sync.RWMutex
		profiles  []*FileType
		extToType map[string]*FileType
	}

	initOnce sync.Once
)

// initialize prepares the registry and adds the built-in profiles.
func initialize() {
	initOnce.Do(func() {
		registry.extToType = make(map[string]*FileType)
		for _, ft := range builtins() {
			register(ft)
		}
		logger.Debugf("Profile registry initialized with %d built-in profiles", len(registry.profiles))
	})
}

// Register adds a profile. Its extensions replace earlier mappings.
func Register(ft FileType) {
	initialize()

	registry.Lock()
	defer registry.Unlock()
	register(ft)
}

func register(ft FileType) {
	p := &ft
	registry.profiles = append(registry.profiles, p)

	for _, ext := range ft.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToType[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, ft.Name)
		}
		registry.extToType[lowerExt] = p
	}

	logger.Debugf("Registered profile: %s with extensions: %v", ft.Name, ft.Extensions)
}

// FromFilename derives the profile from a file name's extension.
// Unknown or missing extensions yield Default().
func FromFilename(filename string) FileType {
	initialize()

	registry.RLock()
	defer registry.RUnlock()

	ext := strings.ToLower(filepath.Ext(filename))
	if ft, ok := registry.extToType[ext]; ok && ext != "" {
		return *ft
	}
	return Default()
}

// All returns every registered profile in registration order.
func All() []FileType {
	initialize()

	registry.RLock()
	defer registry.RUnlock()

	result := make([]FileType, len(registry.profiles))
	for i, p := range registry.profiles {
		result[i] = *p
	}
	return result
}
