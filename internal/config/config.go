// Package config loads tidal's settings from defaults, an optional TOML
// file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidal/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds highlighting and rendering settings.
type EditorConfig struct {
	Theme        string `toml:"theme"`         // name of the active theme
	ThemesDir    string `toml:"themes_dir"`    // directory of *.toml theme files
	ProfilesFile string `toml:"profiles_file"` // extra [[profile]] tables
	RenderWidth  int    `toml:"render_width"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	cfg := &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			Theme:       DefaultThemeName,
			RenderWidth: DefaultRenderWidth,
		},
	}
	cfg.Logger.LogLevel = DefaultLogLevel
	if dir, err := DefaultDir(); err == nil {
		cfg.Editor.ThemesDir = filepath.Join(dir, ThemesDirName)
		cfg.Editor.ProfilesFile = filepath.Join(dir, DefaultProfilesFileName)
	}
	return cfg
}

// DefaultDir returns the per-user configuration directory for tidal.
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigDirName), nil
}

// loadFromFile decodes filePath over cfg, so keys absent from the file keep
// their current values.
func loadFromFile(filePath string, cfg *Config) error {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Editor.Theme == "" {
		c.Editor.Theme = defaults.Editor.Theme
	}
	if c.Editor.RenderWidth < 0 {
		c.Editor.RenderWidth = defaults.Editor.RenderWidth
	}
}

// Load builds the configuration. An explicit configFilePath must exist; the
// default location is optional. flags may be nil.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path, explicit := configFilePath, configFilePath != ""
	if !explicit {
		if dir, err := DefaultDir(); err == nil {
			path = filepath.Join(dir, DefaultConfigFileName)
		}
	}

	if path != "" {
		err := loadFromFile(path, cfg)
		switch {
		case err == nil:
		case !explicit && errors.Is(err, fs.ErrNotExist):
			// No user config; defaults apply.
		default:
			return nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, nil
}
