package config

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidal/internal/logger"
	"github.com/spf13/pflag"
)

// Flags holds values bound to command-line flags. Only flags the user
// actually set override the configuration.
type Flags struct {
	ConfigFilePath string
	LogLevel       string
	LogFilePath    string
	EnableTags     []string
	DisableTags    []string
	EnablePkgs     []string
	DisablePkgs    []string
	EnableFiles    []string
	DisableFiles   []string
	DebugLog       bool
	Theme          string
	ThemesDir      string
	ProfilesFile   string

	set *pflag.FlagSet
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.set = fs
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.StringSliceVar(&f.EnableTags, "log-tags", nil, "Comma-separated list of tags to enable - Overrides config file")
	fs.StringSliceVar(&f.DisableTags, "log-disable-tags", nil, "Comma-separated list of tags to disable - Overrides config file")
	fs.StringSliceVar(&f.EnablePkgs, "log-packages", nil, "Comma-separated list of packages to enable - Overrides config file")
	fs.StringSliceVar(&f.DisablePkgs, "log-disable-packages", nil, "Comma-separated list of packages to disable - Overrides config file")
	fs.StringSliceVar(&f.EnableFiles, "log-files", nil, "Comma-separated list of files to enable - Overrides config file")
	fs.StringSliceVar(&f.DisableFiles, "log-disable-files", nil, "Comma-separated list of files to disable - Overrides config file")
	fs.BoolVar(&f.DebugLog, "debug-log", false, "Enable verbose debug logging for the logger filtering system")
	fs.StringVar(&f.Theme, "theme", "", "Name of the theme to render with - Overrides config file")
	fs.StringVar(&f.ThemesDir, "themes-dir", "", "Directory of TOML theme files - Overrides config file")
	fs.StringVar(&f.ProfilesFile, "profiles", "", "TOML file with extra language profiles - Overrides config file")
}

// Bind selects the FlagSet whose parsed flags ApplyOverrides reads. Under
// cobra this must be the executing command's merged set, since inherited
// persistent flags are recorded as set there and not on the parent.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	f.set = fs
}

// ApplyOverrides copies every flag that was set onto cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set == nil {
		return
	}
	f.set.Visit(func(fl *pflag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = cleanList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = cleanList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = cleanList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = cleanList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = cleanList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = cleanList(f.DisableFiles)
		case "debug-log":
			logger.SetDebugFilter(f.DebugLog)
		case "theme":
			if f.Theme != "" {
				cfg.Editor.Theme = f.Theme
			}
		case "themes-dir":
			cfg.Editor.ThemesDir = f.ThemesDir
		case "profiles":
			cfg.Editor.ProfilesFile = f.ProfilesFile
		}
	})
}

// cleanList trims items and drops empty ones.
func cleanList(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
