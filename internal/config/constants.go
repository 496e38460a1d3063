package config

// Base application details
const (
	AppName                 = "tidal"
	Version                 = "0.1.0"
	ConfigDirName           = "tidal"
	ThemesDirName           = "themes"
	DefaultConfigFileName   = "config.toml"   // Main config file
	DefaultProfilesFileName = "profiles.toml" // Extra language profiles
)

// Logging
const DefaultLogLevel = "warn"

// Rendering
const DefaultThemeName = "Classic"
const DefaultRenderWidth = 0 // 0 means terminal width, or unlimited when not a terminal
