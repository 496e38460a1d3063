package filetype

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidal/internal/highlight"
	"github.com/bethropolis/tidal/internal/logger"
)

// tomlProfile is one [[profile]] table of a profiles file.
type tomlProfile struct {
	Name              string   `toml:"name"`
	Extensions        []string `toml:"extensions"`
	Numbers           bool     `toml:"numbers"`
	Strings           bool     `toml:"strings"`
	Characters        bool     `toml:"characters"`
	Comments          bool     `toml:"comments"`
	PrimaryKeywords   []string `toml:"primary_keywords"`
	SecondaryKeywords []string `toml:"secondary_keywords"`
}

type tomlProfiles struct {
	Profiles []tomlProfile `toml:"profile"`
}

// LoadProfiles reads language profiles from a TOML file. The caller decides
// whether to Register them.
func LoadProfiles(filePath string) ([]FileType, error) {
	var file tomlProfiles
	metadata, err := toml.DecodeFile(filePath, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profiles file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Profiles file '%s': Unrecognized keys: %v", filePath, undecoded)
	}

	result := make([]FileType, 0, len(file.Profiles))
	for i, p := range file.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("profile #%d in '%s' has no name", i+1, filePath)
		}
		if p.Name == DefaultName {
			return nil, fmt.Errorf("profile name %q is reserved", DefaultName)
		}
		if len(p.Extensions) == 0 {
			return nil, fmt.Errorf("profile '%s' in '%s' lists no extensions", p.Name, filePath)
		}
		result = append(result, FileType{
			Name:       p.Name,
			Extensions: normalizeExtensions(p.Extensions),
			Options: highlight.Options{
				Numbers:           p.Numbers,
				Strings:           p.Strings,
				Characters:        p.Characters,
				Comments:          p.Comments,
				PrimaryKeywords:   p.PrimaryKeywords,
				SecondaryKeywords: p.SecondaryKeywords,
			},
		})
	}
	logger.Debugf("Loaded %d profiles from %s", len(result), filePath)
	return result, nil
}

// normalizeExtensions lowercases extensions and adds a missing leading dot.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
