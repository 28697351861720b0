package catalog

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a locale file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// Decode parses data in the given format into a Table.
func Decode(format Format, data []byte) (*Table, error) {
	root := map[string]any{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("catalog: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("catalog: decode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("catalog: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("catalog: unsupported format %q", format)
	}
	return New(root), nil
}
