// FILE: lixenwraith/configurator/loader.go
package configurator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported configuration file formats
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LoaderFunc reads a configuration file into a flat key/value mapping
type LoaderFunc func(path string) (map[string]any, error)

// LoadFile reads a TOML, JSON or YAML file into a mapping.
// The format comes from the extension, falling back to content detection.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read '%s': %w", ErrUnparsableConfigFile, path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	values, err := decodeFile(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrUnparsableConfigFile, path, err)
	}
	return values, nil
}

// decodeFile parses data in the given format
func decodeFile(data []byte, format string) (map[string]any, error) {
	values := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&values); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to determine config format")
	}
	return values, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// TOML before YAML: "key = value" is a valid YAML scalar document but not a YAML mapping
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return ""
}
