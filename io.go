// File: lixenwraith/configurator/io.go
package configurator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Encode writes the configuration to w in the given format (toml, json or yaml)
func (c Configuration) Encode(w io.Writer, format string) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(map[string]any(c)); err != nil {
			return fmt.Errorf("failed to marshal configuration to TOML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]any(c)); err != nil {
			return fmt.Errorf("failed to marshal configuration to JSON: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(map[string]any(c)); err != nil {
			return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

// Save writes the configuration to path atomically; the format follows the extension
func (c Configuration) Save(path string) error {
	format := detectFileFormat(path)
	if format == "" {
		return fmt.Errorf("unable to determine format for file '%s'", path)
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf, format); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
