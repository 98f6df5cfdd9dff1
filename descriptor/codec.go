package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a serialization of the descriptor.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for formats other than TOML, YAML and JSON.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat accepts a format name as given on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "toml", "":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath picks the format from a file extension. Files without a
// known extension are read as TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	return FormatTOML
}

// FileNames lists the names Find looks for, in priority order.
var FileNames = []string{
	"twconfig.toml",
	"twconfig.yaml",
	"twconfig.yml",
	"twconfig.json",
	filepath.Join("config", "twconfig.toml"),
}

// Find returns the first descriptor file present in dir.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no descriptor in %s (looked for %s): %w", dir, strings.Join(FileNames, ", "), os.ErrNotExist)
}

// Load reads and parses a descriptor file.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a descriptor and validates its shape. Shape failures wrap
// ErrMalformedConfiguration.
func Parse(data []byte, f Format) (*Descriptor, error) {
	raw := map[string]any{}
	var err error
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		if len(bytes.TrimSpace(data)) > 0 {
			err = json.Unmarshal(data, &raw)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedConfiguration, f, err)
	}
	return fromRaw(raw)
}

// document is the on-disk layout shared by all formats. Field order puts
// plain keys ahead of tables for TOML.
type document struct {
	Content []string    `toml:"content" yaml:"content" json:"content"`
	Plugins []pluginDoc `toml:"plugins" yaml:"plugins" json:"plugins"`
	Theme   themeDoc    `toml:"theme" yaml:"theme" json:"theme"`
}

type themeDoc struct {
	Extend map[string]map[string]string `toml:"extend" yaml:"extend" json:"extend"`
}

type pluginDoc struct {
	Name    string         `toml:"name" yaml:"name" json:"name"`
	Options map[string]any `toml:"options,omitempty" yaml:"options,omitempty" json:"options,omitempty"`
}

func (d *Descriptor) document() document {
	doc := document{
		Content: d.Content(),
		Plugins: make([]pluginDoc, 0, len(d.plugins)),
		Theme:   themeDoc{Extend: map[string]map[string]string(d.Extension())},
	}
	for _, p := range d.Plugins() {
		doc.Plugins = append(doc.Plugins, pluginDoc{Name: p.Name, Options: p.Options})
	}
	return doc
}

// Marshal encodes a descriptor. Parse(Marshal(d)) is equal to d.
func Marshal(d *Descriptor, f Format) ([]byte, error) {
	doc := d.document()
	switch f {
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}
