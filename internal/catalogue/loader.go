package catalogue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Conceptual-Machines/vibe-chords/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Format of a catalogue document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type document struct {
	Moods []Mood `json:"moods" yaml:"moods"`
}

// Default builds the reference catalogue embedded in the binary
func Default() (*Catalogue, error) {
	return Parse(embedded.CatalogueJSON, FormatJSON)
}

// MustDefault is Default for process start-up, where a broken embedded catalogue is a build defect
func MustDefault() *Catalogue {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded catalogue: %v", err))
	}
	return c
}

// Parse decodes a catalogue document and validates it
func Parse(data []byte, format Format) (*Catalogue, error) {
	var doc document

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", ErrInvalidCatalogue, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidCatalogue, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidCatalogue, format)
	}

	return New(doc.Moods)
}

// LoadFile reads a catalogue from disk. The extension picks the format (.json, .yaml, .yml).
func LoadFile(path string) (*Catalogue, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue %s: %w", path, err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load catalogue %s: %w", path, err)
	}
	return c, nil
}

// Load returns the catalogue at path, or the embedded one when path is empty
func Load(path string) (*Catalogue, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

func formatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format of %s", ErrInvalidCatalogue, path)
	}
}
