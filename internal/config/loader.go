// Package config loads site definitions (blocks, pages, languages)
// from YAML or JSON files. It implements ports.SiteLoader so the
// engine stays agnostic of the on-disk format.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/latticeui/lattice/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the filename probed when a directory is given.
const DefaultFile = "site.yaml"

// Loader reads a site definition from disk.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given file or directory. For a
// directory, site.yaml inside it is used.
func NewLoader(path string) (*Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("site definition not found: %w", err)
	}
	if info.IsDir() {
		path = filepath.Join(path, DefaultFile)
	}
	return &Loader{path: path}, nil
}

// Site reads and decodes the site definition.
func (l *Loader) Site() (*domain.Site, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site definition: %w", err)
	}
	return Parse(data, filepath.Ext(l.path))
}

// Parse decodes a site definition. JSON decodes directly through the
// domain types; YAML goes through a generic tree and mapstructure so
// sections and prop values land in their tagged-union form.
func Parse(data []byte, ext string) (*domain.Site, error) {
	if strings.ToLower(ext) == ".json" {
		var site domain.Site
		if err := json.Unmarshal(data, &site); err != nil {
			return nil, fmt.Errorf("failed to parse site.json: %w", err)
		}
		return &site, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse site.yaml: %w", err)
	}

	var site domain.Site
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &site,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(propValueHook, sectionHook),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build site decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode site definition: %w", err)
	}
	return &site, nil
}

// propValueHook converts generic YAML values into the PropValue
// tagged union wherever the target field asks for one.
func propValueHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(domain.PropValue{}) {
		return data, nil
	}
	pv, err := domain.ValueFrom(normalize(data))
	if err != nil {
		return nil, err
	}
	return pv, nil
}

// sectionHook distinguishes block references from inline nodes. A map
// carrying a "block" key is a reference; a map carrying a "type" key
// is an inline node written without the explicit "node" wrapper.
func sectionHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(domain.Section{}) {
		return data, nil
	}
	m, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	if _, hasBlock := m["block"]; hasBlock {
		return data, nil
	}
	if _, hasNode := m["node"]; hasNode {
		return data, nil
	}
	if _, hasType := m["type"]; hasType {
		return map[string]any{"node": m}, nil
	}
	return data, nil
}

// normalize rewrites yaml-decoded numeric scalars into the shapes
// ValueFrom accepts recursively, so nested objects round-trip through
// JSON without surprises.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = normalize(elem)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = normalize(elem)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return v
	}
}
