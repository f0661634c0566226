// Package metadata loads and saves survey metadata documents as YAML or JSON.
//
// Documents are plain mappings over the primitive JSON/YAML data model.
// Serialization format is selected explicitly at save time; at load time the
// parser is picked from the file extension.
package metadata

import (
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/oceanbound/marlin/pkg/errors"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format selects a serialization for Save.
type Format string

const (
	// FormatJSON writes indented JSON
	FormatJSON Format = "json"
	// FormatYAML writes YAML
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format tag from user input.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", errors.ErrUnknownFormat.Wrap(errors.New(s))
}

// Extension returns the canonical file extension for the format, with dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Document is a metadata document: a mapping over strings, numbers,
// booleans, nulls, sequences and nested mappings.
type Document map[string]interface{}

// Load reads a metadata document from path. Files ending in .json are parsed
// as JSON, everything else as YAML. The top level must be a mapping.
func Load(fs afero.Fs, path string) (Document, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, errors.ErrNotMapping
		}
		return doc, nil
	}

	var loose map[interface{}]interface{}
	if err := yaml.Unmarshal(raw, &loose); err != nil {
		return nil, err
	}
	if loose == nil {
		return nil, errors.ErrNotMapping
	}
	doc, ok := normalize(loose).(Document)
	if !ok {
		return nil, errors.ErrNotMapping
	}
	return doc, nil
}

// Save writes a metadata document to path in the given format. JSON output
// is indented with two spaces.
func Save(fs afero.Fs, doc Document, path string, format Format) error {
	var (
		raw []byte
		err error
	)
	switch format {
	case FormatJSON:
		raw, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			raw = append(raw, '\n')
		}
	case FormatYAML:
		raw, err = yaml.Marshal(doc)
	default:
		err = errors.ErrUnknownFormat.Wrap(errors.New(string(format)))
	}
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return afero.WriteFile(fs, path, raw, 0644)
}

// normalize rewrites yaml.v2's map[interface{}]interface{} values into
// map[string]interface{} so documents round-trip through JSON and feed the
// schema validator unchanged.
func normalize(v interface{}) interface{} {
	switch value := v.(type) {
	case map[interface{}]interface{}:
		doc := make(Document, len(value))
		for k, item := range value {
			key, ok := k.(string)
			if !ok {
				key = stringify(k)
			}
			doc[key] = normalize(item)
		}
		return doc
	case map[string]interface{}:
		doc := make(Document, len(value))
		for k, item := range value {
			doc[k] = normalize(item)
		}
		return doc
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

func stringify(k interface{}) string {
	raw, err := yaml.Marshal(k)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
