// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export reads prompt/response exports from disk and checks that
// every key the renderer needs is present. Errors are classified as file
// access, parse, or key lookup failures; none are recovered locally.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/json-to-md/pkg/types"
)

// Format identifies the syntax of an export file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	keyTimestamp = "timestamp"
	keyEntries   = "risposte"
	keyPrompt    = "prompt"
	keyResponse  = "risposta"
)

// FormatForPath picks the input format from the file extension. Paths
// ending in .yaml or .yml are YAML; everything else is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the export at path. The whole document is
// validated before Load returns, so callers never see a partial Document.
func Load(path string) (*types.Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return buf.Bytes(), nil
}

// Decode parses data as a single export document in the given format.
// YAML is converted to JSON first so both formats follow the same rules.
func Decode(data []byte, format Format) (*types.Document, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
		data = converted
	}

	root, err := decodeObject(data)
	if err != nil {
		return nil, &ParseError{Format: format, Err: fmt.Errorf("document: %w", err)}
	}

	timestamp, ok := root[keyTimestamp]
	if !ok {
		return nil, &KeyLookupError{Key: keyTimestamp, Index: -1}
	}
	rawEntries, ok := root[keyEntries]
	if !ok {
		return nil, &KeyLookupError{Key: keyEntries, Index: -1}
	}

	items, err := decodeArray(rawEntries)
	if err != nil {
		return nil, &ParseError{Format: format, Err: fmt.Errorf("%s: %w", keyEntries, err)}
	}

	doc := &types.Document{
		Timestamp: scalarText(timestamp),
		Entries:   make([]types.Entry, 0, len(items)),
	}
	for i, item := range items {
		fields, err := decodeObject(item)
		if err != nil {
			return nil, &ParseError{Format: format, Err: fmt.Errorf("%s[%d]: %w", keyEntries, i, err)}
		}
		prompt, ok := fields[keyPrompt]
		if !ok {
			return nil, &KeyLookupError{Key: keyPrompt, Index: i}
		}
		response, ok := fields[keyResponse]
		if !ok {
			return nil, &KeyLookupError{Key: keyResponse, Index: i}
		}
		doc.Entries = append(doc.Entries, types.Entry{
			Prompt:   scalarText(prompt),
			Response: scalarText(response),
		})
	}

	return doc, nil
}

// decodeObject unmarshals a JSON object into its raw members. Key matching
// is exact, unlike struct decoding.
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("expected object, got null")
	}
	return obj, nil
}

func decodeArray(data json.RawMessage) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, fmt.Errorf("expected array, got null")
	}
	return items, nil
}

// scalarText returns the string value of a JSON string, or the compact
// JSON text of any other value (numbers, booleans, null).
func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("converting YAML to JSON: %w", err)
	}
	return out, nil
}
