package schema

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source identifies where a form definition originated so callers can load
// from files or pre-fetched payloads without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindBytes SourceKind = "bytes"
)

type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type bytesSource struct {
	name string
}

func (s bytesSource) Kind() SourceKind { return SourceKindBytes }
func (s bytesSource) Location() string { return s.name }

// SourceFromBytes returns a Source for an in-memory payload. The name is
// informational and shows up in diagnostics only.
func SourceFromBytes(name string) Source {
	return bytesSource{name: name}
}

// Document wraps a raw form-definition payload together with its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}
	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source { return d.source }

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte { return append([]byte(nil), d.raw...) }

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// ParseDocument decodes a Document into a Form. Documents whose location ends
// in .yaml or .yml are converted from YAML first; everything else is treated
// as JSON.
func ParseDocument(doc Document) (Form, error) {
	raw := doc.Raw()
	if isYAMLLocation(doc.Location()) {
		converted, err := yamlToJSON(raw)
		if err != nil {
			return Form{}, &ParseError{cause: err}
		}
		raw = converted
	}
	return Parse(raw)
}

func isYAMLLocation(location string) bool {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// yamlToJSON converts a YAML document to JSON so the permissive JSON parser
// remains the single decoding path.
func yamlToJSON(raw []byte) ([]byte, error) {
	var decoded map[string]any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("convert yaml document: %w", err)
	}
	out, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("encode yaml document as json: %w", err)
	}
	return out, nil
}
