package testsupport

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/lccp/go-formdec/pkg/schema"
)

// MustLoadForm reads a fixture file and parses it into a Form, failing the
// test on any error so contract tests stay concise.
func MustLoadForm(t *testing.T, path string) schema.Form {
	t.Helper()

	form, err := LoadForm(path)
	if err != nil {
		t.Fatalf("load form fixture: %v", err)
	}
	return form
}

// LoadForm reads and parses a fixture without requiring testing.T, letting
// callers wire fixtures in setup functions.
func LoadForm(path string) (schema.Form, error) {
	if path == "" {
		return schema.Form{}, errors.New("testsupport: fixture path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Form{}, fmt.Errorf("testsupport: read fixture: %w", err)
	}
	form, err := schema.Parse(data)
	if err != nil {
		return schema.Form{}, fmt.Errorf("testsupport: parse fixture: %w", err)
	}
	return form, nil
}

// MustParseForm parses an inline definition, failing the test on error.
func MustParseForm(t *testing.T, raw string) schema.Form {
	t.Helper()

	form, err := schema.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return form
}
