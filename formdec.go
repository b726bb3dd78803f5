// Package formdec turns JSON form definitions into HTML fragments with an
// embedded conditional-visibility evaluator. The root package exposes the
// simplest entry points; pkg/schema and pkg/compile carry the full surface.
package formdec

import (
	"github.com/lccp/go-formdec/pkg/compile"
	"github.com/lccp/go-formdec/pkg/schema"
)

// Result is the compile outcome, re-exported for callers that only import
// the root package.
type Result = compile.Result

// Option configures the underlying compiler.
type Option = compile.Option

// WithLogger, WithFormClass and WithSubmitLabel re-export the compiler
// options for root-package callers.
var (
	WithLogger      = compile.WithLogger
	WithFormClass   = compile.WithFormClass
	WithSubmitLabel = compile.WithSubmitLabel
)

// Decode parses a raw JSON form definition and compiles it. The only error
// is a schema.ParseError for input that is not a JSON object; per-field
// problems degrade inside the compile instead of failing it.
func Decode(raw []byte, options ...Option) (Result, error) {
	form, err := schema.Parse(raw)
	if err != nil {
		return Result{}, err
	}
	return compile.New(options...).Compile(form), nil
}

// DecodeDocument decodes a wrapped document, honouring YAML sources.
func DecodeDocument(doc schema.Document, options ...Option) (Result, error) {
	form, err := schema.ParseDocument(doc)
	if err != nil {
		return Result{}, err
	}
	return compile.New(options...).Compile(form), nil
}

// DecodeHTML is the fail-closed convenience used by presentation callers:
// malformed input yields an empty fragment rather than an error.
func DecodeHTML(raw []byte, options ...Option) string {
	result, err := Decode(raw, options...)
	if err != nil {
		return ""
	}
	return result.HTML
}
