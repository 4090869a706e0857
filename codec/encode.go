// Package codec encodes and decodes save-analysis documents.
//
// Json and JsonApi documents share one wire shape: an object keyed by the
// snake_case field names, enumerations as variant names, absent optionals
// as null and sequences always as arrays. Csv is an export only.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/rlsdata/analysis"
	"github.com/viant/rlsdata/version"
)

// Option configures encoding
type Option func(*options)

type options struct {
	prefix string
	indent string
}

// WithIndent indents JSON output
func WithIndent(prefix, indent string) Option {
	return func(o *options) {
		o.prefix = prefix
		o.indent = indent
	}
}

// Encode encodes a document in the format named by a.Kind
func Encode(a *analysis.Analysis, opts ...Option) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("encode: nil analysis")
	}
	switch a.Kind {
	case analysis.Json, analysis.JsonApi:
		return encodeJSON(normalize(a), opts)
	case analysis.Csv:
		return encodeCSV(a)
	}
	return nil, fmt.Errorf("encode kind: %w", &analysis.UnknownVariantError{Enum: "Format", Value: fmt.Sprint(uint8(a.Kind))})
}

// EncodeVersion encodes a document in the shape of schema version v.
// Values the version cannot represent (Union defs) fail with ErrUnsupportedFeature.
func EncodeVersion(a *analysis.Analysis, v version.Version, opts ...Option) ([]byte, error) {
	caps, err := version.Capabilities(v)
	if err != nil {
		return nil, err
	}
	if caps.Full() || a == nil || a.Kind == analysis.Csv {
		return Encode(a, opts...)
	}
	legacy, err := toLegacy(normalize(a), caps)
	if err != nil {
		return nil, err
	}
	return encodeJSON(legacy, opts)
}

func encodeJSON(value interface{}, opts []Option) ([]byte, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if o.indent != "" || o.prefix != "" {
		enc.SetIndent(o.prefix, o.indent)
	}
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName returns base with the format extension
func FileName(base string, f analysis.Format) string {
	ext := f.Extension()
	if strings.HasSuffix(base, ext) {
		return base
	}
	return base + ext
}

// FormatForFile returns the format matching a file extension
func FormatForFile(name string) (analysis.Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".json":
		return analysis.Json, nil
	case ".csv":
		return analysis.Csv, nil
	default:
		return 0, fmt.Errorf("unsupported file type: %q: %w", ext, ErrUnsupportedFormat)
	}
}

// normalize returns a copy of a where nil sequences are empty, so they encode as []
func normalize(a *analysis.Analysis) *analysis.Analysis {
	result := *a
	if a.Prelude != nil {
		prelude := *a.Prelude
		prelude.ExternalCrates = orEmpty(prelude.ExternalCrates)
		result.Prelude = &prelude
	}
	result.Imports = orEmpty(a.Imports)
	result.Refs = orEmpty(a.Refs)
	result.MacroRefs = orEmpty(a.MacroRefs)
	result.Relations = orEmpty(a.Relations)
	result.Defs = make([]analysis.Def, len(a.Defs))
	for i, def := range a.Defs {
		def.Children = orEmpty(def.Children)
		def.Attributes = orEmpty(def.Attributes)
		if def.Sig != nil {
			sig := *def.Sig
			sig.Defs = orEmpty(sig.Defs)
			sig.Refs = orEmpty(sig.Refs)
			def.Sig = &sig
		}
		result.Defs[i] = def
	}
	return &result
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
