package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/viant/rlsdata/analysis"
	"github.com/viant/rlsdata/version"
)

// Decode decodes a canonical document expected to be of the given kind.
// It stops at the first structural violation and returns a *DecodeError.
// Dangling ids are not checked; see the index package.
func Decode(data []byte, kind analysis.Format) (*analysis.Analysis, error) {
	return DecodeVersion(data, kind, version.Current)
}

// DecodeVersion decodes a document written in the shape of schema version v,
// upgrading it to the canonical shape first
func DecodeVersion(data []byte, kind analysis.Format, v version.Version) (*analysis.Analysis, error) {
	tree, err := Parse(data, kind)
	if err != nil {
		return nil, err
	}
	return DecodeTree(tree, kind, v)
}

// Parse parses JSON bytes into a document tree without schema checks.
// Numbers are kept as json.Number.
func Parse(data []byte, kind analysis.Format) (map[string]interface{}, error) {
	switch kind {
	case analysis.Json, analysis.JsonApi:
	case analysis.Csv:
		return nil, newDecodeError("", ErrUnsupportedFormat, "%v documents are export only", kind)
	default:
		return nil, newDecodeError("", ErrUnsupportedFormat, "format %d", uint8(kind))
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, newDecodeError("", ErrSyntax, "%s", err.Error())
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, newDecodeError("", ErrSyntax, "trailing data after document")
	}
	tree, ok := root.(map[string]interface{})
	if !ok {
		return nil, newDecodeError("", ErrWrongType, "expected object, got %s", typeName(root))
	}
	return tree, nil
}

// DecodeTree decodes a parsed document tree of schema version v.
// The tree is upgraded in place when v predates the canonical schema.
func DecodeTree(tree map[string]interface{}, kind analysis.Format, v version.Version) (*analysis.Analysis, error) {
	caps, err := version.Capabilities(v)
	if err != nil {
		return nil, err
	}
	if err = version.Upgrade(tree, v); err != nil {
		return nil, err
	}
	d := &decoder{caps: caps}
	return d.analysis(node{value: tree}, kind)
}

type decoder struct {
	caps version.Caps
}

func (d *decoder) analysis(root node, expected analysis.Format) (*analysis.Analysis, error) {
	fields, err := root.object()
	if err != nil {
		return nil, err
	}
	kindNode, err := fields.required("kind")
	if err != nil {
		return nil, err
	}
	kind, err := enum(kindNode, analysis.ParseFormat)
	if err != nil {
		return nil, err
	}
	if kind != expected {
		return nil, newDecodeError(kindNode.path, ErrKindMismatch, "expected %v, got %v", expected, kind)
	}
	result := &analysis.Analysis{Kind: kind}
	if prelude, ok := fields.optional("prelude"); ok {
		if result.Prelude, err = d.prelude(prelude); err != nil {
			return nil, err
		}
	}
	if result.Imports, err = list(fields, "imports", d.importRecord); err != nil {
		return nil, err
	}
	if result.Defs, err = list(fields, "defs", d.def); err != nil {
		return nil, err
	}
	if result.Refs, err = list(fields, "refs", d.ref); err != nil {
		return nil, err
	}
	if result.MacroRefs, err = list(fields, "macro_refs", d.macroRef); err != nil {
		return nil, err
	}
	if result.Relations, err = list(fields, "relations", d.relation); err != nil {
		return nil, err
	}
	return result, nil
}

func (d *decoder) prelude(n node) (*analysis.CratePreludeData, error) {
	fields, err := n.object()
	if err != nil {
		return nil, err
	}
	result := &analysis.CratePreludeData{}
	if result.CrateName, err = fields.str("crate_name"); err != nil {
		return nil, err
	}
	if result.CrateRoot, err = fields.str("crate_root"); err != nil {
		return nil, err
	}
	if result.ExternalCrates, err = list(fields, "external_crates", d.externalCrate); err != nil {
		return nil, err
	}
	if result.Span, err = d.spanField(fields, "span"); err != nil {
		return nil, err
	}
	return result, nil
}

func (d *decoder) externalCrate(n node) (analysis.ExternalCrateData, error) {
	result := analysis.ExternalCrateData{}
	fields, err := n.object()
	if err != nil {
		return result, err
	}
	if result.Name, err = fields.str("name"); err != nil {
		return result, err
	}
	if result.Num, err = fields.u32("num"); err != nil {
		return result, err
	}
	result.FileName, err = fields.str("file_name")
	return result, err
}

func (d *decoder) importRecord(n node) (analysis.Import, error) {
	result := analysis.Import{}
	fields, err := n.object()
	if err != nil {
		return result, err
	}
	if result.Kind, err = enumField(fields, "kind", analysis.ParseImportKind); err != nil {
		return result, err
	}
	if result.RefId, err = d.optionalId(fields, "ref_id"); err != nil {
		return result, err
	}
	if result.Span, err = d.spanField(fields, "span"); err != nil {
		return result, err
	}
	if result.Name, err = fields.str("name"); err != nil {
		return result, err
	}
	result.Value, err = fields.str("value")
	return result, err
}

func (d *decoder) def(n node) (analysis.Def, error) {
	result := analysis.Def{}
	fields, err := n.object()
	if err != nil {
		return result, err
	}
	kindNode, err := fields.required("kind")
	if err != nil {
		return result, err
	}
	if result.Kind, err = enum(kindNode, analysis.ParseDefKind); err != nil {
		return result, err
	}
	if result.Kind == analysis.DefUnion && !d.caps.Union {
		return result, newDecodeError(kindNode.path, ErrUnknownVariant, "Union is not part of this schema version")
	}
	if result.Id, err = d.idField(fields, "id"); err != nil {
		return result, err
	}
	if result.Span, err = d.spanField(fields, "span"); err != nil {
		return result, err
	}
	if result.Name, err = fields.str("name"); err != nil {
		return result, err
	}
	if result.Qualname, err = fields.str("qualname"); err != nil {
		return result, err
	}
	if result.Value, err = fields.str("value"); err != nil {
		return result, err
	}
	if result.Parent, err = d.optionalId(fields, "parent"); err != nil {
		return result, err
	}
	if result.Children, err = list(fields, "children", d.id); err != nil {
		return result, err
	}
	if result.DeclId, err = d.optionalId(fields, "decl_id"); err != nil {
		return result, err
	}
	if result.Docs, err = fields.str("docs"); err != nil {
		return result, err
	}
	if sig, ok := fields.optional("sig"); ok {
		if result.Sig, err = d.signature(sig); err != nil {
			return result, err
		}
	}
	result.Attributes, err = list(fields, "attributes", d.attribute)
	return result, err
}

func (d *decoder) attribute(n node) (analysis.Attribute, error) {
	result := analysis.Attribute{}
	fields, err := n.object()
	if err != nil {
		return result, err
	}
	if result.Value, err = fields.str("value"); err != nil {
		return result, err
	}
	result.Span, err = d.spanField(fields, "span")
	return result, err
}

func (d *decoder) signature(n node) (*analysis.Signature, error) {
	fields, err := n.object()
	if err != nil {
		return nil, err
	}
	result := &analysis.Signature{}
	if result.Span, err = d.spanField(fields, "span"); err != nil {
		return nil, err
	}
	if result.Text, err = fields.str("text"); err != nil {
		return nil, err
	}
	if result.IdentStart, err = fields.u32("ident_start"); err != nil {
		return nil, err
	}
	if result.IdentEnd, err = fields.u32("ident_end"); err != nil {
		return nil, err
	}
	if result.Defs, err = list(fields, "defs", d.sigElement); err != nil {
		return nil, err
	}
	if result.Refs, err = list(fields, "refs", d.sigElement); err != nil {
		return nil, err
	}
	return result, nil
}

func (d *decoder) sigElement(n node) (analysis.SigElement, error) {
	result := analysis.SigElement{}
	fields, err := n.object()
	if err != nil {
		return result, err
	}
	if result.Id, err = d.idField(fields, "id"); err != nil {
		return result, err
	}
	if result.Start, err = fields.u32("start"); err != nil {
		return result, err
	}
	result.End, err = fields.u32("end")
	return result, err
}

func (d *decoder) ref(n node) (analysis.Ref, error) {
	result := analysis.Ref{}
	fields, err := n.object()
	if err != nil {
		return result, err
	}
	if result.Kind, err = enumField(fields, "kind", analysis.ParseRefKind); err != nil {
		return result, err
	}
	if result.Span, err = d.spanField(fields, "span"); err != nil {
		return result, err
	}
	result.RefId, err = d.idField(fields, "ref_id")
	return result, err
}

func (d *decoder) macroRef(n node) (analysis.MacroRef, error) {
	result := analysis.MacroRef{}
	fields, err := n.object()
	if err != nil {
		return result, err
	}
	if result.Span, err = d.spanField(fields, "span"); err != nil {
		return result, err
	}
	if result.Qualname, err = fields.str("qualname"); err != nil {
		return result, err
	}
	result.CalleeSpan, err = d.spanField(fields, "callee_span")
	return result, err
}

func (d *decoder) relation(n node) (analysis.Relation, error) {
	result := analysis.Relation{}
	fields, err := n.object()
	if err != nil {
		return result, err
	}
	if result.Span, err = d.spanField(fields, "span"); err != nil {
		return result, err
	}
	if result.Kind, err = enumField(fields, "kind", analysis.ParseRelationKind); err != nil {
		return result, err
	}
	if result.From, err = d.idField(fields, "from"); err != nil {
		return result, err
	}
	result.To, err = d.idField(fields, "to")
	return result, err
}

func (d *decoder) id(n node) (analysis.Id, error) {
	result := analysis.Id{}
	fields, err := n.object()
	if err != nil {
		return result, err
	}
	if result.Krate, err = fields.u32("krate"); err != nil {
		return result, err
	}
	result.Index, err = fields.u32("index")
	return result, err
}

func (d *decoder) idField(fields object, name string) (analysis.Id, error) {
	n, err := fields.required(name)
	if err != nil {
		return analysis.Id{}, err
	}
	return d.id(n)
}

func (d *decoder) optionalId(fields object, name string) (*analysis.Id, error) {
	n, ok := fields.optional(name)
	if !ok {
		return nil, nil
	}
	id, err := d.id(n)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (d *decoder) spanField(fields object, name string) (analysis.SpanData, error) {
	result := analysis.SpanData{}
	n, err := fields.required(name)
	if err != nil {
		return result, err
	}
	span, err := n.object()
	if err != nil {
		return result, err
	}
	if result.FileName, err = span.str("file_name"); err != nil {
		return result, err
	}
	if result.ByteStart, err = span.u32("byte_start"); err != nil {
		return result, err
	}
	if result.ByteEnd, err = span.u32("byte_end"); err != nil {
		return result, err
	}
	if result.LineStart, err = span.u32("line_start"); err != nil {
		return result, err
	}
	if result.LineEnd, err = span.u32("line_end"); err != nil {
		return result, err
	}
	if result.ColumnStart, err = span.u32("column_start"); err != nil {
		return result, err
	}
	result.ColumnEnd, err = span.u32("column_end")
	return result, err
}

// node is a decoded JSON value with its field path
type node struct {
	path  string
	value interface{}
}

func (n node) object() (object, error) {
	fields, ok := n.value.(map[string]interface{})
	if !ok {
		return object{}, newDecodeError(n.path, ErrWrongType, "expected object, got %s", typeName(n.value))
	}
	return object{path: n.path, fields: fields}, nil
}

func (n node) child(name string) node {
	if n.path == "" {
		return node{path: name}
	}
	return node{path: n.path + "." + name}
}

type object struct {
	path   string
	fields map[string]interface{}
}

func (o object) required(name string) (node, error) {
	n := node{path: o.path}.child(name)
	value, ok := o.fields[name]
	if !ok {
		return n, newDecodeError(n.path, ErrMissingField, "")
	}
	n.value = value
	return n, nil
}

// optional returns the named field unless it is absent or null
func (o object) optional(name string) (node, bool) {
	n := node{path: o.path}.child(name)
	value, ok := o.fields[name]
	if !ok || value == nil {
		return n, false
	}
	n.value = value
	return n, true
}

func (o object) str(name string) (string, error) {
	n, err := o.required(name)
	if err != nil {
		return "", err
	}
	text, ok := n.value.(string)
	if !ok {
		return "", newDecodeError(n.path, ErrWrongType, "expected string, got %s", typeName(n.value))
	}
	return text, nil
}

func (o object) u32(name string) (uint32, error) {
	n, err := o.required(name)
	if err != nil {
		return 0, err
	}
	number, ok := n.value.(json.Number)
	if !ok {
		return 0, newDecodeError(n.path, ErrWrongType, "expected number, got %s", typeName(n.value))
	}
	text := string(number)
	value, err := strconv.ParseUint(text, 10, 32)
	if err == nil {
		return uint32(value), nil
	}
	if isIntegerLiteral(text) {
		return 0, newDecodeError(n.path, ErrOutOfRange, "%s", text)
	}
	return 0, newDecodeError(n.path, ErrWrongType, "expected unsigned integer, got %s", text)
}

func list[T any](fields object, name string, decode func(node) (T, error)) ([]T, error) {
	n, err := fields.required(name)
	if err != nil {
		return nil, err
	}
	items, ok := n.value.([]interface{})
	if !ok {
		return nil, newDecodeError(n.path, ErrWrongType, "expected array, got %s", typeName(n.value))
	}
	if len(items) == 0 {
		return nil, nil
	}
	result := make([]T, 0, len(items))
	for i, item := range items {
		value, err := decode(node{path: n.path + "[" + strconv.Itoa(i) + "]", value: item})
		if err != nil {
			return nil, err
		}
		result = append(result, value)
	}
	return result, nil
}

func enumField[T any](fields object, name string, parse func(string) (T, error)) (T, error) {
	n, err := fields.required(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return enum(n, parse)
}

func enum[T any](n node, parse func(string) (T, error)) (T, error) {
	var zero T
	text, ok := n.value.(string)
	if !ok {
		return zero, newDecodeError(n.path, ErrWrongType, "expected variant name, got %s", typeName(n.value))
	}
	value, err := parse(text)
	if err != nil {
		var unknown *analysis.UnknownVariantError
		if errors.As(err, &unknown) {
			return zero, newDecodeError(n.path, ErrUnknownVariant, "%s %q", unknown.Enum, unknown.Value)
		}
		return zero, newDecodeError(n.path, ErrUnknownVariant, "%s", err.Error())
	}
	return value, nil
}

func isIntegerLiteral(text string) bool {
	if len(text) > 0 && text[0] == '-' {
		text = text[1:]
	}
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	}
	return fmt.Sprintf("%T", value)
}
