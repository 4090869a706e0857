package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/rlsdata/analysis"
)

// Csv record types, the first column of every row
const (
	RecordPrelude       = "prelude"
	RecordExternalCrate = "external_crate"
	RecordImport        = "import"
	RecordDef           = "def"
	RecordRef           = "ref"
	RecordMacroRef      = "macro_ref"
	RecordRelation      = "relation"
)

// encodeCSV flattens a document into one row per record; it does not round-trip
func encodeCSV(a *analysis.Analysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	var rows [][]string
	if p := a.Prelude; p != nil {
		rows = append(rows, []string{RecordPrelude, p.CrateName, p.CrateRoot, p.Span.String()})
		for _, c := range p.ExternalCrates {
			rows = append(rows, []string{RecordExternalCrate, c.Name, u32(c.Num), c.FileName})
		}
	}
	for _, imp := range a.Imports {
		rows = append(rows, []string{RecordImport, imp.Kind.String(), optionalId(imp.RefId), imp.Span.String(), imp.Name, imp.Value})
	}
	for _, def := range a.Defs {
		sig := ""
		if def.Sig != nil {
			sig = def.Sig.Text
		}
		rows = append(rows, []string{
			RecordDef,
			def.Kind.String(),
			def.Id.String(),
			def.Span.String(),
			def.Name,
			def.Qualname,
			def.Value,
			optionalId(def.Parent),
			ids(def.Children),
			optionalId(def.DeclId),
			def.Docs,
			sig,
			attributes(def.Attributes),
		})
	}
	for _, ref := range a.Refs {
		rows = append(rows, []string{RecordRef, ref.Kind.String(), ref.Span.String(), ref.RefId.String()})
	}
	for _, macro := range a.MacroRefs {
		rows = append(rows, []string{RecordMacroRef, macro.Span.String(), macro.Qualname, macro.CalleeSpan.String()})
	}
	for _, rel := range a.Relations {
		rows = append(rows, []string{RecordRelation, rel.Span.String(), rel.Kind.String(), rel.From.String(), rel.To.String()})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

func u32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func optionalId(id *analysis.Id) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func ids(items []analysis.Id) string {
	var parts = make([]string, len(items))
	for i, id := range items {
		parts[i] = id.String()
	}
	return strings.Join(parts, " ")
}

func attributes(items []analysis.Attribute) string {
	var parts = make([]string, len(items))
	for i, attr := range items {
		parts[i] = attr.Value
	}
	return strings.Join(parts, "\n")
}
