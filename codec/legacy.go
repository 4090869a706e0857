package codec

import (
	"fmt"

	"github.com/viant/rlsdata/analysis"
	"github.com/viant/rlsdata/version"
)

// legacyAnalysis mirrors analysis.Analysis in the Legacy schema shape
type legacyAnalysis struct {
	Kind      analysis.Format            `json:"kind"`
	Prelude   *analysis.CratePreludeData `json:"prelude"`
	Imports   []analysis.Import          `json:"imports"`
	Defs      []legacyDef                `json:"defs"`
	Refs      []analysis.Ref             `json:"refs"`
	MacroRefs []analysis.MacroRef        `json:"macro_refs"`
	Relations []analysis.Relation        `json:"relations"`
}

// legacyDef is analysis.Def without parent and attributes
type legacyDef struct {
	Kind     analysis.DefKind    `json:"kind"`
	Id       analysis.Id         `json:"id"`
	Span     analysis.SpanData   `json:"span"`
	Name     string              `json:"name"`
	Qualname string              `json:"qualname"`
	Value    string              `json:"value"`
	Children []analysis.Id       `json:"children"`
	DeclId   *analysis.Id        `json:"decl_id"`
	Docs     string              `json:"docs"`
	Sig      *analysis.Signature `json:"sig"`
}

func toLegacy(a *analysis.Analysis, caps version.Caps) (*legacyAnalysis, error) {
	result := &legacyAnalysis{
		Kind:      a.Kind,
		Prelude:   a.Prelude,
		Imports:   a.Imports,
		Refs:      a.Refs,
		MacroRefs: a.MacroRefs,
		Relations: a.Relations,
		Defs:      make([]legacyDef, len(a.Defs)),
	}
	for i, def := range a.Defs {
		if def.Kind == analysis.DefUnion && !caps.Union {
			return nil, fmt.Errorf("defs[%d].kind %v: %w", i, def.Kind, ErrUnsupportedFeature)
		}
		result.Defs[i] = legacyDef{
			Kind:     def.Kind,
			Id:       def.Id,
			Span:     def.Span,
			Name:     def.Name,
			Qualname: def.Qualname,
			Value:    def.Value,
			Children: def.Children,
			DeclId:   def.DeclId,
			Docs:     def.Docs,
			Sig:      def.Sig,
		}
	}
	return result, nil
}
