// Package index resolves identifiers within a single save-analysis document.
//
// Ids that do not name a def of the document are treated as unresolved:
// lookups report false and traversals skip them.
package index

import (
	"github.com/viant/rlsdata/analysis"
)

// Index represents an id-indexed view over one document, built once and read-only afterwards
type Index struct {
	analysis *analysis.Analysis
	defMap   map[analysis.Id]int   // Map of defs for quick lookup, first occurrence wins
	refMap   map[analysis.Id][]int // Map of ref positions per referenced id
}

// New indexes the defs and refs of a
func New(a *analysis.Analysis) *Index {
	if a == nil {
		a = analysis.New()
	}
	ret := &Index{
		analysis: a,
		defMap:   make(map[analysis.Id]int, len(a.Defs)),
		refMap:   make(map[analysis.Id][]int),
	}
	for i := range a.Defs {
		if _, ok := ret.defMap[a.Defs[i].Id]; !ok {
			ret.defMap[a.Defs[i].Id] = i
		}
	}
	for i := range a.Refs {
		ret.refMap[a.Refs[i].RefId] = append(ret.refMap[a.Refs[i].RefId], i)
	}
	return ret
}

// Analysis returns the indexed document
func (x *Index) Analysis() *analysis.Analysis {
	return x.analysis
}

// Def retrieves a def by id
func (x *Index) Def(id analysis.Id) (*analysis.Def, bool) {
	idx, ok := x.defMap[id]
	if !ok {
		return nil, false
	}
	return &x.analysis.Defs[idx], true
}

// Resolve looks up an optional id
func (x *Index) Resolve(id *analysis.Id) (*analysis.Def, bool) {
	if id == nil {
		return nil, false
	}
	return x.Def(*id)
}

// Parent returns the def named by the def's parent
func (x *Index) Parent(id analysis.Id) (*analysis.Def, bool) {
	def, ok := x.Def(id)
	if !ok {
		return nil, false
	}
	return x.Resolve(def.Parent)
}

// Children returns resolved children of a def in declaration order
func (x *Index) Children(id analysis.Id) []*analysis.Def {
	def, ok := x.Def(id)
	if !ok {
		return nil
	}
	var result []*analysis.Def
	for _, childId := range def.Children {
		if child, ok := x.Def(childId); ok {
			result = append(result, child)
		}
	}
	return result
}

// Roots returns defs without a resolvable parent
func (x *Index) Roots() []*analysis.Def {
	var result []*analysis.Def
	for i := range x.analysis.Defs {
		def := &x.analysis.Defs[i]
		if _, ok := x.Resolve(def.Parent); !ok {
			result = append(result, def)
		}
	}
	return result
}

// RefsTo returns use-sites naming id
func (x *Index) RefsTo(id analysis.Id) []analysis.Ref {
	positions := x.refMap[id]
	if len(positions) == 0 {
		return nil
	}
	result := make([]analysis.Ref, len(positions))
	for i, pos := range positions {
		result[i] = x.analysis.Refs[pos]
	}
	return result
}

// Implementations returns ids of declarations with an Impl relation to id
func (x *Index) Implementations(id analysis.Id) []analysis.Id {
	return x.sources(id, analysis.RelationImpl)
}

// Implemented returns ids that id has an Impl relation to
func (x *Index) Implemented(id analysis.Id) []analysis.Id {
	return x.targets(id, analysis.RelationImpl)
}

// SuperTraits returns ids of traits id extends
func (x *Index) SuperTraits(id analysis.Id) []analysis.Id {
	return x.targets(id, analysis.RelationSuperTrait)
}

// SubTraits returns ids of traits extending id
func (x *Index) SubTraits(id analysis.Id) []analysis.Id {
	return x.sources(id, analysis.RelationSuperTrait)
}

func (x *Index) sources(to analysis.Id, kind analysis.RelationKind) []analysis.Id {
	var result []analysis.Id
	for _, rel := range x.analysis.Relations {
		if rel.Kind == kind && rel.To == to {
			result = append(result, rel.From)
		}
	}
	return result
}

func (x *Index) targets(from analysis.Id, kind analysis.RelationKind) []analysis.Id {
	var result []analysis.Id
	for _, rel := range x.analysis.Relations {
		if rel.Kind == kind && rel.From == from {
			result = append(result, rel.To)
		}
	}
	return result
}

// Crate returns the name of the unit owning id: the prelude crate name for
// local ids, the external crate table entry otherwise
func (x *Index) Crate(id analysis.Id) (string, bool) {
	prelude := x.analysis.Prelude
	if prelude == nil {
		return "", false
	}
	if id.IsLocal() {
		return prelude.CrateName, true
	}
	if crate := prelude.ExternalCrate(id.Krate); crate != nil {
		return crate.Name, true
	}
	return "", false
}

// Qualname returns the qualified name of a resolved def
func (x *Index) Qualname(id analysis.Id) (string, bool) {
	def, ok := x.Def(id)
	if !ok {
		return "", false
	}
	return def.Qualname, true
}
