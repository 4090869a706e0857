package index

import (
	"fmt"

	"github.com/viant/rlsdata/analysis"
)

// IssueKind classifies a consistency issue
type IssueKind string

const (
	DuplicateDef     IssueKind = "DUPLICATE_DEF"
	DanglingParent   IssueKind = "DANGLING_PARENT"
	DanglingChild    IssueKind = "DANGLING_CHILD"
	DanglingDecl     IssueKind = "DANGLING_DECL"
	DanglingImport   IssueKind = "DANGLING_IMPORT"
	DanglingRef      IssueKind = "DANGLING_REF"
	DanglingRelation IssueKind = "DANGLING_RELATION"
	MissingChild     IssueKind = "MISSING_CHILD"  // parent does not list the child
	MissingParent    IssueKind = "MISSING_PARENT" // child does not name the parent
	InvalidSpan      IssueKind = "INVALID_SPAN"
)

// Issue represents a semantic inconsistency of a document.
// Issues never prevent a document from being used.
type Issue struct {
	Kind    IssueKind   `yaml:"kind"`
	Path    string      `yaml:"path"`
	Id      analysis.Id `yaml:"-"`
	Message string      `yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind, i.Path, i.Message)
}

// Check reports dangling ids, parent/children asymmetry, duplicate def ids
// and invalid spans. Ids of other units are only reported when the
// document has no way to resolve them, that is for local ids.
func (x *Index) Check() []Issue {
	var issues []Issue
	a := x.analysis
	report := func(kind IssueKind, path string, id analysis.Id, format string, args ...interface{}) {
		issues = append(issues, Issue{Kind: kind, Path: path, Id: id, Message: fmt.Sprintf(format, args...)})
	}
	if a.Prelude != nil && !a.Prelude.Span.Valid() {
		report(InvalidSpan, "prelude.span", analysis.Id{}, "%v", a.Prelude.Span)
	}
	for i, imp := range a.Imports {
		path := fmt.Sprintf("imports[%d]", i)
		if imp.RefId != nil && x.dangling(*imp.RefId) {
			report(DanglingImport, path+".ref_id", *imp.RefId, "%v does not resolve", *imp.RefId)
		}
		x.checkSpan(path, imp.Span, report)
	}
	for i := range a.Defs {
		def := &a.Defs[i]
		path := fmt.Sprintf("defs[%d]", i)
		if first := x.defMap[def.Id]; first != i {
			report(DuplicateDef, path+".id", def.Id, "%v first declared at defs[%d]", def.Id, first)
		}
		x.checkSpan(path, def.Span, report)
		if def.Parent != nil {
			if parent, ok := x.Def(*def.Parent); ok {
				if !parent.HasChild(def.Id) {
					report(MissingChild, path+".parent", def.Id, "parent %v does not list %v as child", *def.Parent, def.Id)
				}
			} else if x.dangling(*def.Parent) {
				report(DanglingParent, path+".parent", *def.Parent, "%v does not resolve", *def.Parent)
			}
		}
		for j, childId := range def.Children {
			child, ok := x.Def(childId)
			if !ok {
				if x.dangling(childId) {
					report(DanglingChild, fmt.Sprintf("%s.children[%d]", path, j), childId, "%v does not resolve", childId)
				}
				continue
			}
			if child.Parent == nil || *child.Parent != def.Id {
				report(MissingParent, fmt.Sprintf("%s.children[%d]", path, j), childId, "child %v does not name %v as parent", childId, def.Id)
			}
		}
		if def.DeclId != nil && x.dangling(*def.DeclId) {
			report(DanglingDecl, path+".decl_id", *def.DeclId, "%v does not resolve", *def.DeclId)
		}
	}
	for i, ref := range a.Refs {
		path := fmt.Sprintf("refs[%d]", i)
		if x.dangling(ref.RefId) {
			report(DanglingRef, path+".ref_id", ref.RefId, "%v does not resolve", ref.RefId)
		}
		x.checkSpan(path, ref.Span, report)
	}
	for i, rel := range a.Relations {
		path := fmt.Sprintf("relations[%d]", i)
		if x.dangling(rel.From) {
			report(DanglingRelation, path+".from", rel.From, "%v does not resolve", rel.From)
		}
		if x.dangling(rel.To) {
			report(DanglingRelation, path+".to", rel.To, "%v does not resolve", rel.To)
		}
	}
	return issues
}

// dangling reports a local id that names no def
func (x *Index) dangling(id analysis.Id) bool {
	if !id.IsLocal() {
		return false
	}
	_, ok := x.defMap[id]
	return !ok
}

func (x *Index) checkSpan(path string, span analysis.SpanData, report func(IssueKind, string, analysis.Id, string, ...interface{})) {
	if !span.Valid() {
		report(InvalidSpan, path+".span", analysis.Id{}, "%v", span)
	}
}
