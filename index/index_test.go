package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/rlsdata/analysis"
	"github.com/viant/rlsdata/internal/fixture"
)

func names(defs []*analysis.Def) []string {
	var result []string
	for _, def := range defs {
		result = append(result, def.Name)
	}
	return result
}

func TestIndex_Lookup(t *testing.T) {
	x := New(fixture.Crate())

	def, ok := x.Def(analysis.Id{Index: 2})
	require.True(t, ok)
	assert.Equal(t, "Point", def.Name)

	_, ok = x.Def(analysis.Id{Index: 99})
	assert.False(t, ok, "unknown ids are unresolved, not errors")

	_, ok = x.Resolve(nil)
	assert.False(t, ok)

	parent, ok := x.Parent(analysis.Id{Index: 3})
	require.True(t, ok)
	assert.Equal(t, "Point", parent.Name)

	_, ok = x.Parent(analysis.Id{Index: 1})
	assert.False(t, ok)

	assert.Equal(t, []string{"Point"}, names(x.Children(analysis.Id{Index: 1})))
	assert.Equal(t, []string{"demo", "Shape", "Area", "Bits"}, names(x.Roots()))

	qualname, ok := x.Qualname(analysis.Id{Index: 6})
	assert.True(t, ok)
	assert.Equal(t, "demo::Shape::area", qualname)
}

func TestIndex_RefsAndRelations(t *testing.T) {
	x := New(fixture.Crate())

	refs := x.RefsTo(analysis.Id{Index: 2})
	require.Len(t, refs, 1)
	assert.Equal(t, analysis.RefType, refs[0].Kind)
	assert.Nil(t, x.RefsTo(analysis.Id{Index: 7}))

	assert.Equal(t, []analysis.Id{{Index: 2}}, x.Implementations(analysis.Id{Index: 4}))
	assert.Equal(t, []analysis.Id{{Index: 4}}, x.Implemented(analysis.Id{Index: 2}))
	assert.Equal(t, []analysis.Id{{Index: 5}}, x.SuperTraits(analysis.Id{Index: 4}))
	assert.Equal(t, []analysis.Id{{Index: 4}}, x.SubTraits(analysis.Id{Index: 5}))
	assert.Nil(t, x.SuperTraits(analysis.Id{Index: 5}))
}

func TestIndex_Crate(t *testing.T) {
	x := New(fixture.Crate())
	tests := []struct {
		description string
		id          analysis.Id
		expected    string
		found       bool
	}{
		{description: "local id", id: analysis.Id{Index: 2}, expected: "demo", found: true},
		{description: "std id", id: analysis.Id{Krate: 1, Index: 10}, expected: "std", found: true},
		{description: "core id", id: analysis.Id{Krate: 2, Index: 3}, expected: "core", found: true},
		{description: "unknown crate", id: analysis.Id{Krate: 5, Index: 3}},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, ok := x.Crate(tc.id)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, actual)
		})
	}

	_, ok := New(analysis.New()).Crate(analysis.Id{})
	assert.False(t, ok, "no prelude")
}

func TestIndex_DuplicateFirstWins(t *testing.T) {
	a := fixture.OneFunctionCrate()
	dup := a.Defs[0]
	dup.Name = "shadow"
	a.Defs = append(a.Defs, dup)
	x := New(a)
	def, ok := x.Def(dup.Id)
	require.True(t, ok)
	assert.Equal(t, "main", def.Name)
}

func TestIndex_Nil(t *testing.T) {
	x := New(nil)
	_, ok := x.Def(analysis.Id{})
	assert.False(t, ok)
	assert.Empty(t, x.Check())
}

func TestIndex_Check(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(a *analysis.Analysis)
		expect      []IssueKind
		expectPaths []string
	}{
		{
			description: "consistent document",
			mutate:      func(a *analysis.Analysis) {},
		},
		{
			description: "parent does not list child",
			mutate: func(a *analysis.Analysis) {
				a.Defs[0].Children = nil
			},
			expect:      []IssueKind{MissingChild},
			expectPaths: []string{"defs[1].parent"},
		},
		{
			description: "child does not name parent",
			mutate: func(a *analysis.Analysis) {
				a.Defs[2].Parent = nil
			},
			expect:      []IssueKind{MissingParent},
			expectPaths: []string{"defs[1].children[0]"},
		},
		{
			description: "dangling local ids",
			mutate: func(a *analysis.Analysis) {
				a.Defs[4].Parent = fixture.IdPtr(0, 40)
				a.Defs[4].Children = []analysis.Id{{Index: 41}}
				a.Defs[4].DeclId = fixture.IdPtr(0, 42)
				a.Imports[0].RefId = fixture.IdPtr(0, 43)
				a.Refs[0].RefId = analysis.Id{Index: 44}
				a.Relations[0].To = analysis.Id{Index: 45}
			},
			expect:      []IssueKind{DanglingImport, DanglingParent, DanglingChild, DanglingDecl, DanglingRef, DanglingRelation},
			expectPaths: []string{"imports[0].ref_id", "defs[4].parent", "defs[4].children[0]", "defs[4].decl_id", "refs[0].ref_id", "relations[0].to"},
		},
		{
			description: "external ids are not dangling",
			mutate: func(a *analysis.Analysis) {
				a.Refs[0].RefId = analysis.Id{Krate: 2, Index: 44}
				a.Relations[0].From = analysis.Id{Krate: 9, Index: 1}
			},
		},
		{
			description: "duplicate id and invalid span",
			mutate: func(a *analysis.Analysis) {
				a.Defs[6].Id = analysis.Id{Index: 5}
				a.Refs[1].Span.ByteEnd = 0
			},
			expect:      []IssueKind{DuplicateDef, InvalidSpan},
			expectPaths: []string{"defs[6].id", "refs[1].span"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			a := fixture.Crate()
			tc.mutate(a)
			issues := New(a).Check()
			var kinds []IssueKind
			var paths []string
			for _, issue := range issues {
				kinds = append(kinds, issue.Kind)
				paths = append(paths, issue.Path)
			}
			assert.Equal(t, tc.expect, kinds)
			assert.Equal(t, tc.expectPaths, paths)
		})
	}
}
