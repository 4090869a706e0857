// Package fixture builds sample documents shared by package tests
package fixture

import "github.com/viant/rlsdata/analysis"

// Span returns a single line span in file
func Span(file string, start, end, line, column uint32) analysis.SpanData {
	return analysis.SpanData{
		FileName:    file,
		ByteStart:   start,
		ByteEnd:     end,
		LineStart:   line,
		LineEnd:     line,
		ColumnStart: column,
		ColumnEnd:   column + (end - start),
	}
}

// IdPtr returns a pointer to an id
func IdPtr(krate, index uint32) *analysis.Id {
	return &analysis.Id{Krate: krate, Index: index}
}

// OneFunctionCrate returns a document for a crate with a single main function called once
func OneFunctionCrate() *analysis.Analysis {
	a := analysis.New()
	mainId := analysis.Id{Krate: 0, Index: 1}
	a.Prelude = &analysis.CratePreludeData{
		CrateName: "crate_name",
		CrateRoot: "src",
		Span:      Span("src/main.rs", 0, 0, 1, 1),
	}
	a.Defs = append(a.Defs, analysis.Def{
		Kind:     analysis.DefFunction,
		Id:       mainId,
		Span:     Span("src/main.rs", 3, 7, 1, 4),
		Name:     "main",
		Qualname: "crate_name::main",
		Value:    "fn () -> ()",
	})
	a.Refs = append(a.Refs, analysis.Ref{
		Kind:  analysis.RefFunction,
		Span:  Span("src/main.rs", 40, 44, 3, 5),
		RefId: mainId,
	})
	return a
}

// Crate returns a document exercising every record type.
//
// Ids: 0:1 mod demo, 0:2 struct Point (child of 0:1), 0:3 field x (child of 0:2),
// 0:4 trait Shape, 0:5 trait Area (super trait of Shape), 0:6 method area
// (child of 0:4), 0:7 union Bits, 1:10 external Debug trait.
func Crate() *analysis.Analysis {
	a := analysis.New()
	a.Prelude = &analysis.CratePreludeData{
		CrateName: "demo",
		CrateRoot: "src",
		ExternalCrates: []analysis.ExternalCrateData{
			{Name: "std", Num: 1, FileName: "/rust/lib/libstd.rlib"},
			{Name: "core", Num: 2, FileName: "/rust/lib/libcore.rlib"},
		},
		Span: Span("src/lib.rs", 0, 0, 1, 1),
	}
	a.Imports = []analysis.Import{
		{Kind: analysis.ImportUse, RefId: IdPtr(1, 10), Span: Span("src/lib.rs", 4, 19, 1, 5), Name: "Debug", Value: "std::fmt::Debug"},
		{Kind: analysis.ImportGlobUse, Span: Span("src/lib.rs", 25, 39, 2, 5), Value: "std::io::*"},
		{Kind: analysis.ImportExternCrate, Span: Span("src/lib.rs", 41, 58, 3, 1), Name: "core", Value: "core"},
	}
	a.Defs = []analysis.Def{
		{
			Kind:     analysis.DefMod,
			Id:       analysis.Id{Index: 1},
			Span:     Span("src/lib.rs", 60, 64, 5, 5),
			Name:     "demo",
			Qualname: "demo",
			Value:    "src/lib.rs",
			Children: []analysis.Id{{Index: 2}},
			Docs:     "Demo crate.",
		},
		{
			Kind:     analysis.DefStruct,
			Id:       analysis.Id{Index: 2},
			Span:     Span("src/lib.rs", 80, 85, 7, 12),
			Name:     "Point",
			Qualname: "demo::Point",
			Value:    "Point { x }",
			Parent:   IdPtr(0, 1),
			Children: []analysis.Id{{Index: 3}},
			Sig: &analysis.Signature{
				Span:       Span("src/lib.rs", 69, 85, 7, 1),
				Text:       "pub struct Point<T: Debug>",
				IdentStart: 11,
				IdentEnd:   16,
				Defs:       []analysis.SigElement{{Id: analysis.Id{Index: 8}, Start: 17, End: 18}},
				Refs:       []analysis.SigElement{{Id: analysis.Id{Krate: 1, Index: 10}, Start: 20, End: 25}},
			},
			Attributes: []analysis.Attribute{
				{Value: "#[derive(Debug)]", Span: Span("src/lib.rs", 52, 68, 6, 1)},
			},
		},
		{
			Kind:     analysis.DefField,
			Id:       analysis.Id{Index: 3},
			Span:     Span("src/lib.rs", 92, 93, 8, 5),
			Name:     "x",
			Qualname: "demo::Point::x",
			Value:    "T",
			Parent:   IdPtr(0, 2),
		},
		{
			Kind:     analysis.DefTrait,
			Id:       analysis.Id{Index: 4},
			Span:     Span("src/lib.rs", 110, 115, 11, 11),
			Name:     "Shape",
			Qualname: "demo::Shape",
			Value:    "trait Shape: Area",
			Children: []analysis.Id{{Index: 6}},
		},
		{
			Kind:     analysis.DefTrait,
			Id:       analysis.Id{Index: 5},
			Span:     Span("src/lib.rs", 130, 134, 13, 11),
			Name:     "Area",
			Qualname: "demo::Area",
			Value:    "trait Area",
		},
		{
			Kind:     analysis.DefMethod,
			Id:       analysis.Id{Index: 6},
			Span:     Span("src/lib.rs", 140, 144, 14, 8),
			Name:     "area",
			Qualname: "demo::Shape::area",
			Value:    "fn (&self) -> f64",
			Parent:   IdPtr(0, 4),
			DeclId:   IdPtr(0, 6),
		},
		{
			Kind:     analysis.DefUnion,
			Id:       analysis.Id{Index: 7},
			Span:     Span("src/lib.rs", 160, 164, 16, 7),
			Name:     "Bits",
			Qualname: "demo::Bits",
			Value:    "Bits { i, f }",
		},
	}
	a.Refs = []analysis.Ref{
		{Kind: analysis.RefType, Span: Span("src/lib.rs", 200, 205, 20, 9), RefId: analysis.Id{Index: 2}},
		{Kind: analysis.RefVariable, Span: Span("src/lib.rs", 210, 211, 21, 9), RefId: analysis.Id{Index: 3}},
		{Kind: analysis.RefMod, Span: Span("src/lib.rs", 220, 224, 22, 9), RefId: analysis.Id{Index: 1}},
		{Kind: analysis.RefType, Span: Span("src/lib.rs", 230, 235, 23, 9), RefId: analysis.Id{Krate: 1, Index: 10}},
	}
	a.MacroRefs = []analysis.MacroRef{
		{Span: Span("src/lib.rs", 240, 248, 24, 5), Qualname: "std::println", CalleeSpan: Span("/rust/src/libstd/macros.rs", 900, 930, 40, 1)},
	}
	a.Relations = []analysis.Relation{
		{Span: Span("src/lib.rs", 250, 255, 25, 1), Kind: analysis.RelationImpl, From: analysis.Id{Index: 2}, To: analysis.Id{Index: 4}},
		{Span: Span("src/lib.rs", 110, 122, 11, 1), Kind: analysis.RelationSuperTrait, From: analysis.Id{Index: 4}, To: analysis.Id{Index: 5}},
	}
	return a
}
