package analysis

// Import represents an extern crate or use statement.
// RefId is nil when the import target is unresolved.
type Import struct {
	Kind  ImportKind `json:"kind"`
	RefId *Id        `json:"ref_id"`
	Span  SpanData   `json:"span"`
	Name  string     `json:"name"`
	Value string     `json:"value"`
}

// Ref represents a use-site of a declaration
type Ref struct {
	Kind  RefKind  `json:"kind"`
	Span  SpanData `json:"span"`
	RefId Id       `json:"ref_id"`
}

// MacroRef represents a macro invocation site and the macro definition site
type MacroRef struct {
	Span       SpanData `json:"span"`
	Qualname   string   `json:"qualname"`
	CalleeSpan SpanData `json:"callee_span"`
}

// Relation represents a directed edge between two declarations
type Relation struct {
	Span SpanData     `json:"span"`
	Kind RelationKind `json:"kind"`
	From Id           `json:"from"`
	To   Id           `json:"to"`
}
