// Package analysis defines the save-analysis data model a compiler front-end
// emits for one compiled unit: crate metadata, imports, declarations,
// use-sites, macro invocations and relations between declarations.
//
// Records never point at each other; every cross-record link is an Id value,
// so a document is a flat graph that can be serialised as is.
package analysis

// Analysis is the document describing one compiled unit.
// Empty sequences are canonically nil: they encode as [] and decode back to nil,
// so a producer's empty non-nil slice round-trips to nil.
type Analysis struct {
	Kind      Format            `json:"kind"`
	Prelude   *CratePreludeData `json:"prelude"`
	Imports   []Import          `json:"imports"`
	Defs      []Def             `json:"defs"`
	Refs      []Ref             `json:"refs"`
	MacroRefs []MacroRef        `json:"macro_refs"`
	Relations []Relation        `json:"relations"`
}

// New creates an empty Json document
func New() *Analysis {
	return &Analysis{Kind: Json}
}

// CratePreludeData describes the compiled unit and the units it depends on
type CratePreludeData struct {
	CrateName      string              `json:"crate_name"`
	CrateRoot      string              `json:"crate_root"`
	ExternalCrates []ExternalCrateData `json:"external_crates"`
	Span           SpanData            `json:"span"`
}

// ExternalCrate returns the external crate registered under num
func (p *CratePreludeData) ExternalCrate(num uint32) *ExternalCrateData {
	if p == nil {
		return nil
	}
	for i := range p.ExternalCrates {
		if p.ExternalCrates[i].Num == num {
			return &p.ExternalCrates[i]
		}
	}
	return nil
}

// ExternalCrateData represents an external crate in the prelude of a crate.
// Num is the crate slot used as Id.Krate at use-sites.
type ExternalCrateData struct {
	Name     string `json:"name"`
	Num      uint32 `json:"num"`
	FileName string `json:"file_name"`
}
