package cli

import (
	"fmt"

	"github.com/viant/rlsdata/index"
	"github.com/viant/rlsdata/store"
)

// Summary describes a loaded document
type Summary struct {
	URL            string         `yaml:"url"`
	Crate          string         `yaml:"crate,omitempty"`
	Kind           string         `yaml:"kind"`
	Version        string         `yaml:"version"`
	Fingerprint    string         `yaml:"fingerprint"`
	ExternalCrates int            `yaml:"externalCrates"`
	Imports        int            `yaml:"imports"`
	Defs           map[string]int `yaml:"defs,omitempty"`
	Refs           int            `yaml:"refs"`
	MacroRefs      int            `yaml:"macroRefs"`
	Relations      int            `yaml:"relations"`
	Issues         []index.Issue  `yaml:"issues,omitempty"`
}

// NewSummary summarises a document
func NewSummary(doc *store.Document) *Summary {
	a := doc.Analysis
	ret := &Summary{
		URL:         doc.URL,
		Kind:        a.Kind.String(),
		Version:     string(doc.Version),
		Fingerprint: fmt.Sprintf("%016x", doc.Fingerprint),
		Imports:     len(a.Imports),
		Refs:        len(a.Refs),
		MacroRefs:   len(a.MacroRefs),
		Relations:   len(a.Relations),
		Issues:      index.New(a).Check(),
	}
	if a.Prelude != nil {
		ret.Crate = a.Prelude.CrateName
		ret.ExternalCrates = len(a.Prelude.ExternalCrates)
	}
	if len(a.Defs) > 0 {
		ret.Defs = map[string]int{}
		for _, def := range a.Defs {
			ret.Defs[def.Kind.String()]++
		}
	}
	return ret
}
