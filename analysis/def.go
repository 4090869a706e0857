package analysis

// Def represents a single declaration of the compiled unit.
// Value rendering depends on Kind, see DefKind.
//
// A producer keeps Parent and Children consistent: when B.Parent is A.Id,
// A.Children lists B.Id.
type Def struct {
	Kind       DefKind     `json:"kind"`
	Id         Id          `json:"id"`
	Span       SpanData    `json:"span"`
	Name       string      `json:"name"`
	Qualname   string      `json:"qualname"`
	Value      string      `json:"value"`
	Parent     *Id         `json:"parent"`
	Children   []Id        `json:"children"`
	DeclId     *Id         `json:"decl_id"`
	Docs       string      `json:"docs"`
	Sig        *Signature  `json:"sig"`
	Attributes []Attribute `json:"attributes"`
}

// HasChild reports whether id is listed as a child
func (d *Def) HasChild(id Id) bool {
	for _, child := range d.Children {
		if child == id {
			return true
		}
	}
	return false
}

// Attribute represents a rendered attribute attached to a declaration
type Attribute struct {
	Value string   `json:"value"`
	Span  SpanData `json:"span"`
}

// Signature represents a rendered declaration header.
// IdentStart and IdentEnd locate the declared name within Text; Defs and
// Refs locate names declared or referenced within it.
type Signature struct {
	Span       SpanData     `json:"span"`
	Text       string       `json:"text"`
	IdentStart uint32       `json:"ident_start"`
	IdentEnd   uint32       `json:"ident_end"`
	Defs       []SigElement `json:"defs"`
	Refs       []SigElement `json:"refs"`
}

// Ident returns the declared name slice of Text, or "" when offsets fall outside it
func (s *Signature) Ident() string {
	return s.slice(s.IdentStart, s.IdentEnd)
}

// Element returns the Text slice an element points at, or "" when offsets fall outside it
func (s *Signature) Element(e SigElement) string {
	return s.slice(e.Start, e.End)
}

func (s *Signature) slice(start, end uint32) string {
	if start > end || int(end) > len(s.Text) {
		return ""
	}
	return s.Text[start:end]
}

// SigElement locates a name within Signature.Text by byte offsets
type SigElement struct {
	Id    Id     `json:"id"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}
