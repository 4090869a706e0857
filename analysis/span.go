package analysis

import "fmt"

// SpanData represents a source location as byte offsets and 1-based line/column coordinates
type SpanData struct {
	FileName  string `json:"file_name"`
	ByteStart uint32 `json:"byte_start"`
	ByteEnd   uint32 `json:"byte_end"`
	LineStart uint32 `json:"line_start"`
	LineEnd   uint32 `json:"line_end"`
	// Character offset.
	ColumnStart uint32 `json:"column_start"`
	ColumnEnd   uint32 `json:"column_end"`
}

// Len returns span byte length
func (s SpanData) Len() uint32 {
	if s.ByteEnd < s.ByteStart {
		return 0
	}
	return s.ByteEnd - s.ByteStart
}

// Valid reports whether the span end is not before its start.
// Zero-length spans are valid.
func (s SpanData) Valid() bool {
	if s.ByteStart > s.ByteEnd {
		return false
	}
	if s.LineStart > s.LineEnd {
		return false
	}
	if s.LineStart == s.LineEnd && s.ColumnStart > s.ColumnEnd {
		return false
	}
	return true
}

// Contains reports whether other lies within s in the same file
func (s SpanData) Contains(other SpanData) bool {
	return s.FileName == other.FileName && s.ByteStart <= other.ByteStart && other.ByteEnd <= s.ByteEnd
}

// String renders file:line:column-line:column
func (s SpanData) String() string {
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.FileName, s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd)
}
