package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// Id identifies a declaration across the whole compiled program:
// Krate is the unit index (0 for the unit the document describes),
// Index is local to that unit.
type Id struct {
	Krate uint32 `json:"krate"`
	Index uint32 `json:"index"`
}

// IsLocal reports whether the id belongs to the unit described by the document
func (i Id) IsLocal() bool {
	return i.Krate == 0
}

// String renders the id as krate:index
func (i Id) String() string {
	return strconv.FormatUint(uint64(i.Krate), 10) + ":" + strconv.FormatUint(uint64(i.Index), 10)
}

// ParseId parses krate:index text produced by Id.String
func ParseId(text string) (Id, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return Id{}, fmt.Errorf("invalid id %q: expected krate:index", text)
	}
	krate, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Id{}, fmt.Errorf("invalid id %q krate: %w", text, err)
	}
	index, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Id{}, fmt.Errorf("invalid id %q index: %w", text, err)
	}
	return Id{Krate: uint32(krate), Index: uint32(index)}, nil
}
