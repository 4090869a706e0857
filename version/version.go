// Package version describes save-analysis schema versions and the capabilities
// each one carries, and upgrades legacy documents to the canonical shape.
package version

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is a semantic version of the schema (with the leading "v")
type Version string

const (
	// Legacy schema: no Union def kind, no parent or attributes on defs
	Legacy Version = "v0.1.0"
	// Current is the canonical schema
	Current Version = "v0.2.0"
)

// Caps lists schema features available in a version
type Caps struct {
	Union      bool
	Parent     bool
	Attributes bool
}

// Full reports whether all canonical features are available
func (c Caps) Full() bool {
	return c.Union && c.Parent && c.Attributes
}

// Capabilities returns features supported by v
func Capabilities(v Version) (Caps, error) {
	if !v.Valid() {
		return Caps{}, fmt.Errorf("invalid schema version %q", v)
	}
	canonical := v.Compare(Current) >= 0
	return Caps{Union: canonical, Parent: canonical, Attributes: canonical}, nil
}

// Valid reports whether v is a valid semantic version
func (v Version) Valid() bool {
	return semver.IsValid(string(v))
}

// Compare returns -1, 0 or +1 as v is older, equal or newer than other
func (v Version) Compare(other Version) int {
	return semver.Compare(string(v), string(other))
}

// Parse validates text as a schema version; a missing "v" prefix is accepted
func Parse(text string) (Version, error) {
	if text != "" && text[0] != 'v' {
		text = "v" + text
	}
	v := Version(semver.Canonical(text))
	if !v.Valid() {
		return "", fmt.Errorf("invalid schema version %q", text)
	}
	return v, nil
}
