package analysis

import "fmt"

// DefKind indicates the kind of declaration a Def represents
type DefKind uint8

const (
	// value = variant names
	DefEnum DefKind = iota
	// value = enum name + variant name + types
	DefTuple
	// value = [enum name +] name + fields
	DefStruct
	DefUnion
	// value = signature
	DefTrait
	// value = type + generics
	DefFunction
	// value = type + generics
	DefMethod
	// No id, no value.
	DefMacro
	// value = file_name
	DefMod
	// value = aliased type
	DefType
	// value = type and init expression (for all variable kinds).
	DefLocal
	DefStatic
	DefConst
	DefField
)

var defKindNames = []string{"Enum", "Tuple", "Struct", "Union", "Trait", "Function", "Method", "Macro", "Mod", "Type", "Local", "Static", "Const", "Field"}

// DefKinds returns all declaration kinds
func DefKinds() []DefKind {
	var result = make([]DefKind, len(defKindNames))
	for i := range defKindNames {
		result[i] = DefKind(i)
	}
	return result
}

func (k DefKind) String() string {
	return enumName(defKindNames, int(k))
}

func (k DefKind) MarshalText() ([]byte, error) {
	return marshalEnum(defKindNames, int(k), "DefKind")
}

func (k *DefKind) UnmarshalText(text []byte) error {
	v, err := ParseDefKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseDefKind parses a declaration kind variant name
func ParseDefKind(name string) (DefKind, error) {
	idx, err := parseEnum(defKindNames, name, "DefKind")
	return DefKind(idx), err
}

// ImportKind indicates how an import brings names into scope
type ImportKind uint8

const (
	ImportExternCrate ImportKind = iota
	ImportUse
	ImportGlobUse
)

var importKindNames = []string{"ExternCrate", "Use", "GlobUse"}

// ImportKinds returns all import kinds
func ImportKinds() []ImportKind {
	return []ImportKind{ImportExternCrate, ImportUse, ImportGlobUse}
}

func (k ImportKind) String() string {
	return enumName(importKindNames, int(k))
}

func (k ImportKind) MarshalText() ([]byte, error) {
	return marshalEnum(importKindNames, int(k), "ImportKind")
}

func (k *ImportKind) UnmarshalText(text []byte) error {
	v, err := ParseImportKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseImportKind parses an import kind variant name
func ParseImportKind(name string) (ImportKind, error) {
	idx, err := parseEnum(importKindNames, name, "ImportKind")
	return ImportKind(idx), err
}

// RefKind indicates what a use-site refers to
type RefKind uint8

const (
	RefFunction RefKind = iota
	RefMod
	RefType
	RefVariable
)

var refKindNames = []string{"Function", "Mod", "Type", "Variable"}

// RefKinds returns all reference kinds
func RefKinds() []RefKind {
	return []RefKind{RefFunction, RefMod, RefType, RefVariable}
}

func (k RefKind) String() string {
	return enumName(refKindNames, int(k))
}

func (k RefKind) MarshalText() ([]byte, error) {
	return marshalEnum(refKindNames, int(k), "RefKind")
}

func (k *RefKind) UnmarshalText(text []byte) error {
	v, err := ParseRefKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseRefKind parses a reference kind variant name
func ParseRefKind(name string) (RefKind, error) {
	idx, err := parseEnum(refKindNames, name, "RefKind")
	return RefKind(idx), err
}

// RelationKind indicates the kind of edge between two declarations
type RelationKind uint8

const (
	RelationImpl RelationKind = iota
	RelationSuperTrait
)

var relationKindNames = []string{"Impl", "SuperTrait"}

// RelationKinds returns all relation kinds
func RelationKinds() []RelationKind {
	return []RelationKind{RelationImpl, RelationSuperTrait}
}

func (k RelationKind) String() string {
	return enumName(relationKindNames, int(k))
}

func (k RelationKind) MarshalText() ([]byte, error) {
	return marshalEnum(relationKindNames, int(k), "RelationKind")
}

func (k *RelationKind) UnmarshalText(text []byte) error {
	v, err := ParseRelationKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseRelationKind parses a relation kind variant name
func ParseRelationKind(name string) (RelationKind, error) {
	idx, err := parseEnum(relationKindNames, name, "RelationKind")
	return RelationKind(idx), err
}

// UnknownVariantError reports an enumeration name or value outside the declared variants
type UnknownVariantError struct {
	Enum  string
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Enum, e.Value)
}

func enumName(names []string, idx int) string {
	if idx < 0 || idx >= len(names) {
		return fmt.Sprintf("<invalid %d>", idx)
	}
	return names[idx]
}

func marshalEnum(names []string, idx int, enum string) ([]byte, error) {
	if idx < 0 || idx >= len(names) {
		return nil, &UnknownVariantError{Enum: enum, Value: fmt.Sprint(idx)}
	}
	return []byte(names[idx]), nil
}

func parseEnum(names []string, name string, enum string) (int, error) {
	for i, candidate := range names {
		if candidate == name {
			return i, nil
		}
	}
	return 0, &UnknownVariantError{Enum: enum, Value: name}
}
