package index

import "github.com/dataflex-tools/dflsp/internal/syntax"

// MethodKind distinguishes the three method-lookup buckets a method name can
// land in. Send-statements resolve against Procedure, Get against Function,
// Set against Set — the mapping reference resolution is fixed to.
type MethodKind int

const (
	MethodProcedure MethodKind = iota
	MethodFunction
	MethodSet
)

func (k MethodKind) String() string {
	switch k {
	case MethodProcedure:
		return "Procedure"
	case MethodFunction:
		return "Function"
	case MethodSet:
		return "Set"
	default:
		return "Unknown"
	}
}

// SymbolVariant tags IndexSymbol's three shapes. Dispatch on this tag
// replaces an inheritance hierarchy.
type SymbolVariant int

const (
	VariantClass SymbolVariant = iota
	VariantMethod
	VariantProperty
)

// Location places a symbol inside a specific indexed file.
type Location struct {
	File  IndexFileRef
	Range syntax.Range
}

// IndexSymbol is a tagged variant: a Class (which nests its members), a
// Method (tagged with its kind), or a Property.
//
// Every Method/Property reachable from a Class's Members has Path equal to
// [class.Name, member.Name] — callers that build one by hand must preserve
// that invariant (see NewMethodSymbol/NewPropertySymbol).
type IndexSymbol struct {
	Variant    SymbolVariant
	Location   Location
	Name       SymbolName   // Class only
	Superclass SymbolName   // Class only
	Path       SymbolPath   // Method/Property only; Class uses [Name] internally for lookup refs
	Kind       MethodKind   // Method only
	Members    []*IndexSymbol // Class only; preserves source order
	DocComment string       // supplemented: see original_source/src/index/index_symbol.rs
}

// NewClassSymbol builds a Class variant with no members; callers append to
// Members afterwards.
func NewClassSymbol(name, superclass SymbolName, loc Location, doc string) *IndexSymbol {
	return &IndexSymbol{
		Variant:    VariantClass,
		Location:   loc,
		Name:       name,
		Superclass: superclass,
		DocComment: doc,
	}
}

// NewMethodSymbol builds a Method variant. path must be [class, method].
func NewMethodSymbol(path SymbolPath, kind MethodKind, loc Location, doc string) *IndexSymbol {
	if len(path) == 0 {
		panic("index: empty SymbolPath for method symbol")
	}
	return &IndexSymbol{
		Variant:    VariantMethod,
		Location:   loc,
		Path:       path,
		Kind:       kind,
		DocComment: doc,
	}
}

// NewPropertySymbol builds a Property variant. path must be [class, property].
func NewPropertySymbol(path SymbolPath, loc Location, doc string) *IndexSymbol {
	if len(path) == 0 {
		panic("index: empty SymbolPath for property symbol")
	}
	return &IndexSymbol{
		Variant:    VariantProperty,
		Location:   loc,
		Path:       path,
		DocComment: doc,
	}
}

// UnqualifiedName returns the name this symbol is keyed by in its owning
// lookup table (or, for a Class, in class_lookup).
func (s *IndexSymbol) UnqualifiedName() SymbolName {
	if s.Variant == VariantClass {
		return s.Name
	}
	return s.Path.Name()
}

// IsMatching is shallow equality: same variant and same fully-qualified
// path/name. Member lists are deliberately excluded — the Index File Diff
// compares those separately so a rename can be told apart from a
// member-only edit.
func (s *IndexSymbol) IsMatching(other *IndexSymbol) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Variant != other.Variant {
		return false
	}
	switch s.Variant {
	case VariantClass:
		return s.Name == other.Name
	case VariantMethod:
		return s.Path.Equal(other.Path) && s.Kind == other.Kind
	case VariantProperty:
		return s.Path.Equal(other.Path)
	default:
		return false
	}
}
