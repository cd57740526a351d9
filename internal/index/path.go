// Package index implements the workspace symbol index: the per-file symbol
// tree (IndexFile), the structural diff between two such trees, and the
// name-keyed lookup tables those diffs are applied to. It is grounded on
// original_source/src/index/*.rs for the exact algorithms and on
// bufbuild-buf's buflsp/workspace.go for the atomic-replace-then-diff update
// discipline.
package index

import "strings"

// SymbolName is an opaque identifier. Equality is case-sensitive: the
// target language treats context keywords ("is", "a", "send", ...)
// case-insensitively but this index deliberately does not fold identifier
// case: names are stored and looked up exactly as written.
type SymbolName string

// SymbolPath traces enclosing scope, e.g. [class, method]. It is never
// empty for a well-formed symbol; an empty path is a programmer error.
type SymbolPath []SymbolName

// Name returns the last path component.
func (p SymbolPath) Name() SymbolName {
	if len(p) == 0 {
		panic("index: empty SymbolPath")
	}
	return p[len(p)-1]
}

// ParentName returns the second-to-last component, if any.
func (p SymbolPath) ParentName() (SymbolName, bool) {
	if len(p) < 2 {
		return "", false
	}
	return p[len(p)-2], true
}

// Equal reports whether p and other name the same scope chain.
func (p SymbolPath) Equal(other SymbolPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p SymbolPath) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = string(n)
	}
	return strings.Join(parts, ".")
}
