package index

// Diff is the structural difference between two per-file symbol trees,
// grounded on original_source/src/index/symbols_diff.rs.
type Diff struct {
	Added   []*IndexSymbol
	Removed []*IndexSymbol
}

// ComputeDiff compares oldSymbols against newSymbols. Either side may be
// nil/empty, which makes the same algorithm usable for file creation
// (oldSymbols == nil) and deletion (newSymbols == nil).
func ComputeDiff(oldSymbols, newSymbols []*IndexSymbol) Diff {
	remaining := make(map[SymbolName]*IndexSymbol, len(oldSymbols))
	for _, s := range oldSymbols {
		remaining[s.UnqualifiedName()] = s
	}

	var added, removed []*IndexSymbol
	for _, ns := range newSymbols {
		name := ns.UnqualifiedName()
		os, ok := remaining[name]
		if !ok {
			added = append(added, ns)
			continue
		}
		if !os.IsMatching(ns) {
			// The name was reused for a different shape; the old entry
			// stays in `remaining` and is swept up as removed below.
			added = append(added, ns)
			continue
		}
		delete(remaining, name)
		if os.Variant == VariantClass && ns.Variant == VariantClass {
			inner := ComputeDiff(os.Members, ns.Members)
			added = append(added, inner.Added...)
			removed = append(removed, inner.Removed...)
		}
	}
	for _, os := range remaining {
		removed = append(removed, os)
	}
	return Diff{Added: added, Removed: removed}
}
