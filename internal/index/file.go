package index

import "path/filepath"

// IndexFileRef is an identity wrapper over a file's basename, not its full
// path. Two files with the same basename in different directories collide
// by design — a known limitation rather than a bug to fix here (see
// DESIGN.md's open-questions resolution).
type IndexFileRef struct {
	Name string
}

// NewIndexFileRef derives a ref from a file path.
func NewIndexFileRef(path string) IndexFileRef {
	return IndexFileRef{Name: filepath.Base(path)}
}

// IndexFile is the per-source-file slice of the global index: its
// dependencies (from Use statements) plus its flat list of top-level
// symbols (classes; free-standing procedures are out of index scope).
type IndexFile struct {
	Path         string
	Dependencies []IndexFileRef
	Symbols      []*IndexSymbol
}

// IndexSymbolRef is sufficient to re-resolve to a live IndexSymbol via path
// descent inside the referenced file, without holding a pointer into that
// file directly, which avoids a cyclic ownership graph between files.
type IndexSymbolRef struct {
	FileRef IndexFileRef
	Path    SymbolPath
}

// Equal reports whether two refs name the same symbol.
func (r IndexSymbolRef) Equal(other IndexSymbolRef) bool {
	return r.FileRef == other.FileRef && r.Path.Equal(other.Path)
}

// Resolve re-derives the live IndexSymbol a ref points to by descending
// Path inside the IndexFile files[r.FileRef]. Returns false if the file is
// gone or the path no longer exists in it (e.g. a stale ref from a diff
// applied out of order).
func (r IndexSymbolRef) Resolve(files map[IndexFileRef]*IndexFile) (*IndexSymbol, bool) {
	file, ok := files[r.FileRef]
	if !ok {
		return nil, false
	}
	return descendPath(file.Symbols, r.Path)
}

func descendPath(symbols []*IndexSymbol, path SymbolPath) (*IndexSymbol, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var class *IndexSymbol
	for _, s := range symbols {
		if s.Variant == VariantClass && s.Name == path[0] {
			class = s
			break
		}
	}
	if class == nil {
		return nil, false
	}
	if len(path) == 1 {
		return class, true
	}
	memberName := path[len(path)-1]
	for _, m := range class.Members {
		if m.UnqualifiedName() == memberName {
			return m, true
		}
	}
	return nil, false
}

// IndexSymbolSnapshot is a borrowed view exposed to callers without
// transferring ownership of the underlying IndexFile's symbol tree.
type IndexSymbolSnapshot struct {
	Path   SymbolPath
	Symbol *IndexSymbol
}
