package index

// Tables holds the three name-keyed lookup tables: class, method, property.
// The sole mutating operation is Update, applied from a Diff; nothing else
// may write to these maps, which is what keeps them from desyncing from the
// `files` map they're derived from. Concurrency is the caller's
// responsibility (Workspace guards Tables with its own RWMutex).
type Tables struct {
	classLookup    map[SymbolName]IndexSymbolRef
	methodLookup   [3]map[SymbolName][]IndexSymbolRef // indexed by MethodKind
	propertyLookup map[SymbolName][]IndexSymbolRef
}

// NewTables returns empty lookup tables.
func NewTables() *Tables {
	t := &Tables{
		classLookup:    make(map[SymbolName]IndexSymbolRef),
		propertyLookup: make(map[SymbolName][]IndexSymbolRef),
	}
	for i := range t.methodLookup {
		t.methodLookup[i] = make(map[SymbolName][]IndexSymbolRef)
	}
	return t
}

// Class returns the ref a class name currently resolves to. Last writer
// wins when names collide across files.
func (t *Tables) Class(name SymbolName) (IndexSymbolRef, bool) {
	ref, ok := t.classLookup[name]
	return ref, ok
}

// Method returns every ref of the given kind registered under name.
func (t *Tables) Method(kind MethodKind, name SymbolName) []IndexSymbolRef {
	return t.methodLookup[kind][name]
}

// Property returns every property ref registered under name.
func (t *Tables) Property(name SymbolName) []IndexSymbolRef {
	return t.propertyLookup[name]
}

// ClassNames returns every registered class name, for completion listing.
func (t *Tables) ClassNames() []SymbolName {
	names := make([]SymbolName, 0, len(t.classLookup))
	for name := range t.classLookup {
		names = append(names, name)
	}
	return names
}

// MethodNames returns every name registered under kind's multimap.
func (t *Tables) MethodNames(kind MethodKind) []SymbolName {
	bucket := t.methodLookup[kind]
	names := make([]SymbolName, 0, len(bucket))
	for name := range bucket {
		names = append(names, name)
	}
	return names
}

// PropertyNames returns every registered property name.
func (t *Tables) PropertyNames() []SymbolName {
	names := make([]SymbolName, 0, len(t.propertyLookup))
	for name := range t.propertyLookup {
		names = append(names, name)
	}
	return names
}

// Update applies diff, whose symbols came from file, to the tables.
// Idempotent against repeated identical diffs: removing a ref not present
// or adding one already present is a no-op beyond the obvious bucket
// bookkeeping.
func (t *Tables) Update(diff Diff, file IndexFileRef) {
	for _, rem := range diff.Removed {
		t.remove(rem, file)
	}
	for _, add := range diff.Added {
		t.add(add, file)
	}
}

func (t *Tables) remove(sym *IndexSymbol, file IndexFileRef) {
	switch sym.Variant {
	case VariantClass:
		for _, m := range sym.Members {
			t.remove(m, file)
		}
		delete(t.classLookup, sym.Name)
	case VariantMethod:
		t.removeFromBucket(t.methodLookup[sym.Kind], sym.Path.Name(), file, sym.Path)
	case VariantProperty:
		t.removeFromBucket(t.propertyLookup, sym.Path.Name(), file, sym.Path)
	}
}

func (t *Tables) add(sym *IndexSymbol, file IndexFileRef) {
	switch sym.Variant {
	case VariantClass:
		t.classLookup[sym.Name] = IndexSymbolRef{FileRef: file, Path: SymbolPath{sym.Name}}
		for _, m := range sym.Members {
			t.add(m, file)
		}
	case VariantMethod:
		t.addToBucket(t.methodLookup[sym.Kind], sym.Path.Name(), IndexSymbolRef{FileRef: file, Path: sym.Path})
	case VariantProperty:
		t.addToBucket(t.propertyLookup, sym.Path.Name(), IndexSymbolRef{FileRef: file, Path: sym.Path})
	}
}

func (t *Tables) removeFromBucket(bucket map[SymbolName][]IndexSymbolRef, name SymbolName, file IndexFileRef, path SymbolPath) {
	want := IndexSymbolRef{FileRef: file, Path: path}
	refs := bucket[name]
	out := refs[:0]
	for _, r := range refs {
		if !r.Equal(want) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		delete(bucket, name)
	} else {
		bucket[name] = out
	}
}

func (t *Tables) addToBucket(bucket map[SymbolName][]IndexSymbolRef, name SymbolName, ref IndexSymbolRef) {
	for _, r := range bucket[name] {
		if r.Equal(ref) {
			return // already present: idempotent against repeated identical adds
		}
	}
	bucket[name] = append(bucket[name], ref)
}
