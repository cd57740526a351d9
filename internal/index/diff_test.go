package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classSym(name, super string) *IndexSymbol {
	return NewClassSymbol(SymbolName(name), SymbolName(super), Location{}, "")
}

func methodSym(class, name string, kind MethodKind) *IndexSymbol {
	return NewMethodSymbol(SymbolPath{SymbolName(class), SymbolName(name)}, kind, Location{}, "")
}

func TestComputeDiff_FileCreation(t *testing.T) {
	newSyms := []*IndexSymbol{classSym("cFoo", "cObject")}
	diff := ComputeDiff(nil, newSyms)
	assert.Len(t, diff.Added, 1)
	assert.Empty(t, diff.Removed)
}

func TestComputeDiff_FileDeletion(t *testing.T) {
	oldSyms := []*IndexSymbol{classSym("cFoo", "cObject")}
	diff := ComputeDiff(oldSyms, nil)
	assert.Empty(t, diff.Added)
	assert.Len(t, diff.Removed, 1)
}

func TestComputeDiff_RenameProducesAddedAndRemoved(t *testing.T) {
	oldSyms := []*IndexSymbol{classSym("cMyClass", "cObject")}
	newSyms := []*IndexSymbol{classSym("cMyRenamedClass", "cObject")}
	diff := ComputeDiff(oldSyms, newSyms)
	require.Len(t, diff.Added, 1)
	require.Len(t, diff.Removed, 1)
	assert.Equal(t, SymbolName("cMyRenamedClass"), diff.Added[0].Name)
	assert.Equal(t, SymbolName("cMyClass"), diff.Removed[0].Name)
}

func TestComputeDiff_UnchangedClassProducesNoTopLevelChurn(t *testing.T) {
	old := classSym("cFoo", "cObject")
	old.Members = append(old.Members, methodSym("cFoo", "testIt", MethodProcedure))
	newer := classSym("cFoo", "cObject")
	newer.Members = append(newer.Members, methodSym("cFoo", "testIt", MethodProcedure))

	diff := ComputeDiff([]*IndexSymbol{old}, []*IndexSymbol{newer})
	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
}

func TestComputeDiff_MemberAddedAndRemovedWithinUnchangedClass(t *testing.T) {
	old := classSym("cFoo", "cObject")
	old.Members = append(old.Members, methodSym("cFoo", "oldMethod", MethodProcedure))
	newer := classSym("cFoo", "cObject")
	newer.Members = append(newer.Members, methodSym("cFoo", "newMethod", MethodProcedure))

	diff := ComputeDiff([]*IndexSymbol{old}, []*IndexSymbol{newer})
	require.Len(t, diff.Added, 1)
	require.Len(t, diff.Removed, 1)
	assert.Equal(t, SymbolName("newMethod"), diff.Added[0].Path.Name())
	assert.Equal(t, SymbolName("oldMethod"), diff.Removed[0].Path.Name())
}

func TestComputeDiff_NoChangeIsEmpty(t *testing.T) {
	syms := []*IndexSymbol{classSym("cFoo", "cObject")}
	diff := ComputeDiff(syms, syms)
	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
}
