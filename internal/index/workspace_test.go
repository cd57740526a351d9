package index

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWorkspace_ApplyFileThenResolve(t *testing.T) {
	ws := NewWorkspace(zap.NewNop())
	class := classSym("cFoo", "cObject")
	class.Members = append(class.Members, methodSym("cFoo", "testIt", MethodProcedure))
	ws.ApplyFile(&IndexFile{Path: "test.pkg", Symbols: []*IndexSymbol{class}})

	ref, ok := ws.Class("cFoo")
	require.True(t, ok)

	resolved, ok := ws.Resolve(ref)
	require.True(t, ok)
	assert.Equal(t, SymbolName("cFoo"), resolved.Name)

	methodRefs := ws.Method(MethodProcedure, "testIt")
	require.Len(t, methodRefs, 1)
	resolvedMethod, ok := ws.Resolve(methodRefs[0])
	require.True(t, ok)
	assert.Equal(t, SymbolName("testIt"), resolvedMethod.Path.Name())
}

func TestWorkspace_RebuildFromLatestFileEqualsSequentialApplication(t *testing.T) {
	logger := zap.NewNop()
	sequential := NewWorkspace(logger)

	f0 := &IndexFile{Path: "test.pkg", Symbols: []*IndexSymbol{classSym("cA", "cObject")}}
	f1 := &IndexFile{Path: "test.pkg", Symbols: []*IndexSymbol{classSym("cB", "cObject")}}
	f2 := &IndexFile{Path: "test.pkg", Symbols: []*IndexSymbol{classSym("cC", "cObject")}}
	for _, f := range []*IndexFile{f0, f1, f2} {
		sequential.ApplyFile(f)
	}

	fromScratch := NewWorkspace(logger)
	fromScratch.ApplyFile(f2)

	_, seqHasA := sequential.Class("cA")
	_, seqHasB := sequential.Class("cB")
	seqC, seqHasC := sequential.Class("cC")
	assert.False(t, seqHasA)
	assert.False(t, seqHasB)
	require.True(t, seqHasC)

	scratchC, scratchHasC := fromScratch.Class("cC")
	require.True(t, scratchHasC)
	assert.Equal(t, scratchC, seqC)
}

func TestWorkspace_RemoveFilePurgesSymbols(t *testing.T) {
	ws := NewWorkspace(zap.NewNop())
	ws.ApplyFile(&IndexFile{Path: "test.pkg", Symbols: []*IndexSymbol{classSym("cFoo", "cObject")}})
	ws.RemoveFile("test.pkg")

	_, ok := ws.Class("cFoo")
	assert.False(t, ok)
	_, ok = ws.File(NewIndexFileRef("test.pkg"))
	assert.False(t, ok)
}

func TestLoadWorkspaceDescriptor_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/test.sws", `{"df": 20, "projects": ["test.src"]}`)

	d := LoadWorkspaceDescriptor(dir, zap.NewNop())
	assert.Equal(t, "20", d.Version)
	require.Len(t, d.Projects, 1)
	assert.Contains(t, d.Projects[0], "AppSrc")
}

func TestLoadWorkspaceDescriptor_INI(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/test.sws", "[Properties]\nVersion=19\n[Projects]\nMain=test.src\n")

	d := LoadWorkspaceDescriptor(dir, zap.NewNop())
	assert.Equal(t, "19", d.Version)
	require.Len(t, d.Projects, 1)
}

func TestLoadWorkspaceDescriptor_MissingFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	d := LoadWorkspaceDescriptor(dir, zap.NewNop())
	assert.Empty(t, d.Projects)
	assert.Equal(t, dir, d.Root)
}

func TestLoadWorkspaceDescriptor_MalformedFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/test.sws", "[Properties\nVersion=19\n")

	d := LoadWorkspaceDescriptor(dir, zap.NewNop())
	assert.Empty(t, d.Projects)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
