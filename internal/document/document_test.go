package document

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dataflex-tools/dflsp/internal/index"
	"github.com/dataflex-tools/dflsp/internal/syntax"
)

func indexSource(ws *index.Workspace, path, src string) {
	text := []byte(src)
	tree := syntax.Parse(text)
	ws.ApplyFile(index.ExtractIndexFile(path, tree, text))
}

func TestEngine_CodeCompletion_ClassReferenceInObjectBody(t *testing.T) {
	ws := index.NewWorkspace(zap.NewNop())
	indexSource(ws, "base.pkg", "Class cMyClass is a cBaseClass\nEnd_Class\n")

	eng := NewEngine("file:///test.pkg", []byte("Use test.pkg\nObject oMyObject is a cMyClass\nEnd_Object\n"), ws, reentrantMutex{})

	items := eng.CodeCompletion(context.Background(), syntax.Point{Row: 1, Column: 22})

	var found bool
	for _, item := range items {
		if item.Label == "cMyClass" && item.Kind == CompletionClass {
			found = true
		}
	}
	assert.True(t, found, "expected cMyClass among completion items, got %+v", items)
}

func TestEngine_FindDefinition_SelfReceiverMethodResolution(t *testing.T) {
	ws := index.NewWorkspace(zap.NewNop())
	indexSource(ws, "lib.pkg", "Class cMyClass is a cObject\nProcedure testIt\nEnd_Procedure\nEnd_Class\n")

	eng := NewEngine("file:///obj.pkg", []byte(
		"Object oMyObject is a cMyClass\n"+
			"Procedure DoSomething\n"+
			"Send testIt\n"+
			"End_Procedure\n"+
			"End_Object\n"), ws, reentrantMutex{})

	loc, ok := eng.FindDefinition(context.Background(), syntax.Point{Row: 2, Column: 7})
	require.True(t, ok)
	assert.Equal(t, index.NewIndexFileRef("lib.pkg"), loc.File)
}

func TestEngine_EditContent_IncrementalEqualsFullReparse(t *testing.T) {
	ws := index.NewWorkspace(zap.NewNop())
	initial := "Object oTest is a cTest\nEnd_Object\n"
	eng := NewEngine("file:///t.pkg", []byte(initial), ws, reentrantMutex{})

	insertAt := syntax.Point{Row: 0, Column: 23}
	eng.EditContent(context.Background(), []Change{{
		Range: &syntax.Range{Start: insertAt, End: insertAt},
		Text:  "\nProcedure test\nEnd_Procedure",
	}})

	incremental := eng.tree.Tree()
	require.NotNil(t, incremental)

	fresh := syntax.Parse(eng.lines.Bytes())
	assert.Equal(t, sexpr(fresh.Root), sexpr(incremental.Root))
}

func TestEngine_Hover_ReturnsDocCommentFromResolvedMethod(t *testing.T) {
	ws := index.NewWorkspace(zap.NewNop())
	indexSource(ws, "lib.pkg", "Class cMyClass is a cObject\n// does the work\nProcedure testIt\nEnd_Procedure\nEnd_Class\n")

	eng := NewEngine("file:///obj.pkg", []byte(
		"Object oMyObject is a cMyClass\n"+
			"Procedure DoSomething\n"+
			"Send testIt\n"+
			"End_Procedure\n"+
			"End_Object\n"), ws, reentrantMutex{})

	doc, ok := eng.Hover(context.Background(), syntax.Point{Row: 2, Column: 7})
	require.True(t, ok)
	assert.Contains(t, doc, "does the work")
}

// sexpr renders a node's shape as an S-expression, deep enough to tell two
// trees apart by kind and leaf text but indifferent to which *Node backs
// them.
func sexpr(n *syntax.Node) string {
	if n == nil {
		return "()"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("(%s %q)", n.Kind, n.Text)
	}
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(n.Kind)
	for _, c := range n.Children {
		b.WriteString(" ")
		b.WriteString(sexpr(c))
	}
	b.WriteString(")")
	return b.String()
}
