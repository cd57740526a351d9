package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_BeforeAndCompare(t *testing.T) {
	a := Point{Row: 1, Column: 2}
	b := Point{Row: 1, Column: 5}
	c := Point{Row: 2, Column: 0}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.Before(c))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestGotoFirstLeafNodeForPoint(t *testing.T) {
	src := []byte("Object oTest is a cObject\nEnd_Object\n")
	tree := Parse(src)

	leaf := GotoFirstLeafNodeForPoint(tree.Root, Point{Row: 0, Column: 8})
	require.NotNil(t, leaf)
	assert.Equal(t, KindIdentifier, leaf.Kind)
	assert.Equal(t, "oTest", leaf.Text)
}

func TestGotoFirstLeafNodeForPoint_OutOfRange(t *testing.T) {
	src := []byte("Object oTest is a cObject\nEnd_Object\n")
	tree := Parse(src)
	assert.Nil(t, GotoFirstLeafNodeForPoint(tree.Root, Point{Row: 99, Column: 0}))
}

func TestCursor_FirstChildNextSiblingParent(t *testing.T) {
	src := []byte("Object oTest is a cObject\nEnd_Object\n")
	tree := Parse(src)

	c := NewTreeCursor(tree.Root)
	require.True(t, c.GotoFirstChild()) // object_definition
	assert.Equal(t, KindObjectDefinition, c.Node().Kind)

	require.True(t, c.GotoFirstChild()) // keyword "Object"
	assert.True(t, c.Node().IsKeyword("object"))

	require.True(t, c.GotoNextSibling()) // identifier "oTest"
	assert.Equal(t, "oTest", c.Node().Text)

	require.True(t, c.GotoParent())
	assert.Equal(t, KindObjectDefinition, c.Node().Kind)
}

func TestCursor_GotoNextNodeRollsBackOnFailure(t *testing.T) {
	src := []byte("Object oTest is a cObject\nEnd_Object\n")
	tree := Parse(src)

	c := NewTreeCursor(tree.Root)
	// Root has exactly one child and no siblings of its own: GotoNextNode from
	// root must fail and leave the cursor untouched.
	before := c.Node()
	ok := GotoNextNode(c)
	assert.False(t, ok)
	assert.Same(t, before, c.Node())
}

func TestCursor_GotoNextNodeIfRollsBackWhenPredicateFails(t *testing.T) {
	src := []byte("Send oOther.DoWork\n")
	tree := Parse(src)

	c := NewTreeCursor(tree.Root)
	require.True(t, c.GotoFirstChild()) // method_call_statement
	require.True(t, c.GotoFirstChild()) // keyword "Send"
	before := c.Node()

	ok := GotoNextNodeIf(c, func(n *Node) bool { return n.Kind == KindComment })
	assert.False(t, ok)
	assert.Same(t, before, c.Node())

	ok = GotoNextNodeIf(c, func(n *Node) bool { return n.Kind == KindIdentifier })
	assert.True(t, ok)
	assert.Equal(t, "oOther", c.Node().Text)
}

func TestEnclosingCallStatementAndDefinition(t *testing.T) {
	src := []byte("Class cFoo is a cObject\n" +
		"    Procedure DoWork\n" +
		"        Send SetValue 1\n" +
		"    End_Procedure\n" +
		"End_Class\n")
	tree := Parse(src)

	leaf := NextIdentifierEnclosing(tree.Root, Point{Row: 2, Column: 14})
	require.NotNil(t, leaf)
	assert.Equal(t, "SetValue", leaf.Text)

	call := EnclosingCallStatement(leaf)
	require.NotNil(t, call)
	assert.Equal(t, KindCallStatement, call.Kind)

	def := EnclosingDefinition(leaf)
	require.NotNil(t, def)
	assert.Equal(t, KindClassDefinition, def.Kind)
	assert.Equal(t, "cFoo", def.ChildByFieldName("name").Text)
}

func TestNextKeywordBefore(t *testing.T) {
	src := []byte("Object oTest is a cObject\nEnd_Object\n")
	tree := Parse(src)

	kw := NextKeywordBefore(tree.Root, Point{Row: 0, Column: 20}, "is")
	require.NotNil(t, kw)
	assert.True(t, kw.IsKeyword("is"))
}
