package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ObjectDefinition(t *testing.T) {
	src := []byte("Object oTest is a cObject\nEnd_Object\n")
	tree := Parse(src)
	require.Len(t, tree.Root.Children, 1)

	obj := tree.Root.Children[0]
	assert.Equal(t, KindObjectDefinition, obj.Kind)
	require.NotNil(t, obj.ChildByFieldName("name"))
	assert.Equal(t, "oTest", obj.ChildByFieldName("name").Text)
	require.NotNil(t, obj.ChildByFieldName("superclass"))
	assert.Equal(t, "cObject", obj.ChildByFieldName("superclass").Text)
	require.NotNil(t, obj.ChildByFieldName("end_keyword"))
	assert.Equal(t, "End_Object", obj.ChildByFieldName("end_keyword").Text)
}

func TestParse_ClassWithProcedureAndCallStatement(t *testing.T) {
	src := []byte("Class cFoo is a cObject\n" +
		"    Procedure DoWork\n" +
		"        Send SetValue 1\n" +
		"    End_Procedure\n" +
		"End_Class\n")
	tree := Parse(src)
	require.Len(t, tree.Root.Children, 1)

	class := tree.Root.Children[0]
	assert.Equal(t, KindClassDefinition, class.Kind)
	assert.Equal(t, "cFoo", class.ChildByFieldName("name").Text)
	assert.Equal(t, "cObject", class.ChildByFieldName("superclass").Text)

	var proc *Node
	for _, c := range class.Children {
		if c.Kind == KindProcedureDefinition {
			proc = c
		}
	}
	require.NotNil(t, proc)
	assert.Equal(t, "DoWork", proc.ChildByFieldName("name").Text)

	var call *Node
	for _, c := range proc.Children {
		if c.Kind == KindCallStatement {
			call = c
		}
	}
	require.NotNil(t, call)
	assert.Equal(t, "SetValue", call.ChildByFieldName("name").Text)
	assert.Nil(t, call.ChildByFieldName("receiver"))
}

func TestParse_CallStatementWithReceiver(t *testing.T) {
	src := []byte("Send oOther.DoWork\n")
	tree := Parse(src)
	require.Len(t, tree.Root.Children, 1)
	call := tree.Root.Children[0]
	require.Equal(t, KindCallStatement, call.Kind)
	assert.Equal(t, "oOther", call.ChildByFieldName("receiver").Text)
	assert.Equal(t, "DoWork", call.ChildByFieldName("name").Text)
}

func TestParse_ProcedureSetQualifier(t *testing.T) {
	src := []byte("Procedure Set psName String sValue\nEnd_Procedure\n")
	tree := Parse(src)
	require.Len(t, tree.Root.Children, 1)
	proc := tree.Root.Children[0]
	assert.Equal(t, KindProcedureDefinition, proc.Kind)
	require.NotNil(t, proc.ChildByFieldName("qualifier"))
	assert.True(t, proc.ChildByFieldName("qualifier").IsKeyword("set"))
	assert.Equal(t, "psName", proc.ChildByFieldName("name").Text)
}

func TestComments_RecoversLineCommentsByRow(t *testing.T) {
	src := []byte("// a class\nClass cFoo is a cObject\nEnd_Class\n")
	comments := Comments(src)
	require.Contains(t, comments, 0)
	assert.Equal(t, "// a class", comments[0])
	assert.NotContains(t, comments, 1)
}

func TestParse_PropertyDefinition(t *testing.T) {
	src := []byte("Property String psName\n")
	tree := Parse(src)
	require.Len(t, tree.Root.Children, 1)
	prop := tree.Root.Children[0]
	assert.Equal(t, KindPropertyDefinition, prop.Kind)
	assert.Equal(t, "String", prop.ChildByFieldName("type").Text)
	assert.Equal(t, "psName", prop.ChildByFieldName("name").Text)
}

func TestParse_KeywordsAreCaseInsensitiveIdentifiersAreNot(t *testing.T) {
	src := []byte("OBJECT oTest IS A cObject\nend_object\n")
	tree := Parse(src)
	require.Len(t, tree.Root.Children, 1)
	obj := tree.Root.Children[0]
	assert.Equal(t, KindObjectDefinition, obj.Kind)
	assert.True(t, obj.ChildByFieldName("keyword").IsKeyword("object"))
	assert.Equal(t, "oTest", obj.ChildByFieldName("name").Text)
}

func TestParse_UnmatchedEndDoesNotCorruptTree(t *testing.T) {
	src := []byte("Object oTest is a cObject\nEnd_Class\nEnd_Object\n")
	tree := Parse(src)
	require.Len(t, tree.Root.Children, 1)
	obj := tree.Root.Children[0]
	assert.Equal(t, KindObjectDefinition, obj.Kind)
	assert.NotNil(t, obj.ChildByFieldName("end_keyword"))
}

func TestParse_UnterminatedBlockDoesNotPanic(t *testing.T) {
	src := []byte("Object oTest is a cObject\n")
	assert.NotPanics(t, func() {
		tree := Parse(src)
		require.Len(t, tree.Root.Children, 1)
	})
}

func TestParser_ParseIgnoresOldTree(t *testing.T) {
	p := NewParser()
	first, err := p.Parse(nil, []byte("Object oTest is a cObject\nEnd_Object\n"))
	require.NoError(t, err)

	second, err := p.Parse(first, []byte("Object oOther is a cObject\nEnd_Object\n"))
	require.NoError(t, err)
	assert.Equal(t, "oOther", second.Root.Children[0].ChildByFieldName("name").Text)
}
