package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dataflex-tools/dflsp/internal/syntax"
)

func TestClassifyContext_ObjectDefinitionSuperclassIsClassReference(t *testing.T) {
	src := []byte("Object oTest is a cObj\nEnd_Object\n")
	tree := syntax.Parse(src)
	ctx := ClassifyContext(tree.Root, syntax.Point{Row: 0, Column: 19})
	assert.Equal(t, Context{Kind: ContextClassReference}, ctx)
}

func TestClassifyContext_ObjectDefinitionBeforeIsIsNone(t *testing.T) {
	src := []byte("Object oTest is a cObj\nEnd_Object\n")
	tree := syntax.Parse(src)
	ctx := ClassifyContext(tree.Root, syntax.Point{Row: 0, Column: 9})
	assert.Equal(t, noneContext, ctx)
}

func TestClassifyContext_SendIsMethodReferenceProcedure(t *testing.T) {
	src := []byte("Send DoWork\n")
	tree := syntax.Parse(src)
	ctx := ClassifyContext(tree.Root, syntax.Point{Row: 0, Column: 7})
	assert.Equal(t, Context{Kind: ContextMethodReference, MethodKind: MethodProcedure}, ctx)
}

func TestClassifyContext_GetIsMethodReferenceFunction(t *testing.T) {
	src := []byte("Get Value to sValue\n")
	tree := syntax.Parse(src)
	ctx := ClassifyContext(tree.Root, syntax.Point{Row: 0, Column: 5})
	assert.Equal(t, Context{Kind: ContextMethodReference, MethodKind: MethodFunction}, ctx)
}

func TestClassifyContext_SetIsMethodReferenceSet(t *testing.T) {
	src := []byte("Set Value to 1\n")
	tree := syntax.Parse(src)
	ctx := ClassifyContext(tree.Root, syntax.Point{Row: 0, Column: 5})
	assert.Equal(t, Context{Kind: ContextMethodReference, MethodKind: MethodSet}, ctx)
}

func TestClassifyContext_UnrelatedLineIsNone(t *testing.T) {
	src := []byte("Procedure DoWork\nEnd_Procedure\n")
	tree := syntax.Parse(src)
	ctx := ClassifyContext(tree.Root, syntax.Point{Row: 0, Column: 12})
	assert.Equal(t, noneContext, ctx)
}

func TestClassifyContext_KeywordsAreCaseInsensitive(t *testing.T) {
	src := []byte("SEND DoWork\n")
	tree := syntax.Parse(src)
	ctx := ClassifyContext(tree.Root, syntax.Point{Row: 0, Column: 7})
	assert.Equal(t, ContextMethodReference, ctx.Kind)
}
