package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dataflex-tools/dflsp/internal/index"
	"github.com/dataflex-tools/dflsp/internal/syntax"
)

func TestBuildTokenMap_KeywordOnlyDeltaSequence(t *testing.T) {
	src := []byte("Object oTest is a cTest\nEnd_Object\n")
	tree := syntax.Parse(src)
	ws := index.NewWorkspace(zap.NewNop())
	lines := NewLineMap(src)

	toks := BuildTokenMap(tree.Root, lines.LineCount(), ws)
	got := toks.GetAllTokens()

	want := []EncodedToken{
		{DeltaLine: 0, DeltaStart: 0, Length: 6, Kind: TokenKeyword},
		{DeltaLine: 0, DeltaStart: 13, Length: 2, Kind: TokenKeyword},
		{DeltaLine: 0, DeltaStart: 3, Length: 1, Kind: TokenKeyword},
		{DeltaLine: 1, DeltaStart: 0, Length: 10, Kind: TokenKeyword},
	}
	assert.Equal(t, want, got)
}

func TestBuildTokenMap_UnknownClassSuppressesInheritedToken(t *testing.T) {
	src := []byte("Object oTest is a cUnknown\n")
	tree := syntax.Parse(src)
	ws := index.NewWorkspace(zap.NewNop())
	lines := NewLineMap(src)

	toks := BuildTokenMap(tree.Root, lines.LineCount(), ws)
	assert.False(t, hasTokenKind(toks, TokenInheritedClass))

	classSrc := []byte("Class cUnknown is a cObject\nEnd_Class\n")
	file := index.ExtractIndexFile("other.pkg", syntax.Parse(classSrc), classSrc)
	ws.ApplyFile(file)

	toks = BuildTokenMap(tree.Root, lines.LineCount(), ws)
	assert.True(t, hasTokenKind(toks, TokenInheritedClass))
}

func hasTokenKind(m *TokenMap, kind int) bool {
	for _, tok := range m.GetAllTokens() {
		if tok.Kind == kind {
			return true
		}
	}
	return false
}

func TestTokenMap_GetTokensForLinesRelativeToLastNonEmptyLineBeforeStart(t *testing.T) {
	src := []byte("Object oTest is a cTest\nEnd_Object\n")
	tree := syntax.Parse(src)
	ws := index.NewWorkspace(zap.NewNop())
	lines := NewLineMap(src)

	toks := BuildTokenMap(tree.Root, lines.LineCount(), ws)
	got := toks.GetTokensForLines(1, 2)
	want := []EncodedToken{
		{DeltaLine: 1, DeltaStart: 0, Length: 10, Kind: TokenKeyword},
	}
	assert.Equal(t, want, got)
}
