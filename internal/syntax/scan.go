package syntax

import "strings"

// token is an intermediate lexical unit, before the parser groups tokens
// into a tree.
type token struct {
	kind  string // KindKeyword, KindIdentifier, KindPunctuation, KindComment
	text  string
	start Point
	end   Point
}

// keywords recognized by the scanner. Source semantics treat these
// case-insensitively; identifiers are never folded.
var keywords = map[string]bool{
	"object":        true,
	"end_object":    true,
	"class":         true,
	"end_class":     true,
	"is":            true,
	"a":             true,
	"send":          true,
	"get":           true,
	"set":           true,
	"procedure":     true,
	"end_procedure": true,
	"function":      true,
	"end_function":  true,
	"use":           true,
	"self":          true,
	"property":      true,
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// scan tokenizes src in full. Row/column positions are zero-based UTF-8 byte
// offsets.
func scan(src []byte) []token {
	var tokens []token
	row, col := 0, 0
	i := 0
	n := len(src)

	advance := func(k int) {
		for j := 0; j < k; j++ {
			if src[i+j] == '\n' {
				row++
				col = 0
			} else {
				col++
			}
		}
		i += k
	}

	for i < n {
		c := src[i]
		switch {
		case c == '\n' || c == ' ' || c == '\t' || c == '\r':
			advance(1)
		case c == '/' && i+1 < n && src[i+1] == '/':
			start := Point{row, col}
			j := i
			for j < n && src[j] != '\n' {
				j++
			}
			text := string(src[i:j])
			advance(j - i)
			tokens = append(tokens, token{kind: KindComment, text: text, start: start, end: Point{row, col}})
		case isIdentStart(c):
			start := Point{row, col}
			j := i
			for j < n && isIdentCont(src[j]) {
				j++
			}
			text := string(src[i:j])
			advance(j - i)
			kind := KindIdentifier
			if keywords[strings.ToLower(text)] {
				kind = KindKeyword
			}
			tokens = append(tokens, token{kind: kind, text: text, start: start, end: Point{row, col}})
		default:
			// Punctuation: a single byte, including path-like literals such
			// as "test.pkg" which we leave as a run of punctuation/ident
			// tokens; the parser only needs the identifier pieces of it.
			start := Point{row, col}
			advance(1)
			tokens = append(tokens, token{kind: KindPunctuation, text: string(c), start: start, end: Point{row, col}})
		}
	}
	return tokens
}

// Comments returns, for every source row holding a line comment, that row's
// comment text including its leading "//". The parser drops comments when it
// builds block structure (see groupLines); indexers that want to recover a
// doc comment immediately preceding a definition use this alongside the
// parsed tree rather than threading comments through Node itself.
func Comments(source []byte) map[int]string {
	out := map[int]string{}
	for _, t := range scan(source) {
		if t.kind == KindComment {
			out[t.start.Row] = t.text
		}
	}
	return out
}
