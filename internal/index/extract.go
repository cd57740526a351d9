package index

import (
	"strings"

	"github.com/dataflex-tools/dflsp/internal/syntax"
)

// ExtractIndexFile builds the IndexFile for one parsed source file.
//
// Conceptually this runs a highlight-style query whose patterns carry an
// `index.element` property (file_dependency,
// class_definition, method_procedure_definition,
// method_function_definition, property_definition) and reading `name` /
// `superclass` captures off each match — the same capture-driven shape
// petar-djukic-go-coder/internal/repomap/extract.go uses over a real
// tree-sitter query. Our hand-rolled parser already names its fields the
// way those captures would (Node.Fields["name"], ["superclass"], ...), so
// this walks the tree directly instead of running a query string over it;
// the *pattern* (dispatch on a node-kind-to-element mapping) is the same.
func ExtractIndexFile(path string, tree *syntax.Tree, source []byte) *IndexFile {
	comments := syntax.Comments(source)
	fileRef := NewIndexFileRef(path)

	file := &IndexFile{Path: path}
	for _, child := range tree.Root.Children {
		switch child.Kind {
		case syntax.KindUseStatement:
			if dep := extractDependency(child); dep != "" {
				file.Dependencies = append(file.Dependencies, IndexFileRef{Name: dep})
			}
		case syntax.KindClassDefinition, syntax.KindObjectDefinition:
			if class := extractClass(child, fileRef, comments); class != nil {
				file.Symbols = append(file.Symbols, class)
			}
		}
	}
	return file
}

func extractDependency(use *syntax.Node) string {
	var b strings.Builder
	for i := 1; i < use.ChildCount(); i++ {
		b.WriteString(use.Child(i).Text)
	}
	return b.String()
}

func extractClass(def *syntax.Node, fileRef IndexFileRef, comments map[int]string) *IndexSymbol {
	nameNode := def.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	superclass := SymbolName("")
	if sc := def.ChildByFieldName("superclass"); sc != nil {
		superclass = SymbolName(sc.Text)
	}

	doc := docCommentAbove(comments, def.Start.Row)
	class := NewClassSymbol(SymbolName(nameNode.Text), superclass, Location{File: fileRef, Range: def.Range()}, doc)

	for _, child := range def.Children {
		switch child.Kind {
		case syntax.KindProcedureDefinition, syntax.KindFunctionDefinition:
			if m := extractMethod(child, class.Name, fileRef, comments); m != nil {
				class.Members = append(class.Members, m)
			}
		case syntax.KindPropertyDefinition:
			if p := extractProperty(child, class.Name, fileRef, comments); p != nil {
				class.Members = append(class.Members, p)
			}
		}
	}
	return class
}

func extractMethod(def *syntax.Node, className SymbolName, fileRef IndexFileRef, comments map[int]string) *IndexSymbol {
	nameNode := def.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	kind := MethodProcedure
	if def.Kind == syntax.KindFunctionDefinition {
		kind = MethodFunction
	}
	if q := def.ChildByFieldName("qualifier"); q != nil {
		if q.IsKeyword("set") {
			kind = MethodSet
		} else if q.IsKeyword("get") {
			kind = MethodFunction
		}
	}
	path := SymbolPath{className, SymbolName(nameNode.Text)}
	doc := docCommentAbove(comments, def.Start.Row)
	return NewMethodSymbol(path, kind, Location{File: fileRef, Range: def.Range()}, doc)
}

func extractProperty(def *syntax.Node, className SymbolName, fileRef IndexFileRef, comments map[int]string) *IndexSymbol {
	nameNode := def.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	path := SymbolPath{className, SymbolName(nameNode.Text)}
	doc := docCommentAbove(comments, def.Start.Row)
	return NewPropertySymbol(path, Location{File: fileRef, Range: def.Range()}, doc)
}

// docCommentAbove joins the contiguous run of line comments immediately
// preceding startRow into a single doc-comment string, stripping each
// line's leading "//". Grounded on original_source/src/index/index_symbol.rs.
func docCommentAbove(comments map[int]string, startRow int) string {
	var lines []string
	for row := startRow - 1; ; row-- {
		text, ok := comments[row]
		if !ok {
			break
		}
		lines = append([]string{strings.TrimSpace(strings.TrimPrefix(text, "//"))}, lines...)
	}
	return strings.Join(lines, "\n")
}
