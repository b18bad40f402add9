// Package compile expands the view literals in a .velt source file.
//
// A .velt source is a Go file whose view literals appear as raw-string
// arguments to a View marker call, either dot-imported (`View(...)`) or
// qualified (`el.View(...)`). Each literal is expanded independently into a
// builder call chain and spliced over the marker call; every failure in a
// file is reported, not just the first.
package compile

import (
	"errors"
	"fmt"
	goast "go/ast"
	"go/format"
	goparser "go/parser"
	gotoken "go/token"

	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/tools/imports"

	"github.com/velt-dev/velt/internal/velt/lower"
	"github.com/velt-dev/velt/internal/velt/parse"
)

const header = "// Code generated by velt. DO NOT EDIT.\n\n"

// CompileFile expands every View literal in src and returns the generated
// Go source, formatted by goimports. If any literal fails, the joined
// diagnostics are returned and no output is produced.
func CompileFile(path string, src []byte) ([]byte, error) {
	return compileFile(path, src, false)
}

// compileFile is CompileFile with a switch to format via gofmt instead of
// goimports. goimports needs module resolution; tests flip skipImports for
// hermetic runs.
func compileFile(path string, src []byte, skipImports bool) ([]byte, error) {
	fset := gotoken.NewFileSet()
	file, err := goparser.ParseFile(fset, path, src, goparser.ParseComments|goparser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	type patch struct {
		start, end int
		text       string
	}
	var patches []patch
	var errs []error

	goast.Inspect(file, func(n goast.Node) bool {
		call, ok := n.(*goast.CallExpr)
		if !ok {
			return true
		}
		qualifier, lit, ok := viewMarker(call)
		if !ok {
			return true
		}
		if len(lit.Value) < 2 || lit.Value[0] != '`' {
			errs = append(errs, fmt.Errorf("%s: view literal must be a raw string literal (backquotes)", fset.Position(lit.Pos())))
			return true
		}
		content := lit.Value[1 : len(lit.Value)-1]

		text, err := ExpandLiteral(content, literalBase(fset.Position(lit.Pos())), qualifier)
		if err != nil {
			errs = append(errs, err)
			return true
		}
		patches = append(patches, patch{
			start: fset.Position(call.Pos()).Offset,
			end:   fset.Position(call.End()).Offset,
			text:  text,
		})
		return true
	})
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var out []byte
	out = append(out, header...)
	last := 0
	for _, p := range patches {
		out = append(out, src[last:p.start]...)
		out = append(out, p.text...)
		last = p.end
	}
	out = append(out, src[last:]...)

	outName := path + ".go"
	var formatted []byte
	if skipImports {
		formatted, err = format.Source(out)
	} else {
		formatted, err = imports.Process(outName, out, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: format generated source: %w", path, err)
	}
	return formatted, nil
}

// ExpandLiteral is the per-literal entry point: one literal's source in,
// the replacement call chain out, or a positioned diagnostic. base is the
// position of the literal's first character in the enclosing file.
func ExpandLiteral(src string, base lexer.Position, qualifier string) (string, error) {
	el, err := parse.Parse(src, base)
	if err != nil {
		return "", err
	}
	return lower.Element(el, qualifier), nil
}

// viewMarker matches `View(lit)` and `q.View(lit)` calls with a single
// string-literal argument, returning the qualifier ("" for the dot-import
// form).
func viewMarker(call *goast.CallExpr) (string, *goast.BasicLit, bool) {
	if len(call.Args) != 1 {
		return "", nil, false
	}
	lit, ok := call.Args[0].(*goast.BasicLit)
	if !ok || lit.Kind != gotoken.STRING {
		return "", nil, false
	}
	switch fun := call.Fun.(type) {
	case *goast.Ident:
		if fun.Name == "View" {
			return "", lit, true
		}
	case *goast.SelectorExpr:
		if ident, ok := fun.X.(*goast.Ident); ok && fun.Sel.Name == "View" {
			return ident.Name, lit, true
		}
	}
	return "", nil, false
}

// literalBase converts the file position of the opening backquote to the
// position of the literal's first character.
func literalBase(p gotoken.Position) lexer.Position {
	return lexer.Position{
		Filename: p.Filename,
		Line:     p.Line,
		Column:   p.Column + 1,
	}
}
