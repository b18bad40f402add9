package parse

import (
	goparser "go/parser"
	"go/scanner"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/velt-dev/velt/internal/velt/ast"
	"github.com/velt-dev/velt/internal/velt/cursor"
)

// parseExpr scans one opaque host expression: tokens up to a top-level ","
// or the end of the enclosing group, tracking bracket depth so commas and
// parens inside calls, indexes, and literals stay part of the expression.
// The scanned source slice is handed to the Go expression parser; its
// grammar, not ours, decides validity.
func parseExpr(c *cursor.Cursor) (ast.Expr, error) {
	start := c.Peek()
	if c.EOF() || cursor.IsPunct(start, ",") {
		return ast.Expr{}, errorf(start.Pos, "expected expression, got %s", tokenDesc(start))
	}

	depth := 0
	last := start
	for !c.EOF() {
		t := c.Peek()
		if depth == 0 && cursor.IsPunct(t, ",") {
			break
		}
		switch {
		case isOpen(t):
			depth++
		case isClose(t):
			if depth == 0 {
				return ast.Expr{}, errorf(t.Pos, "unexpected %s in expression", tokenDesc(t))
			}
			depth--
		}
		last = c.Next()
	}

	src := c.Src(start, last)
	if _, err := goparser.ParseExpr(src); err != nil {
		return ast.Expr{}, errorf(start.Pos, "invalid expression %q: %s", src, exprErrMsg(err))
	}
	return ast.Expr{Src: src, Pos: start.Pos}, nil
}

// parseExprList parses a comma-separated expression list consuming the
// whole cursor. Empty input is an empty list; a trailing comma is an
// error.
func parseExprList(c *cursor.Cursor) ([]ast.Expr, error) {
	exprs := []ast.Expr{}
	if c.EOF() {
		return exprs, nil
	}
	for {
		e, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if c.EOF() {
			return exprs, nil
		}
		comma := c.Peek()
		if !cursor.IsPunct(comma, ",") {
			return nil, errorf(comma.Pos, "expected \",\" between expressions, got %s", tokenDesc(comma))
		}
		c.Next()
		if c.EOF() {
			return nil, errorf(c.Pos(), "expected expression after \",\"")
		}
	}
}

func isOpen(t lexer.Token) bool {
	return cursor.IsPunct(t, "(") || cursor.IsPunct(t, "[") || cursor.IsPunct(t, "{")
}

func isClose(t lexer.Token) bool {
	return cursor.IsPunct(t, ")") || cursor.IsPunct(t, "]") || cursor.IsPunct(t, "}")
}

// exprErrMsg strips go/parser's own position prefix; the diagnostic is
// anchored at the expression's position in the literal already.
func exprErrMsg(err error) string {
	if list, ok := err.(scanner.ErrorList); ok && len(list) > 0 {
		return list[0].Msg
	}
	return err.Error()
}
