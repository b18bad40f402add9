package parse

import (
	"errors"

	"github.com/velt-dev/velt/internal/velt/ast"
	"github.com/velt-dev/velt/internal/velt/cursor"
)

// parseFields parses a comma-separated field list and requires it to
// consume the entire group content. Failing partway is what sends the
// resolver down the child-list branch.
func parseFields(c *cursor.Cursor) ([]ast.Field, error) {
	fields := []ast.Field{}
	if c.EOF() {
		return fields, nil
	}
	for {
		f, err := parseField(c)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		if c.EOF() {
			return fields, nil
		}
		comma := c.Peek()
		if !cursor.IsPunct(comma, ",") {
			return nil, errorf(comma.Pos, "expected \",\" between fields, got %s", tokenDesc(comma))
		}
		c.Next()
		if c.EOF() {
			return nil, errorf(c.Pos(), "expected field after \",\"")
		}
	}
}

// parseField dispatches on the leading token: the reserved keywords take
// priority, any other identifier is a generic attribute.
func parseField(c *cursor.Cursor) (ast.Field, error) {
	lead := c.Peek()
	if !cursor.IsIdent(lead) {
		return nil, errorf(lead.Pos, "expected field name, got %s", tokenDesc(lead))
	}
	switch lead.Value {
	case "class":
		return parseClass(c)
	case "style":
		return parseStyle(c)
	}
	return parseAttr(c)
}

func parseAttr(c *cursor.Cursor) (ast.Field, error) {
	name := c.Next()
	if err := expectEquals(c, name.Value); err != nil {
		return nil, err
	}
	value, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	return ast.Attr{Name: name.Value, NamePos: name.Pos, Value: value}, nil
}

func parseClass(c *cursor.Cursor) (ast.Field, error) {
	kw := c.Next()
	if err := expectEquals(c, kw.Value); err != nil {
		return nil, err
	}
	value, err := parseClassValue(c)
	if err != nil {
		return nil, err
	}
	return ast.Class{Value: value}, nil
}

func parseStyle(c *cursor.Cursor) (ast.Field, error) {
	kw := c.Next()
	if err := expectEquals(c, kw.Value); err != nil {
		return nil, err
	}
	value, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	return ast.Style{Value: value}, nil
}

// parseClassValue speculatively reads a parenthesized value as a
// (condition, class) tuple. Exactly two components commit as Dynamic; a
// different count is a hard arity error; anything that is not tuple syntax
// at all rolls back to a single static expression.
func parseClassValue(c *cursor.Cursor) (ast.ClassValue, error) {
	if cursor.IsPunct(c.Peek(), "(") {
		fork := c.Fork()
		value, err := parseClassTuple(fork)
		if err == nil {
			c.Commit(fork)
			return value, nil
		}
		var arity *TupleArityError
		if errors.As(err, &arity) {
			return nil, err
		}
		// Dropped fork: the value is parsed again as one expression.
	}
	value, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	return ast.StaticClass{Value: value}, nil
}

func parseClassTuple(c *cursor.Cursor) (ast.ClassValue, error) {
	content, open, err := c.Group()
	if err != nil {
		return nil, err
	}
	elems, err := parseExprList(content)
	if err != nil {
		return nil, err
	}
	if len(elems) != 2 {
		return nil, &TupleArityError{Pos: open.Pos, Got: len(elems)}
	}
	return ast.DynamicClass{Cond: elems[0], Class: elems[1]}, nil
}

func expectEquals(c *cursor.Cursor, name string) error {
	eq := c.Peek()
	if !cursor.IsPunct(eq, "=") {
		return errorf(eq.Pos, "expected \"=\" after %q, got %s", name, tokenDesc(eq))
	}
	c.Next()
	return nil
}
