// Package parse turns one view literal's token stream into a syntax tree.
//
// The surface grammar is ambiguous: a parenthesized group after the tag can
// be a field list or a child list, and the two are not distinguishable with
// fixed lookahead (a child can be a bare identifier, an attribute value can
// start like any expression). The resolver tries the field interpretation
// on a fork of the cursor, commits the fork on success, and otherwise
// reinterprets the same group content as children; if neither reading
// holds, both diagnostics are merged into one AmbiguityError anchored at
// the group.
package parse

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/velt-dev/velt/internal/velt/ast"
	"github.com/velt-dev/velt/internal/velt/cursor"
)

// Parse parses exactly one view literal. base is the literal's position in
// the enclosing file; all diagnostics anchor relative to it. Trailing
// tokens after the element are an error: the whole input must be one
// element.
func Parse(src string, base lexer.Position) (*ast.Element, error) {
	c, err := cursor.Lex(src, base)
	if err != nil {
		return nil, err
	}
	el, err := parseElement(c)
	if err != nil {
		return nil, err
	}
	if !c.EOF() {
		return nil, errorf(c.Pos(), "unexpected %s after element, expected end of input", tokenDesc(c.Peek()))
	}
	return el, nil
}

// parseElement parses `tag ( "(" group ")" )? ( "(" group ")" )?`.
func parseElement(c *cursor.Cursor) (*ast.Element, error) {
	tag := c.Peek()
	if !cursor.IsIdent(tag) {
		return nil, errorf(tag.Pos, "expected element tag, got %s", tokenDesc(tag))
	}
	c.Next()

	el := &ast.Element{Tag: tag.Value, TagPos: tag.Pos}

	parsedChildren := false
	if cursor.IsPunct(c.Peek(), "(") {
		content, open, err := c.Group()
		if err != nil {
			return nil, err
		}

		fork := content.Fork()
		fields, fieldsErr := parseFields(fork)
		if fieldsErr == nil {
			el.HasFieldGroup = true
			el.Fields = fields
			content.Commit(fork)
		} else {
			// Not a field list. Reinterpret the same group content as
			// children; the second group slot is then already spoken for.
			parsedChildren = true
			children, childrenErr := parseChildren(content)
			if childrenErr != nil {
				return nil, &AmbiguityError{Pos: open.Pos, FieldsErr: fieldsErr, ChildrenErr: childrenErr}
			}
			el.HasChildGroup = true
			el.Children = children
		}
	}

	if !parsedChildren && cursor.IsPunct(c.Peek(), "(") {
		content, _, err := c.Group()
		if err != nil {
			return nil, err
		}
		children, err := parseChildren(content)
		if err != nil {
			return nil, err
		}
		el.HasChildGroup = true
		el.Children = children
	}

	return el, nil
}

// parseChildren parses a comma-separated list of opaque expressions. An
// empty group is an empty child list, not an error.
func parseChildren(c *cursor.Cursor) ([]ast.Child, error) {
	exprs, err := parseExprList(c)
	if err != nil {
		return nil, err
	}
	children := make([]ast.Child, len(exprs))
	for i, e := range exprs {
		children[i] = ast.Child{Expr: e}
	}
	return children, nil
}

// tokenDesc renders a token for a diagnostic.
func tokenDesc(t lexer.Token) string {
	if t.EOF() {
		return "end of input"
	}
	return "\"" + t.Value + "\""
}
