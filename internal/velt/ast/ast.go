// Package ast defines the syntax tree for one velt view literal.
//
// The tree is built once by the parser and consumed once by the lowering
// step; nodes are plain values with no sharing between literals.
package ast

import "github.com/alecthomas/participle/v2/lexer"

// Expr is an opaque host expression embedded in a literal (an attribute
// value, a class condition, a child). Its internal syntax is validated by
// the Go expression parser when it is scanned; only the source text is
// carried through to emission.
type Expr struct {
	Src string
	Pos lexer.Position
}

// Field is one element-configuration entry inside the first parenthesized
// group: a generic attribute, a class, or a style.
type Field interface {
	field()
}

// Attr is the generic `name=value` form. Any identifier that is not a
// reserved field keyword is an ordinary attribute of the host element.
type Attr struct {
	Name    string
	NamePos lexer.Position
	Value   Expr
}

// Class is the reserved `class=` form.
type Class struct {
	Value ClassValue
}

// Style is the reserved `style=` form. Always a single expression.
type Style struct {
	Value Expr
}

func (Attr) field()  {}
func (Class) field() {}
func (Style) field() {}

// ClassValue is either a static class expression or a conditional
// (condition, class) pair.
type ClassValue interface {
	classValue()
}

type StaticClass struct {
	Value Expr
}

type DynamicClass struct {
	Cond  Expr
	Class Expr
}

func (StaticClass) classValue()  {}
func (DynamicClass) classValue() {}

// Child is one child slot. Its content is never grammar-checked beyond
// being a valid host expression.
type Child struct {
	Expr Expr
}

// Element is one parsed view literal: a tag, an optional field group, and
// an optional child group. HasFieldGroup and HasChildGroup distinguish an
// absent group from a present-but-empty one.
type Element struct {
	Tag    string
	TagPos lexer.Position

	HasFieldGroup bool
	Fields        []Field

	HasChildGroup bool
	Children      []Child
}
