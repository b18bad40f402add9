// Package lower emits the builder call chain for a parsed view literal.
//
// Lowering is purely structural: the tree is well-formed by construction,
// so there is no fallible path. Emission order is the constructor, then one
// configuration call per field in declaration order, then one Child call
// per child in declaration order. The order is a guarantee, not an
// accident: the host builder chains are order-sensitive.
package lower

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/velt-dev/velt/internal/velt/ast"
)

// Element lowers one parsed literal to builder-chain source text.
// qualifier is the package qualifier the marker call used ("" for a dot
// import); the chain is emitted against the same qualifier so the file's
// existing import keeps working.
func Element(el *ast.Element, qualifier string) string {
	var sb strings.Builder
	writeConstructor(&sb, el.Tag, qualifier)
	for _, f := range el.Fields {
		writeField(&sb, f)
	}
	for _, ch := range el.Children {
		fmt.Fprintf(&sb, ".Child(%s)", ch.Expr.Src)
	}
	return sb.String()
}

func writeConstructor(sb *strings.Builder, tag, qualifier string) {
	if qualifier != "" {
		sb.WriteString(qualifier)
		sb.WriteByte('.')
	}
	if fn := elementFunc(tag); fn != "" {
		sb.WriteString(fn)
		sb.WriteString("()")
		return
	}
	fmt.Fprintf(sb, "El(%s)", strconv.Quote(tag))
}

func writeField(sb *strings.Builder, f ast.Field) {
	switch t := f.(type) {
	case ast.Attr:
		fmt.Fprintf(sb, ".Attr(%s, %s)", strconv.Quote(t.Name), t.Value.Src)
	case ast.Class:
		switch v := t.Value.(type) {
		case ast.StaticClass:
			fmt.Fprintf(sb, ".Classes(%s)", v.Value.Src)
		case ast.DynamicClass:
			fmt.Fprintf(sb, ".Class(%s, %s)", v.Cond.Src, v.Class.Src)
		default:
			panic(fmt.Sprintf("lower: unknown class value %T", v))
		}
	case ast.Style:
		fmt.Fprintf(sb, ".Style(%s)", t.Value.Src)
	default:
		panic(fmt.Sprintf("lower: unknown field %T", f))
	}
}

// elementFunc maps an HTML tag to its dedicated constructor in pkg/el.
// Unknown tags fall back to El(tag).
func elementFunc(tag string) string {
	switch tag {
	case "a":
		return "A"
	case "button":
		return "Button"
	case "div":
		return "Div"
	case "footer":
		return "Footer"
	case "form":
		return "Form"
	case "h1":
		return "H1"
	case "h2":
		return "H2"
	case "h3":
		return "H3"
	case "h4":
		return "H4"
	case "h5":
		return "H5"
	case "h6":
		return "H6"
	case "header":
		return "Header"
	case "img":
		return "Img"
	case "input":
		return "Input"
	case "label":
		return "Label"
	case "li":
		return "Li"
	case "main":
		return "Main"
	case "nav":
		return "Nav"
	case "p":
		return "P"
	case "section":
		return "Section"
	case "span":
		return "Span"
	case "ul":
		return "Ul"
	default:
		return ""
	}
}
