// Package el is the element builder API that generated velt code targets.
//
// A chain like
//
//	el.Div().Classes("card").Attr("id", id).Child("hello")
//
// builds one HTML element; calls configure it in order and Child appends
// children in order. Elements render to HTML through gomponents.
package el

import (
	"fmt"
	"io"
	"strings"

	g "maragu.dev/gomponents"
)

// Element is one HTML element under construction. All methods return the
// receiver so calls chain.
type Element struct {
	tag      string
	attrs    []g.Node
	classes  []string
	styles   []string
	children []g.Node
}

// El constructs an element by tag name.
func El(tag string) *Element {
	return &Element{tag: tag}
}

// View marks an embedded view literal in a .velt source. The velt generator
// replaces every marker call before the package builds; a call that
// survives to runtime means the file was never generated.
func View(src string) *Element {
	panic(fmt.Sprintf("el.View(%q): source was not processed by the velt generator", src))
}

// Attr sets a generic attribute. Non-string values are formatted with fmt.
func (e *Element) Attr(name string, value any) *Element {
	e.attrs = append(e.attrs, g.Attr(name, text(value)))
	return e
}

// Classes appends a static class value.
func (e *Element) Classes(value any) *Element {
	e.classes = append(e.classes, text(value))
	return e
}

// Class appends a class value only when cond is true.
func (e *Element) Class(cond bool, value string) *Element {
	if cond {
		e.classes = append(e.classes, value)
	}
	return e
}

// Style appends inline style declarations, joined with "; " on render.
func (e *Element) Style(value any) *Element {
	e.styles = append(e.styles, text(value))
	return e
}

// Child appends one child. Nodes are spliced as-is; everything else
// becomes a text node.
func (e *Element) Child(value any) *Element {
	switch v := value.(type) {
	case g.Node:
		e.children = append(e.children, v)
	default:
		e.children = append(e.children, g.Text(text(v)))
	}
	return e
}

// Render writes the element as HTML. Element implements gomponents.Node,
// so elements nest as children of other elements.
func (e *Element) Render(w io.Writer) error {
	return e.node().Render(w)
}

// String renders the element to a string.
func (e *Element) String() string {
	var sb strings.Builder
	_ = e.Render(&sb) // strings.Builder writes do not fail
	return sb.String()
}

func (e *Element) node() g.Node {
	nodes := make([]g.Node, 0, len(e.attrs)+len(e.children)+2)
	nodes = append(nodes, e.attrs...)
	if len(e.classes) > 0 {
		nodes = append(nodes, g.Attr("class", strings.Join(e.classes, " ")))
	}
	if len(e.styles) > 0 {
		nodes = append(nodes, g.Attr("style", strings.Join(e.styles, "; ")))
	}
	nodes = append(nodes, e.children...)
	return g.El(e.tag, nodes...)
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
