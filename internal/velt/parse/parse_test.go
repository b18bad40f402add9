package parse

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velt-dev/velt/internal/velt/ast"
)

func testBase() lexer.Position {
	return lexer.Position{Filename: "test.velt", Line: 1, Column: 1}
}

func mustParse(t *testing.T, src string) *ast.Element {
	t.Helper()
	el, err := Parse(src, testBase())
	require.NoError(t, err)
	return el
}

func childSrcs(el *ast.Element) []string {
	var out []string
	for _, ch := range el.Children {
		out = append(out, ch.Expr.Src)
	}
	return out
}

func TestParse_TagOnly(t *testing.T) {
	el := mustParse(t, "div")
	assert.Equal(t, "div", el.Tag)
	assert.False(t, el.HasFieldGroup)
	assert.False(t, el.HasChildGroup)
	assert.Empty(t, el.Fields)
	assert.Empty(t, el.Children)
}

func TestParse_MalformedTag(t *testing.T) {
	tests := map[string]string{
		"group first":    `(x)`,
		"number":         `123`,
		"string":         `"div"`,
		"empty input":    ``,
		"leading equals": `=div`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(src, testBase())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "expected element tag")
		})
	}
}

func TestParse_FieldListOrderPreserved(t *testing.T) {
	el := mustParse(t, `div(id="x", class="card", style=myStyle, _ref=myRef)`)
	require.True(t, el.HasFieldGroup)
	require.Len(t, el.Fields, 4)

	attr, ok := el.Fields[0].(ast.Attr)
	require.True(t, ok)
	assert.Equal(t, "id", attr.Name)
	assert.Equal(t, `"x"`, attr.Value.Src)

	class, ok := el.Fields[1].(ast.Class)
	require.True(t, ok)
	static, ok := class.Value.(ast.StaticClass)
	require.True(t, ok)
	assert.Equal(t, `"card"`, static.Value.Src)

	style, ok := el.Fields[2].(ast.Style)
	require.True(t, ok)
	assert.Equal(t, "myStyle", style.Value.Src)

	ref, ok := el.Fields[3].(ast.Attr)
	require.True(t, ok)
	assert.Equal(t, "_ref", ref.Name)
	assert.Equal(t, "myRef", ref.Value.Src)
}

func TestParse_GenericAttrNoSpecialDispatch(t *testing.T) {
	// id and _ref are ordinary attributes; only class and style are
	// reserved in field-leading position.
	el := mustParse(t, `div(id="x")`)
	require.Len(t, el.Fields, 1)
	_, ok := el.Fields[0].(ast.Attr)
	assert.True(t, ok)
}

func TestParse_DynamicClass(t *testing.T) {
	el := mustParse(t, `div(class=(isOn, "active"))`)
	require.Len(t, el.Fields, 1)
	class := el.Fields[0].(ast.Class)
	dyn, ok := class.Value.(ast.DynamicClass)
	require.True(t, ok)
	assert.Equal(t, "isOn", dyn.Cond.Src)
	assert.Equal(t, `"active"`, dyn.Class.Src)
}

func TestParse_DynamicClassComplexExprs(t *testing.T) {
	el := mustParse(t, `div(class=(a && check(b), cls[0]))`)
	dyn := el.Fields[0].(ast.Class).Value.(ast.DynamicClass)
	assert.Equal(t, "a && check(b)", dyn.Cond.Src)
	assert.Equal(t, "cls[0]", dyn.Class.Src)
}

func TestParse_StaticClassExpr(t *testing.T) {
	el := mustParse(t, `div(class=join(prefix, "card"))`)
	static, ok := el.Fields[0].(ast.Class).Value.(ast.StaticClass)
	require.True(t, ok)
	assert.Equal(t, `join(prefix, "card")`, static.Value.Src)
}

func TestParse_ClassTupleArity(t *testing.T) {
	tests := map[string]struct {
		src  string
		want int
	}{
		"zero components":  {`div(class=())`, 0},
		"one component":    {`div(class=("a"))`, 1},
		"three components": {`div(class=(a, b, c))`, 3},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.src, testBase())
			require.Error(t, err)

			var arity *TupleArityError
			require.ErrorAs(t, err, &arity)
			assert.Equal(t, tt.want, arity.Got)
			assert.Contains(t, arity.Error(), "expected 2")
		})
	}
}

func TestParse_SingleGroupResolvesAsChildren(t *testing.T) {
	el := mustParse(t, `div(spanNode)`)
	assert.False(t, el.HasFieldGroup)
	assert.True(t, el.HasChildGroup)
	assert.Equal(t, []string{"spanNode"}, childSrcs(el))
}

// A group whose content fails the field-list interpretation is
// reinterpreted as the child list from the same content, never silently
// discarded: whatever follows the group must still be end of input.
func TestParse_GroupContentReinterpretedAsChildren(t *testing.T) {
	el := mustParse(t, `div(spanNode)`)
	require.Equal(t, []string{"spanNode"}, childSrcs(el))

	_, err := Parse(`div(spanNode) trailing`, testBase())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected "trailing" after element`)
	assert.Contains(t, err.Error(), "expected end of input")
}

func TestParse_MutualExclusivity(t *testing.T) {
	// A group that parses as fields never falls through to children.
	fields := mustParse(t, `div(a=1)`)
	assert.True(t, fields.HasFieldGroup)
	assert.False(t, fields.HasChildGroup)

	// A group that resolves as children consumes the child slot: a second
	// group afterwards is unconsumed input, not another list.
	_, err := Parse(`div(spanNode)(other)`, testBase())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected end of input")
}

func TestParse_EmptyGroups(t *testing.T) {
	one := mustParse(t, `div()`)
	assert.True(t, one.HasFieldGroup)
	assert.Empty(t, one.Fields)
	assert.False(t, one.HasChildGroup)

	two := mustParse(t, `div()()`)
	assert.True(t, two.HasFieldGroup)
	assert.True(t, two.HasChildGroup)
	assert.Empty(t, two.Fields)
	assert.Empty(t, two.Children)
}

func TestParse_TwoGroups(t *testing.T) {
	el := mustParse(t, `div(class="card")(spanNode, "text")`)
	require.True(t, el.HasFieldGroup)
	require.Len(t, el.Fields, 1)
	assert.Equal(t, []string{"spanNode", `"text"`}, childSrcs(el))
}

func TestParse_EmptyFieldsThenChildren(t *testing.T) {
	el := mustParse(t, `div()(spanNode, "text")`)
	assert.Empty(t, el.Fields)
	assert.Equal(t, []string{"spanNode", `"text"`}, childSrcs(el))
}

func TestParse_ChildExpressionsStayOpaque(t *testing.T) {
	el := mustParse(t, `div(el.Span().Child("x"), items[0], f(a, b), "text", 42)`)
	assert.Equal(t, []string{
		`el.Span().Child("x")`,
		"items[0]",
		"f(a, b)",
		`"text"`,
		"42",
	}, childSrcs(el))
}

func TestParse_KeywordsNotReservedOutsideFields(t *testing.T) {
	// As a tag.
	el := mustParse(t, `class`)
	assert.Equal(t, "class", el.Tag)

	// As a child expression.
	el = mustParse(t, `div(class)`)
	assert.Equal(t, []string{"class"}, childSrcs(el))
}

func TestParse_AmbiguityErrorCarriesBothCauses(t *testing.T) {
	_, err := Parse(`div(1 +)`, testBase())
	require.Error(t, err)

	var amb *AmbiguityError
	require.ErrorAs(t, err, &amb)
	require.Error(t, amb.FieldsErr)
	require.Error(t, amb.ChildrenErr)

	// Anchored at the group's opening paren.
	assert.Equal(t, 4, amb.Pos.Column)

	msg := amb.Error()
	assert.Contains(t, msg, "expected attributes or children")
	assert.Contains(t, msg, amb.FieldsErr.Error())
	assert.Contains(t, msg, amb.ChildrenErr.Error())
}

func TestParse_ArityErrorSurvivesTheMerge(t *testing.T) {
	// The failed field interpretation is preserved as a structured cause
	// inside the combined diagnostic.
	_, err := Parse(`div(class=(a, b, c))`, testBase())
	require.Error(t, err)

	var amb *AmbiguityError
	require.ErrorAs(t, err, &amb)
	var arity *TupleArityError
	require.ErrorAs(t, amb.FieldsErr, &arity)
	assert.Equal(t, 3, arity.Got)
}

func TestParse_MalformedFields(t *testing.T) {
	tests := map[string]string{
		"missing equals":     `div(class "card", id="x")`,
		"missing value":      `div(style=)`,
		"missing comma":      `div(a=1 b=2)`,
		"trailing comma":     `div(a=1,)`,
		"non-field non-expr": `div(a=1, +)`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(src, testBase())
			require.Error(t, err)
		})
	}
}

func TestParse_ChildrenTrailingComma(t *testing.T) {
	_, err := Parse(`div()(a, b,)`, testBase())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `expected expression after ","`)
}

func TestParse_UnclosedGroup(t *testing.T) {
	_, err := Parse(`div(class=(x)`, testBase())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unclosed "("`)
}

func TestParse_TrailingTokensAfterElement(t *testing.T) {
	tests := map[string]string{
		"ident":       `div x`,
		"second tag":  `div() span`,
		"punctuation": `div() .`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(src, testBase())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "expected end of input")
		})
	}
}

func TestParse_PositionsAnchorAtBase(t *testing.T) {
	base := lexer.Position{Filename: "page.velt", Line: 12, Column: 30}
	el, err := Parse(`div(id="x")`, base)
	require.NoError(t, err)
	assert.Equal(t, 12, el.TagPos.Line)
	assert.Equal(t, 30, el.TagPos.Column)

	attr := el.Fields[0].(ast.Attr)
	// "id" starts 4 runes into the literal.
	assert.Equal(t, 34, attr.NamePos.Column)
	assert.Equal(t, "page.velt", attr.NamePos.Filename)
}

func TestParse_ErrorsArePositioned(t *testing.T) {
	_, err := Parse(`div(class=(a, b, c))`, testBase())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.velt:1:")
}

func TestParse_InvalidExpressionSurfacesHostMessage(t *testing.T) {
	_, err := Parse(`div()(1 +)`, testBase())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid expression "1 +"`)
}
