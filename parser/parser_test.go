package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parserkit/ecmaregex/ast"
	"github.com/parserkit/ecmaregex/internal/wtf16"
	"github.com/parserkit/ecmaregex/options"
	"github.com/parserkit/ecmaregex/parser"
	"github.com/parserkit/ecmaregex/validator"
)

func parseLiteral(t *testing.T, src string) (*ast.Arena, ast.ID) {
	t.Helper()
	source := wtf16.FromString(src)
	p := parser.New(source, options.Config{})
	v := validator.New(p, options.Config{})
	err := v.ValidateLiteral(source, 0, len(source))
	require.Nil(t, err, "unexpected validation error: %v", err)
	return p.Arena(), p.Root()
}

func TestBackreferenceResolvesToCapturingGroupByIndex(t *testing.T) {
	arena, root := parseLiteral(t, "/(a)\\1/u")

	literal := arena.Get(root).(*ast.RegExpLiteral)
	pattern := arena.Get(literal.Pattern).(*ast.Pattern)
	require.Len(t, pattern.Alternatives, 1)

	alt := arena.Get(pattern.Alternatives[0]).(*ast.Alternative)
	require.Len(t, alt.Elements, 2)

	group, ok := arena.Get(alt.Elements[0]).(*ast.CapturingGroup)
	require.True(t, ok)
	bref, ok := arena.Get(alt.Elements[1]).(*ast.Backreference)
	require.True(t, ok)

	assert.Equal(t, 1, bref.RefIndex)
	assert.False(t, bref.ByName)
	assert.Equal(t, alt.Elements[0], bref.Resolved)
	assert.Equal(t, []ast.ID{alt.Elements[1]}, group.References)
}

func TestNamedBackreferenceResolvesByName(t *testing.T) {
	arena, root := parseLiteral(t, "/(?<year>a)\\k<year>/u")

	literal := arena.Get(root).(*ast.RegExpLiteral)
	pattern := arena.Get(literal.Pattern).(*ast.Pattern)
	alt := arena.Get(pattern.Alternatives[0]).(*ast.Alternative)
	require.Len(t, alt.Elements, 2)

	group := arena.Get(alt.Elements[0]).(*ast.CapturingGroup)
	bref := arena.Get(alt.Elements[1]).(*ast.Backreference)

	assert.True(t, group.HasName)
	assert.Equal(t, "year", group.Name)
	assert.True(t, bref.ByName)
	assert.Equal(t, "year", bref.RefName)
	assert.Equal(t, alt.Elements[0], bref.Resolved)
	assert.Contains(t, group.References, alt.Elements[1])
}

func TestQuantifierWrapsPrecedingElement(t *testing.T) {
	arena, root := parseLiteral(t, "/a{2,5}?/u")

	literal := arena.Get(root).(*ast.RegExpLiteral)
	pattern := arena.Get(literal.Pattern).(*ast.Pattern)
	alt := arena.Get(pattern.Alternatives[0]).(*ast.Alternative)
	require.Len(t, alt.Elements, 1)

	quant, ok := arena.Get(alt.Elements[0]).(*ast.Quantifier)
	require.True(t, ok)
	assert.Equal(t, uint32(2), quant.Min)
	assert.Equal(t, uint32(5), quant.Max)
	assert.False(t, quant.Greedy)

	ch, ok := arena.Get(quant.Element).(*ast.Character)
	require.True(t, ok)
	assert.Equal(t, 'a', ch.Value)
	assert.Equal(t, alt.Elements[0], ch.NodeBase().Parent)
}

func TestUnboundedQuantifierUsesInfinitySentinel(t *testing.T) {
	arena, root := parseLiteral(t, "/a+/u")

	literal := arena.Get(root).(*ast.RegExpLiteral)
	pattern := arena.Get(literal.Pattern).(*ast.Pattern)
	alt := arena.Get(pattern.Alternatives[0]).(*ast.Alternative)
	quant := arena.Get(alt.Elements[0]).(*ast.Quantifier)

	assert.Equal(t, uint32(1), quant.Min)
	assert.Equal(t, ast.Infinity, quant.Max)
}

func TestLegacyCharacterClassRangeDropsHyphenCharacter(t *testing.T) {
	arena, root := parseLiteral(t, "/[a-z]/")

	literal := arena.Get(root).(*ast.RegExpLiteral)
	pattern := arena.Get(literal.Pattern).(*ast.Pattern)
	alt := arena.Get(pattern.Alternatives[0]).(*ast.Alternative)
	class := arena.Get(alt.Elements[0]).(*ast.CharacterClass)
	require.Len(t, class.Elements, 1)

	rng, ok := arena.Get(class.Elements[0]).(*ast.CharacterClassRange)
	require.True(t, ok)
	min := arena.Get(rng.Min).(*ast.Character)
	max := arena.Get(rng.Max).(*ast.Character)
	assert.Equal(t, 'a', min.Value)
	assert.Equal(t, 'z', max.Value)
}

func TestUnicodeSetsIntersectionSplicesExpressionCharacterClass(t *testing.T) {
	arena, root := parseLiteral(t, "/[[a-z]&&[^aeiou]]/v")

	literal := arena.Get(root).(*ast.RegExpLiteral)
	pattern := arena.Get(literal.Pattern).(*ast.Pattern)
	alt := arena.Get(pattern.Alternatives[0]).(*ast.Alternative)
	require.Len(t, alt.Elements, 1)

	exprClass, ok := arena.Get(alt.Elements[0]).(*ast.ExpressionCharacterClass)
	require.True(t, ok, "expected the outer class to be spliced into an ExpressionCharacterClass")
	assert.False(t, exprClass.Negate)

	intersection, ok := arena.Get(exprClass.Expression).(*ast.ClassIntersection)
	require.True(t, ok)

	left, ok := arena.Get(intersection.Left).(*ast.CharacterClass)
	require.True(t, ok)
	right, ok := arena.Get(intersection.Right).(*ast.CharacterClass)
	require.True(t, ok)
	assert.False(t, left.Negate)
	assert.True(t, right.Negate)

	assert.Equal(t, intersection.NodeBase().ID, arena.Get(intersection.Left).NodeBase().Parent)
	assert.Equal(t, exprClass.NodeBase().ID, intersection.NodeBase().Parent)
}

func TestLookbehindAssertionHoldsAlternatives(t *testing.T) {
	arena, root := parseLiteral(t, "/(?<=a)b/u")

	literal := arena.Get(root).(*ast.RegExpLiteral)
	pattern := arena.Get(literal.Pattern).(*ast.Pattern)
	alt := arena.Get(pattern.Alternatives[0]).(*ast.Alternative)
	require.Len(t, alt.Elements, 2)

	assertion, ok := arena.Get(alt.Elements[0]).(*ast.Assertion)
	require.True(t, ok)
	assert.Equal(t, options.AssertionLookbehind, assertion.AssertionKind)
	assert.False(t, assertion.Negate)
	require.Len(t, assertion.Alternatives, 1)

	inner := arena.Get(assertion.Alternatives[0]).(*ast.Alternative)
	require.Len(t, inner.Elements, 1)
	ch := arena.Get(inner.Elements[0]).(*ast.Character)
	assert.Equal(t, 'a', ch.Value)
}

func TestFlagsNodeRecordsEveryFlag(t *testing.T) {
	arena, root := parseLiteral(t, "/a/gimsuy")

	literal := arena.Get(root).(*ast.RegExpLiteral)
	flags := arena.Get(literal.Flags).(*ast.Flags)

	assert.True(t, flags.Global)
	assert.True(t, flags.IgnoreCase)
	assert.True(t, flags.Multiline)
	assert.True(t, flags.DotAll)
	assert.True(t, flags.Unicode)
	assert.True(t, flags.Sticky)
	assert.False(t, flags.UnicodeSets)
}

func TestDisjunctionProducesMultipleAlternatives(t *testing.T) {
	arena, root := parseLiteral(t, "/ab|cd/")

	literal := arena.Get(root).(*ast.RegExpLiteral)
	pattern := arena.Get(literal.Pattern).(*ast.Pattern)
	require.Len(t, pattern.Alternatives, 2)

	first := arena.Get(pattern.Alternatives[0]).(*ast.Alternative)
	second := arena.Get(pattern.Alternatives[1]).(*ast.Alternative)
	assert.Len(t, first.Elements, 2)
	assert.Len(t, second.Elements, 2)
}
