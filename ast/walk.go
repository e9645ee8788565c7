package ast

// Visitor receives one enter/leave pair per node Walk visits, in the
// §4.5 child order for composite nodes and back-to-back for leaves. All
// methods have a no-op default via NoopVisitor so callers implement only the
// events they care about, the same capability-set shape as options.Handler.
type Visitor interface {
	OnRegExpLiteralEnter(id ID)
	OnRegExpLiteralLeave(id ID)
	OnPatternEnter(id ID)
	OnPatternLeave(id ID)
	OnFlagsEnter(id ID)
	OnFlagsLeave(id ID)
	OnAlternativeEnter(id ID)
	OnAlternativeLeave(id ID)
	OnGroupEnter(id ID)
	OnGroupLeave(id ID)
	OnCapturingGroupEnter(id ID)
	OnCapturingGroupLeave(id ID)
	OnAssertionEnter(id ID)
	OnAssertionLeave(id ID)
	OnQuantifierEnter(id ID)
	OnQuantifierLeave(id ID)
	OnCharacterClassEnter(id ID)
	OnCharacterClassLeave(id ID)
	OnCharacterClassRangeEnter(id ID)
	OnCharacterClassRangeLeave(id ID)
	OnExpressionCharacterClassEnter(id ID)
	OnExpressionCharacterClassLeave(id ID)
	OnClassIntersectionEnter(id ID)
	OnClassIntersectionLeave(id ID)
	OnClassSubtractionEnter(id ID)
	OnClassSubtractionLeave(id ID)
	OnClassStringDisjunctionEnter(id ID)
	OnClassStringDisjunctionLeave(id ID)
	OnStringAlternativeEnter(id ID)
	OnStringAlternativeLeave(id ID)
	OnCharacterEnter(id ID)
	OnCharacterLeave(id ID)
	OnCharacterSetEnter(id ID)
	OnCharacterSetLeave(id ID)
	OnBackreferenceEnter(id ID)
	OnBackreferenceLeave(id ID)
}

// NoopVisitor implements Visitor with every method a no-op. Embed it to
// override only the callbacks a particular walk needs.
type NoopVisitor struct{}

func (NoopVisitor) OnRegExpLiteralEnter(ID)           {}
func (NoopVisitor) OnRegExpLiteralLeave(ID)           {}
func (NoopVisitor) OnPatternEnter(ID)                 {}
func (NoopVisitor) OnPatternLeave(ID)                 {}
func (NoopVisitor) OnFlagsEnter(ID)                   {}
func (NoopVisitor) OnFlagsLeave(ID)                   {}
func (NoopVisitor) OnAlternativeEnter(ID)              {}
func (NoopVisitor) OnAlternativeLeave(ID)              {}
func (NoopVisitor) OnGroupEnter(ID)                   {}
func (NoopVisitor) OnGroupLeave(ID)                   {}
func (NoopVisitor) OnCapturingGroupEnter(ID)           {}
func (NoopVisitor) OnCapturingGroupLeave(ID)           {}
func (NoopVisitor) OnAssertionEnter(ID)                {}
func (NoopVisitor) OnAssertionLeave(ID)                {}
func (NoopVisitor) OnQuantifierEnter(ID)               {}
func (NoopVisitor) OnQuantifierLeave(ID)               {}
func (NoopVisitor) OnCharacterClassEnter(ID)           {}
func (NoopVisitor) OnCharacterClassLeave(ID)           {}
func (NoopVisitor) OnCharacterClassRangeEnter(ID)      {}
func (NoopVisitor) OnCharacterClassRangeLeave(ID)      {}
func (NoopVisitor) OnExpressionCharacterClassEnter(ID) {}
func (NoopVisitor) OnExpressionCharacterClassLeave(ID) {}
func (NoopVisitor) OnClassIntersectionEnter(ID)        {}
func (NoopVisitor) OnClassIntersectionLeave(ID)        {}
func (NoopVisitor) OnClassSubtractionEnter(ID)         {}
func (NoopVisitor) OnClassSubtractionLeave(ID)         {}
func (NoopVisitor) OnClassStringDisjunctionEnter(ID)   {}
func (NoopVisitor) OnClassStringDisjunctionLeave(ID)   {}
func (NoopVisitor) OnStringAlternativeEnter(ID)        {}
func (NoopVisitor) OnStringAlternativeLeave(ID)        {}
func (NoopVisitor) OnCharacterEnter(ID)                {}
func (NoopVisitor) OnCharacterLeave(ID)                {}
func (NoopVisitor) OnCharacterSetEnter(ID)             {}
func (NoopVisitor) OnCharacterSetLeave(ID)             {}
func (NoopVisitor) OnBackreferenceEnter(ID)            {}
func (NoopVisitor) OnBackreferenceLeave(ID)            {}

var _ Visitor = NoopVisitor{}

// Walk performs a depth-first, left-to-right traversal of root and its
// descendants in the arena, calling the matching enter/leave pair on v for
// every node per §4.5's child order. Walk holds no exclusive borrow on the
// arena across a callback: v is free to read or extend the arena.
func Walk(arena *Arena, root ID, v Visitor) {
	if root == NoID {
		return
	}
	switch n := arena.Get(root).(type) {
	case *RegExpLiteral:
		v.OnRegExpLiteralEnter(root)
		Walk(arena, n.Pattern, v)
		Walk(arena, n.Flags, v)
		v.OnRegExpLiteralLeave(root)
	case *Pattern:
		v.OnPatternEnter(root)
		walkAll(arena, n.Alternatives, v)
		v.OnPatternLeave(root)
	case *Flags:
		v.OnFlagsEnter(root)
		v.OnFlagsLeave(root)
	case *Alternative:
		v.OnAlternativeEnter(root)
		walkAll(arena, n.Elements, v)
		v.OnAlternativeLeave(root)
	case *Group:
		v.OnGroupEnter(root)
		walkAll(arena, n.Alternatives, v)
		v.OnGroupLeave(root)
	case *CapturingGroup:
		v.OnCapturingGroupEnter(root)
		walkAll(arena, n.Alternatives, v)
		v.OnCapturingGroupLeave(root)
	case *Assertion:
		v.OnAssertionEnter(root)
		walkAll(arena, n.Alternatives, v)
		v.OnAssertionLeave(root)
	case *Quantifier:
		v.OnQuantifierEnter(root)
		Walk(arena, n.Element, v)
		v.OnQuantifierLeave(root)
	case *CharacterClass:
		v.OnCharacterClassEnter(root)
		walkAll(arena, n.Elements, v)
		v.OnCharacterClassLeave(root)
	case *CharacterClassRange:
		v.OnCharacterClassRangeEnter(root)
		Walk(arena, n.Min, v)
		Walk(arena, n.Max, v)
		v.OnCharacterClassRangeLeave(root)
	case *ExpressionCharacterClass:
		v.OnExpressionCharacterClassEnter(root)
		Walk(arena, n.Expression, v)
		v.OnExpressionCharacterClassLeave(root)
	case *ClassIntersection:
		v.OnClassIntersectionEnter(root)
		Walk(arena, n.Left, v)
		Walk(arena, n.Right, v)
		v.OnClassIntersectionLeave(root)
	case *ClassSubtraction:
		v.OnClassSubtractionEnter(root)
		Walk(arena, n.Left, v)
		Walk(arena, n.Right, v)
		v.OnClassSubtractionLeave(root)
	case *ClassStringDisjunction:
		v.OnClassStringDisjunctionEnter(root)
		walkAll(arena, n.Alternatives, v)
		v.OnClassStringDisjunctionLeave(root)
	case *StringAlternative:
		v.OnStringAlternativeEnter(root)
		walkAll(arena, n.Elements, v)
		v.OnStringAlternativeLeave(root)
	case *Character:
		v.OnCharacterEnter(root)
		v.OnCharacterLeave(root)
	case *CharacterSet:
		v.OnCharacterSetEnter(root)
		v.OnCharacterSetLeave(root)
	case *Backreference:
		v.OnBackreferenceEnter(root)
		v.OnBackreferenceLeave(root)
	}
}

func walkAll(arena *Arena, ids []ID, v Visitor) {
	for _, id := range ids {
		Walk(arena, id, v)
	}
}
