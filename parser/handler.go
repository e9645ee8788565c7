package parser

import (
	"github.com/parserkit/ecmaregex/ast"
	"github.com/parserkit/ecmaregex/options"
	"github.com/parserkit/ecmaregex/resolve"
)

// OnLiteralEnter starts a RegExpLiteral node; Pattern and Flags are attached
// to it as their own enter events fire.
func (p *Parser) OnLiteralEnter(start int) {
	id := p.arena.Alloc(&ast.RegExpLiteral{Base: ast.Base{Start: start, Parent: ast.NoID}})
	p.literalID = id
	p.rootID = id
}

func (p *Parser) OnLiteralLeave(start, end int) {
	n := p.arena.Get(p.literalID).(*ast.RegExpLiteral)
	n.End = end
	n.Raw = p.raw(start, end)
}

func (p *Parser) OnRegExpFlags(start, end int, flags options.Flags) {
	id := p.arena.Alloc(&ast.Flags{
		Base:        ast.Base{Start: start, End: end, Parent: p.literalID, Raw: p.raw(start, end)},
		Global:      flags.Global,
		IgnoreCase:  flags.IgnoreCase,
		Multiline:   flags.Multiline,
		Unicode:     flags.Unicode,
		Sticky:      flags.Sticky,
		DotAll:      flags.DotAll,
		HasIndices:  flags.HasIndices,
		UnicodeSets: flags.UnicodeSets,
	})
	p.flagsID = id
	if p.literalID != ast.NoID {
		p.arena.Get(p.literalID).(*ast.RegExpLiteral).Flags = id
	} else {
		p.rootID = id
	}
}

// OnPatternEnter begins a fresh pattern parse. The validator's one retry
// after it turns on named-group mode re-fires this event; every piece of pattern-scoped
// state is reset so the second pass starts clean and the first pass's
// now-unreachable nodes are simply left behind in the arena.
func (p *Parser) OnPatternEnter(start int) {
	parent := ast.NoID
	if p.literalID != ast.NoID {
		parent = p.literalID
	}
	id := p.arena.Alloc(&ast.Pattern{Base: ast.Base{Start: start, Parent: parent}})
	p.patternID = id
	if p.literalID != ast.NoID {
		p.arena.Get(p.literalID).(*ast.RegExpLiteral).Pattern = id
	} else {
		p.rootID = id
	}

	p.capturingGroups = nil
	p.pendingBackreferences = nil
	p.groupNames = resolve.New()
	p.exprBuffer = map[ast.ID]ast.ID{}
	p.stack = p.stack[:0]
	p.push(id)
}

func (p *Parser) OnPatternLeave(start, end int) {
	id := p.pop()
	n := p.arena.Get(id).(*ast.Pattern)
	n.End = end
	n.Raw = p.raw(start, end)

	for _, brefID := range p.pendingBackreferences {
		bref := p.arena.Get(brefID).(*ast.Backreference)

		var groupID ast.ID
		var ok bool
		if bref.ByName {
			groupID, ok = p.groupNames.Lookup(bref.RefName)
		} else {
			idx := bref.RefIndex - 1
			if idx >= 0 && idx < len(p.capturingGroups) {
				groupID = p.capturingGroups[idx]
				ok = true
			}
		}
		if !ok {
			panic("parser: backreference with no matching capturing group")
		}

		bref.Resolved = groupID
		group := p.arena.Get(groupID).(*ast.CapturingGroup)
		group.References = append(group.References, brefID)
	}
}

func (p *Parser) OnDisjunctionEnter(start int) {}
func (p *Parser) OnDisjunctionLeave(start, end int) {}

func (p *Parser) OnAlternativeEnter(start, index int) {
	parent := p.current()
	id := p.arena.Alloc(&ast.Alternative{Base: ast.Base{Start: start, Parent: parent}})
	p.appendElement(parent, id)
	p.push(id)
}

func (p *Parser) OnAlternativeLeave(start, end, index int) {
	id := p.pop()
	n := p.arena.Get(id).(*ast.Alternative)
	n.End = end
	n.Raw = p.raw(start, end)
}

func (p *Parser) OnGroupEnter(start int) {
	parent := p.current()
	id := p.arena.Alloc(&ast.Group{Base: ast.Base{Start: start, Parent: parent}})
	p.appendElement(parent, id)
	p.push(id)
}

func (p *Parser) OnGroupLeave(start, end int) {
	id := p.pop()
	n := p.arena.Get(id).(*ast.Group)
	n.End = end
	n.Raw = p.raw(start, end)
}

func (p *Parser) OnCapturingGroupEnter(start int, name string, hasName bool) {
	parent := p.current()
	id := p.arena.Alloc(&ast.CapturingGroup{
		Base:    ast.Base{Start: start, Parent: parent},
		Name:    name,
		HasName: hasName,
	})
	p.appendElement(parent, id)
	p.push(id)
	p.capturingGroups = append(p.capturingGroups, id)
	if hasName {
		p.groupNames.Declare(name, id)
	}
}

func (p *Parser) OnCapturingGroupLeave(start, end int, name string, hasName bool) {
	id := p.pop()
	n := p.arena.Get(id).(*ast.CapturingGroup)
	n.End = end
	n.Raw = p.raw(start, end)
}

func (p *Parser) OnQuantifier(start, end, min, max int, greedy bool) {
	parent := p.current()
	elementID := p.popLastElement(parent)

	id := p.arena.Alloc(&ast.Quantifier{
		Base:    ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		Min:     uint32(min),
		Max:     uint32(max),
		Greedy:  greedy,
		Element: elementID,
	})
	p.reparent(elementID, id)
	p.appendElement(parent, id)
}

func (p *Parser) OnLookaroundAssertionEnter(start int, kind options.AssertionKind, negate bool) {
	parent := p.current()
	id := p.arena.Alloc(&ast.Assertion{
		Base:          ast.Base{Start: start, Parent: parent},
		AssertionKind: kind,
		Negate:        negate,
		HasNegate:     true,
	})
	p.appendElement(parent, id)
	p.push(id)
}

func (p *Parser) OnLookaroundAssertionLeave(start, end int, kind options.AssertionKind, negate bool) {
	id := p.pop()
	n := p.arena.Get(id).(*ast.Assertion)
	n.End = end
	n.Raw = p.raw(start, end)
}

func (p *Parser) OnEdgeAssertion(start, end int, kind options.AssertionKind) {
	parent := p.current()
	id := p.arena.Alloc(&ast.Assertion{
		Base:          ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		AssertionKind: kind,
	})
	p.appendElement(parent, id)
}

func (p *Parser) OnWordBoundaryAssertion(start, end int, kind options.AssertionKind, negate bool) {
	parent := p.current()
	id := p.arena.Alloc(&ast.Assertion{
		Base:          ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		AssertionKind: kind,
		Negate:        negate,
		HasNegate:     true,
	})
	p.appendElement(parent, id)
}

func (p *Parser) OnAnyCharacterSet(start, end int, kind options.CharacterKind) {
	parent := p.current()
	id := p.arena.Alloc(&ast.CharacterSet{
		Base:    ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		SetKind: kind,
	})
	p.appendElement(parent, id)
}

func (p *Parser) OnEscapeCharacterSet(start, end int, kind options.CharacterKind, negate bool) {
	parent := p.current()
	id := p.arena.Alloc(&ast.CharacterSet{
		Base:    ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		SetKind: kind,
		Negate:  negate,
	})
	p.appendElement(parent, id)
}

func (p *Parser) OnUnicodePropertyCharacterSet(start, end int, kind options.CharacterKind, key, value string, hasValue, negate, ofStrings bool) {
	parent := p.current()
	id := p.arena.Alloc(&ast.CharacterSet{
		Base:     ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		SetKind:  kind,
		Key:      key,
		Value:    value,
		HasValue: hasValue,
		Negate:   negate,
		Strings:  ofStrings,
	})
	p.appendElement(parent, id)
}

func (p *Parser) OnCharacter(start, end int, value rune) {
	parent := p.current()
	id := p.arena.Alloc(&ast.Character{
		Base:  ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		Value: value,
	})
	p.appendElement(parent, id)
}

func (p *Parser) OnBackreference(start, end int, ref options.CapturingGroupKey) {
	parent := p.current()
	id := p.arena.Alloc(&ast.Backreference{
		Base:     ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		RefIndex: ref.Index,
		RefName:  ref.Name,
		ByName:   ref.ByName,
		Resolved: ast.NoID,
	})
	p.appendElement(parent, id)
	p.pendingBackreferences = append(p.pendingBackreferences, id)
}

func (p *Parser) OnCharacterClassEnter(start int, negate, unicodeSets bool) {
	parent := p.current()
	id := p.arena.Alloc(&ast.CharacterClass{
		Base:        ast.Base{Start: start, Parent: parent},
		Negate:      negate,
		UnicodeSets: unicodeSets,
	})
	p.appendElement(parent, id)
	p.push(id)
}

func (p *Parser) OnCharacterClassLeave(start, end int, negate bool) {
	id := p.pop()
	n := p.arena.Get(id).(*ast.CharacterClass)
	n.End = end
	n.Raw = p.raw(start, end)

	if bufferedID, ok := p.exprBuffer[id]; ok {
		delete(p.exprBuffer, id)
		parent := n.Parent
		p.arena.Replace(id, &ast.ExpressionCharacterClass{
			Base:       ast.Base{Start: n.Start, End: end, Parent: parent, Raw: n.Raw},
			Negate:     negate,
			Expression: bufferedID,
		})
		p.reparent(bufferedID, id)
	}
}

func (p *Parser) OnCharacterClassRange(start, end int, min, max rune) {
	parent := p.current()
	unicodeSets := p.arena.Get(parent).(*ast.CharacterClass).UnicodeSets

	maxID := p.popLastElement(parent)
	if !unicodeSets {
		p.popLastElement(parent) // the literal hyphen Character between min and max
	}
	minID := p.popLastElement(parent)

	id := p.arena.Alloc(&ast.CharacterClassRange{
		Base: ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		Min:  minID,
		Max:  maxID,
	})
	p.reparent(minID, id)
	p.reparent(maxID, id)
	p.appendElement(parent, id)
}

func (p *Parser) OnClassIntersection(start, end int) {
	parent := p.current()
	rightID := p.popLastElement(parent)

	leftID, buffered := p.exprBuffer[parent]
	if !buffered {
		leftID = p.popLastElement(parent)
	}

	id := p.arena.Alloc(&ast.ClassIntersection{
		Base:  ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		Left:  leftID,
		Right: rightID,
	})
	p.reparent(leftID, id)
	p.reparent(rightID, id)
	p.exprBuffer[parent] = id
}

func (p *Parser) OnClassSubtraction(start, end int) {
	parent := p.current()
	rightID := p.popLastElement(parent)

	leftID, buffered := p.exprBuffer[parent]
	if !buffered {
		leftID = p.popLastElement(parent)
	}

	id := p.arena.Alloc(&ast.ClassSubtraction{
		Base:  ast.Base{Start: start, End: end, Parent: parent, Raw: p.raw(start, end)},
		Left:  leftID,
		Right: rightID,
	})
	p.reparent(leftID, id)
	p.reparent(rightID, id)
	p.exprBuffer[parent] = id
}

func (p *Parser) OnClassStringDisjunctionEnter(start int) {
	parent := p.current()
	id := p.arena.Alloc(&ast.ClassStringDisjunction{Base: ast.Base{Start: start, Parent: parent}})
	p.appendElement(parent, id)
	p.push(id)
}

func (p *Parser) OnClassStringDisjunctionLeave(start, end int) {
	id := p.pop()
	n := p.arena.Get(id).(*ast.ClassStringDisjunction)
	n.End = end
	n.Raw = p.raw(start, end)
}

func (p *Parser) OnStringAlternativeEnter(start, index int) {
	parent := p.current()
	id := p.arena.Alloc(&ast.StringAlternative{Base: ast.Base{Start: start, Parent: parent}})
	p.appendElement(parent, id)
	p.push(id)
}

func (p *Parser) OnStringAlternativeLeave(start, end, index int) {
	id := p.pop()
	n := p.arena.Get(id).(*ast.StringAlternative)
	n.End = end
	n.Raw = p.raw(start, end)
}
