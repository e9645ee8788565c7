// Package ast defines the 18-variant node model this module's parser builds:
// a single arena of nodes addressed by integer id, every inter-node link
// (parent, backreference resolution, capturing-group reference list) a plain
// ID rather than a pointer, so that the cyclic links the grammar requires
// (CapturingGroup.References <-> Backreference.Resolved) are expressible
// without ownership hazards.
package ast

import (
	"github.com/parserkit/ecmaregex/internal/wtf16"
	"github.com/parserkit/ecmaregex/options"
)

// ID is a stable arena index, assigned at allocation and never reused.
type ID int

// NoID marks the absence of a node reference: a root's parent, an
// unresolved Backreference, a class with no buffered set-expression.
const NoID ID = -1

// Infinity is the Quantifier.Max sentinel denoting an unbounded repetition.
const Infinity uint32 = 1<<32 - 1

// NodeKind tags which of the 18 variants a Node value holds.
type NodeKind int

const (
	KindRegExpLiteral NodeKind = iota
	KindPattern
	KindFlags
	KindAlternative
	KindGroup
	KindCapturingGroup
	KindAssertion
	KindQuantifier
	KindCharacterClass
	KindCharacterClassRange
	KindExpressionCharacterClass
	KindClassIntersection
	KindClassSubtraction
	KindClassStringDisjunction
	KindStringAlternative
	KindCharacter
	KindCharacterSet
	KindBackreference
)

// Base is the header every node variant embeds: arena id, optional parent,
// half-open code-unit span, and the exact source slice it spans.
type Base struct {
	ID     ID
	Parent ID
	Start  int
	End    int
	Raw    wtf16.Buffer
}

// NodeBase returns the embedding node's header, promoted by every variant
// that embeds Base.
func (b *Base) NodeBase() *Base { return b }

// Node is implemented by every AST variant; Kind lets callers switch on the
// concrete type without a type assertion chain themselves.
type Node interface {
	NodeBase() *Base
	Kind() NodeKind
}

type RegExpLiteral struct {
	Base
	Pattern ID
	Flags   ID
}

func (*RegExpLiteral) Kind() NodeKind { return KindRegExpLiteral }

type Pattern struct {
	Base
	Alternatives []ID
}

func (*Pattern) Kind() NodeKind { return KindPattern }

type Flags struct {
	Base
	Global      bool
	IgnoreCase  bool
	Multiline   bool
	Unicode     bool
	Sticky      bool
	DotAll      bool
	HasIndices  bool
	UnicodeSets bool
}

func (*Flags) Kind() NodeKind { return KindFlags }

type Alternative struct {
	Base
	Elements []ID
}

func (*Alternative) Kind() NodeKind { return KindAlternative }

type Group struct {
	Base
	Alternatives []ID
}

func (*Group) Kind() NodeKind { return KindGroup }

// CapturingGroup's References list is populated at on_pattern_leave, once
// every Backreference in the pattern has been matched to its target group.
type CapturingGroup struct {
	Base
	Name         string
	HasName      bool
	Alternatives []ID
	References   []ID
}

func (*CapturingGroup) Kind() NodeKind { return KindCapturingGroup }

// Assertion's Alternatives is only populated for the two lookaround kinds;
// Negate is meaningful only for lookaround and word-boundary assertions.
type Assertion struct {
	Base
	AssertionKind options.AssertionKind
	Negate        bool
	HasNegate     bool
	Alternatives  []ID
}

func (*Assertion) Kind() NodeKind { return KindAssertion }

// Quantifier.Max == Infinity denotes an unbounded repetition.
type Quantifier struct {
	Base
	Min     uint32
	Max     uint32
	Greedy  bool
	Element ID
}

func (*Quantifier) Kind() NodeKind { return KindQuantifier }

type CharacterClass struct {
	Base
	UnicodeSets bool
	Negate      bool
	Elements    []ID
}

func (*CharacterClass) Kind() NodeKind { return KindCharacterClass }

// CharacterClassRange's Min/Max are both ids of Character nodes.
type CharacterClassRange struct {
	Base
	Min ID
	Max ID
}

func (*CharacterClassRange) Kind() NodeKind { return KindCharacterClassRange }

// ExpressionCharacterClass replaces a CharacterClass in place once its
// contents turn out to be a set expression (intersection/subtraction); see
// the parser's splice protocol.
type ExpressionCharacterClass struct {
	Base
	Negate     bool
	Expression ID
}

func (*ExpressionCharacterClass) Kind() NodeKind { return KindExpressionCharacterClass }

type ClassIntersection struct {
	Base
	Left  ID
	Right ID
}

func (*ClassIntersection) Kind() NodeKind { return KindClassIntersection }

type ClassSubtraction struct {
	Base
	Left  ID
	Right ID
}

func (*ClassSubtraction) Kind() NodeKind { return KindClassSubtraction }

type ClassStringDisjunction struct {
	Base
	Alternatives []ID
}

func (*ClassStringDisjunction) Kind() NodeKind { return KindClassStringDisjunction }

type StringAlternative struct {
	Base
	Elements []ID
}

func (*StringAlternative) Kind() NodeKind { return KindStringAlternative }

type Character struct {
	Base
	Value rune
}

func (*Character) Kind() NodeKind { return KindCharacter }

// CharacterSet covers `.`, `\d\D\s\S\w\W`, and `\p{...}`/`\P{...}`; Key/Value/
// HasValue/Strings are only meaningful for options.CharacterProperty.
type CharacterSet struct {
	Base
	SetKind  options.CharacterKind
	Negate   bool
	Strings  bool
	Key      string
	Value    string
	HasValue bool
}

func (*CharacterSet) Kind() NodeKind { return KindCharacterSet }

type Backreference struct {
	Base
	RefIndex int
	RefName  string
	ByName   bool
	Resolved ID
}

func (*Backreference) Kind() NodeKind { return KindBackreference }
