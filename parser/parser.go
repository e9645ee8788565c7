// Package parser implements the concrete options.Handler that builds an AST
// from validator events: a node arena, a "current appendable parent" stack,
// and the two-phase backreference resolution and character-class splicing
// the grammar's forward-reference and set-expression rules require.
package parser

import (
	"github.com/parserkit/ecmaregex/ast"
	"github.com/parserkit/ecmaregex/internal/wtf16"
	"github.com/parserkit/ecmaregex/options"
	"github.com/parserkit/ecmaregex/resolve"
)

// Parser accumulates AST nodes into an arena as the validator recognizes
// grammar productions. A Parser is single-use: build a fresh one per
// Parse/ParsePattern/ParseFlags call.
type Parser struct {
	arena  *ast.Arena
	source wtf16.Buffer
	cfg    options.Config

	stack []ast.ID

	literalID ast.ID
	patternID ast.ID
	flagsID   ast.ID
	rootID    ast.ID

	capturingGroups       []ast.ID
	pendingBackreferences []ast.ID
	groupNames            *resolve.Table
	exprBuffer            map[ast.ID]ast.ID
}

// New returns a Parser that slices raw node text from source.
func New(source wtf16.Buffer, cfg options.Config) *Parser {
	return &Parser{
		arena:     ast.NewArena(),
		source:    source,
		cfg:       cfg.Resolve(),
		literalID: ast.NoID,
		patternID: ast.NoID,
		flagsID:   ast.NoID,
		rootID:    ast.NoID,
	}
}

var _ options.Handler = (*Parser)(nil)

// Arena returns the node arena being built.
func (p *Parser) Arena() *ast.Arena { return p.arena }

// Root returns the id of the outermost node produced: a RegExpLiteral for a
// literal parse, a Pattern for a bare-pattern parse, or a Flags node for a
// bare-flags parse. It is ast.NoID until the matching enter event fires.
func (p *Parser) Root() ast.ID { return p.rootID }

func (p *Parser) raw(start, end int) wtf16.Buffer {
	return p.source.Slice(start, end)
}

func (p *Parser) push(id ast.ID) { p.stack = append(p.stack, id) }

func (p *Parser) pop() ast.ID {
	id := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return id
}

func (p *Parser) current() ast.ID { return p.stack[len(p.stack)-1] }

// appendElement appends childID to the appropriate container field of
// parentID, the Go equivalent of the reference implementation dispatching on
// the enum tag of the current node.
func (p *Parser) appendElement(parentID, childID ast.ID) {
	switch n := p.arena.Get(parentID).(type) {
	case *ast.Pattern:
		n.Alternatives = append(n.Alternatives, childID)
	case *ast.Group:
		n.Alternatives = append(n.Alternatives, childID)
	case *ast.CapturingGroup:
		n.Alternatives = append(n.Alternatives, childID)
	case *ast.Assertion:
		n.Alternatives = append(n.Alternatives, childID)
	case *ast.Alternative:
		n.Elements = append(n.Elements, childID)
	case *ast.CharacterClass:
		n.Elements = append(n.Elements, childID)
	case *ast.ClassStringDisjunction:
		n.Alternatives = append(n.Alternatives, childID)
	case *ast.StringAlternative:
		n.Elements = append(n.Elements, childID)
	default:
		panic("parser: no element container on current node")
	}
}

// popLastElement removes and returns the last child appended to parentID,
// used by quantifier-wrapping, character-class-range, and class-set
// operator handling to reclaim an already-emitted element.
func (p *Parser) popLastElement(parentID ast.ID) ast.ID {
	switch n := p.arena.Get(parentID).(type) {
	case *ast.Alternative:
		last := n.Elements[len(n.Elements)-1]
		n.Elements = n.Elements[:len(n.Elements)-1]
		return last
	case *ast.CharacterClass:
		last := n.Elements[len(n.Elements)-1]
		n.Elements = n.Elements[:len(n.Elements)-1]
		return last
	default:
		panic("parser: no element container to pop on current node")
	}
}

func (p *Parser) reparent(childID, newParentID ast.ID) {
	p.arena.Get(childID).NodeBase().Parent = newParentID
}
