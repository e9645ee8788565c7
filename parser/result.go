package parser

import "github.com/parserkit/ecmaregex/ast"

// Result bundles the arena and root produced by a single Parse call.
type Result struct {
	Arena *ast.Arena
	Root  ast.ID
}

// Result returns the arena and root built so far. Call only after the
// validator pass that drives this Parser has returned without error.
func (p *Parser) Result() Result {
	return Result{Arena: p.arena, Root: p.rootID}
}

// Pattern returns the id of the most recently completed Pattern node.
func (p *Parser) Pattern() ast.ID { return p.patternID }

// Flags returns the id of the most recently completed Flags node.
func (p *Parser) Flags() ast.ID { return p.flagsID }
