// Package ecmaregex parses and validates ECMAScript regular-expression
// source text, wiring the validator's grammar recognition to the parser's
// AST construction. An arena handle alone cannot be walked without the
// arena that owns it, so every Parse* entry point returns the pair.
package ecmaregex

import (
	"github.com/parserkit/ecmaregex/ast"
	"github.com/parserkit/ecmaregex/internal/wtf16"
	"github.com/parserkit/ecmaregex/options"
	"github.com/parserkit/ecmaregex/parser"
	"github.com/parserkit/ecmaregex/reporter"
	"github.com/parserkit/ecmaregex/validator"
)

// Parse parses a full `/pattern/flags` literal. The returned root ast.ID
// addresses a RegExpLiteral in the returned arena.
func Parse(source []uint16, start, end int, cfg options.Config) (*ast.Arena, ast.ID, *reporter.SyntaxError) {
	buf := wtf16.Buffer(source)
	p := parser.New(buf, cfg)
	v := validator.New(p, cfg)
	if err := v.ValidateLiteral(buf, start, end); err != nil {
		return nil, ast.NoID, err
	}
	return p.Arena(), p.Root(), nil
}

// ParsePattern parses a bare pattern body under the given u/v flags. The
// returned root ast.ID addresses a Pattern.
func ParsePattern(source []uint16, start, end int, unicode, unicodeSets bool, cfg options.Config) (*ast.Arena, ast.ID, *reporter.SyntaxError) {
	buf := wtf16.Buffer(source)
	p := parser.New(buf, cfg)
	v := validator.New(p, cfg)
	if err := v.ValidatePattern(buf, start, end, unicode, unicodeSets, true); err != nil {
		return nil, ast.NoID, err
	}
	return p.Arena(), p.Root(), nil
}

// ParseFlags parses a bare flags string. The returned root ast.ID addresses
// a Flags node.
func ParseFlags(source []uint16, start, end int, cfg options.Config) (*ast.Arena, ast.ID, *reporter.SyntaxError) {
	buf := wtf16.Buffer(source)
	p := parser.New(buf, cfg)
	v := validator.New(p, cfg)
	if err := v.ValidateFlags(buf, start, end); err != nil {
		return nil, ast.NoID, err
	}
	return p.Arena(), p.Root(), nil
}
