package ecmaregex

import (
	"github.com/parserkit/ecmaregex/internal/wtf16"
	"github.com/parserkit/ecmaregex/options"
	"github.com/parserkit/ecmaregex/reporter"
	"github.com/parserkit/ecmaregex/validator"
)

// ValidateLiteral checks a full `/pattern/flags` literal without building an
// AST.
func ValidateLiteral(source []uint16, start, end int, cfg options.Config) *reporter.SyntaxError {
	buf := wtf16.Buffer(source)
	return validator.New(nil, cfg).ValidateLiteral(buf, start, end)
}

// ValidatePattern checks a bare pattern body under the given u/v flags
// without building an AST.
func ValidatePattern(source []uint16, start, end int, unicode, unicodeSets bool, cfg options.Config) *reporter.SyntaxError {
	buf := wtf16.Buffer(source)
	return validator.New(nil, cfg).ValidatePattern(buf, start, end, unicode, unicodeSets, true)
}

// ValidateFlags checks a bare flags string without building an AST.
func ValidateFlags(source []uint16, start, end int, cfg options.Config) *reporter.SyntaxError {
	buf := wtf16.Buffer(source)
	return validator.New(nil, cfg).ValidateFlags(buf, start, end)
}
