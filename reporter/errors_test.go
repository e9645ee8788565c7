package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parserkit/ecmaregex/internal/wtf16"
)

func TestNewLiteralFrame(t *testing.T) {
	src := wtf16.FromString(" /[/ ")
	err := New(Context{Kind: SourceLiteral, Source: src, Start: 1, End: 4}, 4, "Unterminated character class")
	assert.Equal(t, "Invalid regular expression: /[/: Unterminated character class", err.Message)
	assert.Equal(t, 4, err.Index)
}

func TestNewPatternFrame(t *testing.T) {
	src := wtf16.FromString("ab")
	err := New(Context{Kind: SourcePattern, Source: src, Start: 0, End: 2, Unicode: true, UnicodeSets: true}, 3, "Invalid regular expression flags")
	assert.Equal(t, "Invalid regular expression: /ab/uv: Invalid regular expression flags", err.Message)
	assert.Equal(t, 3, err.Index)
}

func TestNewNoFrame(t *testing.T) {
	err := New(Context{Kind: SourceNone}, 0, "Invalid flag '%c'", 'a')
	assert.Equal(t, "Invalid regular expression: Invalid flag 'a'", err.Message)
}

func TestNewEmptyLiteralOmitsFrame(t *testing.T) {
	src := wtf16.FromString("")
	err := New(Context{Kind: SourceLiteral, Source: src, Start: 0, End: 0}, 0, "boom")
	assert.Equal(t, "Invalid regular expression: boom", err.Message)
}

func TestErrorInterface(t *testing.T) {
	var err error = New(Context{Kind: SourceNone}, 0, "boom")
	assert.EqualError(t, err, "Invalid regular expression: boom")
}
