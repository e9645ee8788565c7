package ecmaregex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/parserkit/ecmaregex"
	"github.com/parserkit/ecmaregex/ast"
	"github.com/parserkit/ecmaregex/options"
)

func TestParseLiteralBuildsRegExpLiteral(t *testing.T) {
	source := toUTF16("/(a)\\1/u")

	arena, root, err := ecmaregex.Parse(source, 0, len(source), options.Config{})
	require.Nil(t, err)
	require.NotNil(t, arena)

	literal, ok := arena.Get(root).(*ast.RegExpLiteral)
	require.True(t, ok)
	pattern := arena.Get(literal.Pattern).(*ast.Pattern)
	assert.Len(t, pattern.Alternatives, 1)
}

func TestParseLiteralReturnsSyntaxErrorOnInvalidPattern(t *testing.T) {
	source := toUTF16("/(a/u")

	arena, root, err := ecmaregex.Parse(source, 0, len(source), options.Config{})
	require.NotNil(t, err)
	assert.Nil(t, arena)
	assert.Equal(t, ast.NoID, root)
	assert.Contains(t, err.Message, "Invalid regular expression:")
}

func TestValidatePatternAcceptsUnicodePropertyEscape(t *testing.T) {
	source := toUTF16("\\p{Script=Greek}")
	err := ecmaregex.ValidatePattern(source, 0, len(source), true, false, options.Config{})
	assert.Nil(t, err)
}

func TestValidateFlagsRejectsDuplicateFlag(t *testing.T) {
	source := toUTF16("gg")
	err := ecmaregex.ValidateFlags(source, 0, len(source), options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Invalid regular expression")
}

// TestConformanceSuiteRunsCasesConcurrently exercises a table of independent
// literals the way the teacher's own multi-compile tests do: each case gets
// its own goroutine under one errgroup; failures are reported through
// t.Errorf and do not stop the other cases.
func TestConformanceSuiteRunsCasesConcurrently(t *testing.T) {
	cases := []struct {
		name    string
		literal string
		wantErr bool
	}{
		{"simple", "/abc/", false},
		{"named-group", "/(?<year>[0-9]{4})-(?<month>[0-9]{2})/u", false},
		{"lookbehind", "/(?<=\\$)\\d+/u", false},
		{"unicode-sets-subtraction", "/[[a-z]--[aeiou]]/v", false},
		{"class-string-disjunction", "/[\\q{abc|d}]/v", false},
		{"unterminated-class", "/[abc/", true},
		{"nothing-to-repeat", "/*abc/", true},
		{"both-unicode-flags", "/abc/uv", true},
	}

	grp, _ := errgroup.WithContext(context.Background())
	for _, tc := range cases {
		tc := tc
		grp.Go(func() error {
			source := toUTF16(tc.literal)
			_, _, err := ecmaregex.Parse(source, 0, len(source), options.Config{})
			if tc.wantErr && err == nil {
				t.Errorf("%s: expected an error, got none", tc.name)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("%s: unexpected error: %v", tc.name, err)
			}
			return nil
		})
	}
	require.NoError(t, grp.Wait())
}

func toUTF16(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xffff {
			r -= 0x10000
			out = append(out, uint16(0xd800+(r>>10)), uint16(0xdc00+(r&0x3ff)))
			continue
		}
		out = append(out, uint16(r))
	}
	return out
}
