package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parserkit/ecmaregex/internal/wtf16"
	"github.com/parserkit/ecmaregex/options"
)

func validateLiteral(t *testing.T, literal string, cfg options.Config) *wrappedError {
	t.Helper()
	src := wtf16.FromString(literal)
	v := New(options.NoopHandler{}, cfg)
	err := v.ValidateLiteral(src, 0, len(src))
	if err == nil {
		return nil
	}
	return &wrappedError{message: err.Message, index: err.Index}
}

func validatePattern(t *testing.T, pattern string, unicode, unicodeSets bool, cfg options.Config) *wrappedError {
	t.Helper()
	src := wtf16.FromString(pattern)
	v := New(options.NoopHandler{}, cfg)
	err := v.ValidatePattern(src, 0, len(src), unicode, unicodeSets, true)
	if err == nil {
		return nil
	}
	return &wrappedError{message: err.Message, index: err.Index}
}

func validateFlags(t *testing.T, flags string, cfg options.Config) *wrappedError {
	t.Helper()
	src := wtf16.FromString(flags)
	v := New(options.NoopHandler{}, cfg)
	err := v.ValidateFlags(src, 0, len(src))
	if err == nil {
		return nil
	}
	return &wrappedError{message: err.Message, index: err.Index}
}

type wrappedError struct {
	message string
	index   int
}

func TestValidateLiteralAcceptsSimplePattern(t *testing.T) {
	assert.Nil(t, validateLiteral(t, "/abc/g", options.Config{}))
}

func TestValidateLiteralRejectsBothUnicodeFlags(t *testing.T) {
	err := validateLiteral(t, "/ab/uv", options.Config{})
	require.NotNil(t, err)
	assert.Equal(t, "Invalid regular expression: /ab/uv: Invalid regular expression flags", err.message)
	assert.Equal(t, 4, err.index)
}

func TestValidateLiteralUnterminatedCharacterClass(t *testing.T) {
	err := validateLiteral(t, "/[A/u", options.Config{})
	require.NotNil(t, err)
	assert.Equal(t, 5, err.index)
	assert.Contains(t, err.message, "Unterminated character class")
}

func TestValidateLiteralUnterminatedCharacterClassVFlag(t *testing.T) {
	err := validateLiteral(t, "/[A/v", options.Config{})
	require.NotNil(t, err)
	assert.Equal(t, 5, err.index)
	assert.Contains(t, err.message, "Unterminated character class")
}

func TestValidateLiteralEmpty(t *testing.T) {
	err := validateLiteral(t, "", options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Empty")
}

func TestValidateFlagsInvalidFlag(t *testing.T) {
	err := validateFlags(t, "abcd", options.Config{})
	require.NotNil(t, err)
	assert.Equal(t, 0, err.index)
	assert.Contains(t, err.message, "Invalid flag 'a'")
}

func TestValidateFlagsDuplicatedFlag(t *testing.T) {
	err := validateFlags(t, "dd", options.Config{})
	require.NotNil(t, err)
	assert.Equal(t, 0, err.index)
	assert.Contains(t, err.message, "Duplicated flag 'd'")
}

func TestValidatePatternBackreferenceOutOfRange(t *testing.T) {
	err := validatePattern(t, `(a)\2`, true, false, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Invalid escape")
}

func TestValidatePatternBackreferenceOutOfRangeLegacyOK(t *testing.T) {
	assert.Nil(t, validatePattern(t, `(a)\2`, false, false, options.Config{}))
}

func TestValidatePatternNamedGroups(t *testing.T) {
	assert.Nil(t, validatePattern(t, `(?<year>\d+)-(?<month>\d+)`, false, false, options.Config{}))
}

func TestValidatePatternDuplicateGroupName(t *testing.T) {
	err := validatePattern(t, `(?<x>a)(?<x>b)`, false, false, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Duplicate capture group name")
}

func TestValidatePatternInvalidNamedBackreference(t *testing.T) {
	err := validatePattern(t, `\k<missing>(?<x>a)`, false, false, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Invalid named capture referenced")
}

func TestValidatePatternNothingToRepeat(t *testing.T) {
	err := validatePattern(t, `*a`, false, false, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Nothing to repeat")
}

func TestValidatePatternUnmatchedParen(t *testing.T) {
	err := validatePattern(t, `a)`, false, false, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Unmatched ')'")
}

func TestValidatePatternUnterminatedGroup(t *testing.T) {
	err := validatePattern(t, `(a`, false, false, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Unterminated group")
}

func TestValidatePatternQuantifierOutOfOrder(t *testing.T) {
	err := validatePattern(t, `a{3,1}`, true, false, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "numbers out of order in {} quantifier")
}

func TestValidatePatternCharacterClassRangeOutOfOrder(t *testing.T) {
	err := validatePattern(t, `[z-a]`, false, false, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Range out of order in character class")
}

func TestValidatePatternCharacterClassAccepted(t *testing.T) {
	assert.Nil(t, validatePattern(t, `[a-z0-9_]`, false, false, options.Config{}))
}

func TestValidatePatternUnicodePropertyEscape(t *testing.T) {
	assert.Nil(t, validatePattern(t, `\p{Letter}`, true, false, options.Config{}))
}

func TestValidatePatternUnicodePropertyEscapeInvalidName(t *testing.T) {
	err := validatePattern(t, `\p{NotAProperty}`, true, false, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Invalid property name")
}

func TestValidatePatternUnicodeSetsPropertyOfStrings(t *testing.T) {
	assert.Nil(t, validatePattern(t, `\p{RGI_Emoji}`, false, true, options.Config{}))
}

func TestValidatePatternUnicodeSetsNegatedPropertyOfStringsRejected(t *testing.T) {
	err := validatePattern(t, `\P{RGI_Emoji}`, false, true, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Invalid property name")
}

func TestValidatePatternUnicodeSetsIntersection(t *testing.T) {
	assert.Nil(t, validatePattern(t, `[[a-z]&&[aeiou]]`, false, true, options.Config{}))
}

func TestValidatePatternUnicodeSetsSubtraction(t *testing.T) {
	assert.Nil(t, validatePattern(t, `[[a-z]--[aeiou]]`, false, true, options.Config{}))
}

func TestValidatePatternUnicodeSetsNegatedClassMayContainStrings(t *testing.T) {
	err := validatePattern(t, `[^\q{abc}]`, false, true, options.Config{})
	require.NotNil(t, err)
	assert.Contains(t, err.message, "Negated character class may contain strings")
}

func TestValidatePatternLookbehindAssertion(t *testing.T) {
	assert.Nil(t, validatePattern(t, `(?<=a)b`, true, false, options.Config{}))
}

func TestValidatePatternNamedBackreferenceBeforeGroup(t *testing.T) {
	assert.Nil(t, validatePattern(t, `\k<x>(?<x>a)`, true, false, options.Config{}))
}

func TestValidatePatternLegacyOctalEscape(t *testing.T) {
	assert.Nil(t, validatePattern(t, `\1`, false, false, options.Config{}))
}

func TestValidatePatternStrictModeRejectsLegacyOctal(t *testing.T) {
	err := validatePattern(t, `\1`, false, false, options.Config{Strict: true})
	require.NotNil(t, err)
}
