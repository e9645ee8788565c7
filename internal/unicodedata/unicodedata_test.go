package unicodedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIDStartAscii(t *testing.T) {
	assert.True(t, IsIDStart('a'))
	assert.True(t, IsIDStart('Z'))
	assert.False(t, IsIDStart('_'))
	assert.False(t, IsIDStart('0'))
	assert.False(t, IsIDStart('-'))
}

func TestIsIDContinueAscii(t *testing.T) {
	assert.True(t, IsIDContinue('0'))
	assert.True(t, IsIDContinue('_'))
	assert.True(t, IsIDContinue('a'))
	assert.False(t, IsIDContinue('-'))
	assert.False(t, IsIDContinue('$'))
}

func TestIsIDStartNonAscii(t *testing.T) {
	assert.True(t, IsIDStart(0x03B1))  // GREEK SMALL LETTER ALPHA
	assert.True(t, IsIDStart(0x4E2D))  // CJK ideograph
	assert.False(t, IsIDStart(0x2028)) // LINE SEPARATOR is not a letter
}

func TestIsIDContinueZeroWidthJoiners(t *testing.T) {
	assert.True(t, IsIDContinue(ZeroWidthNonJoiner))
	assert.True(t, IsIDContinue(ZeroWidthJoiner))
}

func TestIsIDContinueCombiningMark(t *testing.T) {
	assert.True(t, IsIDContinue(0x0301)) // COMBINING ACUTE ACCENT, Mn
}

func TestDigitClassification(t *testing.T) {
	assert.True(t, IsDecimalDigit('5'))
	assert.False(t, IsDecimalDigit('a'))
	assert.True(t, IsOctalDigit('7'))
	assert.False(t, IsOctalDigit('8'))
	assert.True(t, IsHexDigit('f'))
	assert.True(t, IsHexDigit('F'))
	assert.False(t, IsHexDigit('g'))
}

func TestDigitToInt(t *testing.T) {
	assert.Equal(t, CodePoint(5), DigitToInt('5'))
	assert.Equal(t, CodePoint(10), DigitToInt('a'))
	assert.Equal(t, CodePoint(15), DigitToInt('F'))
}

func TestIsLineTerminator(t *testing.T) {
	assert.True(t, IsLineTerminator(LineFeed))
	assert.True(t, IsLineTerminator(CarriageReturn))
	assert.True(t, IsLineTerminator(LineSeparator))
	assert.True(t, IsLineTerminator(ParagraphSeparator))
	assert.False(t, IsLineTerminator(Space))
}

func TestIsValidPropertyBinary(t *testing.T) {
	assert.True(t, IsValidProperty(Es2018, "Alphabetic", "", false))
	assert.True(t, IsValidProperty(Es2018, "Alpha", "", false))
	assert.False(t, IsValidProperty(Es5, "Alphabetic", "", false))
	assert.False(t, IsValidProperty(Es2018, "NotAProperty", "", false))
}

func TestIsValidPropertyEmojiRequires2019(t *testing.T) {
	assert.False(t, IsValidProperty(Es2018, "Emoji", "", false))
	assert.True(t, IsValidProperty(Es2019, "Emoji", "", false))
}

func TestIsValidPropertyValue(t *testing.T) {
	assert.True(t, IsValidProperty(Es2018, "General_Category", "Letter", false))
	assert.True(t, IsValidProperty(Es2018, "gc", "L", false))
	assert.True(t, IsValidProperty(Es2018, "Script", "Greek", false))
	assert.True(t, IsValidProperty(Es2018, "sc", "Grek", false))
	assert.False(t, IsValidProperty(Es2018, "Script", "NotAScript", false))
}

func TestIsValidPropertyOfStringsRequiresUnicodeSets(t *testing.T) {
	assert.False(t, IsValidProperty(Es2024, "Basic_Emoji", "", false))
	assert.True(t, IsValidProperty(Es2024, "Basic_Emoji", "", true))
}

func TestIsPropertyOfStrings(t *testing.T) {
	assert.True(t, IsPropertyOfStrings("RGI_Emoji"))
	assert.False(t, IsPropertyOfStrings("Alphabetic"))
}
