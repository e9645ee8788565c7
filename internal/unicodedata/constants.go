// Package unicodedata classifies code points the grammar cares about
// (IDStart/IDContinue, line terminators, decimal digits) and answers whether
// a Unicode property name/value pair is recognized for a given ECMAScript
// version. Per the specification this table is an oracle: its contents are
// curated from the properties ECMA-262 Annex B actually exposes through
// \p{...}, not a generated copy of the full Unicode Character Database.
package unicodedata

import "github.com/parserkit/ecmaregex/internal/wtf16"

type CodePoint = wtf16.CodePoint

const (
	Null                 CodePoint = 0x00
	Backspace            CodePoint = 0x08
	CharacterTabulation  CodePoint = 0x09
	LineFeed             CodePoint = 0x0a
	LineTabulation       CodePoint = 0x0b
	FormFeed             CodePoint = 0x0c
	CarriageReturn       CodePoint = 0x0d
	Space                CodePoint = 0x20
	ExclamationMark      CodePoint = 0x21
	NumberSign           CodePoint = 0x23
	DollarSign           CodePoint = 0x24
	PercentSign          CodePoint = 0x25
	Ampersand            CodePoint = 0x26
	LeftParenthesis      CodePoint = 0x28
	RightParenthesis     CodePoint = 0x29
	Asterisk             CodePoint = 0x2a
	PlusSign             CodePoint = 0x2b
	Comma                CodePoint = 0x2c
	HyphenMinus          CodePoint = 0x2d
	FullStop             CodePoint = 0x2e
	Solidus              CodePoint = 0x2f
	DigitZero            CodePoint = 0x30
	DigitOne             CodePoint = 0x31
	DigitSeven           CodePoint = 0x37
	DigitEight           CodePoint = 0x38
	DigitNine            CodePoint = 0x39
	Colon                CodePoint = 0x3a
	Semicolon            CodePoint = 0x3b
	LessThanSign         CodePoint = 0x3c
	EqualsSign           CodePoint = 0x3d
	GreaterThanSign      CodePoint = 0x3e
	QuestionMark         CodePoint = 0x3f
	CommercialAt         CodePoint = 0x40
	LatinCapitalLetterA  CodePoint = 0x41
	LatinCapitalLetterB  CodePoint = 0x42
	LatinCapitalLetterD  CodePoint = 0x44
	LatinCapitalLetterF  CodePoint = 0x46
	LatinCapitalLetterP  CodePoint = 0x50
	LatinCapitalLetterS  CodePoint = 0x53
	LatinCapitalLetterW  CodePoint = 0x57
	LatinCapitalLetterZ  CodePoint = 0x5a
	LowLine              CodePoint = 0x5f
	LatinSmallLetterA    CodePoint = 0x61
	LatinSmallLetterB    CodePoint = 0x62
	LatinSmallLetterC    CodePoint = 0x63
	LatinSmallLetterD    CodePoint = 0x64
	LatinSmallLetterF    CodePoint = 0x66
	LatinSmallLetterG    CodePoint = 0x67
	LatinSmallLetterI    CodePoint = 0x69
	LatinSmallLetterK    CodePoint = 0x6b
	LatinSmallLetterM    CodePoint = 0x6d
	LatinSmallLetterN    CodePoint = 0x6e
	LatinSmallLetterP    CodePoint = 0x70
	LatinSmallLetterQ    CodePoint = 0x71
	LatinSmallLetterR    CodePoint = 0x72
	LatinSmallLetterS    CodePoint = 0x73
	LatinSmallLetterT    CodePoint = 0x74
	LatinSmallLetterU    CodePoint = 0x75
	LatinSmallLetterV    CodePoint = 0x76
	LatinSmallLetterW    CodePoint = 0x77
	LatinSmallLetterX    CodePoint = 0x78
	LatinSmallLetterY    CodePoint = 0x79
	LatinSmallLetterZ    CodePoint = 0x7a
	LeftSquareBracket    CodePoint = 0x5b
	ReverseSolidus       CodePoint = 0x5c
	RightSquareBracket   CodePoint = 0x5d
	CircumflexAccent     CodePoint = 0x5e
	GraveAccent          CodePoint = 0x60
	LeftCurlyBracket     CodePoint = 0x7b
	VerticalLine         CodePoint = 0x7c
	RightCurlyBracket    CodePoint = 0x7d
	Tilde                CodePoint = 0x7e
	ZeroWidthNonJoiner   CodePoint = 0x200c
	ZeroWidthJoiner      CodePoint = 0x200d
	LineSeparator        CodePoint = 0x2028
	ParagraphSeparator   CodePoint = 0x2029
)

func IsDecimalDigit(cp CodePoint) bool {
	return cp >= DigitZero && cp <= DigitNine
}

func IsOctalDigit(cp CodePoint) bool {
	return cp >= DigitZero && cp <= DigitSeven
}

func IsHexDigit(cp CodePoint) bool {
	return IsDecimalDigit(cp) ||
		(cp >= LatinSmallLetterA && cp <= LatinSmallLetterF) ||
		(cp >= LatinCapitalLetterA && cp <= LatinCapitalLetterF)
}

func IsLineTerminator(cp CodePoint) bool {
	switch cp {
	case LineFeed, CarriageReturn, LineSeparator, ParagraphSeparator:
		return true
	default:
		return false
	}
}

// DigitToInt converts a hex/decimal digit code point to its numeric value.
func DigitToInt(cp CodePoint) CodePoint {
	switch {
	case cp >= LatinSmallLetterA && cp <= LatinSmallLetterF:
		return cp - LatinSmallLetterA + 10
	case cp >= LatinCapitalLetterA && cp <= LatinCapitalLetterF:
		return cp - LatinCapitalLetterA + 10
	default:
		return cp - DigitZero
	}
}
