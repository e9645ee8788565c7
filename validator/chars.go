package validator

import "github.com/parserkit/ecmaregex/internal/unicodedata"

type codePointSet map[rune]bool

func newCodePointSet(cps ...rune) codePointSet {
	s := make(codePointSet, len(cps))
	for _, cp := range cps {
		s[cp] = true
	}
	return s
}

func (s codePointSet) has(cp rune) bool { return s[cp] }

var syntaxCharacter = newCodePointSet(
	unicodedata.CircumflexAccent, unicodedata.DollarSign, unicodedata.ReverseSolidus,
	unicodedata.FullStop, unicodedata.Asterisk, unicodedata.PlusSign, unicodedata.QuestionMark,
	unicodedata.LeftParenthesis, unicodedata.RightParenthesis, unicodedata.LeftSquareBracket,
	unicodedata.RightSquareBracket, unicodedata.LeftCurlyBracket, unicodedata.RightCurlyBracket,
	unicodedata.VerticalLine,
)

var classSetReservedDoublePunctuatorCharacter = newCodePointSet(
	unicodedata.Ampersand, unicodedata.ExclamationMark, unicodedata.NumberSign, unicodedata.DollarSign,
	unicodedata.PercentSign, unicodedata.Asterisk, unicodedata.PlusSign, unicodedata.Comma,
	unicodedata.FullStop, unicodedata.Colon, unicodedata.Semicolon, unicodedata.LessThanSign,
	unicodedata.EqualsSign, unicodedata.GreaterThanSign, unicodedata.QuestionMark,
	unicodedata.CommercialAt, unicodedata.CircumflexAccent, unicodedata.GraveAccent, unicodedata.Tilde,
)

var classSetSyntaxCharacter = newCodePointSet(
	unicodedata.LeftParenthesis, unicodedata.RightParenthesis, unicodedata.LeftSquareBracket,
	unicodedata.RightSquareBracket, unicodedata.LeftCurlyBracket, unicodedata.RightCurlyBracket,
	unicodedata.Solidus, unicodedata.HyphenMinus, unicodedata.ReverseSolidus, unicodedata.VerticalLine,
)

var classSetReservedPunctuator = newCodePointSet(
	unicodedata.Ampersand, unicodedata.HyphenMinus, unicodedata.ExclamationMark, unicodedata.NumberSign,
	unicodedata.PercentSign, unicodedata.Comma, unicodedata.Colon, unicodedata.Semicolon,
	unicodedata.LessThanSign, unicodedata.EqualsSign, unicodedata.GreaterThanSign,
	unicodedata.CommercialAt, unicodedata.GraveAccent, unicodedata.Tilde,
)

func isSyntaxCharacter(cp rune) bool { return syntaxCharacter.has(cp) }

func isClassSetReservedDoublePunctuatorCharacter(cp rune) bool {
	return classSetReservedDoublePunctuatorCharacter.has(cp)
}

func isClassSetSyntaxCharacter(cp rune) bool { return classSetSyntaxCharacter.has(cp) }

func isClassSetReservedPunctuator(cp rune) bool {
	return classSetReservedPunctuator.has(cp)
}
