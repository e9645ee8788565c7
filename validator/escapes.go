package validator

import (
	"github.com/parserkit/ecmaregex/internal/unicodedata"
	"github.com/parserkit/ecmaregex/options"
)

// consumeExtendedAtom recognizes Annex B's ExtendedAtom, the web-compatible
// relaxation of Atom used outside unicode mode and non-strict parsing.
func (v *Validator) consumeExtendedAtom() bool {
	return v.consumeDot() ||
		v.consumeReverseSolidusAtomEscape() ||
		v.consumeReverseSolidusFollowedByC() ||
		v.consumeCharacterClass() ||
		v.consumeUncapturingGroup() ||
		v.consumeCapturingGroup() ||
		v.consumeInvalidBracedQuantifier() ||
		v.consumeExtendedPatternCharacter()
}

// consumeReverseSolidusFollowedByC implements `\ [lookahead = c]`: a
// backslash immediately followed by `c` that didn't form a valid `\c`
// control escape is itself consumed as a literal backslash, leaving the `c`
// for the next term to consume as an ordinary pattern character.
func (v *Validator) consumeReverseSolidusFollowedByC() bool {
	start := v.index()
	if v.current() == unicodedata.ReverseSolidus && v.next() == unicodedata.LatinSmallLetterC {
		v.advance()
		v.handler.OnCharacter(start, v.index(), rune(unicodedata.ReverseSolidus))
		return true
	}
	return false
}

func (v *Validator) consumeInvalidBracedQuantifier() bool {
	if v.consumeQuantifier(true) {
		v.raise(v.index(), "Nothing to repeat")
	}
	return false
}

func (v *Validator) consumeExtendedPatternCharacter() bool {
	start := v.index()
	cp := v.current()
	switch cp {
	case unicodedata.CircumflexAccent, unicodedata.DollarSign, unicodedata.FullStop,
		unicodedata.Asterisk, unicodedata.PlusSign, unicodedata.QuestionMark,
		unicodedata.LeftParenthesis, unicodedata.RightParenthesis,
		unicodedata.LeftSquareBracket, unicodedata.VerticalLine:
		return false
	}
	if cp < 0 {
		return false
	}
	v.advance()
	v.handler.OnCharacter(start, v.index(), rune(cp))
	return true
}

// consumeAtomEscape recognizes AtomEscape, called with the leading `\`
// already consumed by consumeReverseSolidusAtomEscape.
func (v *Validator) consumeAtomEscape() bool {
	if v.consumeBackreference() {
		return true
	}
	if _, ok := v.consumeCharacterClassEscape(); ok {
		return true
	}
	if v.consumeCharacterEscape() {
		return true
	}
	if v.nFlag && v.consumeKGroupName() {
		return true
	}
	if v.strict() || v.unicodeMode {
		v.raise(v.index(), "Invalid escape")
	}
	return false
}

func (v *Validator) consumeBackreference() bool {
	start := v.index()
	if v.eatDecimalEscape() {
		n := int(v.lastIntValue)
		if n > v.numCapturingParens {
			if v.strict() || v.unicodeMode {
				v.raise(v.index(), "Invalid escape")
			}
			v.rewind(start)
			return false
		}
		v.handler.OnBackreference(start, v.index(), options.CapturingGroupKey{Index: n})
		return true
	}
	return false
}

// eatDecimalEscape recognizes DecimalEscape: NonZeroDigit DecimalDigits?.
func (v *Validator) eatDecimalEscape() bool {
	v.lastIntValue = 0
	cp := v.current()
	if cp >= unicodedata.DigitOne && cp <= unicodedata.DigitNine {
		for {
			v.lastIntValue = 10*v.lastIntValue + (cp - unicodedata.DigitZero)
			v.advance()
			cp = v.current()
			if !unicodedata.IsDecimalDigit(cp) {
				break
			}
		}
		return true
	}
	return false
}

func (v *Validator) consumeKGroupName() bool {
	start := v.index()
	if v.eat(unicodedata.LatinSmallLetterK) {
		if v.eatGroupName() {
			name := v.lastStrValue
			v.backreferenceNames[name] = true
			v.handler.OnBackreference(start, v.index(), options.CapturingGroupKey{Name: name, ByName: true})
			return true
		}
		v.raise(v.index(), "Invalid named reference")
	}
	return false
}

// consumeCharacterClassEscape recognizes CharacterClassEscape: the
// \d\D\s\S\w\W shorthand classes and, from ES2018 on in unicode contexts,
// \p{...}/\P{...} Unicode property escapes.
func (v *Validator) consumeCharacterClassEscape() (classSetResult, bool) {
	start := v.index()

	type kindNegate struct {
		kind   options.CharacterKind
		negate bool
	}
	var matched *kindNegate
	switch {
	case v.eat(unicodedata.LatinSmallLetterD):
		matched = &kindNegate{options.CharacterDigit, false}
	case v.eat(unicodedata.LatinCapitalLetterD):
		matched = &kindNegate{options.CharacterDigit, true}
	case v.eat('s'):
		matched = &kindNegate{options.CharacterSpace, false}
	case v.eat('S'):
		matched = &kindNegate{options.CharacterSpace, true}
	case v.eat(unicodedata.LatinSmallLetterW):
		matched = &kindNegate{options.CharacterWord, false}
	case v.eat(unicodedata.LatinCapitalLetterW):
		matched = &kindNegate{options.CharacterWord, true}
	}
	if matched != nil {
		v.lastIntValue = noIntValue
		v.handler.OnEscapeCharacterSet(start, v.index(), matched.kind, matched.negate)
		return classSetResult{}, true
	}

	if v.ecmaVersion() < options.Es2018 || !(v.unicodeMode || v.unicodeSetsMode) {
		return classSetResult{}, false
	}

	negate := false
	if !v.eat(unicodedata.LatinSmallLetterP) {
		if !v.eat(unicodedata.LatinCapitalLetterP) {
			return classSetResult{}, false
		}
		negate = true
	}

	if v.eat(unicodedata.LeftCurlyBracket) {
		key, value, hasValue, ofStrings, ok := v.eatUnicodePropertyValueExpression()
		if ok && v.eat(unicodedata.RightCurlyBracket) {
			if negate && ofStrings {
				v.raise(v.index(), "Invalid property name")
			}
			v.handler.OnUnicodePropertyCharacterSet(start, v.index(), options.CharacterProperty, key, value, hasValue, negate, ofStrings)
			return classSetResult{mayContainStrings: ofStrings}, true
		}
	}
	v.raise(v.index(), "Invalid property name")
	return classSetResult{}, false
}

// consumeCharacterEscape recognizes CharacterEscape.
func (v *Validator) consumeCharacterEscape() bool {
	start := v.index()
	if v.eatControlEscape() ||
		v.eatCControlLetter() ||
		v.eatZero() ||
		v.eatHexEscapeSequence() ||
		v.eatRegExpUnicodeEscapeSequence() ||
		(!v.strict() && v.eatLegacyOctalEscapeSequence()) ||
		v.eatIdentityEscape() {
		v.handler.OnCharacter(start, v.index(), v.lastIntValue)
		return true
	}
	return false
}

func (v *Validator) eatControlEscape() bool {
	switch {
	case v.eat(unicodedata.LatinSmallLetterF):
		v.lastIntValue = unicodedata.FormFeed
	case v.eat('n'):
		v.lastIntValue = unicodedata.LineFeed
	case v.eat('r'):
		v.lastIntValue = unicodedata.CarriageReturn
	case v.eat(unicodedata.LatinSmallLetterT):
		v.lastIntValue = unicodedata.CharacterTabulation
	case v.eat(unicodedata.LatinSmallLetterV):
		v.lastIntValue = unicodedata.LineTabulation
	default:
		return false
	}
	return true
}

func (v *Validator) eatCControlLetter() bool {
	start := v.index()
	if v.eat(unicodedata.LatinSmallLetterC) {
		if v.eatControlLetter() {
			return true
		}
		v.rewind(start)
	}
	return false
}

func (v *Validator) eatControlLetter() bool {
	cp := v.current()
	if (cp >= 'a' && cp <= 'z') || (cp >= 'A' && cp <= 'Z') {
		v.advance()
		v.lastIntValue = cp % 32
		return true
	}
	return false
}

func (v *Validator) eatZero() bool {
	if v.current() == unicodedata.DigitZero && !unicodedata.IsDecimalDigit(v.next()) {
		v.lastIntValue = 0
		v.advance()
		return true
	}
	return false
}

func (v *Validator) eatHexEscapeSequence() bool {
	start := v.index()
	if v.eat(unicodedata.LatinSmallLetterX) {
		if v.eatFixedHexDigits(2) {
			return true
		}
		if v.unicodeMode {
			v.raise(v.index(), "Invalid escape")
		}
		v.rewind(start)
	}
	return false
}

func (v *Validator) eatFixedHexDigits(n int) bool {
	start := v.index()
	v.lastIntValue = 0
	for i := 0; i < n; i++ {
		cp := v.current()
		if !unicodedata.IsHexDigit(cp) {
			v.rewind(start)
			return false
		}
		v.lastIntValue = 16*v.lastIntValue + unicodedata.DigitToInt(cp)
		v.advance()
	}
	return true
}

func (v *Validator) eatLegacyOctalEscapeSequence() bool {
	if v.eatOctalDigit() {
		n1 := v.lastIntValue
		if v.eatOctalDigit() {
			n2 := v.lastIntValue
			if n1 <= 3 && v.eatOctalDigit() {
				v.lastIntValue = n1*64 + n2*8 + v.lastIntValue
			} else {
				v.lastIntValue = n1*8 + n2
			}
		} else {
			v.lastIntValue = n1
		}
		return true
	}
	return false
}

func (v *Validator) eatOctalDigit() bool {
	cp := v.current()
	if unicodedata.IsOctalDigit(cp) {
		v.lastIntValue = unicodedata.DigitToInt(cp)
		v.advance()
		return true
	}
	v.lastIntValue = 0
	return false
}

// eatIdentityEscape recognizes IdentityEscape: in unicode contexts only a
// SyntaxCharacter or `/`; in strict mode any character that is not an
// identifier character; otherwise Annex B's SourceCharacter form accepts any
// character except `c`, and except `k` once named groups are enabled.
func (v *Validator) eatIdentityEscape() bool {
	cp := v.current()
	if cp < 0 {
		return false
	}
	if v.unicodeMode {
		if isSyntaxCharacter(cp) || cp == unicodedata.Solidus {
			v.lastIntValue = cp
			v.advance()
			return true
		}
		return false
	}
	if v.strict() && isIDContinueCodePoint(cp) {
		return false
	}
	if cp == unicodedata.LatinSmallLetterC || (v.nFlag && cp == unicodedata.LatinSmallLetterK) {
		return false
	}
	v.lastIntValue = cp
	v.advance()
	return true
}

func isIDContinueCodePoint(cp rune) bool {
	return unicodedata.IsIDStart(cp) || unicodedata.IsIDContinue(cp)
}

// eatRegExpUnicodeEscapeSequence recognizes `u` HexDigit{4} and, in unicode
// mode, `u{CodePoint}` and surrogate-pair coalescing of two `uXXXX` escapes.
func (v *Validator) eatRegExpUnicodeEscapeSequence() bool {
	start := v.index()
	if v.eat(unicodedata.LatinSmallLetterU) {
		if v.eatUnicodeEscapeBody() {
			return true
		}
		if v.unicodeMode {
			v.raise(v.index(), "Invalid unicode escape")
		}
		v.rewind(start)
	}
	return false
}

func (v *Validator) eatUnicodeEscapeBody() bool {
	return (v.unicodeMode && v.eatRegExpUnicodeSurrogatePairEscape()) ||
		v.eatFixedHexDigits(4) ||
		(v.unicodeMode && v.eatRegExpUnicodeCodePointEscape())
}

// eatRegExpIdentifierEscape recognizes the `\u...` escape form of a
// RegExpIdentifierName character (used for capturing-group names).
func (v *Validator) eatRegExpIdentifierEscape() bool {
	start := v.index()
	if v.eat(unicodedata.ReverseSolidus) && v.eat(unicodedata.LatinSmallLetterU) && v.eatUnicodeEscapeBody() {
		return true
	}
	v.rewind(start)
	return false
}

func (v *Validator) eatRegExpUnicodeSurrogatePairEscape() bool {
	start := v.index()
	if v.eatFixedHexDigits(4) {
		lead := v.lastIntValue
		if lead >= 0xd800 && lead <= 0xdbff && v.eat(unicodedata.ReverseSolidus) && v.eat(unicodedata.LatinSmallLetterU) {
			if v.eatFixedHexDigits(4) {
				trail := v.lastIntValue
				if trail >= 0xdc00 && trail <= 0xdfff {
					v.lastIntValue = (lead-0xd800)*0x400 + (trail - 0xdc00) + 0x10000
					return true
				}
			}
		}
		v.rewind(start)
	}
	return false
}

func (v *Validator) eatRegExpUnicodeCodePointEscape() bool {
	start := v.index()
	if v.eat(unicodedata.LeftCurlyBracket) {
		if v.eatHexDigits() && v.eat(unicodedata.RightCurlyBracket) && v.lastIntValue <= 0x10ffff {
			return true
		}
		v.raise(v.index(), "Invalid unicode escape")
	}
	v.rewind(start)
	return false
}

func (v *Validator) eatHexDigits() bool {
	start := v.index()
	v.lastIntValue = 0
	matched := false
	for unicodedata.IsHexDigit(v.current()) {
		v.lastIntValue = 16*v.lastIntValue + unicodedata.DigitToInt(v.current())
		matched = true
		v.advance()
	}
	if !matched {
		v.rewind(start)
	}
	return matched
}
