package validator

import (
	"github.com/parserkit/ecmaregex/internal/reader"
	"github.com/parserkit/ecmaregex/internal/unicodedata"
)

// consumeCharacterClass recognizes `[...]`, legacy or v-mode depending on
// unicodeSetsMode.
func (v *Validator) consumeCharacterClass() bool {
	start := v.index()
	if !v.eat(unicodedata.LeftSquareBracket) {
		return false
	}
	negate := v.eat(unicodedata.CircumflexAccent)
	v.handler.OnCharacterClassEnter(start, negate, v.unicodeSetsMode)
	result := v.consumeClassContents()
	if !v.eat(unicodedata.RightSquareBracket) {
		if v.current() == reader.NoCodePoint {
			v.raise(v.index(), "Unterminated character class")
		}
		v.raise(v.index(), "Invalid character in character class")
	}
	if negate && result.mayContainStrings {
		v.raise(v.index(), "Negated character class may contain strings")
	}
	v.handler.OnCharacterClassLeave(start, v.index(), negate)
	return true
}

func (v *Validator) consumeClassContents() classSetResult {
	if v.unicodeSetsMode {
		if v.current() == unicodedata.RightSquareBracket {
			return classSetResult{}
		}
		return v.consumeClassSetExpression()
	}

	strict := v.strict() || v.unicodeMode
	for {
		rangeStart := v.index()
		if !v.consumeClassAtom() {
			break
		}
		min := v.lastIntValue

		if !v.eat(unicodedata.HyphenMinus) {
			continue
		}
		v.handler.OnCharacter(v.index()-1, v.index(), rune(unicodedata.HyphenMinus))

		if !v.consumeClassAtom() {
			break
		}
		max := v.lastIntValue

		if min == noIntValue || max == noIntValue {
			if strict {
				v.raise(v.index(), "Invalid character class")
			}
			continue
		}
		if min > max {
			v.raise(v.index(), "Range out of order in character class")
		}
		v.handler.OnCharacterClassRange(rangeStart, v.index(), min, max)
	}
	return classSetResult{}
}

func (v *Validator) consumeClassAtom() bool {
	start := v.index()
	cp := v.current()

	if cp != reader.NoCodePoint && cp != unicodedata.ReverseSolidus && cp != unicodedata.RightSquareBracket {
		v.advance()
		v.lastIntValue = cp
		v.handler.OnCharacter(start, v.index(), v.lastIntValue)
		return true
	}

	if v.eat(unicodedata.ReverseSolidus) {
		if v.consumeClassEscape() {
			return true
		}
		if !v.strict() && v.current() == unicodedata.LatinSmallLetterC {
			v.lastIntValue = unicodedata.ReverseSolidus
			v.handler.OnCharacter(start, v.index(), v.lastIntValue)
			return true
		}
		if v.strict() || v.unicodeMode {
			v.raise(v.index(), "Invalid escape")
		}
		v.rewind(start)
	}

	return false
}

func (v *Validator) consumeClassEscape() bool {
	if v.eat(unicodedata.LatinSmallLetterB) {
		v.lastIntValue = unicodedata.Backspace
		return true
	}
	if v.unicodeMode && v.eat(unicodedata.HyphenMinus) {
		v.lastIntValue = unicodedata.HyphenMinus
		return true
	}
	if _, ok := v.consumeCharacterClassEscape(); ok {
		return true
	}
	return v.consumeCharacterEscape()
}

func (v *Validator) consumeClassSetExpression() classSetResult {
	start := v.index()
	mayContainStrings := false

	switch {
	case v.consumeClassSetCharacter():
		if v.consumeClassSetRangeFromOperator(start) {
			return v.consumeClassUnionRight(classSetResult{})
		}
		mayContainStrings = false
	default:
		if result, ok := v.consumeClassSetOperand(); ok {
			mayContainStrings = result.mayContainStrings
		} else {
			cp := v.current()
			if cp == unicodedata.ReverseSolidus {
				v.advance()
				v.raise(v.index(), "Invalid escape")
			}
			if cp == v.next() && isClassSetReservedDoublePunctuatorCharacter(cp) {
				v.raise(v.index(), "Invalid set operation in character class")
			}
			v.raise(v.index(), "Invalid character in character class")
		}
	}

	if v.eat2(unicodedata.Ampersand, unicodedata.Ampersand) {
		for v.current() != unicodedata.Ampersand {
			result, ok := v.consumeClassSetOperand()
			if !ok {
				break
			}
			v.handler.OnClassIntersection(start, v.index())
			if !result.mayContainStrings {
				mayContainStrings = false
			}
			if v.eat2(unicodedata.Ampersand, unicodedata.Ampersand) {
				continue
			}
			return classSetResult{mayContainStrings: mayContainStrings}
		}
		v.raise(v.index(), "Invalid character in character class")
	}
	if v.eat2(unicodedata.HyphenMinus, unicodedata.HyphenMinus) {
		for {
			_, ok := v.consumeClassSetOperand()
			if !ok {
				break
			}
			v.handler.OnClassSubtraction(start, v.index())
			if v.eat2(unicodedata.HyphenMinus, unicodedata.HyphenMinus) {
				continue
			}
			return classSetResult{mayContainStrings: mayContainStrings}
		}
		v.raise(v.index(), "Invalid character in character class")
	}
	return v.consumeClassUnionRight(classSetResult{mayContainStrings: mayContainStrings})
}

func (v *Validator) consumeClassUnionRight(left classSetResult) classSetResult {
	mayContainStrings := left.mayContainStrings
	for {
		start := v.index()
		if v.consumeClassSetCharacter() {
			v.consumeClassSetRangeFromOperator(start)
			continue
		}
		result, ok := v.consumeClassSetOperand()
		if ok {
			if result.mayContainStrings {
				mayContainStrings = true
			}
			continue
		}
		break
	}
	return classSetResult{mayContainStrings: mayContainStrings}
}

func (v *Validator) consumeClassSetRangeFromOperator(start int) bool {
	currentStart := v.index()
	min := v.lastIntValue
	if v.eat(unicodedata.HyphenMinus) {
		if v.consumeClassSetCharacter() {
			max := v.lastIntValue
			if min == noIntValue || max == noIntValue {
				v.raise(v.index(), "Invalid character class")
			}
			if min > max {
				v.raise(v.index(), "Range out of order in character class")
			}
			v.handler.OnCharacterClassRange(start, v.index(), min, max)
			return true
		}
		v.rewind(currentStart)
	}
	return false
}

func (v *Validator) consumeClassSetOperand() (classSetResult, bool) {
	if result, ok := v.consumeNestedClass(); ok {
		return result, true
	}
	if result, ok := v.consumeClassStringDisjunction(); ok {
		return result, true
	}
	if v.consumeClassSetCharacter() {
		return classSetResult{}, true
	}
	return classSetResult{}, false
}

func (v *Validator) consumeNestedClass() (classSetResult, bool) {
	start := v.index()
	if v.eat(unicodedata.LeftSquareBracket) {
		negate := v.eat(unicodedata.CircumflexAccent)
		v.handler.OnCharacterClassEnter(start, negate, true)
		result := v.consumeClassContents()
		if !v.eat(unicodedata.RightSquareBracket) {
			v.raise(v.index(), "Unterminated character class")
		}
		if negate && result.mayContainStrings {
			v.raise(v.index(), "Negated character class may contain strings")
		}
		v.handler.OnCharacterClassLeave(start, v.index(), negate)
		return result, true
	}
	if v.eat(unicodedata.ReverseSolidus) {
		if result, ok := v.consumeCharacterClassEscape(); ok {
			return result, true
		}
		v.rewind(start)
	}
	return classSetResult{}, false
}

func (v *Validator) consumeClassStringDisjunction() (classSetResult, bool) {
	start := v.index()
	if v.eat3(unicodedata.ReverseSolidus, unicodedata.LatinSmallLetterQ, unicodedata.LeftCurlyBracket) {
		v.handler.OnClassStringDisjunctionEnter(start)
		i := 0
		mayContainStrings := false
		for {
			if v.consumeClassString(i).mayContainStrings {
				mayContainStrings = true
			}
			i++
			if !v.eat(unicodedata.VerticalLine) {
				break
			}
		}
		if v.eat(unicodedata.RightCurlyBracket) {
			v.handler.OnClassStringDisjunctionLeave(start, v.index())
			return classSetResult{mayContainStrings: mayContainStrings}, true
		}
		v.raise(v.index(), "Unterminated class string disjunction")
	}
	return classSetResult{}, false
}

func (v *Validator) consumeClassString(i int) classSetResult {
	start := v.index()
	v.handler.OnStringAlternativeEnter(start, i)
	count := 0
	for v.consumeClassSetCharacter() {
		count++
	}
	v.handler.OnStringAlternativeLeave(start, v.index(), i)
	return classSetResult{mayContainStrings: count != 1}
}

func (v *Validator) consumeClassSetCharacter() bool {
	start := v.index()
	cp := v.current()

	if !(cp == v.next() && isClassSetReservedDoublePunctuatorCharacter(cp)) {
		if cp != reader.NoCodePoint && !isClassSetSyntaxCharacter(cp) {
			v.lastIntValue = cp
			v.advance()
			v.handler.OnCharacter(start, v.index(), v.lastIntValue)
			return true
		}
	}
	if v.eat(unicodedata.ReverseSolidus) {
		if v.consumeCharacterEscape() {
			return true
		}
		if isClassSetReservedPunctuator(v.current()) {
			v.lastIntValue = v.current()
			v.advance()
			v.handler.OnCharacter(start, v.index(), v.lastIntValue)
			return true
		}
		if v.eat(unicodedata.LatinSmallLetterB) {
			v.lastIntValue = unicodedata.Backspace
			v.handler.OnCharacter(start, v.index(), v.lastIntValue)
			return true
		}
		v.rewind(start)
	}
	return false
}
