package validator

import (
	"github.com/parserkit/ecmaregex/internal/unicodedata"
	"github.com/parserkit/ecmaregex/options"
)

// consumeQuantifier recognizes a QuantifierPrefix optionally followed by `?`
// (lazy marker). When noConsume is true it only probes whether a quantifier
// is present without raising OnQuantifier — used by the two call sites that
// need to know "is there a quantifier here" without committing to one
// (disjunction's "Nothing to repeat" check, and Annex B's
// invalid-braced-quantifier check).
func (v *Validator) consumeQuantifier(noConsume bool) bool {
	start := v.index()
	var min, max int

	switch {
	case v.eat(unicodedata.Asterisk):
		min, max = 0, Infinity
	case v.eat(unicodedata.PlusSign):
		min, max = 1, Infinity
	case v.eat(unicodedata.QuestionMark):
		min, max = 0, 1
	case v.eatBracedQuantifier(noConsume):
		min, max = v.lastMinValue, v.lastMaxValue
	default:
		return false
	}

	greedy := !v.eat(unicodedata.QuestionMark)

	if !noConsume {
		v.handler.OnQuantifier(start, v.index(), min, max, greedy)
	}
	return true
}

func (v *Validator) eatBracedQuantifier(noConsume bool) bool {
	start := v.index()
	if v.eat(unicodedata.LeftCurlyBracket) {
		v.lastMinValue = 0
		v.lastMaxValue = Infinity
		if v.eatDecimalDigits() {
			v.lastMinValue = int(v.lastIntValue)
			if v.eat(unicodedata.Comma) {
				if v.eatDecimalDigits() {
					v.lastMaxValue = int(v.lastIntValue)
				} else {
					v.lastMaxValue = Infinity
				}
			} else {
				v.lastMaxValue = v.lastMinValue
			}
			if v.eat(unicodedata.RightCurlyBracket) {
				if !noConsume && v.lastMaxValue < v.lastMinValue {
					v.raise(v.index(), "numbers out of order in {} quantifier")
				}
				return true
			}
		}
		if v.unicodeMode && !noConsume {
			v.raise(v.index(), "Incomplete quantifier")
		}
		v.rewind(start)
	}
	return false
}

func (v *Validator) eatDecimalDigits() bool {
	start := v.index()
	v.lastIntValue = 0
	matched := false
	for unicodedata.IsDecimalDigit(v.current()) {
		v.lastIntValue = 10*v.lastIntValue + unicodedata.DigitToInt(v.current())
		matched = true
		v.advance()
	}
	if !matched {
		v.rewind(start)
	}
	return matched
}

// consumeUncapturingGroup recognizes `(?:Disjunction)`.
func (v *Validator) consumeUncapturingGroup() bool {
	start := v.index()
	if v.eat3(unicodedata.LeftParenthesis, unicodedata.QuestionMark, unicodedata.Colon) {
		v.handler.OnGroupEnter(start)
		v.consumeDisjunction()
		if !v.eat(unicodedata.RightParenthesis) {
			v.raise(v.index(), "Unterminated group")
		}
		v.handler.OnGroupLeave(start, v.index())
		return true
	}
	return false
}

// consumeCapturingGroup recognizes `(GroupSpecifier? Disjunction)`.
func (v *Validator) consumeCapturingGroup() bool {
	start := v.index()
	if !v.eat(unicodedata.LeftParenthesis) {
		return false
	}

	var name string
	hasName := false
	if v.ecmaVersion() >= options.Es2018 {
		if v.consumeGroupSpecifier() {
			name = v.lastStrValue
			hasName = true
		}
	} else if v.current() == unicodedata.QuestionMark {
		v.raise(v.index(), "Invalid group")
	}

	v.handler.OnCapturingGroupEnter(start, name, hasName)
	v.consumeDisjunction()
	if !v.eat(unicodedata.RightParenthesis) {
		v.raise(v.index(), "Unterminated group")
	}
	v.handler.OnCapturingGroupLeave(start, v.index(), name, hasName)
	return true
}

// consumeGroupSpecifier recognizes the `?<name>` tail of a capturing group,
// after the opening `(` has already been consumed.
func (v *Validator) consumeGroupSpecifier() bool {
	if v.eat(unicodedata.QuestionMark) {
		if v.eatGroupName() {
			if v.groupNames[v.lastStrValue] {
				v.raise(v.index(), "Duplicate capture group name")
			}
			v.groupNames[v.lastStrValue] = true
			return true
		}
		v.raise(v.index(), "Invalid group")
	}
	return false
}

func (v *Validator) eatGroupName() bool {
	if v.eat(unicodedata.LessThanSign) {
		if v.eatRegExpIdentifierName() && v.eat(unicodedata.GreaterThanSign) {
			return true
		}
		v.raise(v.index(), "Invalid capture group name")
	}
	return false
}
