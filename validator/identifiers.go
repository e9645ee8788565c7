package validator

import (
	"strings"

	"github.com/parserkit/ecmaregex/internal/unicodedata"
)

func isIdentifierStartCodePoint(cp rune) bool {
	return cp == unicodedata.DollarSign || cp == unicodedata.LowLine || unicodedata.IsIDStart(cp)
}

func isIdentifierPartCodePoint(cp rune) bool {
	return cp == unicodedata.DollarSign || cp == unicodedata.ZeroWidthNonJoiner ||
		cp == unicodedata.ZeroWidthJoiner || unicodedata.IsIDContinue(cp)
}

// eatRegExpIdentifierName recognizes RegExpIdentifierName (a capturing-group
// name), decoding any `\u` escapes along the way and leaving the decoded
// text in lastStrValue.
func (v *Validator) eatRegExpIdentifierName() bool {
	if !v.eatRegExpIdentifierStart() {
		return false
	}
	var sb strings.Builder
	sb.WriteRune(v.lastIntValue)
	for v.eatRegExpIdentifierPart() {
		sb.WriteRune(v.lastIntValue)
	}
	v.lastStrValue = sb.String()
	return true
}

func (v *Validator) eatRegExpIdentifierStart() bool {
	start := v.index()
	cp := v.current()
	if cp == unicodedata.ReverseSolidus {
		if !v.eatRegExpIdentifierEscape() {
			return false
		}
		cp = v.lastIntValue
	} else if cp >= 0 {
		v.advance()
	} else {
		return false
	}
	if !isIdentifierStartCodePoint(cp) {
		v.rewind(start)
		return false
	}
	v.lastIntValue = cp
	return true
}

func (v *Validator) eatRegExpIdentifierPart() bool {
	start := v.index()
	cp := v.current()
	if cp == unicodedata.ReverseSolidus {
		if !v.eatRegExpIdentifierEscape() {
			return false
		}
		cp = v.lastIntValue
	} else if cp >= 0 {
		v.advance()
	} else {
		return false
	}
	if !isIdentifierPartCodePoint(cp) {
		v.rewind(start)
		return false
	}
	v.lastIntValue = cp
	return true
}

// eatUnicodePropertyValueExpression recognizes the `Name` or `Name=Value`
// body of a `\p{...}`/`\P{...}` escape, after the opening brace has been
// consumed, validating it against the curated property oracle.
func (v *Validator) eatUnicodePropertyValueExpression() (key, value string, hasValue, ofStrings bool, ok bool) {
	start := v.index()

	if name, nameOK := v.eatPropertyName(); nameOK && v.eat(unicodedata.EqualsSign) {
		if val, valOK := v.eatPropertyValue(); valOK {
			if !unicodedata.IsValidProperty(unicodedata.EcmaVersion(v.ecmaVersion()), name, val, v.unicodeSetsMode) {
				v.raise(start, "Invalid property name")
			}
			return name, val, true, false, true
		}
		v.raise(v.index(), "Invalid property name")
	}
	v.rewind(start)

	if name, nameOK := v.eatLoneIdentifierName(); nameOK {
		ev := unicodedata.EcmaVersion(v.ecmaVersion())
		if unicodedata.IsValidProperty(ev, name, "", v.unicodeSetsMode) {
			return name, "", false, unicodedata.IsPropertyOfStrings(name), true
		}
		if unicodedata.IsValidProperty(ev, "General_Category", name, false) {
			return "General_Category", name, true, false, true
		}
		v.raise(start, "Invalid property name")
	}
	return "", "", false, false, false
}

func (v *Validator) eatPropertyName() (string, bool) {
	return v.eatIdentifierCharacterRun(isUnicodePropertyNameCharacter)
}

func (v *Validator) eatPropertyValue() (string, bool) {
	return v.eatIdentifierCharacterRun(isUnicodePropertyValueCharacter)
}

func (v *Validator) eatLoneIdentifierName() (string, bool) {
	return v.eatIdentifierCharacterRun(isUnicodePropertyNameCharacter)
}

func (v *Validator) eatIdentifierCharacterRun(accept func(rune) bool) (string, bool) {
	var sb strings.Builder
	for accept(v.current()) {
		sb.WriteRune(rune(v.current()))
		v.advance()
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

func isUnicodePropertyNameCharacter(cp rune) bool {
	return (cp >= 'a' && cp <= 'z') || (cp >= 'A' && cp <= 'Z') || cp == unicodedata.LowLine
}

func isUnicodePropertyValueCharacter(cp rune) bool {
	return isUnicodePropertyNameCharacter(cp) || unicodedata.IsDecimalDigit(cp)
}
