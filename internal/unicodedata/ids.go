package unicodedata

import "unicode"

// IsIDStart reports whether cp has the Unicode ID_Start property (used for
// capturing-group names and the start of identity escapes). `$` and `_`,
// which an ECMAScript IdentifierName may also start with, are not included;
// the validator admits them separately. The ASCII
// fast path mirrors the reference implementation's branch order; above
// U+007A it falls back to Go's Unicode letter/number-letter tables, the
// standard library's own approximation of the same UAX #31 derived
// property the reference's generated "large ID start" table encodes.
func IsIDStart(cp CodePoint) bool {
	switch {
	case cp < 0x41:
		return false
	case cp < 0x5b:
		return true
	case cp < 0x61:
		return false
	case cp < 0x7b:
		return true
	default:
		return isLargeIDStart(cp)
	}
}

// IsIDContinue reports whether cp can continue an ECMAScript IdentifierName.
func IsIDContinue(cp CodePoint) bool {
	switch {
	case cp < 0x30:
		return false
	case cp < 0x3a:
		return true
	case cp < 0x41:
		return false
	case cp < 0x5b:
		return true
	case cp == 0x5f:
		return true
	case cp < 0x61:
		return false
	case cp < 0x7b:
		return true
	default:
		return isLargeIDStart(cp) || isLargeIDContinue(cp)
	}
}

func isLargeIDStart(cp CodePoint) bool {
	if cp < 0 {
		return false
	}
	r := rune(cp)
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

func isLargeIDContinue(cp CodePoint) bool {
	if cp < 0 {
		return false
	}
	switch cp {
	case ZeroWidthNonJoiner, ZeroWidthJoiner:
		return true
	}
	r := rune(cp)
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}
