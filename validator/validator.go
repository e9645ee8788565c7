// Package validator implements the grammar recognizer the rest of this
// module builds on: a recursive-descent walk of the ECMAScript RegExp
// grammar (ECMA-262 Annex B included) that never builds a tree, only raises
// events on an options.Handler as each production is recognized.
package validator

import (
	"github.com/parserkit/ecmaregex/internal/reader"
	"github.com/parserkit/ecmaregex/internal/unicodedata"
	"github.com/parserkit/ecmaregex/internal/wtf16"
	"github.com/parserkit/ecmaregex/options"
	"github.com/parserkit/ecmaregex/reporter"
)

// noIntValue marks the absence of a "last scanned integer/code point" value,
// mirroring the reference implementation's Option<CodePoint>.
const noIntValue = -1

// Infinity is the sentinel used for an unbounded quantifier upper bound.
const Infinity = 1<<32 - 1

type classSetResult struct {
	mayContainStrings bool
}

// Validator walks [start, end) of a WTF-16 buffer against the grammar,
// raising events on handler. A Validator is single-use per Validate* call in
// spirit but may be reused across calls; each call resets all scanning state.
type Validator struct {
	handler options.Handler
	cfg     options.Config
	rd      *reader.Reader

	unicodeMode     bool
	unicodeSetsMode bool
	nFlag           bool

	lastIntValue                rune
	lastStrValue                string
	lastMinValue                int
	lastMaxValue                int
	lastAssertionIsQuantifiable bool
	numCapturingParens          int
	groupNames                  map[string]bool
	backreferenceNames          map[string]bool

	srcKind  reporter.SourceKind
	source   wtf16.Buffer
	srcStart int
	srcEnd   int
}

// New constructs a Validator that reports to handler under cfg. A nil
// handler is treated as options.NoopHandler{}.
func New(handler options.Handler, cfg options.Config) *Validator {
	if handler == nil {
		handler = options.NoopHandler{}
	}
	return &Validator{
		handler: handler,
		cfg:     cfg.Resolve(),
		rd:      reader.New(),
	}
}

// bailout carries a *reporter.SyntaxError out of a panicking raise() to the
// recover() in the exported Validate* entry points — the same internal
// bailout-on-panic shape Go's own recursive-descent parsers (go/parser,
// text/template/parse) use instead of threading an error return through
// every production method.
type bailout struct{ err *reporter.SyntaxError }

func (v *Validator) run(fn func()) (err *reporter.SyntaxError) {
	defer func() {
		if r := recover(); r != nil {
			if b, ok := r.(bailout); ok {
				err = b.err
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

func (v *Validator) errContext() reporter.Context {
	return reporter.Context{
		Kind:        v.srcKind,
		Source:      v.source,
		Start:       v.srcStart,
		End:         v.srcEnd,
		Unicode:     v.unicodeMode && !v.unicodeSetsMode,
		UnicodeSets: v.unicodeSetsMode,
	}
}

func (v *Validator) raise(index int, format string, args ...any) {
	panic(bailout{reporter.New(v.errContext(), index, format, args...)})
}

func (v *Validator) raiseAt(index int, unicode, unicodeSets bool, format string, args ...any) {
	ctx := v.errContext()
	ctx.Unicode = unicode
	ctx.UnicodeSets = unicodeSets
	panic(bailout{reporter.New(ctx, index, format, args...)})
}

func (v *Validator) strict() bool {
	return v.cfg.Strict || v.unicodeMode
}

func (v *Validator) ecmaVersion() options.EcmaVersion {
	return v.cfg.EcmaVersion
}

// --- reader plumbing -------------------------------------------------------

func (v *Validator) index() int                { return v.rd.Index() }
func (v *Validator) current() reader.CodePoint { return v.rd.Current() }
func (v *Validator) next() reader.CodePoint    { return v.rd.Next() }
func (v *Validator) next2() reader.CodePoint   { return v.rd.Next2() }
func (v *Validator) next3() reader.CodePoint   { return v.rd.Next3() }
func (v *Validator) advance()                  { v.rd.Advance() }
func (v *Validator) rewind(i int)              { v.rd.Rewind(i) }
func (v *Validator) eat(cp reader.CodePoint) bool                      { return v.rd.Eat(cp) }
func (v *Validator) eat2(a, b reader.CodePoint) bool                   { return v.rd.Eat2(a, b) }
func (v *Validator) eat3(a, b, c reader.CodePoint) bool                { return v.rd.Eat3(a, b, c) }

func (v *Validator) reset(source wtf16.Buffer, start, end int) {
	v.rd.Reset(source, start, end, v.unicodeMode)
}

// --- entry points ------------------------------------------------------

// ValidateLiteral validates a full `/pattern/flags` literal.
func (v *Validator) ValidateLiteral(source wtf16.Buffer, start, end int) *reporter.SyntaxError {
	return v.run(func() { v.validateLiteral(source, start, end) })
}

// ValidateFlags validates a bare flags string.
func (v *Validator) ValidateFlags(source wtf16.Buffer, start, end int) *reporter.SyntaxError {
	return v.run(func() {
		v.srcKind = reporter.SourceNone
		v.source, v.srcStart, v.srcEnd = source, start, end
		v.validateFlagsInternal(source, start, end)
	})
}

// ValidatePattern validates a bare pattern body under the given u/v flags.
func (v *Validator) ValidatePattern(source wtf16.Buffer, start, end int, unicode, unicodeSets bool, flagsGiven bool) *reporter.SyntaxError {
	return v.run(func() {
		v.srcKind = reporter.SourcePattern
		v.source, v.srcStart, v.srcEnd = source, start, end
		v.validatePatternInternal(source, start, end, unicode, unicodeSets, flagsGiven)
	})
}

func (v *Validator) validateLiteral(source wtf16.Buffer, start, end int) {
	v.srcKind = reporter.SourceLiteral
	v.source, v.srcStart, v.srcEnd = source, start, end
	v.unicodeSetsMode = false
	v.unicodeMode = false
	v.nFlag = false
	v.reset(source, start, end)

	v.handler.OnLiteralEnter(start)
	if v.eat(unicodedata.Solidus) && v.eatRegExpBody() && v.eat(unicodedata.Solidus) {
		flagStart := v.index()
		unicode := containsCodePoint(source[flagStart:end], 'u')
		unicodeSets := containsCodePoint(source[flagStart:end], 'v')
		v.validateFlagsInternal(source, flagStart, end)
		v.validatePatternInternal(source, start+1, flagStart-1, unicode, unicodeSets, true)
	} else if start >= end {
		v.raise(v.index(), "Empty")
	} else {
		v.raise(v.index(), "Unexpected character '%c'", rune(v.current()))
	}
	v.handler.OnLiteralLeave(start, end)
}

func containsCodePoint(s wtf16.Buffer, want rune) bool {
	for _, cp := range s.CodePoints() {
		if cp == want {
			return true
		}
	}
	return false
}

func (v *Validator) validatePatternInternal(source wtf16.Buffer, start, end int, unicode, unicodeSets bool, flagsGiven bool) {
	mode := v.parseFlagsToMode(unicode, unicodeSets, flagsGiven, end)
	v.unicodeMode = mode.unicodeMode
	v.nFlag = mode.nFlag
	v.unicodeSetsMode = mode.unicodeSetsMode
	v.reset(source, start, end)
	v.consumePattern()

	if !v.nFlag && v.ecmaVersion() >= options.Es2018 && len(v.groupNames) > 0 {
		v.nFlag = true
		v.rewind(start)
		v.consumePattern()
	}
}

type mode struct {
	unicodeMode     bool
	nFlag           bool
	unicodeSetsMode bool
}

func (v *Validator) parseFlagsToMode(unicode, unicodeSets bool, flagsGiven bool, sourceEnd int) mode {
	if !flagsGiven || v.ecmaVersion() < options.Es2015 {
		unicode = false
		unicodeSets = false
	} else if v.ecmaVersion() < options.Es2024 {
		unicodeSets = false
	}

	if unicode && unicodeSets {
		v.raiseAt(sourceEnd+1, unicode, unicodeSets, "Invalid regular expression flags")
	}

	unicodeModeResolved := unicode || unicodeSets
	nFlag := (unicode && v.ecmaVersion() >= options.Es2018) ||
		unicodeSets ||
		(v.cfg.Strict && v.ecmaVersion() >= options.Es2023)

	return mode{unicodeMode: unicodeModeResolved, nFlag: nFlag, unicodeSetsMode: unicodeSets}
}

func (v *Validator) validateFlagsInternal(source wtf16.Buffer, start, end int) {
	existing := map[rune]bool{}
	var flags options.Flags

	for _, flag := range source[start:end].CodePoints() {
		if existing[flag] {
			v.raise(start, "Duplicated flag '%c'", flag)
		}
		existing[flag] = true

		switch {
		case flag == 'g':
			flags.Global = true
		case flag == 'i':
			flags.IgnoreCase = true
		case flag == 'm':
			flags.Multiline = true
		case flag == 'u' && v.ecmaVersion() >= options.Es2015:
			flags.Unicode = true
		case flag == 'y' && v.ecmaVersion() >= options.Es2015:
			flags.Sticky = true
		case flag == 's' && v.ecmaVersion() >= options.Es2018:
			flags.DotAll = true
		case flag == 'd' && v.ecmaVersion() >= options.Es2022:
			flags.HasIndices = true
		case flag == 'v' && v.ecmaVersion() >= options.Es2024:
			flags.UnicodeSets = true
		default:
			v.raise(start, "Invalid flag '%c'", flag)
		}
	}
	v.handler.OnRegExpFlags(start, end, flags)
}

func (v *Validator) eatRegExpBody() bool {
	start := v.index()
	inClass := false
	escaped := false

	for {
		cp := v.current()
		if cp == reader.NoCodePoint || unicodedata.IsLineTerminator(cp) {
			kind := "regular expression"
			if inClass {
				kind = "character class"
			}
			v.raise(v.index(), "Unterminated %s", kind)
		}
		switch {
		case escaped:
			escaped = false
		case cp == unicodedata.ReverseSolidus:
			escaped = true
		case cp == unicodedata.LeftSquareBracket:
			inClass = true
		case cp == unicodedata.RightSquareBracket:
			inClass = false
		case (cp == unicodedata.Solidus && !inClass) || (cp == unicodedata.Asterisk && v.index() == start):
			return v.index() != start
		}
		v.advance()
	}
}

func (v *Validator) consumePattern() {
	start := v.index()
	v.numCapturingParens = v.countCapturingParens()
	v.groupNames = map[string]bool{}
	v.backreferenceNames = map[string]bool{}

	v.handler.OnPatternEnter(start)
	v.consumeDisjunction()

	if cp := v.current(); cp != reader.NoCodePoint {
		switch cp {
		case unicodedata.RightParenthesis:
			v.raise(v.index(), "Unmatched ')'")
		case unicodedata.ReverseSolidus:
			v.raise(v.index(), `\ at end of pattern`)
		case unicodedata.RightSquareBracket, unicodedata.RightCurlyBracket:
			v.raise(v.index(), "Lone quantifier brackets")
		}
		v.raise(v.index(), "Unexpected character '%c'", rune(cp))
	}
	for name := range v.backreferenceNames {
		if !v.groupNames[name] {
			v.raise(v.index(), "Invalid named capture referenced")
		}
	}
	v.handler.OnPatternLeave(start, v.index())
}

func (v *Validator) countCapturingParens() int {
	start := v.index()
	inClass := false
	escaped := false
	count := 0

	for v.current() != reader.NoCodePoint {
		cp := v.current()
		switch {
		case escaped:
			escaped = false
		case cp == unicodedata.ReverseSolidus:
			escaped = true
		case cp == unicodedata.LeftSquareBracket:
			inClass = true
		case cp == unicodedata.RightSquareBracket:
			inClass = false
		case cp == unicodedata.LeftParenthesis && !inClass &&
			(v.next() != unicodedata.QuestionMark ||
				(v.next2() == unicodedata.LessThanSign && v.next3() != unicodedata.EqualsSign && v.next3() != unicodedata.ExclamationMark)):
			count++
		}
		v.advance()
	}
	v.rewind(start)
	return count
}

func (v *Validator) consumeDisjunction() {
	start := v.index()
	i := 0

	v.handler.OnDisjunctionEnter(start)
	for {
		v.consumeAlternative(i)
		i++
		if !v.eat(unicodedata.VerticalLine) {
			break
		}
	}

	if v.consumeQuantifier(true) {
		v.raise(v.index(), "Nothing to repeat")
	}
	if v.eat(unicodedata.LeftCurlyBracket) {
		v.raise(v.index(), "Lone quantifier brackets")
	}
	v.handler.OnDisjunctionLeave(start, v.index())
}

func (v *Validator) consumeAlternative(i int) {
	start := v.index()
	v.handler.OnAlternativeEnter(start, i)
	for v.current() != reader.NoCodePoint && v.consumeTerm() {
	}
	v.handler.OnAlternativeLeave(start, v.index(), i)
}

func (v *Validator) consumeTerm() bool {
	if v.unicodeMode || v.strict() {
		return v.consumeAssertion() || (v.consumeAtom() && v.consumeOptionalQuantifier())
	}
	return (v.consumeAssertion() && (!v.lastAssertionIsQuantifiable || v.consumeOptionalQuantifier())) ||
		(v.consumeExtendedAtom() && v.consumeOptionalQuantifier())
}

func (v *Validator) consumeOptionalQuantifier() bool {
	v.consumeQuantifier(false)
	return true
}

func (v *Validator) consumeAssertion() bool {
	start := v.index()
	v.lastAssertionIsQuantifiable = false

	if v.eat(unicodedata.CircumflexAccent) {
		v.handler.OnEdgeAssertion(start, v.index(), options.AssertionStart)
		return true
	}
	if v.eat(unicodedata.DollarSign) {
		v.handler.OnEdgeAssertion(start, v.index(), options.AssertionEnd)
		return true
	}
	if v.eat2(unicodedata.ReverseSolidus, unicodedata.LatinCapitalLetterB) {
		v.handler.OnWordBoundaryAssertion(start, v.index(), options.AssertionWord, true)
		return true
	}
	if v.eat2(unicodedata.ReverseSolidus, unicodedata.LatinSmallLetterB) {
		v.handler.OnWordBoundaryAssertion(start, v.index(), options.AssertionWord, false)
		return true
	}

	if v.eat2(unicodedata.LeftParenthesis, unicodedata.QuestionMark) {
		lookbehind := v.ecmaVersion() >= options.Es2018 && v.eat(unicodedata.LessThanSign)
		negate := false
		matched := v.eat(unicodedata.EqualsSign)
		if !matched {
			negate = v.eat(unicodedata.ExclamationMark)
			matched = negate
		}
		if matched {
			kind := options.AssertionLookahead
			if lookbehind {
				kind = options.AssertionLookbehind
			}
			v.handler.OnLookaroundAssertionEnter(start, kind, negate)
			v.consumeDisjunction()
			if !v.eat(unicodedata.RightParenthesis) {
				v.raise(v.index(), "Unterminated group")
			}
			v.lastAssertionIsQuantifiable = !lookbehind && !v.strict()
			v.handler.OnLookaroundAssertionLeave(start, v.index(), kind, negate)
			return true
		}
		v.rewind(start)
	}

	return false
}

func (v *Validator) consumeAtom() bool {
	return v.consumePatternCharacter() ||
		v.consumeDot() ||
		v.consumeReverseSolidusAtomEscape() ||
		v.consumeCharacterClass() ||
		v.consumeUncapturingGroup() ||
		v.consumeCapturingGroup()
}

func (v *Validator) consumeDot() bool {
	if v.eat(unicodedata.FullStop) {
		v.handler.OnAnyCharacterSet(v.index()-1, v.index(), options.CharacterAny)
		return true
	}
	return false
}

func (v *Validator) consumeReverseSolidusAtomEscape() bool {
	start := v.index()
	if v.eat(unicodedata.ReverseSolidus) {
		if v.consumeAtomEscape() {
			return true
		}
		v.rewind(start)
	}
	return false
}

func (v *Validator) consumePatternCharacter() bool {
	start := v.index()
	cp := v.current()
	if cp != reader.NoCodePoint && !isSyntaxCharacter(cp) {
		v.advance()
		v.handler.OnCharacter(start, v.index(), rune(cp))
		return true
	}
	return false
}
