// Package reader implements the four-code-point lookahead window the
// validator drives its recursive descent from.
package reader

import "github.com/parserkit/ecmaregex/internal/wtf16"

// CodePoint re-exports wtf16.CodePoint so callers need not import both
// packages for the common case.
type CodePoint = wtf16.CodePoint

// NoCodePoint is returned by Current/Next/Next2/Next3 past the end of the
// readable range.
const NoCodePoint = wtf16.NoCodePoint

// Reader is a one-code-point-at-a-time cursor over a subrange of a WTF-16
// buffer, with three code points of lookahead beyond the current one. Width
// (1 or 2 code units) is resolved per code point according to unicodeMode,
// so surrogate pairs are transparently coalesced only when that flag is set.
type Reader struct {
	unicodeMode bool
	s           wtf16.Buffer
	i           int
	start       int
	end         int

	cp1 CodePoint
	w1  int
	cp2 CodePoint
	w2  int
	cp3 CodePoint
	w3  int
	cp4 CodePoint
}

// New constructs a Reader with no buffer installed; call Reset before
// reading from it.
func New() *Reader {
	return &Reader{w1: 1, w2: 1, w3: 1}
}

func (r *Reader) at(i int) CodePoint {
	if i >= r.end {
		return NoCodePoint
	}
	cp, _ := r.s.At(i, r.unicodeMode)
	return cp
}

func (r *Reader) width(cp CodePoint) int {
	if cp > 0xffff {
		return 2
	}
	return 1
}

// Index returns the current code-unit offset into the source.
func (r *Reader) Index() int { return r.i }

// Current returns the code point at the current position.
func (r *Reader) Current() CodePoint { return r.cp1 }

// Next returns the code point one position ahead of the current one.
func (r *Reader) Next() CodePoint { return r.cp2 }

// Next2 returns the code point two positions ahead.
func (r *Reader) Next2() CodePoint { return r.cp3 }

// Next3 returns the code point three positions ahead.
func (r *Reader) Next3() CodePoint { return r.cp4 }

// Reset installs a new buffer and seeks to start, honoring [start, end) as
// the readable subrange and unicodeMode for surrogate-pair coalescing.
func (r *Reader) Reset(source wtf16.Buffer, start, end int, unicodeMode bool) {
	r.unicodeMode = unicodeMode
	r.start = start
	r.s = source
	r.end = end
	r.Rewind(start)
}

// Rewind seeks to index, which must be >= the range's start, and recomputes
// the lookahead window.
func (r *Reader) Rewind(index int) {
	if index < r.start {
		panic("reader: rewind past initial start")
	}
	r.i = index
	r.cp1 = r.at(index)
	r.w1 = r.width(r.cp1)
	r.cp2 = r.at(index + r.w1)
	r.w2 = r.width(r.cp2)
	r.cp3 = r.at(index + r.w1 + r.w2)
	r.w3 = r.width(r.cp3)
	r.cp4 = r.at(index + r.w1 + r.w2 + r.w3)
}

// Advance moves forward by the width of the current code point and shifts
// the lookahead window.
func (r *Reader) Advance() {
	if r.cp1 == NoCodePoint {
		return
	}
	r.i += r.w1
	r.cp1, r.w1 = r.cp2, r.w2
	r.cp2, r.w2 = r.cp3, r.w3
	r.cp3 = r.cp4
	r.w3 = r.width(r.cp3)
	r.cp4 = r.at(r.i + r.w1 + r.w2 + r.w3)
}

// Eat advances past cp if it is the current code point, returning whether it did.
func (r *Reader) Eat(cp CodePoint) bool {
	if r.cp1 == cp {
		r.Advance()
		return true
	}
	return false
}

// Eat2 advances past the two-code-point sequence (cp1, cp2) if the window
// begins with it.
func (r *Reader) Eat2(cp1, cp2 CodePoint) bool {
	if r.cp1 == cp1 && r.cp2 == cp2 {
		r.Advance()
		r.Advance()
		return true
	}
	return false
}

// Eat3 advances past the three-code-point sequence if the window begins with it.
func (r *Reader) Eat3(cp1, cp2, cp3 CodePoint) bool {
	if r.cp1 == cp1 && r.cp2 == cp2 && r.cp3 == cp3 {
		r.Advance()
		r.Advance()
		r.Advance()
		return true
	}
	return false
}
