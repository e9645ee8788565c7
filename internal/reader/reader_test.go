package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parserkit/ecmaregex/internal/wtf16"
)

func TestBasicAdvance(t *testing.T) {
	r := New()
	buf := wtf16.FromString("abc")
	r.Reset(buf, 0, len(buf), false)

	assert.Equal(t, CodePoint('a'), r.Current())
	assert.Equal(t, CodePoint('b'), r.Next())
	assert.Equal(t, CodePoint('c'), r.Next2())
	assert.Equal(t, NoCodePoint, r.Next3())

	assert.True(t, r.Eat('a'))
	assert.Equal(t, 1, r.Index())
	assert.Equal(t, CodePoint('b'), r.Current())
}

func TestEat2(t *testing.T) {
	r := New()
	buf := wtf16.FromString("abcd")
	r.Reset(buf, 0, len(buf), false)

	assert.False(t, r.Eat2('a', 'c'))
	assert.True(t, r.Eat2('a', 'b'))
	assert.Equal(t, 2, r.Index())
	assert.True(t, r.Eat2('c', 'd'))
	assert.Equal(t, 4, r.Index())
}

func TestSurrogatePairWidthUnderUnicodeMode(t *testing.T) {
	lead, trail := wtf16.SplitSurrogatePair(0x1F600)
	buf := wtf16.Buffer{lead, trail, 'x'}

	r := New()
	r.Reset(buf, 0, len(buf), true)
	assert.Equal(t, CodePoint(0x1F600), r.Current())
	assert.Equal(t, CodePoint('x'), r.Next())

	r.Advance()
	assert.Equal(t, 2, r.Index())
	assert.Equal(t, CodePoint('x'), r.Current())
}

func TestSurrogatePairSplitWithoutUnicodeMode(t *testing.T) {
	lead, trail := wtf16.SplitSurrogatePair(0x1F600)
	buf := wtf16.Buffer{lead, trail}

	r := New()
	r.Reset(buf, 0, len(buf), false)
	assert.Equal(t, CodePoint(lead), r.Current())
	assert.Equal(t, CodePoint(trail), r.Next())
}

func TestRewind(t *testing.T) {
	r := New()
	buf := wtf16.FromString("abcd")
	r.Reset(buf, 0, len(buf), false)
	r.Advance()
	r.Advance()
	assert.Equal(t, 2, r.Index())

	r.Rewind(0)
	assert.Equal(t, 0, r.Index())
	assert.Equal(t, CodePoint('a'), r.Current())
}

func TestRewindPastStartPanics(t *testing.T) {
	r := New()
	buf := wtf16.FromString("abcd")
	r.Reset(buf, 1, len(buf), false)
	assert.Panics(t, func() { r.Rewind(0) })
}

func TestBoundedRange(t *testing.T) {
	r := New()
	buf := wtf16.FromString("abcdef")
	r.Reset(buf, 1, 4, false)
	assert.Equal(t, CodePoint('b'), r.Current())
	r.Advance()
	r.Advance()
	assert.Equal(t, CodePoint('d'), r.Current())
	r.Advance()
	assert.Equal(t, NoCodePoint, r.Current())
}
