// Package reporter constructs the single error type the rest of this module
// raises: a positioned syntax error whose message is framed with the source
// text that produced it, the way the engine's own diagnostics are framed.
package reporter

import (
	"fmt"

	"github.com/parserkit/ecmaregex/internal/wtf16"
)

// SourceKind distinguishes which of the three validation entry points
// produced an error, since each frames its message differently.
type SourceKind int

const (
	// SourceNone frames no source at all (used by flags-only validation).
	SourceNone SourceKind = iota
	// SourceLiteral frames the full `/pattern/flags` literal text.
	SourceLiteral
	// SourcePattern frames `/pattern/flags` reconstructed from a bare pattern
	// plus the flags that were supplied alongside it.
	SourcePattern
)

// Context carries what SyntaxError needs to render its "Invalid regular
// expression: ..." frame: the original source buffer, the [start, end) span
// within it that was being validated, which kind of span it is, and the
// effective u/v flags (only ever needed to reconstruct a SourcePattern frame,
// since a SourceLiteral span already includes its own flags).
type Context struct {
	Kind        SourceKind
	Source      wtf16.Buffer
	Start, End  int
	Unicode     bool
	UnicodeSets bool
}

// SyntaxError is the one error type every validation/parse entry point in
// this module returns. It is never wrapped or paired with other error types;
// callers compare against a nil *SyntaxError, not against a sentinel.
type SyntaxError struct {
	Message string
	Index   int
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// New builds a SyntaxError whose Message is framed per ctx.Kind: literal and
// pattern contexts embed the offending source text (and, for a pattern, its
// flags) between the span start/end; SourceNone contexts carry no frame.
func New(ctx Context, index int, format string, args ...any) *SyntaxError {
	cause := fmt.Sprintf(format, args...)

	var frame string
	switch ctx.Kind {
	case SourceLiteral:
		if text := sliceText(ctx.Source, ctx.Start, ctx.End); text != "" {
			frame = ": " + text
		}
	case SourcePattern:
		pattern := sliceText(ctx.Source, ctx.Start, ctx.End)
		flags := ""
		if ctx.Unicode {
			flags += "u"
		}
		if ctx.UnicodeSets {
			flags += "v"
		}
		frame = fmt.Sprintf(": /%s/%s", pattern, flags)
	}

	return &SyntaxError{
		Message: fmt.Sprintf("Invalid regular expression%s: %s", frame, cause),
		Index:   index,
	}
}

func sliceText(source wtf16.Buffer, start, end int) string {
	if start < 0 || end > len(source) || start >= end {
		return ""
	}
	return source[start:end].String()
}
