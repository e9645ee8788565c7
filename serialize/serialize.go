// Package serialize projects an unresolved AST into the canonical JSON form
// the test harness compares against golden fixtures: each node tagged by its
// variant name, owned children embedded inline, and cross-references
// (parent back-edge, backreference resolution, capturing-group reference
// list) rendered as sentinel-prefixed relative path strings instead of
// embedded objects, so the projection is a tree even though the arena graph
// is not. Modeled on the reference implementation's serde-tagged
// `*Unresolved` struct family.
package serialize

import (
	"encoding/json"

	"github.com/parserkit/ecmaregex/ast"
	"github.com/parserkit/ecmaregex/sourceinfo"
)

// infinitySentinel is the literal the reference implementation renders
// Quantifier.max == u32::MAX as.
const infinitySentinel = "$$Infinity"

var kindNames = [...]string{
	"RegExpLiteral",
	"Pattern",
	"Flags",
	"Alternative",
	"Group",
	"CapturingGroup",
	"Assertion",
	"Quantifier",
	"CharacterClass",
	"CharacterClassRange",
	"ExpressionCharacterClass",
	"ClassIntersection",
	"ClassSubtraction",
	"ClassStringDisjunction",
	"StringAlternative",
	"Character",
	"CharacterSet",
	"Backreference",
}

var assertionKindNames = [...]string{"lookahead", "lookbehind", "end", "start", "word"}
var characterKindNames = [...]string{"any", "digit", "space", "word", "property"}

// Marshal renders the subtree rooted at root as canonical JSON.
func Marshal(arena *ast.Arena, root ast.ID) (json.RawMessage, error) {
	if root == ast.NoID {
		return json.Marshal(nil)
	}
	pm := sourceinfo.Resolve(arena, root)
	b := &builder{arena: arena, pm: pm}
	return json.Marshal(b.node(root))
}

type builder struct {
	arena *ast.Arena
	pm    *sourceinfo.PathMap
}

// ref renders the cross-reference from fromID to toID, or "" when toID is
// absent (a root's parent, an unresolved backreference).
func (b *builder) ref(fromID, toID ast.ID) string {
	if toID == ast.NoID {
		return ""
	}
	return b.pm.Relative(fromID, toID)
}

func (b *builder) refs(fromID ast.ID, toIDs []ast.ID) []string {
	out := make([]string, len(toIDs))
	for i, toID := range toIDs {
		out[i] = b.ref(fromID, toID)
	}
	return out
}

func (b *builder) list(ids []ast.ID) []json.RawMessage {
	out := make([]json.RawMessage, len(ids))
	for i, id := range ids {
		raw, _ := json.Marshal(b.node(id))
		out[i] = raw
	}
	return out
}

// node builds the tagged-object projection for id: header fields common to
// every variant, then the variant-specific fields a type switch fills in.
func (b *builder) node(id ast.ID) map[string]any {
	n := b.arena.Get(id)
	base := n.NodeBase()

	m := map[string]any{
		"type":   kindNames[n.Kind()],
		"parent": b.ref(id, base.Parent),
		"start":  base.Start,
		"end":    base.End,
		"raw":    base.Raw.String(),
	}

	switch t := n.(type) {
	case *ast.RegExpLiteral:
		m["pattern"] = b.node(t.Pattern)
		m["flags"] = b.node(t.Flags)
	case *ast.Pattern:
		m["alternatives"] = b.list(t.Alternatives)
	case *ast.Flags:
		m["global"] = t.Global
		m["ignoreCase"] = t.IgnoreCase
		m["multiline"] = t.Multiline
		m["unicode"] = t.Unicode
		m["sticky"] = t.Sticky
		m["dotAll"] = t.DotAll
		m["hasIndices"] = t.HasIndices
		m["unicodeSets"] = t.UnicodeSets
	case *ast.Alternative:
		m["elements"] = b.list(t.Elements)
	case *ast.Group:
		m["alternatives"] = b.list(t.Alternatives)
	case *ast.CapturingGroup:
		m["name"] = t.Name
		m["hasName"] = t.HasName
		m["alternatives"] = b.list(t.Alternatives)
		m["references"] = b.refs(id, t.References)
	case *ast.Assertion:
		m["kind"] = assertionKindNames[t.AssertionKind]
		m["negate"] = t.Negate
		m["hasNegate"] = t.HasNegate
		if t.Alternatives != nil {
			m["alternatives"] = b.list(t.Alternatives)
		}
	case *ast.Quantifier:
		m["min"] = t.Min
		m["max"] = renderMax(t.Max)
		m["greedy"] = t.Greedy
		m["element"] = b.node(t.Element)
	case *ast.CharacterClass:
		m["unicodeSets"] = t.UnicodeSets
		m["negate"] = t.Negate
		m["elements"] = b.list(t.Elements)
	case *ast.CharacterClassRange:
		m["min"] = b.node(t.Min)
		m["max"] = b.node(t.Max)
	case *ast.ExpressionCharacterClass:
		m["negate"] = t.Negate
		m["expression"] = b.node(t.Expression)
	case *ast.ClassIntersection:
		m["left"] = b.node(t.Left)
		m["right"] = b.node(t.Right)
	case *ast.ClassSubtraction:
		m["left"] = b.node(t.Left)
		m["right"] = b.node(t.Right)
	case *ast.ClassStringDisjunction:
		m["alternatives"] = b.list(t.Alternatives)
	case *ast.StringAlternative:
		m["elements"] = b.list(t.Elements)
	case *ast.Character:
		m["value"] = int32(t.Value)
	case *ast.CharacterSet:
		m["kind"] = characterKindNames[t.SetKind]
		m["negate"] = t.Negate
		m["strings"] = t.Strings
		m["key"] = t.Key
		m["value"] = t.Value
		m["hasValue"] = t.HasValue
	case *ast.Backreference:
		m["refIndex"] = t.RefIndex
		m["refName"] = t.RefName
		m["byName"] = t.ByName
		m["resolved"] = b.ref(id, t.Resolved)
	}

	return m
}

func renderMax(max uint32) any {
	if max == ast.Infinity {
		return infinitySentinel
	}
	return max
}
