// Package sourceinfo assigns every AST node a canonical path and renders
// cross-references (parent back-edge, backreference resolution,
// capturing-group reference list) as a relative path string, the
// filesystem-style diff from the referrer's path to the referent's,
// matching the reference implementation's resolve_location pass.
package sourceinfo

import (
	"strconv"
	"strings"

	"github.com/parserkit/ecmaregex/ast"
	"github.com/parserkit/ecmaregex/ast/paths"
)

// RelativeSentinel prefixes every rendered cross-reference, mirroring the
// reference implementation's own ♻️ sentinel.
const RelativeSentinel = "♻️"

// PathMap maps every node reachable from a root to its canonical path.
type PathMap struct {
	paths map[ast.ID]paths.Path
}

// Resolve walks arena from root, assigning root the empty path and every
// descendant a path built from the field name(s) and index that reach it.
func Resolve(arena *ast.Arena, root ast.ID) *PathMap {
	pm := &PathMap{paths: map[ast.ID]paths.Path{}}
	pm.assign(arena, root, "")
	return pm
}

func (pm *PathMap) assign(arena *ast.Arena, id ast.ID, path paths.Path) {
	if id == ast.NoID {
		return
	}
	pm.paths[id] = path

	switch n := arena.Get(id).(type) {
	case *ast.RegExpLiteral:
		pm.assign(arena, n.Pattern, paths.Join(path, "pattern"))
		pm.assign(arena, n.Flags, paths.Join(path, "flags"))
	case *ast.Pattern:
		pm.assignList(arena, n.Alternatives, path, "alternatives")
	case *ast.Alternative:
		pm.assignList(arena, n.Elements, path, "elements")
	case *ast.Group:
		pm.assignList(arena, n.Alternatives, path, "alternatives")
	case *ast.CapturingGroup:
		pm.assignList(arena, n.Alternatives, path, "alternatives")
	case *ast.Assertion:
		pm.assignList(arena, n.Alternatives, path, "alternatives")
	case *ast.Quantifier:
		pm.assign(arena, n.Element, paths.Join(path, "element"))
	case *ast.CharacterClass:
		pm.assignList(arena, n.Elements, path, "elements")
	case *ast.CharacterClassRange:
		pm.assign(arena, n.Min, paths.Join(path, "min"))
		pm.assign(arena, n.Max, paths.Join(path, "max"))
	case *ast.ExpressionCharacterClass:
		pm.assign(arena, n.Expression, paths.Join(path, "expression"))
	case *ast.ClassIntersection:
		pm.assign(arena, n.Left, paths.Join(path, "left"))
		pm.assign(arena, n.Right, paths.Join(path, "right"))
	case *ast.ClassSubtraction:
		pm.assign(arena, n.Left, paths.Join(path, "left"))
		pm.assign(arena, n.Right, paths.Join(path, "right"))
	case *ast.ClassStringDisjunction:
		pm.assignList(arena, n.Alternatives, path, "alternatives")
	case *ast.StringAlternative:
		pm.assignList(arena, n.Elements, path, "elements")
	}
}

func (pm *PathMap) assignList(arena *ast.Arena, ids []ast.ID, base paths.Path, field string) {
	for i, id := range ids {
		pm.assign(arena, id, paths.Join(base, field, strconv.Itoa(i)))
	}
}

// Path returns the canonical path assigned to id.
func (pm *PathMap) Path(id ast.ID) (paths.Path, bool) {
	p, ok := pm.paths[id]
	return p, ok
}

// Relative renders the cross-reference from fromID to toID as a
// sentinel-prefixed filesystem-style diff between their canonical paths.
func (pm *PathMap) Relative(fromID, toID ast.ID) string {
	from := pm.paths[fromID]
	to := pm.paths[toID]
	return RelativeSentinel + diff(from, to)
}

// diff computes the ".."-climbing relative path from "from" to "to", the
// same shape pathdiff.diff_paths produces in the reference implementation.
func diff(from, to paths.Path) string {
	common := paths.CommonPrefixLen(from, to)
	fromSegs := paths.Segments(from)
	toSegs := paths.Segments(to)

	ups := len(fromSegs) - common
	var b strings.Builder
	for i := 0; i < ups; i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(toSegs[common:], "/"))
	return b.String()
}
