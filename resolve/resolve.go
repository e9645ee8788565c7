// Package resolve provides the named-capturing-group symbol table the
// parser's on_pattern_leave pass consults to turn a `\k<name>` backreference
// into a resolved ast.ID, grounded in the teacher's linker descriptor table
// (art.New() used the same way: insert during a forward pass, look up during
// a resolution pass).
package resolve

import (
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/parserkit/ecmaregex/ast"
)

// Table maps a capturing group's declared name to its arena ID.
type Table struct {
	tree art.Tree
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{tree: art.New()}
}

// Declare records name -> id. The parser only calls Declare for names the
// validator has already confirmed are unique within the pattern, so a
// pre-existing entry is always a bug, not a user-facing condition.
func (t *Table) Declare(name string, id ast.ID) {
	t.tree.Insert(art.Key(name), id)
}

// Has reports whether name was declared.
func (t *Table) Has(name string) bool {
	_, found := t.tree.Search(art.Key(name))
	return found
}

// Lookup returns the ID declared under name.
func (t *Table) Lookup(name string) (ast.ID, bool) {
	v, found := t.tree.Search(art.Key(name))
	if !found {
		return ast.NoID, false
	}
	return v.(ast.ID), true
}

// Size returns the number of declared names.
func (t *Table) Size() int {
	return t.tree.Size()
}
