package ast

// Arena owns every node produced by a single parse call. Nodes are appended
// and never removed; all inter-node links are IDs into this slice, so the
// parent/backreference/capturing-group cycles the grammar needs are
// expressible without pointer ownership hazards.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc assigns n the next ID, stores it, and returns that ID.
func (a *Arena) Alloc(n Node) ID {
	id := ID(len(a.nodes))
	n.NodeBase().ID = id
	a.nodes = append(a.nodes, n)
	return id
}

// Get returns the node at id. It panics if id is out of range, mirroring the
// reference implementation's arena indexing (a bad id is a parser bug, not a
// user-facing error).
func (a *Arena) Get(id ID) Node {
	return a.nodes[id]
}

// Replace swaps the node stored at id for n and sets n's ID field to id.
// Used by the parser's character-class splice protocol
// (CharacterClass -> ExpressionCharacterClass) to rewrite a node in place
// without shifting every other node's id.
func (a *Arena) Replace(id ID, n Node) {
	n.NodeBase().ID = id
	a.nodes[id] = n
}

// Len returns the number of allocated nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}
