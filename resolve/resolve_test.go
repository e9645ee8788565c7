package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parserkit/ecmaregex/ast"
)

func TestDeclareAndLookup(t *testing.T) {
	table := New()
	table.Declare("year", ast.ID(3))
	id, ok := table.Lookup("year")
	assert.True(t, ok)
	assert.Equal(t, ast.ID(3), id)
}

func TestLookupMissingNameNotFound(t *testing.T) {
	table := New()
	_, ok := table.Lookup("missing")
	assert.False(t, ok)
}

func TestHasReflectsDeclarations(t *testing.T) {
	table := New()
	assert.False(t, table.Has("x"))
	table.Declare("x", ast.ID(0))
	assert.True(t, table.Has("x"))
}

func TestSizeCountsDistinctNames(t *testing.T) {
	table := New()
	table.Declare("a", ast.ID(0))
	table.Declare("b", ast.ID(1))
	assert.Equal(t, 2, table.Size())
}
