package forth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableDefineLookupForget(t *testing.T) {
	eng := New()

	first := eng.DefineVariable("x")
	second := eng.DefineVariable("X")

	got, ok := eng.lookupVariable("x")
	require.True(t, ok)
	assert.Same(t, second, got, "lookup returns the most recent definition")

	require.True(t, eng.forgetVariable("X"))
	got, ok = eng.lookupVariable("X")
	require.True(t, ok)
	assert.Same(t, first, got, "forget exposes the shadowed definition")

	require.True(t, eng.forgetVariable("x"))
	_, ok = eng.lookupVariable("x")
	assert.False(t, ok, "forgetting the last definition removes the name")

	assert.False(t, eng.forgetVariable("x"), "forget on a missing name fails")
}

func TestProcedureDefineLookupForget(t *testing.T) {
	eng := New()

	first := eng.defineProcedure("go", nil)
	second := eng.defineProcedure("GO", nil)

	got, ok := eng.lookupProcedure("Go")
	require.True(t, ok)
	assert.Same(t, second, got)

	require.True(t, eng.forgetProcedure("GO"))
	got, ok = eng.lookupProcedure("go")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestBuiltinTableSingletons(t *testing.T) {
	b1, ok := New().lookupBuiltin("dup")
	require.True(t, ok)
	b2, ok := New().lookupBuiltin("DUP")
	require.True(t, ok)
	assert.Same(t, b1, b2, "the builtin table is shared process-wide")
}

func TestUserBuiltinShadowsTable(t *testing.T) {
	eng := New()
	eng.Register("DUP", func(eng *Forth) error {
		eng.PushInteger(99)
		return nil
	})

	require.NoError(t, eng.ParseLine(`DUP`))
	require.Equal(t, 1, eng.Depth())
	n, err := eng.PopNumber()
	require.NoError(t, err)
	assert.Equal(t, int32(99), n.Integer())
}

func TestVariableAddressesAreStable(t *testing.T) {
	eng := New()

	a := eng.DefineVariable("A")
	b := eng.DefineVariable("B")
	assert.Less(t, a.addr(), b.addr(), "identities increase monotonically")

	a.Allot(4)
	a.setInd(2)
	assert.Equal(t, a.id+2, a.addr(), "a variable's address tracks its index")
}
