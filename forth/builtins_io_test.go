package forth

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitAndPrintText(t *testing.T) {
	forthTestCases{
		forthTest("emit").
			withLines(`72 EMIT 105 EMIT`).
			expectOutput("Hiok\n"),

		forthTest("print string").
			withLines(`." hello, forth"`).
			expectOutput("hello, forthok\n"),

		forthTest("print string stops at quote").
			withLines(`." one" ." two"`).
			expectOutput("onetwook\n"),
	}.run(t)
}

func TestWordBuiltin(t *testing.T) {
	var out bytes.Buffer
	eng := New(WithOutput(&out))

	// 32 WORD reads the next blank-delimited string into the shared WORD
	// variable as a counted string
	require.NoError(t, eng.ParseLine(`32 WORD hello COUNT TYPE`))
	assert.Equal(t, "hello", out.String())

	// HERE pushes the same variable
	out.Reset()
	require.NoError(t, eng.ParseLine(`HERE COUNT TYPE`))
	assert.Equal(t, "hello", out.String())
}

func TestWordCustomDelimiter(t *testing.T) {
	var out bytes.Buffer
	eng := New(WithOutput(&out))

	// 44 is a comma; WORD consumes through it
	require.NoError(t, eng.ParseLine(`44 WORD alpha, COUNT TYPE`))
	assert.Equal(t, "alpha", out.String())
}

func TestCountAdvancesRef(t *testing.T) {
	eng := New()

	require.NoError(t, eng.ParseLine(`32 WORD abc COUNT`))
	require.Equal(t, 2, eng.Depth())

	n, err := eng.PopNumber()
	require.NoError(t, err)
	assert.Equal(t, int32(3), n.Integer())

	ref, err := eng.PopRef()
	require.NoError(t, err)
	assert.Equal(t, 1, ref.ind(), "COUNT leaves the ref past the count cell")
}

func TestTrailing(t *testing.T) {
	var out bytes.Buffer
	eng := New(WithOutput(&out))

	require.NoError(t, eng.ParseLine(`CREATE S 104 , 105 , 32 , 32 ,`))
	require.NoError(t, eng.ParseLine(`S 0 + 4 -TRAILING TYPE`))
	assert.Equal(t, "hi", out.String())
}

func TestTypePartial(t *testing.T) {
	var out bytes.Buffer
	eng := New(WithOutput(&out))

	require.NoError(t, eng.ParseLine(`CREATE S 97 , 98 , 99 ,`))
	require.NoError(t, eng.ParseLine(`S 0 + 2 TYPE`))
	assert.Equal(t, "ab", out.String())
}

func TestKeyFromReader(t *testing.T) {
	var out bytes.Buffer
	eng := New(WithInput(strings.NewReader("Q")), WithOutput(&out))

	require.NoError(t, eng.ParseLine(`KEY .`))
	assert.Equal(t, "81 ", out.String())
}

func TestExpectFillsCells(t *testing.T) {
	eng := New(WithInput(strings.NewReader("abc\nrest")))

	require.NoError(t, eng.ParseLine(`CREATE BUF 8 ALLOT`))
	require.NoError(t, eng.ParseLine(`BUF 0 + 8 EXPECT`))

	v, ok := eng.lookupVariable("BUF")
	require.True(t, ok)

	want := []int32{97, 98, 99, 0}
	for i, expect := range want {
		n, isNum := v.indVal(i)
		require.True(t, isNum, "cell %d", i)
		assert.Equal(t, expect, n, "cell %d", i)
	}
}

// indVal is a small test helper view over integer cells.
func (v *Variable) indVal(i int) (int32, bool) {
	nt, ok := v.indValue(i).(*NumberToken)
	if !ok {
		return 0, false
	}
	return nt.Number().Integer(), true
}

func TestPStack(t *testing.T) {
	forthTestCases{
		forthTest("pstack prints all").
			withLines(`1 2 3 PSTACK`).
			expectOutput("1 2 3ok\n").
			expectStack("1", "2", "3"),
	}.run(t)
}

func TestMoveAndFill(t *testing.T) {
	var out bytes.Buffer
	eng := New(WithOutput(&out))

	require.NoError(t, eng.ParseLine(`CREATE SRC 1 , 2 , 3 , CREATE DST 3 ALLOT`))
	require.NoError(t, eng.ParseLine(`SRC 0 + DST 0 + 3 MOVE`))
	require.NoError(t, eng.ParseLine(`DST @ . DST 1 + @ . DST 2 + @ .`))
	assert.Equal(t, "1 2 3 ", out.String())

	out.Reset()
	require.NoError(t, eng.ParseLine(`DST 0 + 3 7 FILL`))
	require.NoError(t, eng.ParseLine(`DST @ . DST 1 + @ . DST 2 + @ .`))
	assert.Equal(t, "7 7 7 ", out.String())
}

func TestAddStore(t *testing.T) {
	forthTestCases{
		forthTest("plus store").
			withLines(`VARIABLE N 10 N ! 5 N +! N @ .`).
			expectOutput("15 ok\n"),

		forthTest("question fetch prints").
			withLines(`VARIABLE N 3 N ! N ?`).
			expectOutput("3 ok\n"),
	}.run(t)
}
