package forth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberPromotion(t *testing.T) {
	i := MakeInteger(3)
	r := MakeReal(1.5)

	assert.True(t, Plus(i, i).IsInteger(), "int+int stays integer")
	assert.True(t, Plus(i, r).IsReal(), "int+real promotes")
	assert.True(t, Plus(r, i).IsReal(), "real+int promotes")
	assert.Equal(t, 4.5, Plus(i, r).Real())

	assert.Equal(t, int32(9), Times(i, i).Integer())
	assert.Equal(t, int32(-3), Minus(MakeInteger(0), i).Integer())
}

func TestNumberDivMod(t *testing.T) {
	q, err := Divide(MakeInteger(7), MakeInteger(2))
	require.NoError(t, err)
	assert.Equal(t, int32(3), q.Integer())

	m, err := Mod(MakeInteger(7), MakeInteger(2))
	require.NoError(t, err)
	assert.Equal(t, int32(1), m.Integer())

	m, err = Mod(MakeInteger(-7), MakeInteger(2))
	require.NoError(t, err)
	assert.Equal(t, int32(-1), m.Integer(), "mod truncates toward zero")

	_, err = Divide(MakeInteger(1), MakeInteger(0))
	assert.Equal(t, errDivByZero, err)

	_, err = Mod(MakeInteger(1), MakeInteger(0))
	assert.Equal(t, errModByZero, err)

	_, err = Divide(MakeReal(1), MakeReal(0))
	assert.Equal(t, errDivByZero, err)
}

func TestNumberLogic(t *testing.T) {
	tt := MakeBoolean(true)
	ff := MakeBoolean(false)

	assert.True(t, And(tt, tt).IsBoolean(), "bool AND bool stays boolean")
	assert.False(t, And(tt, ff).Boolean())
	assert.True(t, Or(ff, tt).Boolean())
	assert.True(t, Xor(tt, ff).Boolean())
	assert.False(t, Xor(tt, tt).Boolean())

	// mixed operands coerce to integer bitwise
	mixed := And(tt, MakeInteger(3))
	assert.True(t, mixed.IsInteger())
	assert.Equal(t, int32(1), mixed.Integer())

	assert.Equal(t, int32(6), Xor(MakeInteger(5), MakeInteger(3)).Integer())
}

func TestNumberNot(t *testing.T) {
	assert.False(t, MakeBoolean(true).Not().Boolean(), "NOT on boolean inverts logically")
	assert.True(t, MakeBoolean(true).Not().IsBoolean())

	n := MakeInteger(0).Not()
	assert.True(t, n.IsInteger(), "NOT on integer inverts bitwise")
	assert.Equal(t, int32(-1), n.Integer())
}

func TestNumberCmp(t *testing.T) {
	assert.Equal(t, 1, Cmp(MakeInteger(2), MakeInteger(1)))
	assert.Equal(t, -1, Cmp(MakeInteger(1), MakeInteger(2)))
	assert.Equal(t, 0, Cmp(MakeInteger(2), MakeInteger(2)))

	assert.Equal(t, 1, Cmp(MakeReal(1.5), MakeInteger(1)))
	assert.Equal(t, -1, Cmp(MakeInteger(1), MakeReal(1.5)))
}

func TestNumberAbsNeg(t *testing.T) {
	assert.Equal(t, int32(5), MakeInteger(-5).Abs().Integer())
	assert.Equal(t, int32(-5), MakeInteger(5).Neg().Integer())
	assert.Equal(t, 2.5, MakeReal(-2.5).Abs().Real())
}

func TestNumberInc(t *testing.T) {
	n := MakeInteger(1)
	n.Inc(MakeInteger(2))
	assert.Equal(t, int32(3), n.Integer())
	assert.True(t, n.IsInteger())

	n.Inc(MakeReal(0.5))
	assert.True(t, n.IsReal(), "real increment promotes")
	assert.Equal(t, 3.5, n.Real())
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, int32(1), Min(MakeInteger(1), MakeInteger(2)).Integer())
	assert.Equal(t, int32(2), Max(MakeInteger(1), MakeInteger(2)).Integer())
}
