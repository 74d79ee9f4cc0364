package forth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseRoundTrip(t *testing.T) {
	// parsing toBaseString(B, n) under base B yields n again
	samples := []int32{
		0, 1, 2, 9, 10, 15, 16, 35, 36, 37, 100, 255, 256,
		1000000, math.MaxInt32, math.MaxInt32 - 1,
	}
	for base := 2; base <= 36; base++ {
		for _, n := range samples {
			str := toBaseString(base, n)
			got, err := toBaseInteger(str, base)
			require.NoError(t, err, "base %d value %d (%q)", base, n, str)
			assert.Equal(t, int64(n), got, "base %d round trip of %d via %q", base, n, str)
		}
	}
}

func TestBaseStringDigits(t *testing.T) {
	assert.Equal(t, "FF", toBaseString(16, 255))
	assert.Equal(t, "11111111", toBaseString(2, 255))
	assert.Equal(t, "Z", toBaseString(36, 35))
	assert.Equal(t, "-FF", toBaseString(16, -255))
	assert.Equal(t, "0", toBaseString(10, 0))
	assert.Equal(t, "", toBaseString(1, 5), "bases below 2 are invalid")
	assert.Equal(t, "", toBaseString(37, 5), "bases above 36 are invalid")
}

func TestBaseIntegerErrors(t *testing.T) {
	_, err := toBaseInteger("12", 1)
	assert.Equal(t, errInvalidBase, err)

	_, err = toBaseInteger("19", 8)
	assert.Equal(t, errInvalidChar, err)

	_, err = toBaseInteger("XYZ", 16)
	assert.Equal(t, errInvalidChar, err)

	// 1<<31 passes the digit check for MinInt32's sake; one past it fails
	_, err = toBaseInteger("2147483649", 10)
	assert.Equal(t, errOverflow, err)

	got, err := toBaseInteger("2147483647", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt32), got)
}

func TestIsBaseChar(t *testing.T) {
	var v int
	assert.True(t, isBaseChar('7', 8, &v))
	assert.Equal(t, 7, v)

	assert.False(t, isBaseChar('8', 8, nil))

	assert.True(t, isBaseChar('f', 16, &v), "lower case digits count")
	assert.Equal(t, 15, v)

	assert.True(t, isBaseChar('Z', 36, &v))
	assert.Equal(t, 35, v)

	assert.False(t, isBaseChar('A', 10, nil))
}

func TestMinIntLiteral(t *testing.T) {
	eng := New()

	nt, err := eng.readNumberWord("-2147483648")
	require.NoError(t, err, "MinInt32 literal must parse")
	assert.Equal(t, int32(math.MinInt32), nt.Number().Integer())

	_, err = eng.readNumberWord("2147483648")
	assert.Equal(t, errOverflow, err, "bare 2147483648 exceeds the signed range")

	require.NoError(t, eng.ParseLine("36 BASE !"))
	nt, err = eng.readNumberWord(toBaseString(36, math.MinInt32))
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), nt.Number().Integer(), "MinInt32 round trips in base 36")
}
