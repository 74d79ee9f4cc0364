package fileinput

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	src := FromReader("test", strings.NewReader("one\ntwo\nthree"))

	line, ok := src.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "one\n", line)
	assert.Equal(t, "test:1", src.Loc().String())

	line, ok = src.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "two\n", line)

	line, ok = src.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "three", line, "a final line without newline is returned")

	_, ok = src.ReadLine()
	assert.False(t, ok)
	_, ok = src.ReadLine()
	assert.False(t, ok, "drained source stays drained")
}

func TestReadEmpty(t *testing.T) {
	src := FromReader("empty", strings.NewReader(""))
	_, ok := src.ReadLine()
	assert.False(t, ok)
}

func TestOpenAndClose(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "prog.4th")
	require.NoError(t, os.WriteFile(name, []byte("1 2 +\n"), 0o644))

	src, err := Open(name)
	require.NoError(t, err)

	line, ok := src.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "1 2 +\n", line)

	require.NoError(t, src.Close())
	assert.NoError(t, src.Close(), "double close is safe")

	_, ok = src.ReadLine()
	assert.False(t, ok, "closed source reads as drained")
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestNilSource(t *testing.T) {
	var src *Source
	_, ok := src.ReadLine()
	assert.False(t, ok)
	assert.NoError(t, src.Close())
}
