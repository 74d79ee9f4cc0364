package forth

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestParseFile(t *testing.T) {
	path := writeSource(t, "prog.4th", "2 3 + .\n: SQ DUP * ;\n4 SQ .\n")

	var out bytes.Buffer
	eng := New(WithOutput(&out))
	require.NoError(t, eng.ParseFile(path))
	assert.Equal(t, "5 16 ok\n", out.String())
}

func TestParseFileError(t *testing.T) {
	path := writeSource(t, "bad.4th", "1 2 3\nWAT\n")

	var out bytes.Buffer
	eng := New(WithOutput(&out))
	err := eng.ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAT ?")
	assert.NotContains(t, out.String(), "ok", "a failed file parse prints no ok")
	assert.Equal(t, 3, eng.Depth(), "stacks keep their state at failure")
}

func TestParseFileMissing(t *testing.T) {
	eng := New()
	err := eng.ParseFile(filepath.Join(t.TempDir(), "nope.4th"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestLoadNests(t *testing.T) {
	dir := t.TempDir()
	inner := filepath.Join(dir, "inner.4th")
	outer := filepath.Join(dir, "outer.4th")
	require.NoError(t, os.WriteFile(inner, []byte("20 .\n"), 0o644))
	require.NoError(t, os.WriteFile(outer, []byte("10 .\nLOAD "+inner+"\n30 .\n"), 0o644))

	var out bytes.Buffer
	eng := New(WithOutput(&out))
	require.NoError(t, eng.ParseFile(outer))

	// each file parse echoes its own ok; the outer file resumes after LOAD
	assert.Equal(t, "10 20 ok\n30 ok\n", out.String())
}

func TestLoadFromLine(t *testing.T) {
	path := writeSource(t, "lib.4th", ": TWICE DUP + ;\n")

	var out bytes.Buffer
	eng := New(WithOutput(&out))
	require.NoError(t, eng.ParseLine("LOAD "+path))
	require.NoError(t, eng.ParseLine("21 TWICE ."))
	assert.Equal(t, "ok\n42 ", out.String())
}

func TestAbortInsideFileClosesAndStops(t *testing.T) {
	path := writeSource(t, "ab.4th", "1 2 3 ABORT\n4 5\n")

	var out bytes.Buffer
	eng := New(WithOutput(&out))
	require.NoError(t, eng.ParseFile(path))
	assert.Equal(t, 0, eng.Depth(), "abort cleared the data stack and stopped the file")
}

func TestInitReadsProfile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".CForth"), []byte("VARIABLE HITS 7 HITS !\n"), 0o644))
	t.Setenv("HOME", home)

	var out bytes.Buffer
	eng := New(WithOutput(&out))
	require.NoError(t, eng.Init())

	require.NoError(t, eng.ParseLine("HITS @ ."))
	assert.Equal(t, "7 ", out.String())
}

func TestInitMissingProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	eng := New()
	assert.NoError(t, eng.Init(), "a missing profile is not an error")
}
