// Package fileinput provides line-oriented reading of named sources for
// the interpreter's fill-buffer protocol.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Location names a line in a source.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Source reads one line at a time from a named stream, tracking the
// location of the line most recently returned.
type Source struct {
	loc    Location
	br     *bufio.Reader
	closer io.Closer
	done   bool
}

// Open opens the named file as a source.
func Open(name string) (*Source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &Source{
		loc:    Location{Name: name},
		br:     bufio.NewReader(f),
		closer: f,
	}, nil
}

// FromReader wraps an arbitrary reader as a named source.
func FromReader(name string, r io.Reader) *Source {
	src := &Source{loc: Location{Name: name}}
	if br, ok := r.(*bufio.Reader); ok {
		src.br = br
	} else {
		src.br = bufio.NewReader(r)
	}
	if cl, ok := r.(io.Closer); ok {
		src.closer = cl
	}
	return src
}

// Loc reports the location of the last line read.
func (src *Source) Loc() Location { return src.loc }

// ReadLine returns the next line including its trailing newline, and false
// once the source is drained. A final line without a newline is still
// returned.
func (src *Source) ReadLine() (string, bool) {
	if src == nil || src.done {
		return "", false
	}
	line, err := src.br.ReadString('\n')
	if err != nil {
		src.done = true
		if line == "" {
			return "", false
		}
	}
	src.loc.Line++
	return line, true
}

// Close releases the underlying stream, if it is closable. Close is safe on
// a nil source and may be called more than once.
func (src *Source) Close() error {
	if src == nil || src.closer == nil {
		return nil
	}
	cl := src.closer
	src.closer = nil
	src.done = true
	return cl.Close()
}
