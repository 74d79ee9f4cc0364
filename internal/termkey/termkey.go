// Package termkey reads single keystrokes, toggling the controlling
// terminal into raw mode around each read and restoring it on all paths.
package termkey

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ReadKey reads one byte from f. When f is a terminal it is switched to raw
// mode for the read, so the keystroke arrives without echo or line
// buffering; the previous mode is restored before returning.
func ReadKey(f *os.File) (byte, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return readByte(f)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer term.Restore(fd, oldState)

	return readByte(f)
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
