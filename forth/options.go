package forth

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/forthlab/goforth/internal/flushio"
)

// Option configures a session at construction.
type Option interface{ apply(eng *Forth) }

var defaultOptions = []Option{
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type debugOption bool

type tracefOption func(mess string, args ...interface{})

// WithInput sets the stream read by KEY, EXPECT and QUERY. When r is an
// *os.File on a terminal, KEY reads it in raw mode.
func WithInput(r io.Reader) Option { return withInput(r) }

// WithOutput sets the stream program output is written to.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee copies program output to a second stream.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithDebug turns on the push/pop/exec trace from the start of the session.
func WithDebug(debug bool) Option { return debugOption(debug) }

// WithTracef installs a custom trace sink and enables tracing.
func WithTracef(fn func(mess string, args ...interface{})) Option { return tracefOption(fn) }

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (i inputOption) apply(eng *Forth) {
	eng.inFile = nil
	if f, ok := i.Reader.(*os.File); ok {
		eng.inFile = f
	}
	eng.in = bufio.NewReader(i.Reader)
}

func (o outputOption) apply(eng *Forth) {
	if eng.out != nil {
		eng.out.Flush()
	}
	eng.out = flushio.New(o.Writer)
}

func (o teeOption) apply(eng *Forth) {
	eng.out = flushio.Multi(eng.out, flushio.New(o.Writer))
}

func (d debugOption) apply(eng *Forth) { eng.setDebug(bool(d)) }

func (fn tracefOption) apply(eng *Forth) { eng.tracefn = fn }
