// Package forth implements an interactive interpreter and incremental
// compiler for a Forth-style stack language. A Forth session owns the data,
// return and execution stacks, the variable and procedure dictionaries, and
// the line sources being parsed; embedders may register extra built-in
// words before parsing begins.
package forth

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/forthlab/goforth/internal/fileinput"
	"github.com/forthlab/goforth/internal/flushio"
)

// parseState selects between executing resolved tokens and appending them
// to a body under construction.
type parseState uint8

const (
	interpState parseState = iota
	compileState
)

// Forth is one interpreter session. All state is owned by the session and
// mutated in place; the engine is strictly single threaded.
type Forth struct {
	in     *bufio.Reader
	inFile *os.File
	out    flushio.WriteFlusher

	tracefn func(mess string, args ...interface{})

	stack  []Token // data
	rstack []Token // return
	xstack []Token // active block tokens, scanned by LEAVE

	variables    map[string][]*Variable
	procedures   map[string][]*Procedure
	userBuiltins map[string]*Builtin

	state      parseState
	stateStack []parseState

	src     *fileinput.Source // active file
	pending []line            // queued lines, LIFO
	line    line              // current parse line

	currentVar *Variable
	wordVar    *Variable

	varID      int64
	ignoreBase bool
	lastErr    error
}

// New creates a session with BASE seeded to 10 and the built-in dictionary
// available. Input defaults to an empty stream and output is discarded;
// use options to connect either.
func New(opts ...Option) *Forth {
	eng := &Forth{
		variables:    make(map[string][]*Variable),
		procedures:   make(map[string][]*Procedure),
		userBuiltins: make(map[string]*Builtin),
	}
	for _, opt := range defaultOptions {
		opt.apply(eng)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(eng)
		}
	}

	eng.defineVariableInteger("BASE", 10)

	return eng
}

// LastError reports the most recent failure surfaced to a driver boundary.
func (eng *Forth) LastError() error { return eng.lastErr }

// Output exposes the session's program output stream to embedded built-ins.
func (eng *Forth) Output() io.Writer { return eng.out }

// Flush forces any buffered program output out.
func (eng *Forth) Flush() error { return eng.out.Flush() }

// Init reads the personal profile, $HOME/.CForth, if one exists. A parse
// error stops the profile and is returned; the driver ignores it.
func (eng *Forth) Init() error {
	home := os.Getenv("HOME")
	if home == "" {
		return nil
	}

	src, err := fileinput.Open(filepath.Join(home, ".CForth"))
	if err != nil {
		return nil
	}
	defer src.Close()

	for {
		text, ok := src.ReadLine()
		if !ok {
			return nil
		}
		if err := eng.ParseLine(text); err != nil {
			return err
		}
	}
}

// ParseFile opens and parses the named file as a source. The file is closed
// on every exit path, including ABORT and QUIT unwinds. On success a
// trailing "ok" is written to the output.
func (eng *Forth) ParseFile(name string) error {
	src, err := fileinput.Open(name)
	if err != nil {
		return eng.fail(fileOpenError{name: name, err: err})
	}
	defer src.Close()

	// Stash the enclosing source and line so LOAD nests.
	prevSrc, prevLine := eng.src, eng.line
	eng.src, eng.line = src, line{}
	defer func() {
		eng.src, eng.line = prevSrc, prevLine
	}()

	if err := eng.catchSignals(eng.parseTokens); err != nil {
		return eng.fail(err)
	}

	eng.traceStackEcho()
	io.WriteString(eng.out, "ok\n")
	eng.out.Flush()
	return nil
}

// ParseLine queues text as a pending line and parses until every source is
// drained. The data stack is preserved across lines.
func (eng *Forth) ParseLine(text string) error {
	eng.pending = append(eng.pending, newLine(text))

	if err := eng.catchSignals(eng.parseTokens); err != nil {
		return eng.fail(err)
	}

	eng.traceStackEcho()
	eng.out.Flush()
	return nil
}

// catchSignals contains the ABORT and QUIT non-local exits. The signal
// words have already cleared the stacks they own; anything else unwinding
// through here keeps panicking.
func (eng *Forth) catchSignals(f func() error) (err error) {
	defer func() {
		switch e := recover(); e.(type) {
		case nil:
		case abortSignal, quitSignal:
			err = nil
		default:
			panic(e)
		}
	}()
	return f()
}

func (eng *Forth) fail(err error) error {
	eng.lastErr = err
	return err
}

// base reads BASE, clamped to [2,36]. While ignoreBase is set, which
// tokenString does for trace rendering, it reports ten. The value held in
// BASE, printed by a program (BASE @ .), follows BASE like any integer.
func (eng *Forth) base() int {
	if eng.ignoreBase {
		return 10
	}

	v, ok := eng.lookupVariable("BASE")
	if !ok {
		return 10
	}
	b, ok := v.integerValue()
	if !ok {
		return 10
	}

	base := int(b)
	if base < 2 {
		base = 2
	} else if base > 36 {
		base = 36
	}
	return base
}

func (eng *Forth) setDebug(debug bool) {
	if debug {
		eng.tracefn = eng.defaultTracef
	} else {
		eng.tracefn = nil
	}
}
