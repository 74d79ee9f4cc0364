package forth

import "strconv"

// The parser alternates between filling the line buffer and resolving one
// whitespace-delimited word. Resolution order is fixed: variable, then
// procedure, then built-in, then number literal.

// fillBuffer ensures the current line has content, pulling from the active
// file or, failing that, the pending-lines LIFO. It reports false when
// every source is drained.
func (eng *Forth) fillBuffer() bool {
	if eng.line.valid() {
		eng.line.skipSpace()
	}

	if eng.src != nil {
		for !eng.line.valid() {
			text, ok := eng.src.ReadLine()
			if !ok {
				return false
			}
			eng.line = newLine(text)
			eng.line.skipSpace()
		}
	} else {
		for !eng.line.valid() {
			if len(eng.pending) == 0 {
				return false
			}
			i := len(eng.pending) - 1
			eng.line = eng.pending[i]
			eng.pending = eng.pending[:i]
			eng.line.skipSpace()
		}
	}

	return true
}

// readWord captures the next word from the buffered sources.
func (eng *Forth) readWord() (word, bool) {
	var w word
	if !eng.fillBuffer() {
		return w, false
	}
	readWordFrom(&eng.line, &w)
	return w, w.valid
}

// ReadWord reads the next whitespace-delimited word from the current
// source; part of the embedder API for words that take inline arguments.
func (eng *Forth) ReadWord() (string, error) {
	w, ok := eng.readWord()
	if !ok {
		return "", errMissingWord
	}
	return w.value(), nil
}

// parseWord resolves one word to a token. A constant variable resolves to
// its stored value; a built-in carrying compiled state is duplicated and
// its modifier read before the instance is returned.
func (eng *Forth) parseWord(w word) (Token, error) {
	str := w.value()

	if v, ok := eng.lookupVariable(str); ok {
		if v.isConstant() {
			if val := v.value(); val != nil {
				return val, nil
			}
			return nil, errInvalidVariable
		}
		return v, nil
	}

	if p, ok := eng.lookupProcedure(str); ok {
		return p, nil
	}

	if b, ok := eng.lookupBuiltin(str); ok {
		if b.mod != nil {
			b = b.dupBuiltin()
			if err := b.mod.read(eng, b); err != nil {
				return nil, err
			}
		}
		return b, nil
	}

	if nt, err := eng.readNumberWord(str); err == nil {
		return nt, nil
	}

	return nil, unknownWordError(str)
}

// parseToken reads and resolves one word; a nil token means the sources are
// drained.
func (eng *Forth) parseToken() (Token, error) {
	w, ok := eng.readWord()
	if !ok {
		return nil, nil
	}
	return eng.parseWord(w)
}

// parseTokens is the main interpret loop: resolve a word, execute it,
// repeat until drained or failed.
func (eng *Forth) parseTokens() error {
	for {
		if !eng.fillBuffer() {
			return nil
		}
		t, err := eng.parseToken()
		if err != nil {
			return err
		}
		if t == nil {
			return nil
		}
		if err := eng.execToken(t); err != nil {
			return err
		}
	}
}

// execToken runs an executable token and pushes anything else. Block
// tokens park on the execution stack while they run so LEAVE can find
// them. Pushing a variable by name makes it current and fires its DOES>
// action body.
func (eng *Forth) execToken(t Token) error {
	ex, ok := t.(executable)
	if !ok {
		eng.push(t)
		if v, isVar := t.(*Variable); isVar {
			eng.currentVar = v
			return v.runActions(eng)
		}
		return nil
	}

	if eng.tracing() {
		eng.tracef("Exec: %s", eng.tokenString(t))
	}

	if isBlock(t) {
		eng.xstack = append(eng.xstack, t)
		err := ex.exec(eng)
		eng.xstack = eng.xstack[:len(eng.xstack)-1]
		return err
	}
	return ex.exec(eng)
}

// pushParseState enters a parse state, returning the restore func; callers
// defer it so the predecessor state survives every exit path.
func (eng *Forth) pushParseState(state parseState) func() {
	eng.stateStack = append(eng.stateStack, eng.state)
	eng.state = state
	return func() {
		i := len(eng.stateStack) - 1
		eng.state = eng.stateStack[i]
		eng.stateStack = eng.stateStack[:i]
	}
}

// addBlockToken appends a resolved token to a body under construction.
// Procedure bodies are expanded inline; null tokens (comments) are not
// appended at all.
func addBlockToken(tokens *[]Token, t Token) {
	if p, ok := t.(*Procedure); ok {
		*tokens = append(*tokens, p.body()...)
		return
	}
	if !isNull(t) {
		*tokens = append(*tokens, t)
	}
}

// readNumberWord parses word as a number literal in the current BASE. The
// whole word must be consumed or the parse fails and the caller falls
// through to the unknown-word error.
func (eng *Forth) readNumberWord(str string) (*NumberToken, error) {
	l := newLine(str)
	return eng.readNumberToken(&l)
}

func (eng *Forth) readNumberToken(l *line) (*NumberToken, error) {
	pos := l.savePos()
	base := eng.base()

	var digits []byte

	sign := int32(1)
	if l.valid() && l.isOneOf("+-") {
		if l.getChar() == '-' {
			sign = -1
		}
	}

	if !l.valid() || !l.isBaseChar(base) {
		l.restorePos(pos)
		return nil, errNotANumber
	}

	for l.valid() && l.isBaseChar(base) {
		digits = append(digits, l.getChar())
	}

	real := false

	if l.valid() && l.isChar('.') {
		real = true
		digits = append(digits, l.getChar())
		for l.valid() && l.isBaseChar(base) {
			digits = append(digits, l.getChar())
		}
	}

	if l.valid() && l.isOneOf("Ee") {
		if isBaseChar(rune(l.lookNextChar(1)), base, nil) {
			real = true
			digits = append(digits, l.getChar())
			for l.valid() && l.isBaseChar(base) {
				digits = append(digits, l.getChar())
			}
		}
	}

	if l.valid() && !l.isSpace() {
		l.restorePos(pos)
		return nil, errNotANumber
	}

	if !real {
		i, err := toBaseInteger(string(digits), base)
		if err != nil {
			l.restorePos(pos)
			return nil, err
		}
		v := int64(sign) * i
		if v > 1<<31-1 || v < -(1<<31) {
			l.restorePos(pos)
			return nil, errOverflow
		}
		return newIntegerToken(int32(v)), nil
	}

	r, err := strconv.ParseFloat(string(digits), 64)
	if err != nil {
		l.restorePos(pos)
		return nil, errNotANumber
	}
	return newNumberToken(MakeReal(float64(sign) * r)), nil
}
