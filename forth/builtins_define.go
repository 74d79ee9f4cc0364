package forth

import "io"

// Defining words. `:` reads a name and compiles a body terminated by `;`;
// the CREATE family builds variables cell by cell through the session's
// current-variable pointer.

// : name ... ; defines a procedure.
func execDefine(eng *Forth, b *Builtin) error {
	restore := eng.pushParseState(compileState)
	defer restore()

	name, ok := eng.readWord()
	if !ok {
		return errMissingWord
	}

	var tokens []Token
	for {
		w, ok := eng.readWord()
		if !ok {
			return errMissingWord
		}
		if w.is(";") {
			break
		}
		t, err := eng.parseWord(w)
		if err != nil {
			return err
		}
		addBlockToken(&tokens, t)
	}

	eng.defineProcedure(name.value(), tokens)
	return nil
}

// VARIABLE name defines a variable with one zero cell and makes it current.
func execVariable(eng *Forth, b *Builtin) error {
	w, ok := eng.readWord()
	if !ok {
		return errMissingWord
	}
	eng.currentVar = eng.defineVariableInteger(w.value(), 0)
	return nil
}

// CONSTANT name pops the top of stack and defines a constant variable
// holding it; lookups of the name resolve to the stored value.
func execConstant(eng *Forth, b *Builtin) error {
	t, err := eng.pop()
	if err != nil {
		return err
	}
	w, ok := eng.readWord()
	if !ok {
		return errMissingWord
	}
	v := eng.defineVariableToken(w.value(), t)
	v.setConstant(true)
	return nil
}

// CREATE name defines an empty variable and makes it current, ready for
// `,` and ALLOT to populate.
func execCreate(eng *Forth, b *Builtin) error {
	w, ok := eng.readWord()
	if !ok {
		return errMissingWord
	}
	eng.currentVar = eng.DefineVariable(w.value())
	return nil
}

// , appends the top of stack to the current variable's cells.
func execComma(eng *Forth, b *Builtin) error {
	t, err := eng.pop()
	if err != nil {
		return err
	}
	if eng.currentVar == nil {
		return errNoCurrentVar
	}
	eng.currentVar.addValue(t)

	if eng.tracing() {
		eng.tracef("%s , %s", eng.tokenString(eng.currentVar), eng.tokenString(t))
	}
	return nil
}

// doesMod captures the DOES> action body at parse time, stopping before
// (without consuming) the `;` that closes the enclosing definition.
type doesMod struct {
	tokens []Token
}

func (m *doesMod) clone() modifier { return &doesMod{tokens: m.tokens} }

func (m *doesMod) read(eng *Forth, b *Builtin) error {
	restore := eng.pushParseState(compileState)
	defer restore()

	for {
		if !eng.fillBuffer() {
			return errMissingChar
		}

		pos := eng.line.savePos()

		w, ok := eng.readWord()
		if !ok {
			return errMissingWord
		}
		if w.is(";") {
			eng.line.restorePos(pos)
			return nil
		}

		t, err := eng.parseWord(w)
		if err != nil {
			return err
		}
		addBlockToken(&m.tokens, t)
	}
}

func (m *doesMod) print(eng *Forth, w io.Writer, b *Builtin) {
	io.WriteString(w, "DOES> ")
	for _, t := range m.tokens {
		t.print(eng, w)
		io.WriteString(w, " ")
	}
}

// DOES> attaches its body to the current variable; the body runs whenever
// that variable is next pushed by name.
func execDoes(eng *Forth, b *Builtin) error {
	m := b.mod.(*doesMod)
	if eng.currentVar == nil {
		return errNoCurrentVar
	}
	eng.currentVar.setActions(m.tokens)
	return nil
}

// FORGET name removes the topmost definition for name, exposing any
// shadowed definition beneath it.
func execForget(eng *Forth, b *Builtin) error {
	w, ok := eng.readWord()
	if !ok {
		return errMissingWord
	}
	name := w.value()

	if _, ok := eng.lookupVariable(name); ok {
		eng.forgetVariable(name)
		return nil
	}
	if _, ok := eng.lookupProcedure(name); ok {
		eng.forgetProcedure(name)
		return nil
	}
	return unknownWordError(name)
}

// ALLOT extends the current variable with n integer-zero cells.
func execAllot(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	if eng.currentVar == nil {
		return errNoCurrentVar
	}
	eng.currentVar.allot(int(n.Integer()))
	return nil
}

// HERE pushes the shared WORD variable.
func execHere(eng *Forth, b *Builtin) error {
	eng.push(eng.wordVariable())
	return nil
}

// ABORT clears all three stacks and unwinds to the top-level driver.
func execAbort(eng *Forth, b *Builtin) error {
	eng.clearRetStack()
	eng.clearExecStack()
	eng.clearStack()
	panic(abortSignal{})
}

// QUIT clears the return and execution stacks and unwinds, preserving the
// data stack.
func execQuit(eng *Forth, b *Builtin) error {
	eng.clearRetStack()
	eng.clearExecStack()
	panic(quitSignal{})
}

// n DEBUG toggles the trace at run time.
func execDebug(eng *Forth, b *Builtin) error {
	n, err := eng.popNumber()
	if err != nil {
		return err
	}
	eng.setDebug(n.Integer() != 0)
	return nil
}
